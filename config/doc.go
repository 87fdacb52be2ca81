// Package config loads gitcli settings from defaults, a YAML file, the
// environment, and command-line flags, in increasing order of precedence.
//
// # Sources
//
// The file is read from --config when given, otherwise from
// $XDG_CONFIG_HOME/gitcli/config.yaml (os.UserConfigDir). A missing default
// file is not an error. Environment variables use the GITCLI_ prefix with
// dots replaced by underscores, so run.kill_timeout becomes
// GITCLI_RUN_KILL_TIMEOUT.
//
//	git:
//	  path: /usr/local/bin/git
//	  min_version: 2.30.0
//	  env:
//	    GIT_SSH_COMMAND: ssh -o BatchMode=yes
//	run:
//	  buffer_size: 65536
//	  kill_timeout: 5s
//	  timeout: 10m
//	log:
//	  level: debug
//	  format: json
//	output:
//	  format: yaml
//
// # Usage
//
//	cfg, err := config.Load(configFile, cmd.Flags())
//	if err != nil {
//	    return err
//	}
//	logger, err := cfg.Logger(os.Stderr)
//	opts, err := cfg.ClientOptions(logger)
//	client := git.New(opts...)
package config
