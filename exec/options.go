package exec

import (
	"os"
	"sort"
)

// config separates global settings, fixed at creation, from local settings
// that apply to a single call.
type config struct {
	globalEnv     map[string]string
	globalDir     string
	inheritEnv    bool
	disableColors bool

	localEnv map[string]string
	localDir string
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone copies the global settings. Local settings are not carried over.
func (c *config) clone() *config {
	out := newConfig()
	for k, v := range c.globalEnv {
		out.globalEnv[k] = v
	}
	out.globalDir = c.globalDir
	out.inheritEnv = c.inheritEnv
	out.disableColors = c.disableColors
	return out
}

// dir returns the local directory if set, else the global one.
func (c *config) dir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

// env merges global and local variables. Local values win.
func (c *config) env() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}
	if c.disableColors {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
	}
	return env
}

// environ builds the KEY=VALUE list for os/exec. Configured variables are
// appended after the inherited ones so they take precedence. The result is
// never nil: os/exec would treat a nil Env as "inherit everything".
func (c *config) environ() []string {
	out := []string{}
	if c.inheritEnv {
		out = os.Environ()
	}

	env := c.env()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}

func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
}
