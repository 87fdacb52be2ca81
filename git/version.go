package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmgilman/go/gitcli/errors"
	"github.com/jmgilman/go/gitcli/failure"
)

// DefaultMinVersion is the oldest git release the parsers are written
// against. It is the first with git switch.
var DefaultMinVersion = Version{Major: 2, Minor: 23}

// Version is a git release number.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ParseVersion parses "2.44.0" as well as the output of git --version,
// tolerating vendor suffixes such as "2.39.3 (Apple Git-146)" and
// "2.39.3.windows.1".
func ParseVersion(s string) (Version, error) {
	in := strings.TrimSpace(s)
	rest := in
	if idx := strings.Index(rest, "git version"); idx >= 0 {
		rest = strings.TrimSpace(rest[idx+len("git version"):])
	}

	start := strings.IndexAny(rest, "0123456789")
	if start < 0 {
		return Version{}, errors.Newf(errors.CodeInvalidInput, "unable to parse git version %q", in)
	}
	rest = rest[start:]

	end := 0
	for end < len(rest) && (rest[end] == '.' || (rest[end] >= '0' && rest[end] <= '9')) {
		end++
	}
	parts := strings.Split(strings.Trim(rest[:end], "."), ".")
	if len(parts) < 2 {
		return Version{}, errors.Newf(errors.CodeInvalidInput, "unable to parse git version %q", in)
	}

	var v Version
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, errors.Wrapf(err, errors.CodeInvalidInput, "unable to parse git version %q", in)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, errors.Wrapf(err, errors.CodeInvalidInput, "unable to parse git version %q", in)
	}
	if len(parts) >= 3 {
		if p, err := strconv.Atoi(parts[2]); err == nil {
			v.Patch = p
		}
	}
	return v, nil
}

type versionInfo struct {
	version Version
	err     error
}

// Version returns the version of the configured git binary. The first
// successful or failed probe is cached.
func (c *Client) Version(ctx context.Context) (Version, error) {
	c.versionOnce.Do(func() {
		c.version = c.probeVersion(ctx)
	})
	return c.version.version, c.version.err
}

func (c *Client) probeVersion(ctx context.Context) versionInfo {
	res, err := c.git.Clone().WithContext(ctx).WithEnv(c.env).Run("--version")
	if err != nil {
		return versionInfo{err: errors.Wrap(err, errors.CodeExecutionFailed, "git --version failed")}
	}

	v, err := ParseVersion(res.Stdout)
	if err != nil {
		return versionInfo{err: err}
	}
	c.logger.Debug("detected git version", "version", v.String())
	return versionInfo{version: v}
}

// checkVersion enforces the minimum version.
func (c *Client) checkVersion(ctx context.Context) error {
	if c.skipVersionCheck {
		return nil
	}
	v, err := c.Version(ctx)
	if err != nil {
		return err
	}
	if v.Less(c.minVersion) {
		return failure.NewUnsupportedVersionError(v.String(), c.minVersion.String())
	}
	return nil
}
