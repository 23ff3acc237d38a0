// Package ftl talks to the FTL DNS daemon: it proxies configuration
// reads and writes through the daemon binary's --config interface and
// resolves the daemon's PID file.
package ftl

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ConfigBackend reads and writes daemon configuration values. The
// backend owns all key and value validation; callers pass both through
// verbatim.
type ConfigBackend interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

var _ ConfigBackend = (*Client)(nil)

// Client is the ConfigBackend backed by the daemon binary's CLI.
type Client struct {
	// Binary is the daemon executable, a bare name resolved via PATH
	// or an absolute path.
	Binary string

	// ConfigFile is the daemon's own config file, consulted for an
	// optional PIDFILE= entry.
	ConfigFile string

	// DefaultPIDFile is used when ConfigFile is missing, empty, or has
	// no PIDFILE entry.
	DefaultPIDFile string

	// run executes the binary and returns its stdout; swapped out in
	// tests.
	run func(args ...string) ([]byte, error)
}

// NewClient creates a Client for the daemon binary with the given PID
// resolution paths.
func NewClient(binary, configFile, defaultPIDFile string) *Client {
	c := &Client{
		Binary:         binary,
		ConfigFile:     configFile,
		DefaultPIDFile: defaultPIDFile,
	}
	c.run = func(args ...string) ([]byte, error) {
		cmd := exec.Command(c.Binary, args...)
		var stdout bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = os.Stderr
		err := cmd.Run()
		return stdout.Bytes(), err
	}
	return c
}

// Get returns the daemon's value for key, as printed by the binary
// minus the trailing newline.
func (c *Client) Get(key string) (string, error) {
	out, err := c.run("--config", "-q", key)
	if err != nil {
		return "", fmt.Errorf("failed to read config value %s: %w", key, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Set writes a configuration value through the daemon binary. Stdout is
// discarded; the binary's exit status is the only success signal.
func (c *Client) Set(key, value string) error {
	if _, err := c.run("--config", key, value); err != nil {
		return fmt.Errorf("failed to set config value %s: %w", key, err)
	}
	return nil
}
