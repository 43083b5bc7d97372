// Package systemctl is a thin client for the host service manager.
package systemctl

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"serviceconfig/internal/xexec"
)

// Runner executes a command and reports exit code, stdout, stderr, and
// error. The production runner shells out; tests substitute a fake.
type Runner interface {
	Run(name string, args ...string) (int, string, string, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(name string, args ...string) (int, string, string, error)

func (f RunnerFunc) Run(name string, args ...string) (int, string, string, error) {
	return f(name, args...)
}

// LookupError reports a service that the manager does not know about.
type LookupError struct {
	Service string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("service %s is unknown to systemd", e.Service)
}

// Client issues systemctl commands through a Runner.
type Client struct {
	run Runner
	log *logrus.Logger
}

func New(log *logrus.Logger) *Client {
	return NewWithRunner(RunnerFunc(xexec.Run), log)
}

func NewWithRunner(run Runner, log *logrus.Logger) *Client {
	return &Client{run: run, log: log}
}

// FragmentPath queries the on-disk path of an installed unit.
func (c *Client) FragmentPath(service string) (string, error) {
	exit, out, errOut, err := c.run.Run("systemctl", "show", service, "-p", "FragmentPath")
	if err != nil || exit != 0 {
		c.log.WithFields(logrus.Fields{"service": service, "exit": exit, "stderr": strings.TrimSpace(errOut)}).
			Debug("systemctl show failed")
		return "", &LookupError{Service: service}
	}
	_, path, found := strings.Cut(strings.TrimSpace(out), "=")
	if !found || path == "" {
		return "", &LookupError{Service: service}
	}
	return path, nil
}

// Reload performs a daemon-reload.
func (c *Client) Reload() error {
	return c.control("daemon-reload")
}

func (c *Client) Enable(service string) error  { return c.control("enable", service) }
func (c *Client) Disable(service string) error { return c.control("disable", service) }
func (c *Client) Start(service string) error   { return c.control("start", service) }
func (c *Client) Stop(service string) error    { return c.control("stop", service) }

// control runs a fire-and-forget systemctl verb. Failures surface as errors
// for the caller to report; they never unwind the whole session.
func (c *Client) control(args ...string) error {
	exit, _, errOut, err := c.run.Run("systemctl", args...)
	if err != nil {
		return fmt.Errorf("systemctl %s: %w", strings.Join(args, " "), err)
	}
	if exit != 0 {
		detail := strings.TrimSpace(errOut)
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", exit)
		}
		return fmt.Errorf("systemctl %s: %s", strings.Join(args, " "), detail)
	}
	return nil
}
