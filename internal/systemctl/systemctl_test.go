package systemctl

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type call struct {
	name string
	args []string
}

// recorder is a Runner that captures every invocation and replays canned
// results.
type recorder struct {
	calls  []call
	exit   int
	stdout string
	stderr string
	err    error
}

func (r *recorder) Run(name string, args ...string) (int, string, string, error) {
	r.calls = append(r.calls, call{name: name, args: args})
	return r.exit, r.stdout, r.stderr, r.err
}

func TestFragmentPath(t *testing.T) {
	run := &recorder{stdout: "FragmentPath=/etc/systemd/system/myapp.service\n"}
	c := NewWithRunner(run, quietLogger())

	path, err := c.FragmentPath("myapp.service")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if path != "/etc/systemd/system/myapp.service" {
		t.Fatalf("path = %q", path)
	}

	want := call{name: "systemctl", args: []string{"show", "myapp.service", "-p", "FragmentPath"}}
	if len(run.calls) != 1 || !reflect.DeepEqual(run.calls[0], want) {
		t.Fatalf("unexpected invocation: %+v", run.calls)
	}
}

func TestFragmentPathUnknownService(t *testing.T) {
	// systemctl show answers an empty property for units it has never seen.
	run := &recorder{stdout: "FragmentPath=\n"}
	c := NewWithRunner(run, quietLogger())

	_, err := c.FragmentPath("ghost.service")
	var lerr *LookupError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LookupError, got %v", err)
	}
	if lerr.Service != "ghost.service" {
		t.Fatalf("service = %q", lerr.Service)
	}
}

func TestFragmentPathNonZeroExit(t *testing.T) {
	run := &recorder{exit: 1, stderr: "Failed to get properties"}
	c := NewWithRunner(run, quietLogger())

	_, err := c.FragmentPath("myapp.service")
	var lerr *LookupError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LookupError, got %v", err)
	}
}

func TestControlVerbs(t *testing.T) {
	run := &recorder{}
	c := NewWithRunner(run, quietLogger())

	if err := c.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if err := c.Enable("myapp.service"); err != nil {
		t.Fatalf("enable: %v", err)
	}
	if err := c.Start("myapp.service"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := c.Stop("myapp.service"); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := c.Disable("myapp.service"); err != nil {
		t.Fatalf("disable: %v", err)
	}

	want := []call{
		{name: "systemctl", args: []string{"daemon-reload"}},
		{name: "systemctl", args: []string{"enable", "myapp.service"}},
		{name: "systemctl", args: []string{"start", "myapp.service"}},
		{name: "systemctl", args: []string{"stop", "myapp.service"}},
		{name: "systemctl", args: []string{"disable", "myapp.service"}},
	}
	if !reflect.DeepEqual(run.calls, want) {
		t.Fatalf("unexpected invocations: %+v", run.calls)
	}
}

func TestControlReportsStderrDetail(t *testing.T) {
	run := &recorder{exit: 1, stderr: "Unit myapp.service not loaded.\n"}
	c := NewWithRunner(run, quietLogger())

	err := c.Start("myapp.service")
	if err == nil {
		t.Fatalf("expected an error for a failed verb")
	}
	want := "systemctl start myapp.service: Unit myapp.service not loaded."
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err, want)
	}
}

func TestControlFallsBackToExitStatus(t *testing.T) {
	run := &recorder{exit: 4}
	c := NewWithRunner(run, quietLogger())

	err := c.Enable("myapp.service")
	if err == nil || err.Error() != "systemctl enable myapp.service: exit status 4" {
		t.Fatalf("error = %v", err)
	}
}
