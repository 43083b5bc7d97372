package schema

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"serviceconfig/internal/unit"
)

func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing template: %v", err)
	}
	return path
}

func TestLoadPreservesOrderAndCasing(t *testing.T) {
	path := writeTemplate(t, `[Unit]
Description=Example
After=network.target

[Service]
Type=simple
ExecStart=/bin/true
RestartSec=2

[Install]
WantedBy=multi-user.target
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := m.Unit.Keys(); !reflect.DeepEqual(got, []string{"Description", "After"}) {
		t.Fatalf("unit key order: %v", got)
	}
	if got := m.Service.Keys(); !reflect.DeepEqual(got, []string{"Type", "ExecStart", "RestartSec"}) {
		t.Fatalf("service key order: %v", got)
	}
	if v, _ := m.Service.Get("ExecStart"); v != "/bin/true" {
		t.Fatalf("ExecStart = %q", v)
	}
}

func TestLoadCollapsesDuplicatesLastWins(t *testing.T) {
	path := writeTemplate(t, `[Unit]
Description=First
Description=Second

[Service]
ExecStart=/bin/true
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if v, _ := m.Unit.Get("Description"); v != "Second" {
		t.Fatalf("expected last duplicate to win, got %q", v)
	}
	if m.Unit.Len() != 1 {
		t.Fatalf("duplicate key not collapsed: %v", m.Unit.Keys())
	}
}

func TestLoadToleratesMissingInstall(t *testing.T) {
	path := writeTemplate(t, `[Unit]
Description=Example

[Service]
ExecStart=/bin/true
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if m.Install.Len() != 0 {
		t.Fatalf("expected empty install section, got %v", m.Install.Keys())
	}
}

func TestLoadMissingServiceSection(t *testing.T) {
	path := writeTemplate(t, `[Unit]
Description=Example
`)
	_, err := Load(path)
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *Error for missing [Service], got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *Error for missing file, got %v", err)
	}
}

func TestLoadMalformedTemplate(t *testing.T) {
	path := writeTemplate(t, "[Unit]\nthis line has no delimiter\n")
	_, err := Load(path)
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *Error for malformed template, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	m := unit.NewModel()
	m.Unit.Set("Description", "MyApp")
	m.Unit.Set("After", "network.target")
	m.Service.Set("Type", "simple")
	m.Service.Set("ExecStart", "/usr/bin/myapp --flag value")
	m.Install.Set("WantedBy", "multi-user.target")

	dest := filepath.Join(t.TempDir(), "myapp.service")
	if err := unit.Write(m, dest); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := Load(dest)
	if err != nil {
		t.Fatalf("load back failed: %v", err)
	}

	for i, sec := range m.Sections() {
		back := got.Sections()[i]
		if !reflect.DeepEqual(sec.Section.Keys(), back.Section.Keys()) {
			t.Fatalf("[%s] key order changed: %v vs %v", sec.Name, sec.Section.Keys(), back.Section.Keys())
		}
		for _, k := range sec.Section.Keys() {
			want, _ := sec.Section.Get(k)
			if v, _ := back.Section.Get(k); v != want {
				t.Fatalf("[%s] %s = %q, want %q", sec.Name, k, v, want)
			}
		}
	}
}

func TestRoundTripOmittedInstall(t *testing.T) {
	m := unit.NewModel()
	m.Unit.Set("Description", "MyApp")
	m.Service.Set("ExecStart", "/usr/bin/myapp")

	dest := filepath.Join(t.TempDir(), "bare.service")
	if err := unit.Write(m, dest); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := Load(dest)
	if err != nil {
		t.Fatalf("load back failed: %v", err)
	}
	if got.Install.Len() != 0 {
		t.Fatalf("install should be empty after round trip: %v", got.Install.Keys())
	}
}

func TestBuildDefaultWritesCanonicalTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default-schema")
	if err := BuildDefault(path); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("built schema does not load: %v", err)
	}
	if v, _ := m.Unit.Get("Description"); v != "Example" {
		t.Fatalf("Description = %q", v)
	}
	if v, _ := m.Service.Get("KillSignal"); v != "SIGTERM" {
		t.Fatalf("KillSignal = %q", v)
	}
	if v, _ := m.Install.Get("WantedBy"); v != "multi-user.target" {
		t.Fatalf("WantedBy = %q", v)
	}
	if got := m.Unit.Keys(); !reflect.DeepEqual(got, []string{"Description", "After"}) {
		t.Fatalf("default unit key order: %v", got)
	}
}

func TestBuildDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default-schema")
	if err := os.WriteFile(path, []byte("keep me\n"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	err := BuildDefault(path)
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *Error on collision, got %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "keep me\n" {
		t.Fatalf("existing file was modified: %q", b)
	}
}

func TestStorePaths(t *testing.T) {
	s := NewStore("schemas")
	if got := s.Path(Short); got != filepath.Join("schemas", "short_service-config") {
		t.Fatalf("short path = %q", got)
	}
}
