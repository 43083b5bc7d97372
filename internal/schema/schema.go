// Package schema loads unit-file templates and builds the default one.
package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"serviceconfig/internal/unit"
)

// Shipped template names, resolved relative to the schemas directory.
const (
	Default  = "service-config"
	Short    = "short_service-config"
	Extended = "extended_service-config"
	Built    = "default-schema"
)

// Error reports a template that is missing, malformed, or colliding.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Store resolves named templates inside a schemas directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// loadOptions keeps key casing and raw values intact. Inline comment
// stripping is off so directives like "ExecStart=/bin/a ; /bin/b" survive.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// Load reads an INI-style template with [Unit], [Service] and [Install]
// sections. [Install] may be absent (written files omit it when empty);
// [Unit] and [Service] are required. Duplicate keys collapse last-wins,
// key order and casing are preserved.
func Load(path string) (*unit.Model, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	m := unit.NewModel()
	for _, sec := range m.Sections() {
		src, err := f.GetSection(sec.Name)
		if err != nil {
			if sec.Name == "Install" {
				continue
			}
			return nil, &Error{Path: path, Err: fmt.Errorf("missing [%s] section", sec.Name)}
		}
		for _, key := range src.Keys() {
			sec.Section.Set(key.Name(), key.Value())
		}
	}
	return m, nil
}

// BuildDefault synthesizes a template from the built-in defaults and writes
// it to path. An existing file is never overwritten.
func BuildDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return &Error{Path: path, Err: fmt.Errorf("already exists")}
	}
	m, err := DefaultModel()
	if err != nil {
		return &Error{Path: path, Err: err}
	}
	if err := os.WriteFile(path, unit.Encode(m), 0o644); err != nil {
		return &Error{Path: path, Err: err}
	}
	return nil
}
