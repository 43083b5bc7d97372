package unit

import (
	"errors"
	"strings"
)

// ErrInvalidName is returned for service names that cannot be used as a
// filename or a systemctl argument.
var ErrInvalidName = errors.New("service name contains characters that are not allowed")

// Section is an ordered key/value mapping for one unit-file section.
// Key order is preserved from the loaded template through editing to the
// written file; setting an existing key overwrites its value in place
// (last occurrence wins).
type Section struct {
	keys   []string
	values map[string]string
}

func NewSection() *Section {
	return &Section{values: map[string]string{}}
}

func (s *Section) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Section) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Section) Len() int { return len(s.keys) }

func (s *Section) clone() *Section {
	c := NewSection()
	for _, k := range s.keys {
		c.Set(k, s.values[k])
	}
	return c
}

// Model is the in-memory representation of one unit configuration.
// A model is produced by the schema store, mutated by the interactive
// editor, and terminal once written; there is exactly one per invocation.
type Model struct {
	Unit    *Section
	Service *Section
	Install *Section
}

func NewModel() *Model {
	return &Model{Unit: NewSection(), Service: NewSection(), Install: NewSection()}
}

// NamedSection pairs a section with its unit-file header name.
type NamedSection struct {
	Name    string
	Section *Section
}

// Sections returns the sections in their fixed unit-file order.
func (m *Model) Sections() []NamedSection {
	return []NamedSection{
		{"Unit", m.Unit},
		{"Service", m.Service},
		{"Install", m.Install},
	}
}

// Prune removes every key whose value is the empty string. A blank answer
// during editing means "drop the key", not "keep the default".
func (m *Model) Prune() {
	for _, sec := range m.Sections() {
		for _, k := range sec.Section.Keys() {
			if v, _ := sec.Section.Get(k); v == "" {
				sec.Section.Delete(k)
			}
		}
	}
}

func (m *Model) Clone() *Model {
	return &Model{
		Unit:    m.Unit.clone(),
		Service: m.Service.clone(),
		Install: m.Install.clone(),
	}
}

// NormalizeName validates an operator-supplied service name and appends the
// .service suffix if absent. Normalization happens once, before mode
// dispatch, so every later consumer sees the same identifier.
func NormalizeName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return "", ErrInvalidName
	}
	if !strings.HasSuffix(name, ".service") {
		name += ".service"
	}
	return name, nil
}
