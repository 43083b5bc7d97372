package unit

import (
	"bytes"
	"fmt"
	"os"
)

// GeneratedBy is the provenance comment appended to every written unit file.
const GeneratedBy = "# Automatically generated by service-config."

// WriteError reports a destination that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Encode serializes the model in unit-file syntax: [Unit] and [Service]
// unconditionally, [Install] only when it has at least one key. Unit files
// have no quoting layer, so values are emitted byte for byte; characters
// like ';' and '#' inside a value reach systemd untouched.
func Encode(m *Model) []byte {
	var out bytes.Buffer
	first := true
	for _, sec := range m.Sections() {
		if sec.Name == "Install" && sec.Section.Len() == 0 {
			continue
		}
		if !first {
			out.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&out, "[%s]\n", sec.Name)
		for _, k := range sec.Section.Keys() {
			v, _ := sec.Section.Get(k)
			fmt.Fprintf(&out, "%s=%s\n", k, v)
		}
	}
	return out.Bytes()
}

// Write persists the model to the destination path and appends the
// provenance comment. The model is not modified.
func Write(m *Model, path string) error {
	content := append(Encode(m), []byte(GeneratedBy+"\n")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
