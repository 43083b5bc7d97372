// Package editor walks a unit model section by section and prompts the
// operator for each key's value.
package editor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"serviceconfig/internal/style"
	"serviceconfig/internal/unit"
)

// ErrAborted signals that the operator cancelled the session with
// end-of-input or an interrupt. No partial edits survive an abort.
var ErrAborted = errors.New("aborted by operator")

// Editor prompts for one line per key, single pass, synchronous.
type Editor struct {
	in      *bufio.Reader
	out     io.Writer
	palette style.Palette
}

func New(in io.Reader, out io.Writer, palette style.Palette) *Editor {
	return &Editor{in: bufio.NewReader(in), out: out, palette: palette}
}

// Edit runs the prompt loop over a copy of the model and applies the result
// only when the whole session completes. Blank answers drop their key: after
// the last section every key whose value is still empty is pruned, so an
// empty [Install] section disappears from the written file entirely.
//
// Cancelling ctx (interrupt) or hitting end-of-input aborts with ErrAborted
// and leaves the model untouched.
func (e *Editor) Edit(ctx context.Context, m *unit.Model) error {
	draft := m.Clone()
	done := make(chan error, 1)
	go func() { done <- e.walk(draft) }()

	select {
	case <-ctx.Done():
		return ErrAborted
	case err := <-done:
		if err != nil {
			return err
		}
	}

	draft.Prune()
	*m = *draft
	return nil
}

func (e *Editor) walk(m *unit.Model) error {
	first := true
	for _, sec := range m.Sections() {
		if !first {
			fmt.Fprintln(e.out)
		}
		first = false
		header := e.palette.Section(sec.Name)
		fmt.Fprintln(e.out, header.Sprintf("[%s] section configuration:", sec.Name))
		for _, key := range sec.Section.Keys() {
			current, _ := sec.Section.Get(key)
			value, err := e.prompt(key, current)
			if err != nil {
				return ErrAborted
			}
			sec.Section.Set(key, value)
		}
	}
	return nil
}

// prompt shows the key with its template default as a hint and reads one
// line. A blank line returns the empty string (the key gets pruned later).
func (e *Editor) prompt(key, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(e.out, "%s%s=", e.palette.Key.Sprint(key), e.palette.Hint.Sprintf(" [%s]", current))
	} else {
		fmt.Fprintf(e.out, "%s=", e.palette.Key.Sprint(key))
	}
	line, err := e.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
