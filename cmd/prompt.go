package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"serviceconfig/internal/editor"
	"serviceconfig/internal/style"
)

// confirm asks a yes/no question and reads one line. End-of-input at the
// prompt aborts the session.
func confirm(r *bufio.Reader, w io.Writer, question string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	fmt.Fprintf(w, "%s %s: ", question, suffix)
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, editor.ErrAborted
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return def, nil
	}
	return answer == "y" || answer == "yes", nil
}

// finish verifies the mode left its file behind and prints the closing
// message.
func finish(w io.Writer, pal style.Palette, path string, mode Mode) error {
	if _, err := os.Stat(path); err != nil {
		return ErrNotConfirmed
	}
	switch mode {
	case ModeCreate:
		fmt.Fprintln(w, pal.Success.Sprint("Service created successfully."))
	case ModeEdit:
		fmt.Fprintln(w, pal.Warn.Sprint("Service edited successfully."))
	case ModeBuild:
		fmt.Fprintln(w, pal.Service.Sprint("Default schema built successfully."))
	}
	return nil
}
