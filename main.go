package main

import (
	"errors"
	"fmt"
	"os"

	"serviceconfig/cmd"
	"serviceconfig/internal/editor"
	"serviceconfig/internal/preflight"
	"serviceconfig/internal/schema"
)

// Exit codes, stable for scripting.
const (
	exitUserAbort     = 5
	exitUsage         = 6
	exitConfiguration = 7
	exitGlobal        = 8
	exitSchema        = 9
	exitSystemd       = 10
	exitPrivileges    = 11
	exitNotConfirmed  = 12
)

func main() {
	// SERVICECONFIG_TRACE=0 trades stack traces for a catch-all exit code.
	if v := os.Getenv("SERVICECONFIG_TRACE"); v == "0" || v == "false" {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintln(os.Stderr, "A global error has been caught.")
				fmt.Fprintln(os.Stderr, r)
				os.Exit(exitGlobal)
			}
		}()
	}

	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var (
		argErr  *cmd.ArgumentError
		permErr *preflight.PermissionError
		sysdErr *preflight.UnavailableError
		schErr  *schema.Error
	)
	switch {
	case errors.Is(err, editor.ErrAborted):
		return exitUserAbort
	case errors.As(err, &argErr):
		return exitUsage
	case errors.As(err, &permErr):
		return exitPrivileges
	case errors.As(err, &sysdErr):
		return exitSystemd
	case errors.As(err, &schErr):
		return exitSchema
	case errors.Is(err, cmd.ErrNotConfirmed):
		return exitNotConfirmed
	}
	return exitConfiguration
}
