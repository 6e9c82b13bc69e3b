package domain

import (
	"fmt"
	"strings"
)

// UnknownModuleError is returned when a module name is not registered
type UnknownModuleError struct {
	Name string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %s", e.Name)
}

// ProcessExecutionError is returned when the case-list binary is missing,
// fails to start or exits with a non-zero status
type ProcessExecutionError struct {
	Binary   string
	Args     []string
	Dir      string
	ExitCode int // -1 when the process never ran to completion
	Output   string
	Err      error
}

func (e *ProcessExecutionError) Error() string {
	cmdline := strings.TrimSpace(e.Binary + " " + strings.Join(e.Args, " "))
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s (in %s) exited with code %d", cmdline, e.Dir, e.ExitCode)
	}
	return fmt.Sprintf("%s (in %s) failed: %v", cmdline, e.Dir, e.Err)
}

func (e *ProcessExecutionError) Unwrap() error {
	return e.Err
}

// GenerationFailedError is returned when the binary succeeded but the
// expected case-list file does not exist afterwards
type GenerationFailedError struct {
	Path string
}

func (e *GenerationFailedError) Error() string {
	return fmt.Sprintf("%s not generated", e.Path)
}
