package main

// Process exit codes.
const (
	ExitCodeUnknownError     = 1
	ExitCodeInvalidArguments = 2
	ExitCodeInvalidInput     = 3
	ExitCodeInvalidOutput    = 4
	ExitCodeUnsupported      = 5
	ExitCodeTerminal         = 6
)

// ExitCodeError carries the exit code for an error.
type ExitCodeError struct {
	originalError error
	exitCode      int
}

func (e *ExitCodeError) Error() string {
	return e.originalError.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.originalError
}

// ExitCode returns the process exit code.
func (e *ExitCodeError) ExitCode() int {
	return e.exitCode
}

func newExitCodeError(err error, code int) *ExitCodeError {
	return &ExitCodeError{
		originalError: err,
		exitCode:      code,
	}
}
