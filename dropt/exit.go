package dropt

import "errors"

// ExitError requests a specific exit code, for example from a halting
// option such as --help that should end the program successfully.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeDefaults holds the fallback codes.
type ExitCodeDefaults struct {
	Success      int // default: 0
	GeneralError int // default: 1
	UsageError   int // default: 2
}

// DefaultExitCodes returns the conventional defaults.
func DefaultExitCodes() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, UsageError: 2}
}

// ExitCodes maps parse errors to process exit codes.
type ExitCodes struct {
	byKind   map[ErrorKind]int
	defaults ExitCodeDefaults
}

// usageKinds are the errors caused by what the user typed. Unless
// redefined they exit with the usage code.
var usageKinds = map[ErrorKind]bool{
	ErrorKindInvalidOption:         true,
	ErrorKindInsufficientArguments: true,
	ErrorKindMismatch:              true,
	ErrorKindOverflow:              true,
	ErrorKindUnderflow:             true,
}

// NewExitCodes returns a mapping where errors caused by what the user
// typed exit with the usage code and everything else with the general
// error code.
func NewExitCodes() *ExitCodes {
	return &ExitCodes{
		byKind:   make(map[ErrorKind]int),
		defaults: DefaultExitCodes(),
	}
}

// Define sets the exit code for one error kind, custom kinds included.
// A defined code is kept when the defaults change.
func (e *ExitCodes) Define(kind ErrorKind, code int) *ExitCodes {
	e.byKind[kind] = code
	return e
}

// Default replaces the fallback codes.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	e.defaults = d
	return e
}

// Resolve converts err to an exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. ErrorKind mapping (Define)
//  3. usage code for user input errors
//  4. general error code
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	kind, _, _ := classify(err)
	var pe *ParseError
	if errors.As(err, &pe) {
		kind = pe.Kind
	}
	if code, ok := e.byKind[kind]; ok {
		return code
	}
	if usageKinds[kind] {
		return e.defaults.UsageError
	}
	return e.defaults.GeneralError
}
