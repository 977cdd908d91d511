package launcher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidReference = errors.New("invalid module or symbol reference")
	ErrModuleNotFound   = errors.New("module not found")
	ErrModuleInit       = errors.New("module failed to initialize")
	ErrSymbolNotFound   = errors.New("symbol not found")
	ErrUnbound          = errors.New("symbol has no application bound")
)

// ResolveError describes a failure to turn a module and symbol pair into an
// application. Kind is one of the Err* sentinels above.
type ResolveError struct {
	Kind   error
	Module ModuleRef
	Symbol Symbol
	Err    error
}

func (e *ResolveError) Error() string {
	msg := fmt.Sprintf("resolve %q", string(e.Module))
	if e.Symbol != "" {
		msg += fmt.Sprintf(" symbol %q", string(e.Symbol))
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolveError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StartupError is returned when the platform shell could not be constructed
// around a resolved application.
type StartupError struct {
	Platform string
	Err      error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s startup: %v", e.Platform, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// recovered converts a recovered panic value into an error.
func recovered(v interface{}) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}
