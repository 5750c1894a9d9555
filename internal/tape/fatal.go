package tape

import "github.com/pkg/errors"

// FatalError marks a tape operation that represents an unrecoverable
// misuse of the engine — recording under an unknown trace level,
// accumulating derivative orders an entry was never recorded for, or
// sweeping an empty tape — rather than a recoverable one.
type FatalError struct {
	err error
}

func (f *FatalError) Error() string { return f.err.Error() }

// Unwrap exposes the wrapped error for errors.Is/As.
func (f *FatalError) Unwrap() error { return f.err }

// Fatalf builds a *FatalError and panics with it. Every fatal condition
// in this package goes through here rather than returning an error:
// these conditions are unrecoverable within the core, the same way a
// shape violation panics rather than threading an error return through
// every call site.
func Fatalf(format string, args ...any) {
	panic(&FatalError{err: errors.Errorf(format, args...)})
}

func fatalf(format string, args ...any) {
	Fatalf(format, args...)
}
