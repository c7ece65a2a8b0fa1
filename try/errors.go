package try

import (
	"fmt"
	"runtime/debug"

	"github.com/zeebo/errs"
)

var (
	// NoSuchElement is the class of errors reported when a value or a cause is requested
	// from the wrong variant, and when a Filter predicate rejects a value.
	NoSuchElement = errs.Class("no such element")

	// ArgumentError is the class of the errors panicked with when a required argument is nil.
	ArgumentError = errs.Class("invalid argument")

	// ErrNoCause is the cause reported by a Failure that was declared as a literal instead of built by Fail.
	ErrNoCause = ArgumentError.New("failure has no cause")
)

// Fatal error classes. An error belonging to any of them, anywhere in its wrap chain,
// is never held by a Failure.
var (
	// Interrupted marks errors that signal the current work must stop now.
	Interrupted = errs.Class("interrupted")
	// Linkage marks errors raised while resolving code or symbols at run time.
	Linkage = errs.Class("linkage")
	// RuntimeIntegrity marks errors that indicate the process itself is no longer sound.
	RuntimeIntegrity = errs.Class("runtime integrity")
)

// IsFatal reports whether err belongs to one of the fatal error classes.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return Interrupted.Has(err) || Linkage.Has(err) || RuntimeIntegrity.Has(err)
}

// PanicError is the cause captured when a wrapped operation panics with a value that is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// panicCause turns a recovered panic value into the error a Failure will hold.
// Error values are returned as is so identity survives the capture.
func panicCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r, Stack: debug.Stack()}
}

func requireArg(ok bool, name string) {
	if !ok {
		panic(ArgumentError.New("%s is nil", name))
	}
}
