// Package try provides Try, the outcome of an operation that either produced a value or failed with an error.
//
// A Try is always one of two variants, Success or Failure. Operations are wrapped with Of or OfVoid, which
// capture both returned errors and panics. Failures short-circuit the transforming functions (Map, FlatMap,
// Filter) and are handled with the recovering ones (Recover, RecoverWith and their error-kind gated forms).
//
// Some errors are never captured: an error belonging to the Interrupted, Linkage or RuntimeIntegrity classes
// is panicked again, unchanged, at the point a Failure would have been built. See IsFatal.
package try

import (
	"errors"

	"github.com/abevier/try/futures"
	"github.com/abevier/try/optional"
	"github.com/abevier/try/results"
)

// Try is the result of an operation. The only implementations are Success and Failure; callers that need to
// tell them apart use a type switch over those two types, or Fold.
type Try[T any] interface {
	IsSuccess() bool
	IsFailure() bool

	// Get returns the value of a Success. For a Failure it returns a NoSuchElement error that wraps the cause.
	Get() (T, error)
	// MustGet returns the value of a Success and panics with the Get error otherwise.
	MustGet() T
	// Cause returns the cause of a Failure. For a Success it returns a NoSuchElement error.
	Cause() (error, error)
	// Err returns the cause of a Failure and nil for a Success.
	Err() error
	Success() optional.Optional[T]
	Failure() optional.Optional[error]

	// Filter turns a Success whose value does not satisfy pred into a NoSuchElement Failure.
	Filter(pred func(T) bool) Try[T]
	// Peek runs the callback matching the variant and returns the receiver. Nil callbacks are skipped.
	Peek(onFailure func(error), onSuccess func(T)) Try[T]

	Recover(f func(error) (T, error)) Try[T]
	// RecoverIs recovers only when errors.Is(cause, target) holds.
	RecoverIs(target error, f func(error) (T, error)) Try[T]
	RecoverWith(f func(error) Try[T]) Try[T]
	// RecoverWithIs recovers only when errors.Is(cause, target) holds.
	RecoverWithIs(target error, f func(error) Try[T]) Try[T]

	// AndFinally runs op whatever the variant. If op fails its error replaces the receiver.
	AndFinally(op func() error) Try[T]

	OrElse(other T) T
	OrElseGet(f func() T) T
	OrElseTry(other Try[T]) Try[T]
	OrElseTryGet(f func() Try[T]) Try[T]
	// OrElseErr returns the value of a Success, or the error mapper builds from the cause of a Failure.
	OrElseErr(mapper func(error) error) (T, error)

	// ToFuture returns a Future that is already completed with the value or failed with the cause.
	ToFuture() *futures.Future[T]
	ToResult() results.Result[T]

	// Equal compares two Successes by value and two Failures by identity of their causes.
	Equal(other Try[T]) bool
	String() string

	sealed()
}

// Of runs op and captures its outcome. A returned error or a panic becomes a Failure, unless it is fatal, in
// which case it is panicked again unchanged.
func Of[T any](op func() (T, error)) (t Try[T]) {
	requireArg(op != nil, "operation")
	defer capture(&t)

	v, err := op()
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// OfVoid is Of for operations that produce no value.
func OfVoid(op func() error) Try[struct{}] {
	requireArg(op != nil, "operation")
	return Of(func() (struct{}, error) {
		return struct{}{}, op()
	})
}

// FromTuple builds a Try from an already computed (value, error) pair.
func FromTuple[T any](v T, err error) Try[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// FromResult builds a Try from a results.Result.
func FromResult[T any](r results.Result[T]) Try[T] {
	v, err := r.Get()
	return FromTuple(v, err)
}

// Succeed returns a Success holding v.
func Succeed[T any](v T) Try[T] {
	return Success[T]{value: v}
}

// Fail returns a Failure holding cause. It panics with an ArgumentError if cause is nil and panics with cause
// itself if cause is fatal.
func Fail[T any](cause error) Try[T] {
	requireArg(cause != nil, "cause")
	if IsFatal(cause) {
		panic(cause)
	}
	return Failure[T]{cause: cause}
}

// Map applies f to the value of a Success. A Failure is returned as is and f is not called.
func Map[T, U any](t Try[T], f func(T) (U, error)) Try[U] {
	requireArg(f != nil, "mapper")
	switch v := variant(t).(type) {
	case Success[T]:
		return Of(func() (U, error) {
			return f(v.value)
		})
	case Failure[T]:
		return Failure[U]{cause: v.reason()}
	}
	panic(unknownVariant(t))
}

// FlatMap returns f applied to the value of a Success. A Failure is returned as is and f is not called.
func FlatMap[T, U any](t Try[T], f func(T) Try[U]) (out Try[U]) {
	requireArg(f != nil, "mapper")
	switch v := variant(t).(type) {
	case Success[T]:
		defer capture(&out)
		return nonNil(f(v.value))
	case Failure[T]:
		return Failure[U]{cause: v.reason()}
	}
	panic(unknownVariant(t))
}

// Fold reduces t to a single value, calling onFailure with the cause or onSuccess with the value.
func Fold[T, U any](t Try[T], onFailure func(error) U, onSuccess func(T) U) U {
	requireArg(onFailure != nil, "failure function")
	requireArg(onSuccess != nil, "success function")
	switch v := variant(t).(type) {
	case Success[T]:
		return onSuccess(v.value)
	case Failure[T]:
		return onFailure(v.reason())
	}
	panic(unknownVariant(t))
}

// RecoverAs recovers a Failure whose cause matches E, as found by errors.As. Other Failures and Successes are
// returned as is.
func RecoverAs[T any, E error](t Try[T], f func(E) (T, error)) Try[T] {
	requireArg(f != nil, "recover function")
	var target E
	if !causeAs(t, &target) {
		return t
	}
	return Of(func() (T, error) {
		return f(target)
	})
}

// RecoverWithAs is RecoverAs for functions that return a Try.
func RecoverWithAs[T any, E error](t Try[T], f func(E) Try[T]) Try[T] {
	requireArg(f != nil, "recover function")
	var target E
	if !causeAs(t, &target) {
		return t
	}
	return recoverWith(func() Try[T] {
		return f(target)
	})
}

func causeAs[T any, E error](t Try[T], target *E) bool {
	f, ok := variant(t).(Failure[T])
	return ok && errors.As(f.reason(), target)
}

// capture stores a Failure built from a panic of the enclosing call in *t. It has to be deferred directly.
func capture[T any](t *Try[T]) {
	if r := recover(); r != nil {
		*t = Fail[T](panicCause(r))
	}
}

func recoverWith[T any](f func() Try[T]) (out Try[T]) {
	defer capture(&out)
	return nonNil(f())
}

func andFinally[T any](t Try[T], op func() error) (out Try[T]) {
	requireArg(op != nil, "operation")
	defer capture(&out)

	if err := op(); err != nil {
		return Fail[T](err)
	}
	return t
}

func variant[T any](t Try[T]) Try[T] {
	requireArg(t != nil, "try")
	return t
}

func unknownVariant(t any) error {
	return ArgumentError.New("unknown try variant %T", t)
}

func nonNil[T any](t Try[T]) Try[T] {
	if t == nil {
		return Fail[T](ArgumentError.New("function returned a nil try"))
	}
	return t
}
