package try

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/abevier/try/futures"
	"github.com/abevier/try/optional"
	"github.com/abevier/try/results"
)

// Failure is the Try of an operation that failed. Its cause is never fatal. Build it with Fail or Of: the zero
// value Failure[T]{} is invalid and reports ErrNoCause as its cause.
type Failure[T any] struct {
	cause error
}

// reason returns the cause, or ErrNoCause for a Failure that was not built by Fail.
func (f Failure[T]) reason() error {
	if f.cause == nil {
		return ErrNoCause
	}
	return f.cause
}

func (f Failure[T]) sealed() {}

func (f Failure[T]) IsSuccess() bool { return false }

func (f Failure[T]) IsFailure() bool { return true }

func (f Failure[T]) Get() (T, error) {
	return *new(T), NoSuchElement.Wrap(f.reason())
}

func (f Failure[T]) MustGet() T {
	_, err := f.Get()
	panic(err)
}

func (f Failure[T]) Cause() (error, error) {
	return f.reason(), nil
}

func (f Failure[T]) Err() error {
	return f.reason()
}

func (f Failure[T]) Success() optional.Optional[T] {
	return optional.None[T]()
}

func (f Failure[T]) Failure() optional.Optional[error] {
	return optional.Some(f.reason())
}

func (f Failure[T]) Filter(pred func(T) bool) Try[T] {
	requireArg(pred != nil, "predicate")
	return f
}

func (f Failure[T]) Peek(onFailure func(error), _ func(T)) Try[T] {
	if onFailure != nil {
		onFailure(f.reason())
	}
	return f
}

func (f Failure[T]) Recover(fn func(error) (T, error)) Try[T] {
	requireArg(fn != nil, "recover function")
	return Of(func() (T, error) {
		return fn(f.reason())
	})
}

func (f Failure[T]) RecoverIs(target error, fn func(error) (T, error)) Try[T] {
	requireArg(fn != nil, "recover function")
	if !errors.Is(f.reason(), target) {
		return f
	}
	return f.Recover(fn)
}

func (f Failure[T]) RecoverWith(fn func(error) Try[T]) Try[T] {
	requireArg(fn != nil, "recover function")
	return recoverWith(func() Try[T] {
		return fn(f.reason())
	})
}

func (f Failure[T]) RecoverWithIs(target error, fn func(error) Try[T]) Try[T] {
	requireArg(fn != nil, "recover function")
	if !errors.Is(f.reason(), target) {
		return f
	}
	return f.RecoverWith(fn)
}

func (f Failure[T]) AndFinally(op func() error) Try[T] {
	return andFinally[T](f, op)
}

func (f Failure[T]) OrElse(other T) T {
	return other
}

func (f Failure[T]) OrElseGet(fn func() T) T {
	requireArg(fn != nil, "supplier")
	return fn()
}

func (f Failure[T]) OrElseTry(other Try[T]) Try[T] {
	return variant(other)
}

func (f Failure[T]) OrElseTryGet(fn func() Try[T]) Try[T] {
	requireArg(fn != nil, "supplier")
	return variant(fn())
}

// OrElseErr returns the error mapper builds from the cause. If mapper returns nil the cause is returned.
func (f Failure[T]) OrElseErr(mapper func(error) error) (T, error) {
	requireArg(mapper != nil, "error mapper")
	if err := mapper(f.reason()); err != nil {
		return *new(T), err
	}
	return *new(T), f.reason()
}

func (f Failure[T]) ToFuture() *futures.Future[T] {
	return futures.Failed[T](f.reason())
}

func (f Failure[T]) ToResult() results.Result[T] {
	return results.Failure[T](f.reason())
}

func (f Failure[T]) Equal(other Try[T]) bool {
	o, ok := other.(Failure[T])
	return ok && sameError(f.reason(), o.reason())
}

func (f Failure[T]) String() string {
	return fmt.Sprintf("Failure(%v)", f.reason())
}

// sameError reports whether a and b are the same error value. Errors of a type that is not comparable have
// no identity and are never the same.
func sameError(a, b error) (same bool) {
	ta := reflect.TypeOf(a)
	if ta == nil || ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	// a comparable struct may still hold a non-comparable value in an interface field
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
