package try

import (
	"fmt"
	"reflect"

	"github.com/abevier/try/futures"
	"github.com/abevier/try/optional"
	"github.com/abevier/try/results"
)

// Success is the Try of an operation that completed normally. Build it with Succeed or Of.
type Success[T any] struct {
	value T
}

func (s Success[T]) sealed() {}

func (s Success[T]) IsSuccess() bool { return true }

func (s Success[T]) IsFailure() bool { return false }

// Get returns the value and a nil error.
func (s Success[T]) Get() (T, error) {
	return s.value, nil
}

func (s Success[T]) MustGet() T {
	return s.value
}

// Cause reports a NoSuchElement error: a Success has no cause.
func (s Success[T]) Cause() (error, error) {
	return nil, NoSuchElement.New("cause on success")
}

// Err returns nil.
func (s Success[T]) Err() error {
	return nil
}

// Success returns the value as a present Optional.
func (s Success[T]) Success() optional.Optional[T] {
	return optional.Some(s.value)
}

// Failure returns an empty Optional.
func (s Success[T]) Failure() optional.Optional[error] {
	return optional.None[error]()
}

// Filter returns s if pred holds for the value, a NoSuchElement Failure if it does not, and a Failure of
// the panic if pred panics.
func (s Success[T]) Filter(pred func(T) bool) (out Try[T]) {
	requireArg(pred != nil, "predicate")
	defer capture(&out)

	if pred(s.value) {
		return s
	}
	return Fail[T](NoSuchElement.New("predicate does not hold for %v", s.value))
}

// Peek calls onSuccess with the value and returns s.
func (s Success[T]) Peek(_ func(error), onSuccess func(T)) Try[T] {
	if onSuccess != nil {
		onSuccess(s.value)
	}
	return s
}

// Recover returns s; there is nothing to recover.
func (s Success[T]) Recover(f func(error) (T, error)) Try[T] {
	requireArg(f != nil, "recover function")
	return s
}

func (s Success[T]) RecoverIs(_ error, f func(error) (T, error)) Try[T] {
	requireArg(f != nil, "recover function")
	return s
}

func (s Success[T]) RecoverWith(f func(error) Try[T]) Try[T] {
	requireArg(f != nil, "recover function")
	return s
}

func (s Success[T]) RecoverWithIs(_ error, f func(error) Try[T]) Try[T] {
	requireArg(f != nil, "recover function")
	return s
}

// AndFinally runs op and returns s, or a Failure if op fails.
func (s Success[T]) AndFinally(op func() error) Try[T] {
	return andFinally[T](s, op)
}

// OrElse returns the value.
func (s Success[T]) OrElse(T) T {
	return s.value
}

func (s Success[T]) OrElseGet(func() T) T {
	return s.value
}

func (s Success[T]) OrElseTry(Try[T]) Try[T] {
	return s
}

func (s Success[T]) OrElseTryGet(func() Try[T]) Try[T] {
	return s
}

func (s Success[T]) OrElseErr(func(error) error) (T, error) {
	return s.value, nil
}

// ToFuture returns a Future already completed with the value.
func (s Success[T]) ToFuture() *futures.Future[T] {
	return futures.Completed(s.value)
}

func (s Success[T]) ToResult() results.Result[T] {
	return results.Success(s.value)
}

// Equal reports whether other is a Success holding a deeply equal value.
func (s Success[T]) Equal(other Try[T]) bool {
	o, ok := other.(Success[T])
	return ok && reflect.DeepEqual(s.value, o.value)
}

func (s Success[T]) String() string {
	return fmt.Sprintf("Success(%v)", s.value)
}
