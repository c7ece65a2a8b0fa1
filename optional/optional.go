// Package optional provides Optional, a value that may or may not be present.
package optional

type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// OrElse returns the value if present and other otherwise.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// Do calls f with the value if present and g otherwise. Either function may be nil.
func (o Optional[T]) Do(f func(T), g func()) {
	if o.present {
		if f != nil {
			f(o.value)
		}
	} else if g != nil {
		g()
	}
}
