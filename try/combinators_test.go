package try

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return "code " + strconv.Itoa(e.code)
}

func double(x int) (int, error) {
	return x * 2, nil
}

func TestMap(t *testing.T) {
	req := require.New(t)

	req.Equal(Succeed(4), Map(Succeed(2), double))

	r := Map(Succeed(2), func(x int) (string, error) {
		return "", ErrTest
	})
	req.Same(ErrTest, r.Err())

	r = Map(Succeed(2), func(x int) (string, error) {
		panic(ErrOther)
	})
	req.Same(ErrOther, r.Err())
}

func TestMapSkipsFailure(t *testing.T) {
	req := require.New(t)

	called := false
	r := Map(Fail[int](ErrTest), func(x int) (string, error) {
		called = true
		return "", nil
	})
	req.False(called)
	req.Same(ErrTest, r.Err())
}

func TestFlatMap(t *testing.T) {
	req := require.New(t)

	half := func(x int) Try[int] {
		if x%2 != 0 {
			return Fail[int](ErrOther)
		}
		return Succeed(x / 2)
	}

	req.Equal(Succeed(2), FlatMap(Succeed(4), half))
	req.Same(ErrOther, FlatMap(Succeed(3), half).Err())

	r := FlatMap(Succeed(4), func(int) Try[int] {
		panic(ErrTest)
	})
	req.Same(ErrTest, r.Err())

	r = FlatMap(Succeed(4), func(int) Try[int] {
		return nil
	})
	req.True(ArgumentError.Has(r.Err()))
}

func TestFlatMapSkipsFailure(t *testing.T) {
	req := require.New(t)

	called := false
	r := FlatMap(Fail[int](ErrTest), func(x int) Try[string] {
		called = true
		return Succeed("")
	})
	req.False(called)
	req.Same(ErrTest, r.Err())
}

func TestMonadLaws(t *testing.T) {
	req := require.New(t)

	f := func(x int) Try[int] {
		if x > 10 {
			return Fail[int](ErrTest)
		}
		return Succeed(x + 3)
	}
	g := func(x int) Try[int] {
		if x%2 == 0 {
			return Fail[int](ErrOther)
		}
		return Succeed(x * 5)
	}

	for _, v := range []int{-2, 0, 1, 2, 8, 11, 20} {
		// left identity
		req.True(FlatMap(Succeed(v), f).Equal(f(v)), "left identity for %d", v)
		// right identity
		req.True(FlatMap(Succeed(v), Succeed[int]).Equal(Succeed(v)), "right identity for %d", v)
	}

	for _, r := range []Try[int]{Succeed(0), Succeed(1), Succeed(2), Succeed(8), Succeed(12), Fail[int](ErrTest)} {
		left := FlatMap(FlatMap(r, f), g)
		right := FlatMap(r, func(x int) Try[int] {
			return FlatMap(f(x), g)
		})
		req.True(left.Equal(right), "associativity for %v", r)
	}
}

func TestFold(t *testing.T) {
	req := require.New(t)

	onFailure := func(err error) string { return "failed: " + err.Error() }
	onSuccess := func(x int) string { return strconv.Itoa(x) }

	req.Equal("5", Fold(Succeed(5), onFailure, onSuccess))
	req.Equal("failed: test error", Fold(Fail[int](ErrTest), onFailure, onSuccess))
}

func TestPeek(t *testing.T) {
	req := require.New(t)

	var seen int
	var seenErr error
	onFailure := func(err error) { seenErr = err }
	onSuccess := func(x int) { seen = x }

	s := Succeed(6)
	req.Equal(s, s.Peek(onFailure, onSuccess))
	req.Equal(6, seen)
	req.Nil(seenErr)

	f := Fail[int](ErrTest)
	req.True(f.Equal(f.Peek(onFailure, onSuccess)))
	req.Same(ErrTest, seenErr)

	req.NotPanics(func() {
		s.Peek(nil, nil)
		f.Peek(nil, nil)
	})
}

func TestFilter(t *testing.T) {
	req := require.New(t)

	even := func(x int) bool { return x%2 == 0 }

	req.Equal(Succeed(4), Succeed(4).Filter(even))

	r := Succeed(3).Filter(even)
	req.True(r.IsFailure())
	req.True(NoSuchElement.Has(r.Err()))

	r = Succeed(3).Filter(func(int) bool {
		panic(ErrOther)
	})
	req.Same(ErrOther, r.Err())

	called := false
	r = Fail[int](ErrTest).Filter(func(int) bool {
		called = true
		return true
	})
	req.False(called)
	req.Same(ErrTest, r.Err())
}

func TestRecover(t *testing.T) {
	req := require.New(t)

	zero := func(error) (int, error) { return 0, nil }

	req.Equal(Succeed(1), Succeed(1).Recover(zero))
	req.Equal(Succeed(0), Fail[int](ErrTest).Recover(zero))

	r := Fail[int](ErrTest).Recover(func(err error) (int, error) {
		return 0, ErrOther
	})
	req.Same(ErrOther, r.Err())

	r = Fail[int](ErrTest).Recover(func(err error) (int, error) {
		panic(ErrOther)
	})
	req.Same(ErrOther, r.Err())

	fatal := Interrupted.New("stop")
	req.Same(fatal, panicValue(func() {
		Fail[int](ErrTest).Recover(func(error) (int, error) { return 0, fatal })
	}))
}

func TestRecoverIs(t *testing.T) {
	req := require.New(t)

	one := func(error) (int, error) { return 1, nil }

	req.Equal(Succeed(1), Fail[int](fmt.Errorf("wrapped: %w", ErrTest)).RecoverIs(ErrTest, one))

	f := Fail[int](ErrOther)
	req.True(f.Equal(f.RecoverIs(ErrTest, one)))

	req.Equal(Succeed(5), Succeed(5).RecoverIs(ErrTest, one))
}

func TestRecoverAs(t *testing.T) {
	req := require.New(t)

	byCode := func(e *codeError) (int, error) { return e.code, nil }

	req.Equal(Succeed(404), RecoverAs(Fail[int](&codeError{code: 404}), byCode))
	req.Equal(Succeed(500), RecoverAs(Fail[int](fmt.Errorf("request: %w", &codeError{code: 500})), byCode))

	f := Fail[int](ErrTest)
	req.True(f.Equal(RecoverAs(f, byCode)))

	req.Equal(Succeed(3), RecoverAs(Succeed(3), byCode))

	r := RecoverAs(Fail[int](&codeError{code: 1}), func(e *codeError) (int, error) {
		return 0, ErrOther
	})
	req.Same(ErrOther, r.Err())
}

func TestRecoverWith(t *testing.T) {
	req := require.New(t)

	fallback := func(error) Try[int] { return Succeed(7) }

	req.Equal(Succeed(1), Succeed(1).RecoverWith(fallback))
	req.Equal(Succeed(7), Fail[int](ErrTest).RecoverWith(fallback))

	r := Fail[int](ErrTest).RecoverWith(func(error) Try[int] {
		return Fail[int](ErrOther)
	})
	req.Same(ErrOther, r.Err())

	r = Fail[int](ErrTest).RecoverWith(func(error) Try[int] {
		panic(ErrOther)
	})
	req.Same(ErrOther, r.Err())
}

func TestRecoverWithIs(t *testing.T) {
	req := require.New(t)

	fallback := func(error) Try[int] { return Succeed(7) }

	req.Equal(Succeed(7), Fail[int](ErrTest).RecoverWithIs(ErrTest, fallback))

	f := Fail[int](ErrOther)
	req.True(f.Equal(f.RecoverWithIs(ErrTest, fallback)))
}

func TestRecoverWithAs(t *testing.T) {
	req := require.New(t)

	retry := func(e *codeError) Try[int] {
		if e.code >= 500 {
			return Fail[int](ErrOther)
		}
		return Succeed(e.code)
	}

	req.Equal(Succeed(404), RecoverWithAs(Fail[int](&codeError{code: 404}), retry))
	req.Same(ErrOther, RecoverWithAs(Fail[int](&codeError{code: 503}), retry).Err())

	f := Fail[int](ErrTest)
	req.True(f.Equal(RecoverWithAs(f, retry)))

	r := RecoverWithAs(Fail[int](&codeError{code: 1}), func(*codeError) Try[int] {
		return nil
	})
	req.True(ArgumentError.Has(r.Err()))
}

func TestDivideByZeroRecovery(t *testing.T) {
	req := require.New(t)

	zero := 0
	r := Of(func() (int, error) {
		return 10 / zero, nil
	})
	req.True(r.IsFailure())

	recovered := r.Recover(func(error) (int, error) { return 0, nil })
	req.Equal(Succeed(0), recovered)
	req.Equal(Succeed(0), Map(recovered, double))
}

func TestBinaryChain(t *testing.T) {
	req := require.New(t)

	r := FlatMap(Map(Succeed(2), double), func(x int) Try[string] {
		return Succeed(strconv.FormatInt(int64(x), 2))
	})

	v, err := r.Get()
	req.NoError(err)
	req.Equal("100", v)
}

func TestFailurePropagatesThroughChain(t *testing.T) {
	req := require.New(t)

	calls := 0
	step := func(x int) (int, error) {
		calls++
		return x + 1, nil
	}

	r := Map(Map(Map(Fail[int](ErrTest), step), step), step)
	req.Equal(0, calls)
	req.True(errors.Is(r.Err(), ErrTest))
}
