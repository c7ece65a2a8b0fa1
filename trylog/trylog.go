package trylog

import (
	"github.com/abevier/try/try"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Peek logs t with logger and returns t unchanged. A Success is written at opts.SuccessLevel with its value,
// a Failure at opts.FailureLevel with its cause.
func Peek[T any](t try.Try[T], logger *zap.Logger, opts Opts, fields ...zap.Field) try.Try[T] {
	opts.validate()

	write := func(lvl zapcore.Level, extra ...zap.Field) {
		if ce := logger.Check(lvl, opts.Message); ce != nil {
			ce.Write(append(extra, fields...)...)
		}
	}

	return t.Peek(
		func(err error) {
			write(opts.FailureLevel, zap.String("variant", "failure"), zap.Error(err))
		},
		func(v T) {
			write(opts.SuccessLevel, zap.String("variant", "success"), zap.Any("value", v))
		},
	)
}

// Field renders t as a structured field holding its variant and either its value or its cause.
func Field[T any](key string, t try.Try[T]) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		return try.Fold(t,
			func(err error) error {
				enc.AddString("variant", "failure")
				enc.AddString("cause", err.Error())
				return nil
			},
			func(v T) error {
				enc.AddString("variant", "success")
				return enc.AddReflected("value", v)
			},
		)
	}))
}
