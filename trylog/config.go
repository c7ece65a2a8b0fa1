package trylog

import "go.uber.org/zap/zapcore"

// Opts controls how Peek logs an outcome.
type Opts struct {
	// Message is the log message written for both variants.
	Message string
	// SuccessLevel is the level a Success is logged at.
	SuccessLevel zapcore.Level
	// FailureLevel is the level a Failure is logged at. It may not be lower than SuccessLevel.
	FailureLevel zapcore.Level
}

// DefaultOpts logs successes at debug and failures at warn.
var DefaultOpts = Opts{
	Message:      "operation finished",
	SuccessLevel: zapcore.DebugLevel,
	FailureLevel: zapcore.WarnLevel,
}

func (o Opts) validate() {
	if o.Message == "" {
		panic("trylog message must not be empty")
	}

	if o.FailureLevel < o.SuccessLevel {
		panic("trylog failure level must not be lower than the success level")
	}
}
