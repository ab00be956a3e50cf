package log

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv overrides the default log level.
const LevelEnv = "RESPCLI_LOG_LEVEL"

var Logger = zap.NewNop()

// InitLogger builds the process logger. Output goes to stderr so that
// decoded frames on stdout stay clean.
func InitLogger() error {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if s := os.Getenv(LevelEnv); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return err
		}
	}

	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(time.RFC3339))
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := config.Build()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
