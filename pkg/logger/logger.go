package logger

import (
	"fmt"
	"os"

	"github.com/eshonkulov-asliddin/bonus-shop/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	consoleTimeLayout = "15:04:05 02-01-2006"
)

// InitLogger installs the global logger. Every entry carries the store
// backend so logs from terminals on different backends can be told apart.
func InitLogger(conf *config.Config) error {
	core, err := NewCore(conf.LogLvl, conf.LogFormat)
	if err != nil {
		return err
	}

	logger := zap.New(core, zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))).
		Named("terminal").
		With(zap.String("backend", conf.StoreBackend))
	zap.ReplaceGlobals(logger)

	return nil
}

// NewCore builds a core writing to stdout. The console format is meant for an
// operator watching the terminal, JSON for log collectors.
func NewCore(level, format string) (zapcore.Core, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unsupported log lvl: %s", level)
	}

	var encoder zapcore.Encoder
	switch format {
	case FormatConsole, "":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(consoleTimeLayout)
		ec.EncodeDuration = zapcore.MillisDurationEncoder
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	case FormatJSON:
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeDuration = zapcore.MillisDurationEncoder
		encoder = zapcore.NewJSONEncoder(ec)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl)), nil
}
