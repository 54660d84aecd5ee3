package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a JSON zap logger named after the component. Entries go to
// stdout, and also to Sink when it names a file.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "time"
	enc := zapcore.NewJSONEncoder(encCfg)

	level := zap.NewAtomicLevelAt(cfg.LogLevel)
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}
	if cfg.Sink != "" {
		f, err := os.OpenFile(cfg.Sink, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(f), level))
		}
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(name)
}
