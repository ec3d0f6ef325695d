//go:build !tinygo

package hal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the line-oriented Logger contract.
type ZapLogger struct {
	*zap.Logger
}

// NewZapLogger builds a console logger, or a JSON one when jsonOutput is set.
func NewZapLogger(level string, jsonOutput bool) (*ZapLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       !jsonOutput,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	if jsonOutput {
		cfg.Encoding = "json"
		cfg.EncoderConfig = zap.NewProductionEncoderConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	l, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{Logger: l.Named("stickv")}, nil
}

func (l *ZapLogger) WriteLineString(s string) { l.Info(s) }

func (l *ZapLogger) WriteLineBytes(b []byte) { l.Info(string(b)) }
