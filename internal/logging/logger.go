package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where the service log goes and how it rotates. Zero
// values take the defaults below.
type Options struct {
	Dir        string
	File       string
	Level      zapcore.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

const (
	defaultFile       = "envprobe.log"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
	defaultMaxAgeDays = 14
)

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "logs"
	}
	if o.File == "" {
		o.File = defaultFile
	}
	if o.MaxSizeMB <= 0 {
		o.MaxSizeMB = defaultMaxSizeMB
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = defaultMaxBackups
	}
	if o.MaxAgeDays <= 0 {
		o.MaxAgeDays = defaultMaxAgeDays
	}
	return o
}

func rotator(o Options) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(o.Dir, o.File),
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   true,
	}
}

// NewLogger writes JSON request logs to a rotating file described by o.
func NewLogger(o Options) (*zap.Logger, error) {
	o = o.withDefaults()
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, err
	}
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(rotator(o)), o.Level)
	return zap.New(core, zap.Fields(zap.String("service", "envprobe"))), nil
}

// NewConsole writes human-readable logs to stderr, for one-shot commands.
func NewConsole(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
