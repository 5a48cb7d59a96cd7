package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions logger level and optional rotating file
type LogOptions struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// NewLogger console logger on stderr, tee to a rotating json file when File set
func NewLogger(options LogOptions) (*zap.Logger, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(options.Level))
	if err != nil {
		return nil, err
	}

	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level)

	if options.File == "" {
		return zap.New(console, zap.AddCaller()), nil
	}

	rotate := &lumberjack.Logger{
		Filename:   options.File,
		MaxSize:    options.MaxSize,
		MaxBackups: options.MaxBackups,
		MaxAge:     options.MaxAge,
	}

	file := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotate),
		level)

	return zap.New(zapcore.NewTee(console, file), zap.AddCaller()), nil
}
