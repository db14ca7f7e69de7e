// SPDX-License-Identifier: MIT

package main

import (
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logConfig selects the logger profile and an optional rotating log file.
type logConfig struct {
	Env     string
	Logfile string
	MaxSize int // megabytes
	MaxAge  int // days
}

// newLogger builds a JSON info logger for "production" and a colored debug
// logger otherwise. Console output goes to stderr so stdout stays pure TSV.
// With a Logfile, records are also written as JSON to a rotating file.
func newLogger(c logConfig) (*zap.Logger, error) {
	var config zap.Config
	if c.Env == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	if c.Logfile == "" {
		return logger, nil
	}

	fileEncoder := zap.NewProductionEncoderConfig()
	fileEncoder.TimeKey = "timestamp"
	fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	file := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileEncoder),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: c.Logfile,
			MaxSize:  c.MaxSize,
			MaxAge:   c.MaxAge,
		}),
		config.Level,
	)

	return logger.WithOptions(zap.WrapCore(func(console zapcore.Core) zapcore.Core {
		return zapcore.NewTee(console, file)
	})), nil
}
