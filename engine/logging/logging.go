// Package logging builds the zap loggers used by the viewer binaries.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrUnknownEncoding = errors.New("unknown log encoding")

// ParseLevel accepts debug, info, warn, error and fatal. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zap.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return zap.InfoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// Config returns the zap configuration for level and encoding ("console"
// or "json"). Output goes to stderr so it never mixes with a terminal UI
// drawn on stdout.
func Config(level zapcore.Level, encoding string) (zap.Config, error) {
	var enc zapcore.EncoderConfig
	switch encoding {
	case "", "console":
		encoding = "console"
		enc = zap.NewDevelopmentEncoderConfig()
	case "json":
		enc = zap.NewProductionEncoderConfig()
	default:
		return zap.Config{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}

	return zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    enc,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}, nil
}

// New builds a logger from a level name and encoding.
func New(level, encoding string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg, err := Config(lvl, encoding)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// Must is New for binaries that cannot continue without a logger.
func Must(level, encoding string) *zap.Logger {
	l, err := New(level, encoding)
	if err != nil {
		panic(err)
	}
	return l
}
