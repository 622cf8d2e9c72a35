// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// The severities follow the usual TLS engine conventions: informational
// output through Printf/Println, Warnf for malformed but tolerable input,
// Errorf for internal surprises that make an operation fail gracefully and
// Panicf for violated programming contracts.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Warnf formats and prints a warning.
	Warnf(format string, v ...any)
	// Errorf formats and prints an error.
	Errorf(format string, v ...any)
	// Panicf formats and prints the message, then panics with it.
	Panicf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "WARNING: ".
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("WARNING: "+format, v...) }

// Errorf prints a message prefixed with "ERROR: ".
func (c *CLILogger) Errorf(format string, v ...any) { c.logger.Printf("ERROR: "+format, v...) }

// Panicf prints a message prefixed with "FATAL: " and panics with the formatted message.
func (c *CLILogger) Panicf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	c.logger.Print("FATAL: " + msg)
	panic(msg)
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line, encoded by [zap].
// It suppresses output when silent, which keeps machine-readable command
// output clean.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [zap]: https://github.com/uber-go/zap
type JSONLogger struct {
	out    *swapWriter
	sugar  *zap.SugaredLogger
	silent bool
}

// swapWriter serializes writes and allows the destination to change at runtime.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// NewJSONLogger creates a new JSON logger writing to writer.
// A nil writer discards output. When silent is true only Panicf still panics;
// nothing is written.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	out := &swapWriter{}
	out.set(writer)

	encCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(out), zapcore.DebugLevel)

	return &JSONLogger{
		out:    out,
		sugar:  zap.New(core).Sugar(),
		silent: silent,
	}
}

// Printf formats and logs a structured message at info level.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.sugar.Infof(format, v...)
}

// Println logs a structured message at info level.
// Operands are joined with spaces, like [fmt.Sprintln] without the newline.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.sugar.Infoln(v...)
}

// Warnf logs a structured message at warn level.
func (j *JSONLogger) Warnf(format string, v ...any) {
	if j.silent {
		return
	}
	j.sugar.Warnf(format, v...)
}

// Errorf logs a structured message at error level.
func (j *JSONLogger) Errorf(format string, v ...any) {
	if j.silent {
		return
	}
	j.sugar.Errorf(format, v...)
}

// Panicf logs a structured message at panic level and panics.
func (j *JSONLogger) Panicf(format string, v ...any) {
	if j.silent {
		panic(fmt.Sprintf(format, v...))
	}
	j.sugar.Panicf(format, v...)
}

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) { j.out.set(w) }

// std holds the process default logger.
var std atomic.Pointer[Logger]

func init() {
	var l Logger = NewCLILogger()
	std.Store(&l)
}

// Default returns the process default logger used by library packages.
func Default() Logger { return *std.Load() }

// SetDefault replaces the process default logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	std.Store(&l)
}
