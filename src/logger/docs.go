// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface with informational, warning, error and panic
// severities, and provides two implementations: CLILogger for human-readable
// command-line output and JSONLogger for structured JSON lines encoded by zap.
//
// Library packages log through the process default returned by [Default];
// the command-line entry point replaces it with [SetDefault].
package logger
