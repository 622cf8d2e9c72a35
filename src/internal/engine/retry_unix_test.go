// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
)

func TestBIOShouldRetry(t *testing.T) {
	tests := []struct {
		name         string
		ret          int
		err          error
		wantStandard bool
		wantFork     bool
	}{
		{"would block", -1, unix.EWOULDBLOCK, true, true},
		{"again", -1, unix.EAGAIN, true, true},
		{"interrupted", -1, unix.EINTR, true, true},
		{"not connected", -1, unix.ENOTCONN, true, true},
		{"protocol", -1, unix.EPROTO, true, true},
		{"in progress", -1, unix.EINPROGRESS, true, true},
		{"already", -1, unix.EALREADY, true, true},
		{"wrapped", -1, os.NewSyscallError("read", unix.EAGAIN), true, true},
		{"zero return consults errno natively", 0, unix.EAGAIN, true, false},
		{"positive return", 1, unix.EAGAIN, false, false},
		{"reset", -1, unix.ECONNRESET, false, false},
		{"bad descriptor", -1, unix.EBADF, false, false},
		{"no errno", -1, errors.New("boom"), false, false},
		{"nil error", -1, nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStandard, engine.Standard{}.BIOShouldRetry(tt.ret, tt.err), "standard")
			assert.Equal(t, tt.wantFork, engine.Fork{}.BIOShouldRetry(tt.ret, tt.err), "fork")
			if tt.ret == -1 {
				assert.Equal(t, tt.wantFork, engine.NonFatalSocketError(tt.err))
			}
		})
	}
}
