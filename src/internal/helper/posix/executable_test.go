// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/helper/posix"
)

func TestCommandName(t *testing.T) {
	const fallback = "tls-engine-utils"

	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"relative path", []string{"./cert-tool", "probe"}, "cert-tool"},
		{"bare name", []string{"cert-tool"}, "cert-tool"},
		{"unix absolute path", []string{"/usr/local/bin/cert-tool"}, "cert-tool"},
		{"windows path", []string{`C:\Program Files\tools\cert-tool.exe`}, "cert-tool"},
		{"windows path without suffix", []string{`C:\tools\cert-tool`}, "cert-tool"},
		{"other extensions kept", []string{"/opt/cert-tool.sh"}, "cert-tool.sh"},
		{"empty argv", nil, fallback},
		{"empty name", []string{""}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, posix.CommandName(tt.argv, fallback))
		})
	}
}
