// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"path/filepath"
	"strings"
)

// CommandName returns the name a user typed to run the program, taken from
// argv[0] without directories or a ".exe" suffix. Both slash and backslash
// separate directories whatever the host OS. fallback is returned when
// argv carries no name.
func CommandName(argv []string, fallback string) string {
	if len(argv) == 0 || argv[0] == "" {
		return fallback
	}

	name := filepath.Base(argv[0])
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".exe")
	if name == "" || name == "." {
		return fallback
	}
	return name
}
