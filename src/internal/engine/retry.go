// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"errors"
	"slices"
	"syscall"
)

// nonFatalSocketError reports whether the socket error behind err is one
// of the transient conditions in nonFatalErrnos.
func nonFatalSocketError(err error) bool {
	errno, ok := socketErrno(err)
	return ok && slices.Contains(nonFatalErrnos, errno)
}

func errnoOf(err error) (syscall.Errno, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, true
	}
	return 0, false
}
