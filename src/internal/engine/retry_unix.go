// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// nonFatalErrnos are the socket errors both engines treat as transient.
var nonFatalErrnos = []syscall.Errno{
	unix.EWOULDBLOCK,
	unix.ENOTCONN,
	unix.EINTR,
	unix.EAGAIN,
	unix.EPROTO,
	unix.EINPROGRESS,
	unix.EALREADY,
}

// socketErrno takes the error number from err, the errno of the failed
// call.
func socketErrno(err error) (syscall.Errno, bool) { return errnoOf(err) }
