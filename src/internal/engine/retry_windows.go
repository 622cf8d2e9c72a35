// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package engine

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// Winsock error numbers.
const (
	wsaEINTR       syscall.Errno = 10004
	wsaEWOULDBLOCK syscall.Errno = 10035
	wsaEINPROGRESS syscall.Errno = 10036
	wsaEALREADY    syscall.Errno = 10037
	wsaENOTCONN    syscall.Errno = 10057
)

// nonFatalErrnos are the socket errors both engines treat as transient:
// the Winsock codes plus the C runtime codes that exist on windows.
var nonFatalErrnos = []syscall.Errno{
	wsaEWOULDBLOCK,
	wsaENOTCONN,
	wsaEINTR,
	wsaEINPROGRESS,
	wsaEALREADY,
	syscall.EWOULDBLOCK,
	syscall.ENOTCONN,
	syscall.EINTR,
	syscall.EAGAIN,
	syscall.EPROTO,
	syscall.EINPROGRESS,
	syscall.EALREADY,
}

// socketErrno takes the error number from err. A call that failed without
// reporting one leaves it in the thread last-error value instead.
func socketErrno(err error) (syscall.Errno, bool) {
	if errno, ok := errnoOf(err); ok {
		return errno, true
	}
	if err == nil {
		return errnoOf(windows.GetLastError())
	}
	return 0, false
}
