// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package engine

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// SocketHandle is an OS socket. On windows it is a SOCKET handle, which
// engines store reinterpreted as a plain int.
type SocketHandle struct {
	h  windows.Handle
	ok bool
}

// SocketFromHandle returns the handle of socket h.
func SocketFromHandle(h windows.Handle) SocketHandle { return SocketHandle{h: h, ok: true} }

func socketFromRaw(raw uintptr) SocketHandle { return SocketFromHandle(windows.Handle(raw)) }

// socketFromEngineFd reinterprets the int an engine stores for a socket.
func socketFromEngineFd(fd int) SocketHandle {
	return SocketFromHandle(windows.Handle(uintptr(fd)))
}

// Handle returns the socket handle, [windows.InvalidHandle] for
// [InvalidSocket].
func (h SocketHandle) Handle() windows.Handle {
	if !h.ok {
		return windows.InvalidHandle
	}
	return h.h
}

func (h SocketHandle) engineFd() int { return int(h.Handle()) }

// Valid reports whether h names a socket.
func (h SocketHandle) Valid() bool { return h.ok && h.h != windows.InvalidHandle }

func (h SocketHandle) String() string {
	if !h.ok {
		return "invalid socket"
	}
	return fmt.Sprintf("socket %#x", uintptr(h.h))
}
