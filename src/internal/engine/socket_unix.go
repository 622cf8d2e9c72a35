// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine

import "strconv"

// SocketHandle is an OS socket. On unix it is a file descriptor.
type SocketHandle struct {
	fd int
	ok bool
}

// SocketFromFd returns the handle of descriptor fd.
func SocketFromFd(fd int) SocketHandle { return SocketHandle{fd: fd, ok: true} }

func socketFromRaw(raw uintptr) SocketHandle { return SocketFromFd(int(raw)) }

// socketFromEngineFd converts the integer an engine stores for a socket.
func socketFromEngineFd(fd int) SocketHandle { return SocketFromFd(fd) }

// Fd returns the descriptor, -1 for [InvalidSocket].
func (h SocketHandle) Fd() int {
	if !h.ok {
		return -1
	}
	return h.fd
}

func (h SocketHandle) engineFd() int { return h.Fd() }

// Valid reports whether h names a socket.
func (h SocketHandle) Valid() bool { return h.ok && h.fd >= 0 }

func (h SocketHandle) String() string {
	if !h.ok {
		return "invalid socket"
	}
	return "fd " + strconv.Itoa(h.fd)
}
