// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix && !windows

package engine

import (
	"errors"
	"syscall"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

// SocketHandle is an OS socket. Sockets cannot be inspected on this
// platform, so every handle is invalid.
type SocketHandle struct{}

func socketFromRaw(uintptr) SocketHandle  { return SocketHandle{} }
func socketFromEngineFd(int) SocketHandle { return SocketHandle{} }

func (h SocketHandle) engineFd() int { return -1 }

// Valid reports false.
func (h SocketHandle) Valid() bool { return false }

func (h SocketHandle) String() string { return "invalid socket" }

var errNoSockets = errors.New("engine: raw sockets unsupported on this platform")

var nonFatalErrnos []syscall.Errno

func socketErrno(err error) (syscall.Errno, bool) { return errnoOf(err) }

func readSocket(SocketHandle, []byte) (int, error)  { return -1, errNoSockets }
func writeSocket(SocketHandle, []byte) (int, error) { return -1, errNoSockets }
func closeSocket(SocketHandle) error                { return errNoSockets }

func peerName(SocketHandle) (peer.Address, error) { return peer.Address{}, errNoSockets }
