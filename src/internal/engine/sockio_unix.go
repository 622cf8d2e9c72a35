// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine

import "golang.org/x/sys/unix"

// readSocket and writeSocket return -1 with the error on failure.

func readSocket(h SocketHandle, p []byte) (int, error) { return unix.Read(h.Fd(), p) }

func writeSocket(h SocketHandle, p []byte) (int, error) { return unix.Write(h.Fd(), p) }

func closeSocket(h SocketHandle) error { return unix.Close(h.Fd()) }
