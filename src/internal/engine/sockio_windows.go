// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package engine

import "golang.org/x/sys/windows"

// readSocket and writeSocket return -1 with the error on failure.

func readSocket(h SocketHandle, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf := windows.WSABuf{Len: uint32(len(p)), Buf: &p[0]}
	var n, flags uint32
	if err := windows.WSARecv(h.Handle(), &buf, 1, &n, &flags, nil, nil); err != nil {
		return -1, err
	}
	return int(n), nil
}

func writeSocket(h SocketHandle, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buf := windows.WSABuf{Len: uint32(len(p)), Buf: &p[0]}
	var n uint32
	if err := windows.WSASend(h.Handle(), &buf, 1, &n, 0, nil, nil); err != nil {
		return -1, err
	}
	return int(n), nil
}

func closeSocket(h SocketHandle) error { return windows.Closesocket(h.Handle()) }
