// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build windows

package engine

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

func peerName(h SocketHandle) (peer.Address, error) {
	sa, err := windows.Getpeername(h.Handle())
	if err != nil {
		return peer.Address{}, err
	}
	return sockaddrAddress(sa), nil
}

// sockaddrAddress keeps the socket family: an IPv4-mapped IPv6 peer stays
// IPv6 and is matched against 16-byte subjectAltName entries only.
func sockaddrAddress(sa windows.Sockaddr) peer.Address {
	switch a := sa.(type) {
	case *windows.SockaddrInet4:
		return peer.IPv4(a.Addr)
	case *windows.SockaddrInet6:
		return peer.IPv6(a.Addr)
	default:
		return peer.Unsupported(fmt.Sprintf("sockaddr %T", sa))
	}
}
