// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

func peerName(h SocketHandle) (peer.Address, error) {
	sa, err := unix.Getpeername(h.Fd())
	if err != nil {
		return peer.Address{}, err
	}
	return sockaddrAddress(sa), nil
}

// sockaddrAddress keeps the socket family: an IPv4-mapped IPv6 peer stays
// IPv6 and is matched against 16-byte subjectAltName entries only.
func sockaddrAddress(sa unix.Sockaddr) peer.Address {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return peer.IPv4(a.Addr)
	case *unix.SockaddrInet6:
		return peer.IPv6(a.Addr)
	case *unix.SockaddrUnix:
		return peer.Unsupported("unix " + a.Name)
	default:
		return peer.Unsupported(fmt.Sprintf("sockaddr %T", sa))
	}
}
