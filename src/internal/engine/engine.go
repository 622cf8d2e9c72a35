// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync/atomic"
)

// ErrUnknownEngine is returned by [ByName] for names of no engine.
var ErrUnknownEngine = errors.New("engine: unknown engine")

// Engine names accepted by [ByName].
const (
	NameStandard = "standard"
	NameFork     = "fork"
)

// Engine is the capability of one TLS engine implementation. The two
// implementations differ in how they report retry conditions on socket I/O
// and in which slot of a [BIO] holds caller data; the functions of this
// package hide those differences.
//
// The interface is sealed: only [Standard] and [Fork] implement it.
type Engine interface {
	// Name returns the engine name, one of NameStandard or NameFork.
	Name() string

	// Client runs a client handshake over conn and returns the established
	// connection. verify, when not nil, is called once the peer chain has
	// been verified, with the connection reachable through the
	// [ExDataIndexConn] slot of its context.
	Client(ctx context.Context, conn net.Conn, cfg *tls.Config, verify VerifyFunc) (*Conn, error)

	// BIOShouldRetry reports whether ret, the result of a socket read or
	// write, together with the error it carried, signals a transient
	// condition worth retrying.
	BIOShouldRetry(ret int, err error) bool

	// cipherList enumerates every cipher suite the library implements,
	// secure and insecure alike.
	cipherList() []nativeCipher

	setBIOData(b *BIO, v any)
	bioData(b *BIO) any
}

// nativeCipher is a cipher suite as the engine enumerates it.
type nativeCipher struct {
	id   uint16
	name string
}

// Standard is the engine backed by crypto/tls.
type Standard struct{}

// Fork is the engine backed by the uTLS fork of crypto/tls.
type Fork struct{}

// Name returns NameStandard.
func (Standard) Name() string { return NameStandard }

// Name returns NameFork.
func (Fork) Name() string { return NameFork }

// ByName returns the engine called name, ignoring case. The empty name
// selects the standard engine.
func ByName(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameStandard:
		return Standard{}, nil
	case NameFork:
		return Fork{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// Names lists the engine names in a stable order.
func Names() []string { return []string{NameStandard, NameFork} }

var active atomic.Pointer[Engine]

func init() {
	var e Engine = Standard{}
	active.Store(&e)
}

// Default returns the process engine used by package level helpers such
// as [CipherName]. It is [Standard] unless changed with [SetDefault].
func Default() Engine { return *active.Load() }

// SetDefault replaces the process engine. A nil engine is ignored.
func SetDefault(e Engine) {
	if e == nil {
		return
	}
	active.Store(&e)
}
