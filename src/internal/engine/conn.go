// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"crypto/tls"
	"fmt"
	"net"
	"syscall"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/alpn"
)

// Conn is an established client connection of an [Engine]. Reads and
// writes go through the engine record layer; the transport it was created
// over stays reachable for socket inspection.
//
// When the handshake fails, the transport is left open for the caller to
// close.
type Conn struct {
	net.Conn

	engine    Engine
	transport net.Conn
	keys      *keyLog
	state     func() tls.ConnectionState
	session   *NativeSession
}

func newConn(e Engine, transport net.Conn) *Conn {
	return &Conn{engine: e, transport: transport, keys: &keyLog{}}
}

// configure returns a copy of cfg with the key log capture and the
// verification hook installed.
func (c *Conn) configure(cfg *tls.Config, verify VerifyFunc) (*tls.Config, error) {
	if cfg == nil {
		cfg = &tls.Config{}
	} else {
		cfg = cfg.Clone()
	}

	if _, err := alpn.Encode(cfg.NextProtos); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	c.keys.next = cfg.KeyLogWriter
	cfg.KeyLogWriter = c.keys

	prev := cfg.VerifyConnection
	cfg.VerifyConnection = func(cs tls.ConnectionState) error {
		if prev != nil {
			if err := prev(cs); err != nil {
				return err
			}
		}
		if verify == nil {
			return nil
		}
		return verify(newVerifyContext(c, cs))
	}
	return cfg, nil
}

func (c *Conn) established() {
	cs := c.state()
	random, master := c.keys.snapshot()
	c.session = &NativeSession{raw: &RawSession{
		Version:      cs.Version,
		CipherSuite:  cs.CipherSuite,
		ClientRandom: random,
		MasterKey:    master,
	}}
}

// Engine returns the engine that ran the handshake.
func (c *Conn) Engine() Engine { return c.engine }

// Transport returns the connection the handshake ran over.
func (c *Conn) Transport() net.Conn { return c.transport }

// ConnectionState returns the state of the connection in crypto/tls terms.
func (c *Conn) ConnectionState() tls.ConnectionState { return c.state() }

// Session returns the negotiated session.
func (c *Conn) Session() Session { return c.session }

// socketHolder is implemented by transports whose socket is not reachable
// through [syscall.Conn], such as the conn of [NewBIOConn].
type socketHolder interface {
	SocketHandle() SocketHandle
}

// controlSocket calls fn with the socket under the transport. fn sees
// [InvalidSocket] when the transport has none.
func (c *Conn) controlSocket(fn func(SocketHandle)) error {
	return withSocket(c.transport, fn)
}

func withSocket(conn net.Conn, fn func(SocketHandle)) error {
	switch t := conn.(type) {
	case socketHolder:
		fn(t.SocketHandle())
		return nil
	case syscall.Conn:
		raw, err := t.SyscallConn()
		if err != nil {
			return err
		}
		return raw.Control(func(fd uintptr) { fn(socketFromRaw(fd)) })
	default:
		fn(InvalidSocket)
		return nil
	}
}

// SocketOf returns the socket under conn. The handle stays usable for as
// long as conn is open.
func SocketOf(conn net.Conn) (SocketHandle, error) {
	h := InvalidSocket
	if err := withSocket(conn, func(s SocketHandle) { h = s }); err != nil {
		return InvalidSocket, fmt.Errorf("engine: %w", err)
	}
	return h, nil
}
