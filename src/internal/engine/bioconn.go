// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"net"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

// BIOConn is a [net.Conn] whose reads and writes go through a [BIO], so
// that an engine handshake runs over the BIO method table. Addresses and
// deadlines come from the base connection, which must own the socket
// attached to the BIO.
type BIOConn struct {
	bio  *BIO
	base net.Conn
}

// NewBIOConn returns a connection reading and writing through b. When b
// reports a transient condition, the call waits for base to become ready
// and tries again, which requires base to be a [syscall.Conn].
func NewBIOConn(b *BIO, base net.Conn) *BIOConn {
	return &BIOConn{bio: b, base: base}
}

// BIO returns the BIO under c.
func (c *BIOConn) BIO() *BIO { return c.bio }

// SocketHandle returns the socket attached to the BIO.
func (c *BIOConn) SocketHandle() SocketHandle { return BIOFd(c.bio) }

func (c *BIOConn) Read(p []byte) (int, error) {
	for {
		n, err := c.bio.Read(p)
		if err == nil || !c.bio.ShouldRetry() {
			return n, err
		}
		if werr := c.wait(c.bio.ShouldRead()); werr != nil {
			return 0, werr
		}
	}
}

func (c *BIOConn) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := c.bio.Write(p[written:])
		written += n
		if err == nil {
			continue
		}
		if !c.bio.ShouldRetry() {
			return written, err
		}
		if werr := c.wait(c.bio.ShouldRead()); werr != nil {
			return written, werr
		}
	}
	return written, nil
}

// wait blocks until the base socket is ready for the pending direction,
// honouring the base deadlines. A base that is not a [syscall.Conn] fails
// with [ErrBIONoPoller] instead of retrying at once.
func (c *BIOConn) wait(read bool) error {
	sc, ok := c.base.(syscall.Conn)
	if !ok {
		return ErrBIONoPoller
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return err
	}

	polled := false
	ready := func(uintptr) bool {
		if polled {
			return true
		}
		polled = true
		return false
	}
	if read {
		return raw.Read(ready)
	}
	return raw.Write(ready)
}

// Close frees the BIO and closes the base connection.
func (c *BIOConn) Close() error {
	return multierr.Append(c.bio.Free(), c.base.Close())
}

func (c *BIOConn) LocalAddr() net.Addr  { return c.base.LocalAddr() }
func (c *BIOConn) RemoteAddr() net.Addr { return c.base.RemoteAddr() }

func (c *BIOConn) SetDeadline(t time.Time) error      { return c.base.SetDeadline(t) }
func (c *BIOConn) SetReadDeadline(t time.Time) error  { return c.base.SetReadDeadline(t) }
func (c *BIOConn) SetWriteDeadline(t time.Time) error { return c.base.SetWriteDeadline(t) }
