// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
)

// Client runs the handshake with crypto/tls.
func (e Standard) Client(ctx context.Context, conn net.Conn, cfg *tls.Config, verify VerifyFunc) (*Conn, error) {
	c := newConn(e, conn)
	prepared, err := c.configure(cfg, verify)
	if err != nil {
		return nil, err
	}

	tc := tls.Client(conn, prepared)
	c.Conn = tc
	c.state = tc.ConnectionState
	if err := tc.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("engine: %s handshake: %w", e.Name(), err)
	}
	c.established()
	return c, nil
}

// BIOShouldRetry applies the native rule of the standard engine: both a
// zero and a negative one result consult the last socket error.
func (Standard) BIOShouldRetry(ret int, err error) bool {
	if ret == 0 || ret == -1 {
		return nonFatalSocketError(err)
	}
	return false
}

func (Standard) cipherList() []nativeCipher {
	suites := append(tls.CipherSuites(), tls.InsecureCipherSuites()...)
	out := make([]nativeCipher, 0, len(suites))
	for _, cs := range suites {
		out = append(out, nativeCipher{id: cs.ID, name: cs.Name})
	}
	return out
}

func (Standard) setBIOData(b *BIO, v any) { b.appData = v }
func (Standard) bioData(b *BIO) any       { return b.appData }
