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

	utls "github.com/refraction-networking/utls"
)

// Client runs the handshake with uTLS using the Go ClientHello.
//
// Client certificates of cfg are not carried over to the fork.
func (e Fork) Client(ctx context.Context, conn net.Conn, cfg *tls.Config, verify VerifyFunc) (*Conn, error) {
	c := newConn(e, conn)
	prepared, err := c.configure(cfg, verify)
	if err != nil {
		return nil, err
	}

	uc := utls.UClient(conn, forkConfig(prepared), utls.HelloGolang)
	c.Conn = uc
	c.state = func() tls.ConnectionState { return stdState(uc.ConnectionState()) }
	if err := uc.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("engine: %s handshake: %w", e.Name(), err)
	}
	c.established()
	return c, nil
}

// BIOShouldRetry replicates the retry table of the fork, which has no
// native decision of its own: only a negative one result consults the
// last socket error.
func (Fork) BIOShouldRetry(ret int, err error) bool {
	if ret == -1 {
		return nonFatalSocketError(err)
	}
	return false
}

func (Fork) cipherList() []nativeCipher {
	suites := append(utls.CipherSuites(), utls.InsecureCipherSuites()...)
	out := make([]nativeCipher, 0, len(suites))
	for _, cs := range suites {
		out = append(out, nativeCipher{id: cs.ID, name: cs.Name})
	}
	return out
}

func (Fork) setBIOData(b *BIO, v any) { b.callbackArg = v }
func (Fork) bioData(b *BIO) any       { return b.callbackArg }

// forkConfig translates the client settings the fork understands.
func forkConfig(cfg *tls.Config) *utls.Config {
	out := &utls.Config{
		Rand:                   cfg.Rand,
		Time:                   cfg.Time,
		ServerName:             cfg.ServerName,
		RootCAs:                cfg.RootCAs,
		NextProtos:             cfg.NextProtos,
		InsecureSkipVerify:     cfg.InsecureSkipVerify,
		CipherSuites:           cfg.CipherSuites,
		SessionTicketsDisabled: cfg.SessionTicketsDisabled,
		MinVersion:             cfg.MinVersion,
		MaxVersion:             cfg.MaxVersion,
		KeyLogWriter:           cfg.KeyLogWriter,
		VerifyPeerCertificate:  cfg.VerifyPeerCertificate,
	}
	if verify := cfg.VerifyConnection; verify != nil {
		out.VerifyConnection = func(cs utls.ConnectionState) error {
			return verify(stdState(cs))
		}
	}
	return out
}

// stdState converts the fork connection state to the crypto/tls one.
func stdState(cs utls.ConnectionState) tls.ConnectionState {
	return tls.ConnectionState{
		Version:                     cs.Version,
		HandshakeComplete:           cs.HandshakeComplete,
		DidResume:                   cs.DidResume,
		CipherSuite:                 cs.CipherSuite,
		NegotiatedProtocol:          cs.NegotiatedProtocol,
		ServerName:                  cs.ServerName,
		PeerCertificates:            cs.PeerCertificates,
		VerifiedChains:              cs.VerifiedChains,
		SignedCertificateTimestamps: cs.SignedCertificateTimestamps,
		OCSPResponse:                cs.OCSPResponse,
	}
}
