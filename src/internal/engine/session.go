// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import "crypto/tls"

// Session is a negotiated TLS session as seen by a session cache.
type Session interface {
	Version() uint16
	CipherSuite() uint16
}

// RawSession is the engine's own record of a session. MasterKey is empty
// for TLS 1.3, which has no master secret.
type RawSession struct {
	Version      uint16
	CipherSuite  uint16
	ClientRandom []byte
	MasterKey    []byte
}

// NativeSession is a session backed by a handshake of this package's
// engines. It exposes the raw session it wraps.
type NativeSession struct {
	raw *RawSession
}

// ActiveSession returns the raw session.
func (s *NativeSession) ActiveSession() *RawSession { return s.raw }

// Version returns the negotiated protocol version.
func (s *NativeSession) Version() uint16 { return s.raw.Version }

// CipherSuite returns the negotiated cipher suite.
func (s *NativeSession) CipherSuite() uint16 { return s.raw.CipherSuite }

// TicketSession is a resumable session kept by a [tls.ClientSessionCache].
// Its secrets stay inside crypto/tls.
type TicketSession struct {
	state   *tls.ClientSessionState
	version uint16
	suite   uint16
}

// NewTicketSession wraps a cached session state negotiated with the given
// version and cipher suite.
func NewTicketSession(state *tls.ClientSessionState, version, suite uint16) *TicketSession {
	return &TicketSession{state: state, version: version, suite: suite}
}

// State returns the wrapped session state.
func (s *TicketSession) State() *tls.ClientSessionState { return s.state }

// Version returns the negotiated protocol version.
func (s *TicketSession) Version() uint16 { return s.version }

// CipherSuite returns the negotiated cipher suite.
func (s *TicketSession) CipherSuite() uint16 { return s.suite }

// activeSessioner is implemented by sessions backed by a raw engine session.
type activeSessioner interface {
	ActiveSession() *RawSession
}

// MasterKey copies the master key of sess into out. It succeeds only when
// sess is backed by a raw engine session and len(out) equals the size of
// its master key exactly.
func MasterKey(sess Session, out []byte) bool {
	native, ok := sess.(activeSessioner)
	if !ok {
		return false
	}
	return RawMasterKey(native.ActiveSession(), out)
}

// RawMasterKey copies the master key of raw into out when their sizes
// match exactly.
func RawMasterKey(raw *RawSession, out []byte) bool {
	if raw == nil {
		return false
	}
	return copyExact(out, raw.MasterKey)
}

// ClientRandom copies the client random of conn into out when their sizes
// match exactly.
func ClientRandom(conn *Conn, out []byte) bool {
	if conn == nil || conn.keys == nil {
		return false
	}
	random, _ := conn.keys.snapshot()
	return copyExact(out, random)
}

func copyExact(out, src []byte) bool {
	return len(src) == len(out) && copy(out, src) > 0
}
