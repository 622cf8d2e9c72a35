// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/logger"
)

// ErrPeerIdentity is returned by [VerifyPeerIP] when the peer certificate
// does not authorize the peer address.
var ErrPeerIdentity = errors.New("engine: peer certificate does not match peer address")

// ExDataIndexConn is the side-channel slot of a [VerifyContext] holding
// the [*Conn] under verification.
const ExDataIndexConn = 0

var exDataIndex atomic.Int32

// NewExDataIndex allocates a side-channel slot for caller data.
func NewExDataIndex() int { return int(exDataIndex.Add(1)) }

// VerifyFunc is a certificate verification hook of [Engine.Client].
type VerifyFunc func(*VerifyContext) error

// VerifyContext is handed to verification hooks while the handshake is
// in progress.
type VerifyContext struct {
	State  tls.ConnectionState
	exData map[int]any
}

func newVerifyContext(c *Conn, cs tls.ConnectionState) *VerifyContext {
	return &VerifyContext{State: cs, exData: map[int]any{ExDataIndexConn: c}}
}

// ExData returns the value of slot idx, nil when unset.
func (vc *VerifyContext) ExData(idx int) any { return vc.exData[idx] }

// SetExData stores v in slot idx.
func (vc *VerifyContext) SetExData(idx int, v any) {
	if vc.exData == nil {
		vc.exData = make(map[int]any)
	}
	vc.exData[idx] = v
}

// PeerCertificate returns the leaf certificate of the peer, nil if none.
func (vc *VerifyContext) PeerCertificate() *x509.Certificate {
	if len(vc.State.PeerCertificates) == 0 {
		return nil
	}
	return vc.State.PeerCertificates[0]
}

// ResolvePeerAddress returns the address of the peer at the other end of
// the socket under verification. Failures are logged at error severity
// and reported as false: a verification context always refers to a live
// connection, so neither should happen.
func ResolvePeerAddress(vc *VerifyContext) (peer.Address, bool) {
	conn, _ := vc.ExData(ExDataIndexConn).(*Conn)
	if conn == nil {
		logger.Default().Errorf("Verify context carries no connection")
		return peer.Address{}, false
	}

	var (
		addr peer.Address
		ok   bool
	)
	err := conn.controlSocket(func(h SocketHandle) {
		if !h.Valid() {
			logger.Default().Errorf("Connection under verification has no socket descriptor (%s)", h)
			return
		}
		a, err := peerName(h)
		if err != nil {
			logger.Default().Errorf("Cannot get peer name of %s: %v", h, err)
			return
		}
		addr, ok = a, true
	})
	if err != nil {
		logger.Default().Errorf("Cannot reach socket of connection under verification: %v", err)
		return peer.Address{}, false
	}
	return addr, ok
}

// VerifyPeerIP checks that the peer certificate carries a subjectAltName
// IP entry equal to the socket peer address. It fits [Engine.Client] as a
// [VerifyFunc].
func VerifyPeerIP(vc *VerifyContext) error {
	cert := vc.PeerCertificate()
	if cert == nil {
		return fmt.Errorf("%w: no peer certificate", ErrPeerIdentity)
	}
	addr, ok := ResolvePeerAddress(vc)
	if !ok {
		return fmt.Errorf("%w: peer address unavailable", ErrPeerIdentity)
	}
	if !peer.ValidatePeerCertNames(cert, addr) {
		return fmt.Errorf("%w: %s", ErrPeerIdentity, addr)
	}
	return nil
}
