// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package engine_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/sys/unix"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/x509/peer"
)

// ipSANCert carries a single iPAddress entry with exactly the given bytes.
func ipSANCert(raw []byte) *x509.Certificate {
	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.Tag(peer.NameIP).ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddBytes(raw)
		})
	})
	return &x509.Certificate{
		Extensions: []pkix.Extension{{Id: peer.OIDSubjectAltName, Value: b.BytesOrPanic()}},
	}
}

func TestSockaddrAddress(t *testing.T) {
	mapped := netip.MustParseAddr("::ffff:192.0.2.1").As16()
	v4 := [4]byte{192, 0, 2, 1}

	tests := []struct {
		name       string
		sa         unix.Sockaddr
		wantFamily peer.Family
		wantBytes  []byte
		// matches reports whether the address verifies against a 16-byte
		// mapped SAN and a 4-byte SAN, in that order.
		matches [2]bool
	}{
		{
			name:       "IPv4 socket",
			sa:         &unix.SockaddrInet4{Addr: v4},
			wantFamily: peer.FamilyIPv4,
			wantBytes:  v4[:],
			matches:    [2]bool{false, true},
		},
		{
			name:       "IPv4-mapped peer on IPv6 socket stays IPv6",
			sa:         &unix.SockaddrInet6{Addr: mapped},
			wantFamily: peer.FamilyIPv6,
			wantBytes:  mapped[:],
			matches:    [2]bool{true, false},
		},
		{
			name:       "unix socket is unsupported",
			sa:         &unix.SockaddrUnix{Name: "/tmp/engine.sock"},
			wantFamily: peer.FamilyUnsupported,
			matches:    [2]bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := engine.SockaddrAddress(tt.sa)
			assert.Equal(t, tt.wantFamily, addr.Family())
			if tt.wantBytes != nil {
				assert.Equal(t, tt.wantBytes, addr.Bytes())
			}
			if tt.wantFamily == peer.FamilyUnsupported {
				return
			}
			assert.Equal(t, tt.matches[0], peer.ValidatePeerCertNames(ipSANCert(mapped[:]), addr))
			assert.Equal(t, tt.matches[1], peer.ValidatePeerCertNames(ipSANCert(v4[:]), addr))
		})
	}
}
