// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package peer

import (
	"bytes"
	"crypto/x509"
	"net"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/logger"
)

// ValidatePeerCertNames reports whether cert authorizes the peer at addr
// through an IP address entry of its subjectAltName extension.
//
// Only IP based authentication is supported: a certificate without the
// extension never validates, and there is no fallback to the common name.
// Entries are compared in certificate order by exact byte equality, 4-byte
// entries against IPv4 peers and 16-byte entries against IPv6 peers; the
// first match wins.
//
// A zero addr never matches. An addr of any other family than IPv4 or IPv6
// is a caller bug and panics.
func ValidatePeerCertNames(cert *x509.Certificate, addr Address) bool {
	names, ok, err := AltNamesOf(cert)
	if !ok {
		logger.Default().Warnf("Certificate has no subjectAltName extension, only IP authentication is supported")
		return false
	}
	if err != nil {
		logger.Default().Warnf("Cannot decode subjectAltName: %v", err)
		return false
	}
	return names.MatchIP(addr)
}

// MatchIP reports whether any IP entry equals addr. It has the matching
// rules of [ValidatePeerCertNames].
func (s AltNameSet) MatchIP(addr Address) bool {
	switch addr.Family() {
	case FamilyNone, FamilyIPv4, FamilyIPv6:
	default:
		logger.Default().Panicf("Unsupported sockaddr family: %s", addr)
	}

	if !addr.IsZero() {
		raw := addr.Bytes()
		for _, name := range s {
			if name.Type != NameIP {
				continue
			}
			switch len(name.Raw) {
			case net.IPv4len:
				if addr.Family() == FamilyIPv4 && bytes.Equal(name.Raw, raw) {
					return true
				}
			case net.IPv6len:
				if addr.Family() == FamilyIPv6 && bytes.Equal(name.Raw, raw) {
					return true
				}
			default:
				logger.Default().Warnf("Skipping subjectAltName IP entry of %d bytes", len(name.Raw))
			}
		}
	}

	logger.Default().Warnf("No subjectAltName IP entry matches peer %s", addr)
	return false
}
