// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package peer decides whether a certificate authorizes a connected peer,
// by comparing the peer's socket address with the IP address entries of the
// certificate's subjectAltName extension.
//
// The extension is decoded here rather than taken from [x509.Certificate]
// fields so that entry order is kept and malformed IP entries can be
// reported and skipped instead of rejecting the whole certificate.
package peer
