// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"iter"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates a PEM block that does not decode, or data
	// after the last block that is not whitespace.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrOpenFile indicates that a certificate file could not be opened or read.
	ErrOpenFile = errors.New("x509certs: failed to open file")
)

// Certificate is the PEM/DER decoder that the inspection helpers are built on.
// It maintains internal configuration such as the certificate block type.
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

var (
	pemBegin = []byte("-----BEGIN ")
	pemEnd   = []byte("-----END ")
)

// pemBlocks yields the PEM blocks of data in order. Text before a block is
// skipped. At the first block that does not decode, or at trailing data
// that is not whitespace, it yields an error wrapping [ErrInvalidPEMBlock]
// and stops.
func pemBlocks(data []byte) iter.Seq2[*pem.Block, error] {
	return func(yield func(*pem.Block, error) bool) {
		for index := 0; ; index++ {
			start := bytes.Index(data, pemBegin)
			if start < 0 {
				if len(bytes.TrimSpace(data)) > 0 {
					yield(nil, fmt.Errorf("%w %d: trailing data", ErrInvalidPEMBlock, index))
				}
				return
			}

			segment, rest := pemSegment(data[start:])
			// pem.Decode moves on to the next block when one is corrupt.
			if bytes.Count(segment, pemBegin) != 1 {
				yield(nil, fmt.Errorf("%w %d: unterminated block", ErrInvalidPEMBlock, index))
				return
			}
			block, _ := pem.Decode(segment)
			if block == nil {
				yield(nil, fmt.Errorf("%w %d", ErrInvalidPEMBlock, index))
				return
			}
			if !yield(block, nil) {
				return
			}
			data = rest
		}
	}
}

// pemSegment splits data, which starts at a BEGIN line, after its first
// END line.
func pemSegment(data []byte) (segment, rest []byte) {
	end := bytes.Index(data, pemEnd)
	if end < 0 {
		return data, nil
	}
	nl := bytes.IndexByte(data[end:], '\n')
	if nl < 0 {
		return data, nil
	}
	cut := end + nl + 1
	return data[:cut], data[cut:]
}

// DecodeMultiple decodes one or more certificates from PEM or concatenated DER data.
// Any PEM block that is not a certificate or does not decode is an error.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if !c.IsPEM(data) {
		certs, err := x509.ParseCertificates(data)
		if err != nil {
			return nil, ErrParseCertificate
		}
		return certs, nil
	}

	var certs []*x509.Certificate
	for block, err := range pemBlocks(data) {
		if err != nil {
			return nil, err
		}
		if block.Type != c.certBlockType {
			return nil, ErrInvalidBlockType
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// Decode decodes a single certificate from PEM, DER or PKCS#7 data.
// For PKCS#7 input the first embedded certificate is returned.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != c.certBlockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}
	return p.Content.SignedData.Certificates[0], nil
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: c.certBlockType, Bytes: cert.Raw})
}

// EncodeDER returns the DER encoding of a certificate.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }

// EncodeMultiplePEM concatenates the PEM encodings of certs.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte
	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}
	return data
}
