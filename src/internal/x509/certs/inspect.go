// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"os"
	"time"
)

// asn1TimeLayout matches the usual printed form of an ASN.1 time, e.g.
// "Feb 16 08:41:04 2026 GMT".
const asn1TimeLayout = "Jan _2 15:04:05 2006 GMT"

// NotBefore returns the start of the validity period in printed ASN.1 form.
func NotBefore(cert *x509.Certificate) string {
	if cert == nil {
		return ""
	}
	return cert.NotBefore.UTC().Format(asn1TimeLayout)
}

// NotAfter returns the end of the validity period in printed ASN.1 form.
func NotAfter(cert *x509.Certificate) string {
	if cert == nil {
		return ""
	}
	return cert.NotAfter.UTC().Format(asn1TimeLayout)
}

// ParseASN1Time parses the printed form produced by [NotBefore] and [NotAfter].
func ParseASN1Time(s string) (time.Time, error) {
	return time.Parse(asn1TimeLayout, s)
}

// DigestSHA1 returns the SHA-1 fingerprint of the DER encoding.
func DigestSHA1(cert *x509.Certificate) [sha1.Size]byte { return sha1.Sum(cert.Raw) }

// DigestSHA256 returns the SHA-256 fingerprint of the DER encoding.
func DigestSHA256(cert *x509.Certificate) [sha256.Size]byte { return sha256.Sum256(cert.Raw) }

// ReadCertsFromBuffer decodes every PEM certificate in data. Unlike
// [Certificate.SubjectNamesInPEMBuffer] it is strict: a block that does not
// decode or parse, or trailing data other than whitespace, is an error
// wrapping [ErrParseCertificate] that names the block index. Blocks of other
// types are skipped.
func (c *Certificate) ReadCertsFromBuffer(data []byte) ([]*x509.Certificate, error) {
	var (
		certs []*x509.Certificate
		index int
	)
	for block, err := range pemBlocks(data) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
		}
		if block.Type == c.certBlockType {
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("%w: block %d: %w", ErrParseCertificate, index, err)
			}
			certs = append(certs, cert)
		}
		index++
	}
	return certs, nil
}

// ReadStoreFromBuffer builds a certificate pool from the PEM certificates in
// data. Duplicate certificates are accepted.
func (c *Certificate) ReadStoreFromBuffer(data []byte) (*x509.CertPool, error) {
	certs, err := c.ReadCertsFromBuffer(data)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	for _, cert := range certs {
		pool.AddCert(cert)
	}
	return pool, nil
}

// ReadStoreFromFile builds a certificate pool from a PEM bundle on disk.
func (c *Certificate) ReadStoreFromFile(filename string) (*x509.CertPool, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read store file %s: %w", filename, err)
	}
	return c.ReadStoreFromBuffer(data)
}
