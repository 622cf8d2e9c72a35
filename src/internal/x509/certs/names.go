// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/logger"
)

// MaxCommonNameLen is the upper bound (ub-common-name) of the CN attribute.
const MaxCommonNameLen = 64

var oidCommonName = asn1.ObjectIdentifier{2, 5, 4, 3}

// shortNames holds the attribute labels used by the one-line name format.
var shortNames = map[string]string{
	"2.5.4.3":              "CN",
	"2.5.4.5":              "serialNumber",
	"2.5.4.6":              "C",
	"2.5.4.7":              "L",
	"2.5.4.8":              "ST",
	"2.5.4.9":              "street",
	"2.5.4.10":             "O",
	"2.5.4.11":             "OU",
	"2.5.4.17":             "postalCode",
	"1.2.840.113549.1.9.1": "emailAddress",
}

// firstCommonName returns the first CN attribute of name in encoding order.
func firstCommonName(name pkix.Name) (string, bool) {
	for _, atv := range name.Names {
		if !atv.Type.Equal(oidCommonName) {
			continue
		}
		cn, ok := atv.Value.(string)
		if !ok || cn == "" {
			return "", false
		}
		return cn, true
	}
	return "", false
}

// CommonName returns the first Common Name attribute of the certificate
// subject, cut to at most [MaxCommonNameLen] bytes on a rune boundary. A
// nil certificate or a subject without a CN yields an empty string.
func CommonName(cert *x509.Certificate) string {
	if cert == nil {
		return ""
	}
	cn, ok := firstCommonName(cert.Subject)
	if !ok {
		logger.Default().Warnf("certificate subject has no common name")
		return ""
	}
	if len(cn) > MaxCommonNameLen {
		cut := MaxCommonNameLen
		for cut > 0 && !utf8.RuneStart(cn[cut]) {
			cut--
		}
		cn = cn[:cut]
	}
	return cn
}

// IssuerCommonName returns the first Common Name attribute of the issuer.
// The second result is false when the issuer carries no CN.
func IssuerCommonName(cert *x509.Certificate) (string, bool) {
	if cert == nil {
		return "", false
	}
	return firstCommonName(cert.Issuer)
}

// DNSNames returns the DNS entries of the subjectAltName extension in
// certificate order. Empty entries are skipped.
func DNSNames(cert *x509.Certificate) []string {
	if cert == nil {
		return nil
	}
	names := make([]string, 0, len(cert.DNSNames))
	for _, name := range cert.DNSNames {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// OneLine formats name as "C = US, O = Example, CN = host", keeping the
// attribute order of the encoded name.
func OneLine(name pkix.Name) string {
	parts := make([]string, 0, len(name.Names))
	for _, atv := range name.Names {
		label, ok := shortNames[atv.Type.String()]
		if !ok {
			label = atv.Type.String()
		}
		parts = append(parts, fmt.Sprintf("%s = %v", label, atv.Value))
	}
	return strings.Join(parts, ", ")
}

// Subject returns the one-line form of the certificate subject.
func Subject(cert *x509.Certificate) (string, bool) {
	if cert == nil || len(cert.Subject.Names) == 0 {
		return "", false
	}
	return OneLine(cert.Subject), true
}

// Issuer returns the one-line form of the certificate issuer.
func Issuer(cert *x509.Certificate) (string, bool) {
	if cert == nil || len(cert.Issuer.Names) == 0 {
		return "", false
	}
	return OneLine(cert.Issuer), true
}

// DupName returns a deep copy of name that shares no slices with it.
func DupName(name pkix.Name) pkix.Name {
	dup := name
	dup.Country = slices.Clone(name.Country)
	dup.Organization = slices.Clone(name.Organization)
	dup.OrganizationalUnit = slices.Clone(name.OrganizationalUnit)
	dup.Locality = slices.Clone(name.Locality)
	dup.Province = slices.Clone(name.Province)
	dup.StreetAddress = slices.Clone(name.StreetAddress)
	dup.PostalCode = slices.Clone(name.PostalCode)
	dup.Names = dupAttributes(name.Names)
	dup.ExtraNames = dupAttributes(name.ExtraNames)
	return dup
}

func dupAttributes(atvs []pkix.AttributeTypeAndValue) []pkix.AttributeTypeAndValue {
	if atvs == nil {
		return nil
	}
	out := make([]pkix.AttributeTypeAndValue, len(atvs))
	for i, atv := range atvs {
		out[i] = pkix.AttributeTypeAndValue{
			Type:  slices.Clone(atv.Type),
			Value: atv.Value,
		}
	}
	return out
}

// subjectNames decodes PEM certificates from data until the data is
// exhausted or the first block fails to decode or parse, and returns a copy
// of each subject. Blocks of other types are skipped.
func (c *Certificate) subjectNames(data []byte) []pkix.Name {
	var names []pkix.Name
	for block, err := range pemBlocks(data) {
		if err != nil {
			break
		}
		if block.Type != c.certBlockType {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			break
		}
		names = append(names, DupName(cert.Subject))
	}
	return names
}

// SubjectNamesInPEMFile returns the subject names of the PEM certificates in
// the named file. Only failing to open or read the file is an error; a file
// without certificates yields an empty result.
func (c *Certificate) SubjectNamesInPEMFile(filename string) ([]pkix.Name, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer f.Close()

	data, err := gc.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	return c.subjectNames(data), nil
}

// SubjectNamesInPEMBuffer returns the subject names of the PEM certificates
// in buffer. The buffer is copied first, so the result never aliases it.
func (c *Certificate) SubjectNamesInPEMBuffer(buffer []byte) ([]pkix.Name, error) {
	data, err := gc.ReadAll(bytes.NewReader(buffer))
	if err != nil {
		return nil, err
	}
	return c.subjectNames(data), nil
}
