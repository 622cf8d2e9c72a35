// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package peer

import (
	"bytes"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrMalformedAltNames indicates a subjectAltName extension that is not a
// well-formed GeneralNames sequence.
var ErrMalformedAltNames = errors.New("peer: malformed subjectAltName extension")

// OIDSubjectAltName is the object identifier of the subjectAltName extension.
var OIDSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// NameType is the context-specific tag number of a GeneralName choice.
type NameType uint8

// GeneralName choices, RFC 5280 section 4.2.1.6.
const (
	NameOther        NameType = 0
	NameEmail        NameType = 1
	NameDNS          NameType = 2
	NameX400         NameType = 3
	NameDirectory    NameType = 4
	NameEDIParty     NameType = 5
	NameURI          NameType = 6
	NameIP           NameType = 7
	NameRegisteredID NameType = 8
)

// GeneralName is one subjectAltName entry: its tag and the raw content
// octets (for IP entries, the binary address).
type GeneralName struct {
	Type NameType
	Raw  []byte
}

// AltNameSet holds the subjectAltName entries of one certificate in
// declaration order. The entries own their bytes.
type AltNameSet []GeneralName

// ParseAltNames decodes the DER value of a subjectAltName extension.
// Entry contents are not interpreted, so IP entries of unusual length
// survive parsing.
func ParseAltNames(der []byte) (AltNameSet, error) {
	input := cryptobyte.String(der)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, ErrMalformedAltNames
	}

	var names AltNameSet
	for !seq.Empty() {
		var (
			value cryptobyte.String
			tag   cryptobyte_asn1.Tag
		)
		if !seq.ReadAnyASN1(&value, &tag) {
			return nil, ErrMalformedAltNames
		}
		if tag&0xc0 != 0x80 {
			return nil, fmt.Errorf("%w: unexpected tag %#x", ErrMalformedAltNames, uint8(tag))
		}
		names = append(names, GeneralName{
			Type: NameType(tag & 0x1f),
			Raw:  bytes.Clone(value),
		})
	}
	return names, nil
}

// AltNamesOf extracts the subjectAltName entries of cert. The boolean is
// false when the certificate carries no such extension.
func AltNamesOf(cert *x509.Certificate) (AltNameSet, bool, error) {
	if cert == nil {
		return nil, false, nil
	}
	for _, ext := range cert.Extensions {
		if !ext.Id.Equal(OIDSubjectAltName) {
			continue
		}
		names, err := ParseAltNames(ext.Value)
		return names, true, err
	}
	return nil, false, nil
}

// DNSNames returns the DNS entries in order.
func (s AltNameSet) DNSNames() []string {
	var out []string
	for _, name := range s {
		if name.Type == NameDNS && len(name.Raw) > 0 {
			out = append(out, string(name.Raw))
		}
	}
	return out
}

// IPs returns the raw IP entries in order, whatever their length.
func (s AltNameSet) IPs() [][]byte {
	var out [][]byte
	for _, name := range s {
		if name.Type == NameIP {
			out = append(out, name.Raw)
		}
	}
	return out
}
