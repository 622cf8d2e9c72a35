// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package alpn

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/crypto/cryptobyte"
)

// MaxProtocolLen is the longest protocol name a single length byte can describe.
const MaxProtocolLen = math.MaxUint8

var (
	// ErrProtocolTooLong indicates a protocol name longer than [MaxProtocolLen].
	ErrProtocolTooLong = errors.New("alpn: protocol string exceeds maximum length")

	// ErrMalformed indicates wire bytes whose length prefixes do not line up.
	ErrMalformed = errors.New("alpn: malformed protocol list")
)

// EncodingError reports the protocol entry that could not be encoded.
type EncodingError struct {
	Index int // position in the input list
	Len   int // byte length of the offending name
	Err   error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v (entry %d, %d bytes)", e.Err, e.Index, e.Len)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Encode returns the ALPN wire form of protocols: for each name in order,
// one length byte followed by the name's bytes. There is no list length
// prefix and no terminator.
//
// Names longer than 255 bytes are rejected with an [*EncodingError] wrapping
// [ErrProtocolTooLong]; nothing is truncated.
func Encode(protocols []string) ([]byte, error) {
	size := 0
	for i, proto := range protocols {
		if len(proto) > MaxProtocolLen {
			return nil, &EncodingError{Index: i, Len: len(proto), Err: ErrProtocolTooLong}
		}
		size += len(proto) + 1
	}

	b := cryptobyte.NewFixedBuilder(make([]byte, 0, size))
	for _, proto := range protocols {
		b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes([]byte(proto))
		})
	}
	return b.Bytes()
}

// Decode splits ALPN wire bytes back into protocol names.
// It is the inverse of [Encode].
func Decode(wire []byte) ([]string, error) {
	s := cryptobyte.String(wire)

	var protocols []string
	for !s.Empty() {
		var proto cryptobyte.String
		if !s.ReadUint8LengthPrefixed(&proto) {
			return nil, ErrMalformed
		}
		protocols = append(protocols, string(proto))
	}
	return protocols, nil
}
