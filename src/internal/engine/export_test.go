// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

// Cipher is one enumerated cipher suite.
type Cipher struct {
	ID   uint16
	Name string
}

// NewCipherTableFrom builds a table from suites in enumeration order.
func NewCipherTableFrom(suites ...Cipher) *CipherTable {
	ciphers := make([]nativeCipher, 0, len(suites))
	for _, c := range suites {
		ciphers = append(ciphers, nativeCipher{id: c.ID, name: c.Name})
	}
	return newCipherTable(ciphers)
}

// ResetBIOIndex releases every BIO method slot.
func ResetBIOIndex() { bioIndexNext.Store(0) }

// NonFatalSocketError exposes the shared retry table.
var NonFatalSocketError = nonFatalSocketError
