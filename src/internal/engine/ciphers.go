// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"maps"
	"slices"
	"sync"
)

// CipherTable maps 16-bit cipher suite identifiers to their names. It is
// immutable once built.
type CipherTable struct {
	names map[uint16]string
}

// newCipherTable indexes ciphers by identifier. The first name listed for
// an identifier wins.
func newCipherTable(ciphers []nativeCipher) *CipherTable {
	t := &CipherTable{names: make(map[uint16]string, len(ciphers))}
	for _, c := range ciphers {
		if _, dup := t.names[c.id]; !dup {
			t.names[c.id] = c.name
		}
	}
	return t
}

// Lookup returns the name of the cipher suite id, or "" when unknown.
func (t *CipherTable) Lookup(id uint16) string {
	if t == nil {
		return ""
	}
	return t.names[id]
}

// Len returns the number of known cipher suites.
func (t *CipherTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// IDs returns the known identifiers in ascending order.
func (t *CipherTable) IDs() []uint16 {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.names))
}

// cipherTables holds one build-once table per engine name.
var cipherTables sync.Map // string -> func() *CipherTable

// CipherTableFor returns the cipher table of e, building it on first use.
// Concurrent first calls build it once; later calls never lock.
func CipherTableFor(e Engine) *CipherTable {
	if v, ok := cipherTables.Load(e.Name()); ok {
		return v.(func() *CipherTable)()
	}
	build := sync.OnceValue(func() *CipherTable { return newCipherTable(e.cipherList()) })
	v, _ := cipherTables.LoadOrStore(e.Name(), build)
	return v.(func() *CipherTable)()
}

// CipherName returns the name of the cipher suite id as known to the
// default engine, or "" when the id is unknown.
func CipherName(id uint16) string {
	return CipherTableFor(Default()).Lookup(id)
}
