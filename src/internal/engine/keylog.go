// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"bytes"
	"encoding/hex"
	"io"
	"sync"
)

// keyLogLabelTLS12 is the NSS key log label carrying the TLS 1.2 master
// secret.
const keyLogLabelTLS12 = "CLIENT_RANDOM"

// keyLog records the handshake secrets an engine writes in NSS key log
// format and forwards every line to next when set.
type keyLog struct {
	mu           sync.Mutex
	next         io.Writer
	clientRandom []byte
	masterKey    []byte
}

func (k *keyLog) Write(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for line := range bytes.Lines(p) {
		k.record(line)
	}
	if k.next != nil {
		return k.next.Write(p)
	}
	return len(p), nil
}

// record parses "<label> <client random> <secret>".
func (k *keyLog) record(line []byte) {
	fields := bytes.Fields(line)
	if len(fields) != 3 {
		return
	}

	random := make([]byte, hex.DecodedLen(len(fields[1])))
	if _, err := hex.Decode(random, fields[1]); err != nil {
		return
	}
	k.clientRandom = random

	if string(fields[0]) != keyLogLabelTLS12 {
		return
	}
	secret := make([]byte, hex.DecodedLen(len(fields[2])))
	if _, err := hex.Decode(secret, fields[2]); err != nil {
		return
	}
	k.masterKey = secret
}

func (k *keyLog) snapshot() (random, master []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.clientRandom, k.masterKey
}
