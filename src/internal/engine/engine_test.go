// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"io"
	"math/big"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var engines = []engine.Engine{engine.Standard{}, engine.Fork{}}

// captureLog routes the process logger into a buffer for the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := logger.Default()
	l := logger.NewCLILogger()
	l.SetOutput(&buf)
	logger.SetDefault(l)
	t.Cleanup(func() { logger.SetDefault(prev) })
	return &buf
}

// issueCert returns a self-signed server certificate for ips and a pool
// trusting it.
func issueCert(t *testing.T, ips ...net.IP) (tls.Certificate, *x509.CertPool) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: "engine test"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IsCA:                  true,
		IPAddresses:           ips,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	leaf, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pool := x509.NewCertPool()
	pool.AddCert(leaf)
	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key, Leaf: leaf}, pool
}

// serve accepts one TLS connection on loopback and drains it until the
// client goes away.
func serve(t *testing.T, cfg *tls.Config) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c, err := ln.Accept()
		if err != nil {
			return
		}
		tc := tls.Server(c, cfg)
		defer tc.Close()
		_ = tc.SetDeadline(time.Now().Add(10 * time.Second))
		if err := tc.Handshake(); err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, tc)
	}()

	t.Cleanup(func() {
		ln.Close()
		<-done
	})
	return ln.Addr().String()
}

func dial(t *testing.T, addr string) net.Conn {
	t.Helper()

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    engine.Engine
		wantErr bool
	}{
		{"empty selects standard", "", engine.Standard{}, false},
		{"standard", "standard", engine.Standard{}, false},
		{"fork any case", " Fork ", engine.Fork{}, false},
		{"unknown", "boring", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ByName(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, engine.ErrUnknownEngine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	prev := engine.Default()
	t.Cleanup(func() { engine.SetDefault(prev) })

	assert.Equal(t, engine.NameStandard, prev.Name())

	engine.SetDefault(engine.Fork{})
	assert.Equal(t, engine.NameFork, engine.Default().Name())

	engine.SetDefault(nil)
	assert.Equal(t, engine.NameFork, engine.Default().Name())

	assert.Equal(t, []string{"standard", "fork"}, engine.Names())
}
