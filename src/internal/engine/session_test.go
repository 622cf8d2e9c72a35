// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine_test

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/hex"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/alpn"
	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
)

func handshake(t *testing.T, e engine.Engine, maxVersion uint16, cfg *tls.Config) *engine.Conn {
	t.Helper()

	cert, pool := issueCert(t, net.IPv4(127, 0, 0, 1))
	addr := serve(t, &tls.Config{
		Certificates: []tls.Certificate{cert},
		MaxVersion:   maxVersion,
		NextProtos:   []string{"http/1.1"},
	})

	if cfg == nil {
		cfg = &tls.Config{}
	}
	cfg.RootCAs = pool
	cfg.ServerName = "127.0.0.1"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := e.Client(ctx, dial(t, addr), cfg, nil)
	require.NoError(t, err)
	return conn
}

func TestMasterKey_TLS12(t *testing.T) {
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			conn := handshake(t, e, tls.VersionTLS12, nil)
			sess := conn.Session()
			assert.Equal(t, uint16(tls.VersionTLS12), sess.Version())
			assert.Equal(t, conn.ConnectionState().CipherSuite, sess.CipherSuite())
			assert.NotEmpty(t, engine.CipherName(sess.CipherSuite()))

			key := make([]byte, 48)
			require.True(t, engine.MasterKey(sess, key))
			assert.NotEqual(t, make([]byte, 48), key)

			for _, size := range []int{0, 1, 32, 47, 49, 96} {
				assert.False(t, engine.MasterKey(sess, make([]byte, size)), "size %d", size)
			}

			native, ok := sess.(*engine.NativeSession)
			require.True(t, ok)
			assert.Equal(t, key, native.ActiveSession().MasterKey)
			assert.True(t, engine.RawMasterKey(native.ActiveSession(), make([]byte, 48)))
		})
	}
}

func TestMasterKey_TLS13(t *testing.T) {
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			conn := handshake(t, e, tls.VersionTLS13, nil)
			sess := conn.Session()
			assert.Equal(t, uint16(tls.VersionTLS13), sess.Version())

			for _, size := range []int{0, 32, 48} {
				assert.False(t, engine.MasterKey(sess, make([]byte, size)), "size %d", size)
			}
		})
	}
}

func TestClientRandom(t *testing.T) {
	for _, e := range engines {
		for _, version := range []uint16{tls.VersionTLS12, tls.VersionTLS13} {
			t.Run(e.Name()+"/"+tls.VersionName(version), func(t *testing.T) {
				conn := handshake(t, e, version, nil)

				random := make([]byte, 32)
				require.True(t, engine.ClientRandom(conn, random))
				assert.NotEqual(t, make([]byte, 32), random)

				native := conn.Session().(*engine.NativeSession)
				assert.Equal(t, random, native.ActiveSession().ClientRandom)

				for _, size := range []int{0, 31, 33, 48} {
					assert.False(t, engine.ClientRandom(conn, make([]byte, size)), "size %d", size)
				}
			})
		}
	}
	assert.False(t, engine.ClientRandom(nil, make([]byte, 32)))
}

func TestClient_KeyLogPassthrough(t *testing.T) {
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			var keyLog bytes.Buffer
			conn := handshake(t, e, tls.VersionTLS12, &tls.Config{KeyLogWriter: &keyLog})

			random := make([]byte, 32)
			require.True(t, engine.ClientRandom(conn, random))
			assert.True(t, strings.HasPrefix(keyLog.String(), "CLIENT_RANDOM "))
			assert.Contains(t, keyLog.String(), hex.EncodeToString(random))
		})
	}
}

func TestClient_ALPN(t *testing.T) {
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			conn := handshake(t, e, 0, &tls.Config{NextProtos: []string{"h2", "http/1.1"}})
			assert.Equal(t, "http/1.1", conn.ConnectionState().NegotiatedProtocol)
			assert.Equal(t, e.Name(), conn.Engine().Name())
			assert.NotNil(t, conn.Transport())
		})
	}
}

func TestClient_ALPNTooLong(t *testing.T) {
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			client, server := net.Pipe()
			defer client.Close()
			defer server.Close()

			_, err := e.Client(context.Background(), client, &tls.Config{
				NextProtos: []string{strings.Repeat("a", 256)},
			}, nil)
			assert.ErrorIs(t, err, alpn.ErrProtocolTooLong)
		})
	}
}

func TestMasterKey_WithoutRawSession(t *testing.T) {
	ticket := engine.NewTicketSession(nil, tls.VersionTLS12, tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256)
	assert.Nil(t, ticket.State())
	assert.Equal(t, uint16(tls.VersionTLS12), ticket.Version())
	assert.Equal(t, uint16(tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256), ticket.CipherSuite())

	for _, size := range []int{0, 48} {
		assert.False(t, engine.MasterKey(ticket, make([]byte, size)))
	}
	assert.False(t, engine.MasterKey(nil, make([]byte, 48)))
	assert.False(t, engine.RawMasterKey(nil, make([]byte, 48)))
	assert.False(t, engine.RawMasterKey(&engine.RawSession{}, nil))
}
