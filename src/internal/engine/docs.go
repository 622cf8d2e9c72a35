// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package engine gives uniform access to two TLS engine implementations:
// [Standard], backed by crypto/tls, and [Fork], backed by uTLS.
//
// # Handshake artifacts
//
// [Engine.Client] runs a client handshake and returns a [Conn]. The master
// key and client random of the handshake are available through
// [MasterKey] and [ClientRandom], both of which only succeed when the
// caller's buffer has exactly the size of the value.
//
//	conn, err := engine.Standard{}.Client(ctx, tcp, cfg, engine.VerifyPeerIP)
//	if err != nil {
//		return err
//	}
//	key := make([]byte, 48)
//	if engine.MasterKey(conn.Session(), key) {
//		// TLS 1.2 session
//	}
//
// # Peer verification
//
// A [VerifyFunc] passed to Client receives a [VerifyContext] whose
// [ExDataIndexConn] slot holds the connection. [ResolvePeerAddress] reads
// the peer address of its socket from the OS and [VerifyPeerIP] matches it
// against the subjectAltName IP entries of the peer certificate.
//
// # Cipher names
//
// [CipherName] maps a cipher suite identifier to its name using a table
// built once per engine on first use.
//
// # BIO
//
// A [BIO] is a byte stream driven by a [BIOMethod]. [SocketBIOMethod] reads
// and writes an attached socket directly; [NewSocketBIOMethod] returns a
// copy whose read or write can be replaced with [SetCustomBIOReadMethod]
// and [SetCustomBIOWriteMethod]. Retry conditions are reported the way the
// owning engine does, see [Engine.BIOShouldRetry]. [NewBIOConn] turns a
// BIO into a [net.Conn] an engine can run a handshake over.
package engine
