// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package alpn encodes and decodes the protocol name list exchanged by the
// [ALPN] extension during a TLS handshake.
//
// [ALPN]: https://www.rfc-editor.org/rfc/rfc7301
package alpn
