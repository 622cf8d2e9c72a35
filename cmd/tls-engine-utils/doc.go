// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// tls-engine-utils inspects TLS handshakes, certificates and cipher suites
// through either the standard crypto/tls engine or the uTLS fork.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-engine-utils/cmd/tls-engine-utils@latest
//
// # Usage
//
//	tls-engine-utils [GLOBAL FLAGS] COMMAND [ARGS]
//
// # Global flags
//
//	-c, --config      Configuration file, JSON or YAML (default $TLS_ENGINE_UTILS_CONFIG)
//	-e, --engine      TLS engine: standard or fork
//	    --log-format  Log format: text or json
//	    --silent      Suppress log output
//
// # Commands
//
//	cipher ID...         Print the names of cipher suite identifiers
//	ciphers              List the cipher suites of the engine as a markdown table
//	alpn [PROTOCOL...]   Encode an ALPN protocol list as hex, or decode one with --decode
//	subjects FILE...     Print the subject names of every certificate in PEM files
//	inspect FILE         Print names, validity and digests of certificates
//	validate CERT IP     Check that a certificate authorizes an IP address
//	probe HOST[:PORT]    Handshake with a server and print what was negotiated
//
// # Examples
//
// Name a cipher suite as the fork engine knows it:
//
//	tls-engine-utils --engine fork cipher 0xc02f
//
// Probe a server by IP and require its certificate to list that IP:
//
//	tls-engine-utils probe 192.0.2.10:8443 --ca ca.pem --require-ip-match
//
// Encode the protocols offered by default:
//
//	tls-engine-utils alpn
package main
