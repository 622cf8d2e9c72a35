// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of tls-engine-utils.
// It implements a Cobra command tree over the engine, certificate and
// encoding packages: cipher suite naming and listing, ALPN encoding,
// certificate subject enumeration and inspection, peer IP validation, and
// a probe that handshakes with a server through a socket BIO and reports
// the negotiated parameters and session keys.
//
// The root command loads the configuration (see package config), applies
// flag overrides and installs the selected engine and logger as process
// defaults before any subcommand runs.
package cli
