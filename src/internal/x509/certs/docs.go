// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides specialized encoding, decoding and inspection
// operations for [X.509] certificates. It supports [PEM], DER and [PKCS7]
// input, enumerates the subject names of PEM bundles, and extracts the
// identity attributes (common name, DNS names, one-line subject and issuer,
// validity dates, fingerprints) that TLS session tooling reports on.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
