// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the command line configuration from JSON or YAML.
//
// Example YAML file:
//
//	engine: fork
//	alpn: [h2, http/1.1]
//	timeoutSeconds: 5
//	proxy: socks5://127.0.0.1:1080
//	log:
//	  format: json
//	  silent: false
package config
