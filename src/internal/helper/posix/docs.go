// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers that behave the same on [POSIX] systems
// and Windows.
//
// CommandName derives the name shown in usage strings from argv[0]:
//
//	root := &cobra.Command{
//	    Use: posix.CommandName(os.Args, "tls-engine-utils"),
//	}
//
// Cross-platform behavior:
//
//   - Linux/macOS: "/usr/bin/tls-engine-utils" → "tls-engine-utils"
//   - Windows: "C:\bin\tls-engine-utils.exe" → "tls-engine-utils"
//   - Empty argv: the fallback
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
