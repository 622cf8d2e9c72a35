// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

// InvalidSocket is the handle of no socket. It is the zero SocketHandle.
var InvalidSocket SocketHandle
