// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import "io"

var socketMethod = BIOMethod{
	Type:         BIOTypeSocket,
	Name:         "socket",
	Create:       sockCreate,
	Destroy:      sockDestroy,
	Ctrl:         sockCtrl,
	CallbackCtrl: sockCallbackCtrl,
	Read:         sockRead,
	Write:        sockWrite,
	Gets:         sockGets,
	Puts:         sockPuts,
}

// SocketBIOMethod returns a copy of the built-in socket method table,
// which reads and writes the attached descriptor directly.
func SocketBIOMethod() *BIOMethod {
	m := socketMethod
	return &m
}

func sockCreate(b *BIO) error {
	b.init = false
	b.fd = -1
	b.flags = 0
	return nil
}

func sockDestroy(b *BIO) error {
	var err error
	if b.init && b.shutdown == BIOCloseOnFree {
		err = closeSocket(socketFromEngineFd(b.fd))
	}
	b.init = false
	b.fd = -1
	b.flags = 0
	return err
}

func sockRead(b *BIO, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n, err := readSocket(socketFromEngineFd(b.fd), p)
	b.ClearRetryFlags()
	switch {
	case err != nil:
		if b.engine.BIOShouldRetry(-1, err) {
			b.SetRetryRead()
		}
		return 0, err
	case n == 0:
		b.flags |= bioFlagEOF
		return 0, io.EOF
	}
	return n, nil
}

func sockWrite(b *BIO, p []byte) (int, error) {
	n, err := writeSocket(socketFromEngineFd(b.fd), p)
	b.ClearRetryFlags()
	if err != nil {
		if b.engine.BIOShouldRetry(-1, err) {
			b.SetRetryWrite()
		}
		return 0, err
	}
	return n, nil
}

func sockCtrl(b *BIO, cmd BIOCtrl, num int64, arg any) int64 {
	switch cmd {
	case BIOCtrlSetFd:
		fd, ok := arg.(int)
		if !ok {
			return 0
		}
		if b.init && b.shutdown == BIOCloseOnFree && b.fd != fd {
			_ = closeSocket(socketFromEngineFd(b.fd))
		}
		b.fd = fd
		b.shutdown = BIOClose(num)
		b.init = true
		b.flags &^= bioFlagEOF
		return 1
	case BIOCtrlGetFd:
		if !b.init {
			return -1
		}
		if out, ok := arg.(*int); ok && out != nil {
			*out = b.fd
		}
		return int64(b.fd)
	case BIOCtrlGetClose:
		return int64(b.shutdown)
	case BIOCtrlSetClose:
		b.shutdown = BIOClose(num)
		return 1
	case BIOCtrlEOF:
		if b.flags&bioFlagEOF != 0 {
			return 1
		}
		return 0
	case BIOCtrlDup, BIOCtrlFlush:
		return 1
	default:
		return 0
	}
}

func sockCallbackCtrl(b *BIO, cmd BIOCtrl, fn BIOInfoCallback) int64 {
	if cmd != BIOCtrlSetCallback {
		return 0
	}
	b.info = fn
	return 1
}

// sockGets reads byte by byte through the method table, so an installed
// custom read sees every byte.
func sockGets(b *BIO, p []byte) (int, error) {
	var (
		one [1]byte
		n   int
	)
	for n < len(p) {
		r, err := b.Read(one[:])
		if r == 0 {
			if n > 0 && err == io.EOF {
				break
			}
			return n, err
		}
		p[n] = one[0]
		n++
		if one[0] == '\n' {
			break
		}
	}
	return n, nil
}

func sockPuts(b *BIO, s string) (int, error) {
	return b.Write([]byte(s))
}
