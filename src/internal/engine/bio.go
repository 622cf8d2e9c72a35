// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrNoBIOIndex is returned when every BIO method slot is taken.
	ErrNoBIOIndex = errors.New("engine: no BIO method index available")

	// ErrBIOUnsupported is returned by BIO operations the method table
	// does not implement.
	ErrBIOUnsupported = errors.New("engine: BIO operation not supported")

	// ErrBIONoPoller is returned by a [BIOConn] that must wait for its
	// socket when the base connection exposes no raw connection to poll.
	ErrBIONoPoller = errors.New("engine: base connection cannot be polled")
)

// BIO type tags.
const (
	BIOTypeDescriptor = 0x0100
	BIOTypeSourceSink = 0x0400
	BIOTypeSocket     = 5 | BIOTypeSourceSink | BIOTypeDescriptor

	bioIndexStart = 128
	bioIndexMax   = 0xff
)

// BIOClose says whether freeing a BIO closes its socket.
type BIOClose int

const (
	BIONoClose BIOClose = iota
	BIOCloseOnFree
)

// BIOCtrl is a BIO control command.
type BIOCtrl int

// Control commands understood by the socket method table.
const (
	BIOCtrlReset       BIOCtrl = 1
	BIOCtrlEOF         BIOCtrl = 2
	BIOCtrlGetClose    BIOCtrl = 8
	BIOCtrlSetClose    BIOCtrl = 9
	BIOCtrlFlush       BIOCtrl = 11
	BIOCtrlDup         BIOCtrl = 12
	BIOCtrlSetCallback BIOCtrl = 14
	BIOCtrlSetFd       BIOCtrl = 104
	BIOCtrlGetFd       BIOCtrl = 105
)

// BIOInfoCallback observes every read and write of a BIO after it
// completes, with the byte count or -1 on error.
type BIOInfoCallback func(b *BIO, op BIOOp, ret int)

// BIOOp names the operation reported to a [BIOInfoCallback].
type BIOOp int

const (
	BIOOpRead BIOOp = iota + 1
	BIOOpWrite
)

// BIOReadFunc reads into p, returning the byte count or an error.
type BIOReadFunc func(b *BIO, p []byte) (int, error)

// BIOWriteFunc writes p, returning the byte count or an error.
type BIOWriteFunc func(b *BIO, p []byte) (int, error)

// BIOMethod is the method table behind a [BIO]. Nil entries are
// unsupported operations.
type BIOMethod struct {
	Type  int
	Name  string
	Index int

	Create       func(b *BIO) error
	Destroy      func(b *BIO) error
	Ctrl         func(b *BIO, cmd BIOCtrl, num int64, arg any) int64
	CallbackCtrl func(b *BIO, cmd BIOCtrl, fn BIOInfoCallback) int64
	Read         BIOReadFunc
	Write        BIOWriteFunc
	Gets         func(b *BIO, p []byte) (int, error)
	Puts         func(b *BIO, s string) (int, error)
}

var bioIndexNext atomic.Int32

func newBIOIndex() (int, error) {
	idx := bioIndexStart + int(bioIndexNext.Add(1)) - 1
	if idx > bioIndexMax {
		return 0, ErrNoBIOIndex
	}
	return idx, nil
}

// NewSocketBIOMethod returns a new socket method table seeded with every
// operation of [SocketBIOMethod], ready to have its read or write
// overridden. It fails with [ErrNoBIOIndex] once all method slots are
// allocated.
func NewSocketBIOMethod() (*BIOMethod, error) {
	idx, err := newBIOIndex()
	if err != nil {
		return nil, err
	}

	m := SocketBIOMethod()
	m.Name = "socket_bio_method"
	m.Index = idx
	return m, nil
}

// SetCustomBIOReadMethod replaces the read operation of m.
func SetCustomBIOReadMethod(m *BIOMethod, fn BIOReadFunc) bool {
	if m == nil || fn == nil {
		return false
	}
	m.Read = fn
	return true
}

// SetCustomBIOWriteMethod replaces the write operation of m.
func SetCustomBIOWriteMethod(m *BIOMethod, fn BIOWriteFunc) bool {
	if m == nil || fn == nil {
		return false
	}
	m.Write = fn
	return true
}

type bioFlags uint8

const (
	bioFlagRead bioFlags = 1 << iota
	bioFlagWrite
	bioFlagShouldRetry
	bioFlagEOF
)

// BIO is a byte stream driven by a [BIOMethod]. It is not safe for
// concurrent use.
type BIO struct {
	method *BIOMethod
	engine Engine

	init     bool
	shutdown BIOClose
	fd       int
	flags    bioFlags
	info     BIOInfoCallback

	appData     any
	callbackArg any

	// Ptr is free for custom methods.
	Ptr any
}

// NewBIO creates a BIO of method m owned by engine e, the default engine
// when nil.
func NewBIO(e Engine, m *BIOMethod) (*BIO, error) {
	if m == nil {
		return nil, ErrBIOUnsupported
	}
	if e == nil {
		e = Default()
	}

	b := &BIO{method: m, engine: e, fd: -1}
	if m.Create != nil {
		if err := m.Create(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Method returns the method table of b.
func (b *BIO) Method() *BIOMethod { return b.method }

// Engine returns the engine owning b.
func (b *BIO) Engine() Engine { return b.engine }

// Read reads through the method table.
func (b *BIO) Read(p []byte) (int, error) {
	if b.method.Read == nil {
		return 0, ErrBIOUnsupported
	}
	n, err := b.method.Read(b, p)
	b.report(BIOOpRead, n, err)
	return n, err
}

// Write writes through the method table.
func (b *BIO) Write(p []byte) (int, error) {
	if b.method.Write == nil {
		return 0, ErrBIOUnsupported
	}
	n, err := b.method.Write(b, p)
	b.report(BIOOpWrite, n, err)
	return n, err
}

func (b *BIO) report(op BIOOp, n int, err error) {
	if b.info == nil {
		return
	}
	if err != nil && n == 0 {
		n = -1
	}
	b.info(b, op, n)
}

// Gets reads one line into p, including its newline when it fits.
func (b *BIO) Gets(p []byte) (int, error) {
	if b.method.Gets == nil {
		return 0, ErrBIOUnsupported
	}
	return b.method.Gets(b, p)
}

// Puts writes s.
func (b *BIO) Puts(s string) (int, error) {
	if b.method.Puts == nil {
		return 0, ErrBIOUnsupported
	}
	return b.method.Puts(b, s)
}

// Ctrl runs a control command. Unsupported commands return 0.
func (b *BIO) Ctrl(cmd BIOCtrl, num int64, arg any) int64 {
	if b.method.Ctrl == nil {
		return 0
	}
	return b.method.Ctrl(b, cmd, num, arg)
}

// CallbackCtrl runs a control command taking a callback.
func (b *BIO) CallbackCtrl(cmd BIOCtrl, fn BIOInfoCallback) int64 {
	if b.method.CallbackCtrl == nil {
		return 0
	}
	return b.method.CallbackCtrl(b, cmd, fn)
}

// Free destroys b, closing its socket if it owns it.
func (b *BIO) Free() error {
	if b.method.Destroy == nil {
		return nil
	}
	return b.method.Destroy(b)
}

// Init reports whether b has a socket attached.
func (b *BIO) Init() bool { return b.init }

// SetInit marks b initialized, for custom Create functions.
func (b *BIO) SetInit(init bool) { b.init = init }

// SetRetryRead flags b as waiting to read.
func (b *BIO) SetRetryRead() { b.flags |= bioFlagRead | bioFlagShouldRetry }

// SetRetryWrite flags b as waiting to write.
func (b *BIO) SetRetryWrite() { b.flags |= bioFlagWrite | bioFlagShouldRetry }

// ClearRetryFlags clears the retry state of b.
func (b *BIO) ClearRetryFlags() { b.flags &^= bioFlagRead | bioFlagWrite | bioFlagShouldRetry }

// ShouldRetry reports whether the last operation failed transiently.
func (b *BIO) ShouldRetry() bool { return b.flags&bioFlagShouldRetry != 0 }

// ShouldRead reports whether b is waiting to read.
func (b *BIO) ShouldRead() bool { return b.flags&bioFlagRead != 0 }

// ShouldWrite reports whether b is waiting to write.
func (b *BIO) ShouldWrite() bool { return b.flags&bioFlagWrite != 0 }

// AppData returns the generic app-data slot.
func (b *BIO) AppData() any { return b.appData }

// CallbackArg returns the callback-argument slot.
func (b *BIO) CallbackArg() any { return b.callbackArg }

// SetBIOAppData attaches v to b in the slot engine e keeps caller data in.
// b does not own v.
func SetBIOAppData(e Engine, b *BIO, v any) { e.setBIOData(b, v) }

// BIOAppData returns what [SetBIOAppData] attached for engine e.
func BIOAppData(e Engine, b *BIO) any { return e.bioData(b) }

// BIOFd returns the socket attached to b, invalid when none.
func BIOFd(b *BIO) SocketHandle {
	return socketFromEngineFd(int(b.Ctrl(BIOCtrlGetFd, 0, nil)))
}

// SetBIOFd attaches socket h to b. flags says whether freeing b closes h.
func SetBIOFd(b *BIO, h SocketHandle, flags BIOClose) {
	b.Ctrl(BIOCtrlSetFd, int64(flags), h.engineFd())
}
