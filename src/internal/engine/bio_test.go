// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-engine-utils/src/internal/engine"
)

func TestBIOAppData(t *testing.T) {
	tests := []struct {
		name        string
		engine      engine.Engine
		appData     any
		callbackArg any
	}{
		{"standard uses app-data slot", engine.Standard{}, "ctx", nil},
		{"fork uses callback-argument slot", engine.Fork{}, nil, "ctx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.NewBIO(tt.engine, engine.SocketBIOMethod())
			require.NoError(t, err)

			assert.Nil(t, engine.BIOAppData(tt.engine, b))
			engine.SetBIOAppData(tt.engine, b, "ctx")
			assert.Equal(t, "ctx", engine.BIOAppData(tt.engine, b))
			assert.Equal(t, tt.appData, b.AppData())
			assert.Equal(t, tt.callbackArg, b.CallbackArg())
		})
	}
}

func TestNewSocketBIOMethod(t *testing.T) {
	engine.ResetBIOIndex()
	t.Cleanup(engine.ResetBIOIndex)

	m, err := engine.NewSocketBIOMethod()
	require.NoError(t, err)
	assert.Equal(t, engine.BIOTypeSocket, m.Type)
	assert.Equal(t, 128, m.Index)
	assert.NotNil(t, m.Create)
	assert.NotNil(t, m.Destroy)
	assert.NotNil(t, m.Ctrl)
	assert.NotNil(t, m.CallbackCtrl)
	assert.NotNil(t, m.Read)
	assert.NotNil(t, m.Write)
	assert.NotNil(t, m.Gets)
	assert.NotNil(t, m.Puts)

	// Overriding the copy leaves the built-in table alone.
	read := func(*engine.BIO, []byte) (int, error) { return 0, nil }
	require.True(t, engine.SetCustomBIOReadMethod(m, read))
	require.True(t, engine.SetCustomBIOWriteMethod(m, read))
	custom, err := engine.NewBIO(nil, m)
	require.NoError(t, err)
	n, err := custom.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.NoError(t, err)

	builtin, err := engine.NewBIO(nil, engine.SocketBIOMethod())
	require.NoError(t, err)
	_, err = builtin.Read(make([]byte, 1))
	assert.Error(t, err, "no socket attached")

	assert.False(t, engine.SetCustomBIOReadMethod(nil, read))
	assert.False(t, engine.SetCustomBIOReadMethod(m, nil))
	assert.False(t, engine.SetCustomBIOWriteMethod(nil, read))
	assert.False(t, engine.SetCustomBIOWriteMethod(m, nil))
}

func TestNewSocketBIOMethod_Exhausted(t *testing.T) {
	engine.ResetBIOIndex()
	t.Cleanup(engine.ResetBIOIndex)

	for i := 128; i <= 255; i++ {
		m, err := engine.NewSocketBIOMethod()
		require.NoError(t, err)
		require.Equal(t, i, m.Index)
	}

	m, err := engine.NewSocketBIOMethod()
	assert.ErrorIs(t, err, engine.ErrNoBIOIndex)
	assert.Nil(t, m)
}

func TestBIO_Unattached(t *testing.T) {
	b, err := engine.NewBIO(engine.Standard{}, engine.SocketBIOMethod())
	require.NoError(t, err)

	assert.False(t, b.Init())
	assert.False(t, engine.BIOFd(b).Valid())
	assert.Equal(t, int64(engine.BIONoClose), b.Ctrl(engine.BIOCtrlGetClose, 0, nil))
	assert.Equal(t, int64(1), b.Ctrl(engine.BIOCtrlFlush, 0, nil))
	assert.Zero(t, b.Ctrl(engine.BIOCtrlReset, 0, nil))
	assert.Zero(t, b.Ctrl(engine.BIOCtrlSetFd, 0, "not an fd"))
	assert.NoError(t, b.Free())

	_, err = engine.NewBIO(nil, nil)
	assert.ErrorIs(t, err, engine.ErrBIOUnsupported)

	empty, err := engine.NewBIO(nil, &engine.BIOMethod{})
	require.NoError(t, err)
	_, err = empty.Read(make([]byte, 1))
	assert.ErrorIs(t, err, engine.ErrBIOUnsupported)
	_, err = empty.Write(nil)
	assert.ErrorIs(t, err, engine.ErrBIOUnsupported)
	_, err = empty.Gets(nil)
	assert.ErrorIs(t, err, engine.ErrBIOUnsupported)
	_, err = empty.Puts("")
	assert.ErrorIs(t, err, engine.ErrBIOUnsupported)
	assert.Zero(t, empty.Ctrl(engine.BIOCtrlGetFd, 0, nil))
	assert.Zero(t, empty.CallbackCtrl(engine.BIOCtrlSetCallback, nil))
	assert.NoError(t, empty.Free())
	assert.Equal(t, engine.NameStandard, empty.Engine().Name())
}
