// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorReader struct{ err error }

func (e *errorReader) Read(p []byte) (int, error) { return 0, e.err }

func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		want  string
	}{
		{
			name:  "Write byte slice",
			setup: func(buf Buffer) { buf.Write([]byte("hello")) },
			want:  "hello",
		},
		{
			name: "Mixed writes",
			setup: func(buf Buffer) {
				buf.WriteString("-----BEGIN")
				buf.WriteByte(' ')
				buf.WriteString("CERTIFICATE-----")
			},
			want: "-----BEGIN CERTIFICATE-----",
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			assert.Equal(t, tt.want, buf.String())
			assert.Equal(t, len(tt.want), buf.Len())
		})
	}
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Empty", data: ""},
		{name: "Small", data: "Hello, World!"},
		{name: "Large", data: strings.Repeat("0123456789", 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAll(strings.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(got))
		})
	}

	t.Run("Error", func(t *testing.T) {
		want := errors.New("read failed")
		_, err := ReadAll(&errorReader{err: want})
		assert.ErrorIs(t, err, want)
	})

	t.Run("Owned copy", func(t *testing.T) {
		first, err := ReadAll(strings.NewReader("first"))
		require.NoError(t, err)
		_, err = ReadAll(strings.NewReader("other"))
		require.NoError(t, err)
		assert.Equal(t, "first", string(first), "result must not alias a pooled buffer")
	})
}

func TestPoolConcurrent(t *testing.T) {
	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := range goroutines {
		go func(id int) {
			defer wg.Done()
			for range iterations {
				buf := Default.Get()
				buf.WriteString("goroutine #")
				buf.WriteByte(byte('0' + (id % 10)))
				assert.Equal(t, 12, buf.Len())
				buf.Reset()
				Default.Put(buf)
			}
		}(i)
	}

	wg.Wait()
}

func TestPoolPutForeignBuffer(t *testing.T) {
	assert.NotPanics(t, func() { Default.Put(&foreign{Buffer: bytes.NewBuffer(nil)}) })
}

type foreign struct{ *bytes.Buffer }

func (f *foreign) Reset() { f.Buffer.Reset() }
