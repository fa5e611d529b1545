// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yaml/pyyaml/internal/testutil/assert"
)

// primeBuffer loads data into the emitter's raw output buffer as if the
// emitter had produced it.
func primeBuffer(e *Emitter, data string) {
	copy(e.buffer, data)
	e.buffer_pos = len(data)
}

func TestEmitterFlushToString(t *testing.T) {
	for _, tc := range []struct {
		name   string
		chunks []string
		want   string
	}{
		{name: "empty buffer", chunks: []string{""}, want: ""},
		{name: "single chunk", chunks: []string{"test data"}, want: "test data"},
		{name: "sequential flushes append", chunks: []string{"first", "second"}, want: "firstsecond"},
		{name: "unset encoding writes UTF-8 unrecoded", chunks: []string{"ñoño"}, want: "ñoño"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			emitter := NewEmitter()
			var output []byte
			emitter.SetOutputString(&output)

			for _, chunk := range tc.chunks {
				primeBuffer(&emitter, chunk)
				err := emitter.flush()
				assert.IsNilf(t, err, "flush() error: %v", err)
				assert.Equalf(t, 0, emitter.buffer_pos, "buffer_pos = %d after flush, want 0", emitter.buffer_pos)
			}
			assert.Equalf(t, tc.want, string(output), "flush() output = %q, want %q", output, tc.want)
		})
	}
}

func TestEmitterFlushToWriter(t *testing.T) {
	emitter := NewEmitter()
	var buf bytes.Buffer
	emitter.SetOutputWriter(&buf)

	primeBuffer(&emitter, "test data")
	err := emitter.flush()
	assert.IsNilf(t, err, "flush() should not error, got %v", err)
	assert.Equalf(t, "test data", buf.String(), "flush() output = %q", buf.String())
}

type errorWriter struct{}

func (w *errorWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write error")
}

func TestEmitterFlushWriteError(t *testing.T) {
	emitter := NewEmitter()
	emitter.SetOutputWriter(&errorWriter{})

	primeBuffer(&emitter, "test")
	err := emitter.flush()
	assert.ErrorMatchesf(t, "write error", err, "flush() should return write error, got %v", err)
}

func TestEmitterFlushWithoutHandler(t *testing.T) {
	emitter := NewEmitter()
	primeBuffer(&emitter, "test")

	assert.PanicMatchesf(t, "write handler not set", func() {
		_ = emitter.flush()
	}, "flush() without write handler should panic")
}
