package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPool_PreallocatesForStatePayloads(t *testing.T) {
	buf := getBuffer()
	defer putBuffer(buf)

	assert.GreaterOrEqual(t, buf.Cap(), responseBufferSize)
	assert.Zero(t, buf.Len())
}

func TestBufferPool_RoundTripResetsContents(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(`{"success":true}`)
	putBuffer(buf)

	next := getBuffer()
	defer putBuffer(next)
	assert.Zero(t, next.Len())
}

func TestBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	buf := getBuffer()
	buf.Grow(maxPooledBufferSize + 1)
	grown := buf.Cap()

	// Must not panic, and the grown buffer stays out of circulation.
	putBuffer(buf)
	assert.Greater(t, grown, maxPooledBufferSize)
}
