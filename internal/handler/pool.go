package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize is the initial capacity of pooled encoding buffers.
// Full-state responses carry the whole inventory plus equipment, which for a
// capacity-100 profile serializes to a few kilobytes, so buffers start at 4KiB
// to avoid regrowth on the common paths.
const responseBufferSize = 4 * 1024

// maxPooledBufferSize keeps oversized buffers out of the pool. A rare huge
// response should not pin its allocation for the life of the process.
const maxPooledBufferSize = 64 * 1024

// bufferPool recycles bytes.Buffer instances across JSON responses.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
