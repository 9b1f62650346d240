package container

import (
	"sync"
)

// DefaultBufferSize matches the read size of the original tooling.
const DefaultBufferSize = 4 * 1024

// bufferPool provides reusable read buffers of DefaultBufferSize.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, DefaultBufferSize)
	},
}

// getBuffer returns a buffer of exactly size bytes, pooled when size is the default.
func getBuffer(size int) ([]byte, func()) {
	if size != DefaultBufferSize {
		return make([]byte, size), func() {}
	}

	buf, ok := bufferPool.Get().([]byte)
	if !ok {
		buf = make([]byte, DefaultBufferSize)
	}

	return buf, func() { bufferPool.Put(buf) } //nolint:staticcheck
}
