package internal

import "sync"

// BufferPool holds byte slices reused for encoding geometry. Entries are *[]byte with zero length.
var BufferPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 1<<16)
		return &b
	},
}
