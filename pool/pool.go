package pool

import (
	"math/bits"
	"sync"

	"github.com/quickwritereader/appendix/buffer"
)

// builderRetainCap caps what goes back in the pool so one oversized
// message does not pin memory.
const builderRetainCap = 1 << 16

var builderPool = sync.Pool{
	New: func() any {
		s := make(buffer.Slice[byte], 0, 256)
		return &s
	},
}

// GetBuilder returns an empty pooled byte builder.
func GetBuilder() *buffer.Slice[byte] {
	return builderPool.Get().(*buffer.Slice[byte])
}

// PutBuilder resets b and returns it to the pool.
func PutBuilder(b *buffer.Slice[byte]) {
	if b == nil || cap(*b) > builderRetainCap {
		return
	}
	b.Reset()
	builderPool.Put(b)
}

var ScratchSizeClass = [...]int{16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

var scratchPools [len(ScratchSizeClass)]sync.Pool

func init() {
	for i, sz := range ScratchSizeClass {
		size := sz
		scratchPools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
}

func SizeIndex(n int) int {
	if n <= 0 || n > 4096 {
		return -1
	}
	idx := bits.Len(uint(n))
	if idx < 5 {
		return 0
	}
	if n&(n-1) == 0 {
		return idx - 5
	}
	return idx - 4
}

// Acquire returns a scratch buffer of n bytes, pooled when n fits a class.
func Acquire(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	p := scratchPools[idx].Get().(*[]byte)
	return (*p)[:n]
}

func AcquireZeroed(n int) []byte {
	b := Acquire(n)
	clear(b)
	return b
}

// Release returns the buffer to its pool if its capacity matches a class.
func Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < 16 || c > 4096 {
		return // not a valid class
	}
	buf = buf[:c]
	scratchPools[bits.Len(uint(c))-5].Put(&buf)
}
