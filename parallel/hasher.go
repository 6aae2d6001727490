package parallel

import "crypto/sha256"
import "encoding/binary"
import "math"
import "sync"

// Hasher fingerprints a fixed length vector whose slots are filled concurrently
// and in any order. Each slot must be written exactly once.
type Hasher struct {
	mut     sync.Mutex
	data    []byte
	written []bool
}

// NewHasher makes a hasher of n slots.
func NewHasher(n int) *Hasher {
	return &Hasher{
		data:    make([]byte, 8*n),
		written: make([]bool, n),
	}
}

// Len is the number of slots.
func (h *Hasher) Len() int {
	return len(h.written)
}

// MustPutUint64 stores value into slot n. It panics when the slot was already written.
func (h *Hasher) MustPutUint64(n int, value uint64) {
	h.mut.Lock()
	defer h.mut.Unlock()

	if h.written[n] {
		panic("duplicate write")
	}
	h.written[n] = true
	binary.LittleEndian.PutUint64(h.data[8*n:], value)
}

// MustPutInt stores a prediction into slot n.
func (h *Hasher) MustPutInt(n int, value int) {
	h.MustPutUint64(n, uint64(value))
}

// MustPutFloat64 stores a weight into slot n.
func (h *Hasher) MustPutFloat64(n int, value float64) {
	h.MustPutUint64(n, math.Float64bits(value))
}

// Sum is the sha256 of all slots. Unwritten slots hash as zero.
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	ret = sha256.Sum256(h.data)
	h.mut.Unlock()
	return
}
