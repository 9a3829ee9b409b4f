package xkc

// bitWriter appends bits to a byte buffer, least significant bit of each byte
// first, and tracks the total number of bits written so the encoder can
// record it in the stream trailer.
type bitWriter struct {
	buf   []byte
	cur   byte
	n     uint8  // bits buffered in cur, 0..7
	total uint32 // all bits written, including those still buffered
}

func newBitWriter(buf []byte) *bitWriter {
	return &bitWriter{buf: buf}
}

// writeBits appends the low n bits of v, least significant first.
func (w *bitWriter) writeBits(v uint64, n int) {
	for i := 0; i < n; i++ {
		if v>>i&1 != 0 {
			w.cur |= 1 << w.n
		}
		w.n++
		w.total++
		if w.n == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.n = 0
		}
	}
}

// flush appends the trailing partial byte, unused high bits zero, and returns
// the backing buffer. The writer must not be used afterwards.
func (w *bitWriter) flush() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.n = 0
	}
	return w.buf
}

// bitReader consumes bits from a byte slice, least significant bit of each
// byte first, bounded by a total-bit budget. Only sequential access, no
// seeking.
type bitReader struct {
	data      []byte
	pos       int
	bit       uint8
	remaining int // bit budget left
}

func newBitReader(data []byte, budget int) *bitReader {
	return &bitReader{data: data, remaining: budget}
}

// readBits reads n bits LSB-first. Reading past the budget or past the
// underlying slice fails with ErrTruncatedInput.
func (r *bitReader) readBits(n int) (uint64, error) {
	if n > r.remaining {
		return 0, ErrTruncatedInput
	}
	var v uint64
	for i := 0; i < n; i++ {
		if r.pos >= len(r.data) {
			return 0, ErrTruncatedInput
		}
		if r.data[r.pos]&(1<<r.bit) != 0 {
			v |= 1 << i
		}
		r.bit++
		r.remaining--
		if r.bit == 8 {
			r.bit = 0
			r.pos++
		}
	}
	return v, nil
}
