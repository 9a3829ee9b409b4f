package xkc

import (
	"encoding/binary"
)

// Core constants for the XKC stream layout.
const (
	maxRunLength    = 255 // run counts are re-derived on decode, never stored
	maxAlphabetSize = 256 // the size field is one byte, serialized as size-1

	// maxDepthFieldBits bounds the header's depth-field width. A
	// count-balanced tree over at most 256 symbols never exceeds height 255,
	// so no valid encoder writes a wider field.
	maxDepthFieldBits = 8

	trailerSize = 4 // little-endian uint32 bit count at the end of the stream
	headerSize  = 2 // maxDepthBits byte + alphabetSize-1 byte
)

// Symbols are carried as uint32 regardless of the configured width. The raw
// bytes of multi-byte symbols are interpreted little-endian, both in the input
// buffer and in the serialized alphabet table.

// loadSymbol reads one symbol of the given width from the start of b.
func loadSymbol(b []byte, width int) uint32 {
	switch width {
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b))
	default:
		return binary.LittleEndian.Uint32(b)
	}
}

// appendSymbol appends the raw bytes of sym at the given width to dst.
func appendSymbol(dst []byte, sym uint32, width int) []byte {
	switch width {
	case 1:
		return append(dst, byte(sym))
	case 2:
		return binary.LittleEndian.AppendUint16(dst, uint16(sym))
	default:
		return binary.LittleEndian.AppendUint32(dst, sym)
	}
}

// run is one occurrence of a symbol repeated count times, 1 <= count <= 255.
// Longer repeats are split into consecutive runs of the same symbol.
type run struct {
	sym   uint32
	count uint8
}

// captureRuns scans src in symbol-width steps and collapses adjacent equal
// symbols into runs. A run closes on a symbol mismatch or when it reaches
// maxRunLength; re-emitting its path count times on decode reconstructs the
// run without a stored length. len(src) must be a multiple of width.
func captureRuns(src []byte, width int) []run {
	runs := make([]run, 0, 64)
	for i := 0; i < len(src); i += width {
		sym := loadSymbol(src[i:], width)
		if n := len(runs) - 1; n >= 0 && runs[n].sym == sym && runs[n].count < maxRunLength {
			runs[n].count++
			continue
		}
		runs = append(runs, run{sym: sym, count: 1})
	}
	return runs
}
