// Package xkc implements a lossless run-length prefix-tree codec for
// fixed-width symbol buffers.
//
// # Overview
//
// XKC compresses an in-memory buffer in two stages. First it collapses the
// buffer into runs of repeated symbols (a symbol is 1, 2 or 4 bytes wide,
// chosen at configuration time). Then it ranks the distinct symbols by
// frequency and inserts them, most frequent first, into a deterministic
// count-balanced binary tree. Each symbol's root-to-node path becomes its bit
// code; runs are emitted by repeating the path, so run lengths are never
// stored explicitly.
//
// The tree shape depends only on the insertion order, which is exactly the
// order of the serialized alphabet table. The decoder therefore rebuilds an
// identical tree from the header alone; frequencies never appear on the wire.
//
// # When to Use XKC
//
// XKC is designed for buffers with long repeated stretches and a small
// working alphabet:
//   - process memory snapshots (zero pages, padding, pointer-aligned data)
//   - framebuffers, tile maps, save states
//   - sensor or telemetry words with few distinct values
//
// # When NOT to Use XKC
//
//   - text or general binary data (use gzip, zstd, or FSST)
//   - buffers with more than 256 distinct symbols at the chosen width
//   - random or encrypted data (incompressible, and likely to overflow the
//     alphabet at widths above one byte)
//
// The symbol-to-path assignment is a structural-balance heuristic, not an
// optimal prefix code. Reproducing that heuristic bit-for-bit is the point:
// streams are a compatibility contract, not a compression benchmark.
//
// # Wire Format
//
// All multi-byte fields are little-endian.
//
//	offset  field            size
//	0       maxDepthBits     1 byte   bit width of each depth field (1..8)
//	1       alphabetSize-1   1 byte   distinct symbol count minus one
//	2       alphabet table   alphabetSize × symbolWidth bytes, rank order
//	...     bit payload      repeated (depth, path) groups, LSB-first, byte-padded
//	last 4  totalBits        meaningful bit count in the payload
//
// The empty buffer encodes to an empty stream.
//
// # Basic Usage
//
//	c, err := xkc.New(xkc.WithSymbolWidth(2))
//	if err != nil {
//		log.Fatal(err)
//	}
//	packed, err := c.Encode(buf)
//	if err != nil {
//		log.Fatal(err)
//	}
//	orig, err := c.Decode(packed)
//
// A Codec holds only its configuration; every call owns its own model and
// cursors, so one Codec may be shared by concurrent goroutines.
package xkc
