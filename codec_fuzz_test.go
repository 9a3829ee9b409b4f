package xkc

import (
	"bytes"
	"errors"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{}, uint8(0))
	f.Add([]byte{0x41, 0x41, 0x42, 0x41, 0x41}, uint8(0))
	f.Add(bytes.Repeat([]byte{0x00}, 300), uint8(0))
	f.Add([]byte{0xEF, 0xBE, 0xEF, 0xBE}, uint8(1))
	f.Add([]byte{1, 2, 3, 4, 1, 2, 3, 4}, uint8(2))
	f.Add(bytes.Repeat([]byte{0xAA, 0xBB}, 600), uint8(1))

	f.Fuzz(func(t *testing.T, data []byte, widthSel uint8) {
		width := []int{1, 2, 4}[int(widthSel)%3]
		c, err := New(WithSymbolWidth(width))
		if err != nil {
			t.Fatal(err)
		}
		data = data[:len(data)/width*width]

		packed, err := c.Encode(data)
		if err != nil {
			// the only legitimate encode failure on aligned input
			if errors.Is(err, ErrAlphabetOverflow) {
				return
			}
			t.Fatalf("encode: %v", err)
		}
		orig, err := c.Decode(packed)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !bytes.Equal(orig, data) {
			t.Fatalf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(orig))
		}
	})
}

func FuzzDecodeRobustness(f *testing.F) {
	c, err := New()
	if err != nil {
		f.Fatal(err)
	}
	if seed, err := c.Encode([]byte("AABAA")); err == nil {
		f.Add(seed)
	}
	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add([]byte{0x01, 0x01, 0x41, 0x42, 0x04, 0x06, 0x00, 0x00, 0x00})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, stream []byte) {
		// arbitrary bytes must decode cleanly or fail with a codec error,
		// never panic or read out of bounds
		for _, width := range []int{1, 2, 4} {
			c, err := New(WithSymbolWidth(width))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := c.Decode(stream); err != nil {
				switch {
				case errors.Is(err, ErrTruncatedInput),
					errors.Is(err, ErrCorruptInput),
					errors.Is(err, ErrSymbolNotInTree):
				default:
					t.Fatalf("unexpected error class: %v", err)
				}
			}
		}
	})
}
