package xkc

import (
	"bytes"
	"testing"
)

func TestCaptureRuns(t *testing.T) {
	runs := captureRuns([]byte{0x41, 0x41, 0x42, 0x41, 0x41}, 1)
	want := []run{{0x41, 2}, {0x42, 1}, {0x41, 2}}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Fatalf("run %d: got %+v, want %+v", i, runs[i], want[i])
		}
	}
}

func TestCaptureRunsSplitsAt255(t *testing.T) {
	runs := captureRuns(bytes.Repeat([]byte{0x7F}, 300), 1)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0] != (run{0x7F, 255}) || runs[1] != (run{0x7F, 45}) {
		t.Fatalf("got %+v and %+v, want (0x7F,255) and (0x7F,45)", runs[0], runs[1])
	}
}

func TestCaptureRunsWideSymbols(t *testing.T) {
	// 0xBEEF ×2, 0xCAFE ×1 as little-endian 16-bit words
	src := []byte{0xEF, 0xBE, 0xEF, 0xBE, 0xFE, 0xCA}
	runs := captureRuns(src, 2)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0] != (run{0xBEEF, 2}) || runs[1] != (run{0xCAFE, 1}) {
		t.Fatalf("got %+v and %+v", runs[0], runs[1])
	}

	// equal bytes form distinct 32-bit symbols only at matching offsets
	runs = captureRuns([]byte{1, 2, 3, 4, 1, 2, 3, 4}, 4)
	if len(runs) != 1 || runs[0] != (run{0x04030201, 2}) {
		t.Fatalf("width 4: got %+v", runs)
	}
}

func TestSymbolBytesRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		width int
		sym   uint32
	}{
		{1, 0xA5},
		{2, 0xBEEF},
		{4, 0xDEADBEEF},
	} {
		raw := appendSymbol(nil, tc.sym, tc.width)
		if len(raw) != tc.width {
			t.Fatalf("width %d: wrote %d bytes", tc.width, len(raw))
		}
		if got := loadSymbol(raw, tc.width); got != tc.sym {
			t.Fatalf("width %d: got %#x, want %#x", tc.width, got, tc.sym)
		}
	}
}
