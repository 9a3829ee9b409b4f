package xkc

import (
	"encoding/binary"
	"errors"
)

var (
	// ErrUnsupportedWidth indicates a symbol width other than 1, 2 or 4 bytes.
	ErrUnsupportedWidth = errors.New("xkc: symbol width must be 1, 2 or 4 bytes")
	// ErrMisalignedInput indicates an encode buffer whose length is not a
	// multiple of the symbol width.
	ErrMisalignedInput = errors.New("xkc: input length is not a multiple of the symbol width")
	// ErrAlphabetOverflow indicates more than 256 distinct symbols in the
	// encode buffer, which the one-byte alphabet size field cannot represent.
	ErrAlphabetOverflow = errors.New("xkc: more than 256 distinct symbols")
	// ErrTruncatedInput indicates a decode buffer shorter than its own header
	// and trailer imply.
	ErrTruncatedInput = errors.New("xkc: truncated input")
	// ErrCorruptInput indicates a decode buffer whose fields are inconsistent
	// with any valid stream.
	ErrCorruptInput = errors.New("xkc: corrupt input")
	// ErrSymbolNotInTree indicates a symbol lookup that reached an
	// inconsistent tree location. From Encode it signals an internal defect;
	// from Decode it means the payload does not match the alphabet table.
	ErrSymbolNotInTree = errors.New("xkc: symbol not in tree")
)

type config struct {
	width int
}

// Option configures a Codec.
type Option func(*config)

// WithSymbolWidth sets the raw symbol width in bytes. Supported widths are
// 1 (default), 2 and 4; New rejects anything else.
func WithSymbolWidth(n int) Option {
	return func(c *config) {
		c.width = n
	}
}

// Codec encodes and decodes XKC streams at a fixed symbol width. A Codec is
// immutable after New: every Encode or Decode call builds its own model, tree
// and bit cursor, so a single Codec is safe for concurrent use.
type Codec struct {
	width int
}

// New creates a Codec with the given options.
func New(opts ...Option) (*Codec, error) {
	cfg := config{width: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.width {
	case 1, 2, 4:
	default:
		return nil, ErrUnsupportedWidth
	}
	return &Codec{width: cfg.width}, nil
}

// SymbolWidth returns the configured symbol width in bytes.
func (c *Codec) SymbolWidth() int {
	return c.width
}

// Encode compresses src into a packed XKC stream. src length must be a
// multiple of the symbol width; the empty buffer encodes to an empty stream.
// Encoding is deterministic: equal inputs yield byte-identical streams.
func (c *Codec) Encode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if len(src)%c.width != 0 {
		return nil, ErrMisalignedInput
	}

	runs := captureRuns(src, c.width)
	alphabet := buildAlphabet(runs)
	if len(alphabet) > maxAlphabetSize {
		return nil, ErrAlphabetOverflow
	}

	t := newTree()
	for _, l := range alphabet {
		t.insert(l.sym)
	}
	maxDepthBits := bitsNeeded(t.height())

	out := make([]byte, 0, headerSize+len(alphabet)*c.width+len(src)/2+trailerSize)
	out = append(out, byte(maxDepthBits), byte(len(alphabet)-1))
	for _, l := range alphabet {
		out = appendSymbol(out, l.sym, c.width)
	}

	w := newBitWriter(out)
	for _, r := range runs {
		pi, err := t.pathOf(r.sym)
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(r.count); i++ {
			w.writeBits(uint64(pi.depth), maxDepthBits)
			w.writeBits(pi.path, pi.depth)
		}
	}
	out = w.flush()
	return binary.LittleEndian.AppendUint32(out, w.total), nil
}

// Decode reverses Encode. It validates the stream against its own header and
// trailer before touching the payload: short buffers fail with
// ErrTruncatedInput, impossible field values with ErrCorruptInput, and a
// payload that walks off the rebuilt tree with ErrSymbolNotInTree. Any error
// means corruption; there is no partial output.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if len(src) < headerSize {
		return nil, ErrTruncatedInput
	}
	maxDepthBits := int(src[0])
	alphabetSize := int(src[1]) + 1

	tableEnd := headerSize + alphabetSize*c.width
	if len(src) < tableEnd+trailerSize {
		return nil, ErrTruncatedInput
	}
	if maxDepthBits < 1 || maxDepthBits > maxDepthFieldBits {
		return nil, ErrCorruptInput
	}

	t := newTree()
	for i := 0; i < alphabetSize; i++ {
		t.insert(loadSymbol(src[headerSize+i*c.width:], c.width))
	}
	height := t.height()

	totalBits := binary.LittleEndian.Uint32(src[len(src)-trailerSize:])
	payload := src[tableEnd : len(src)-trailerSize]
	if uint64(totalBits) > uint64(len(payload))*8 {
		return nil, ErrTruncatedInput
	}

	r := newBitReader(payload, int(totalBits))
	out := make([]byte, 0, int(totalBits)/maxDepthBits*c.width)
	for r.remaining > 0 {
		depth, err := r.readBits(maxDepthBits)
		if err != nil {
			return nil, err
		}
		if int(depth) > height {
			return nil, ErrCorruptInput
		}
		path, err := r.readBits(int(depth))
		if err != nil {
			return nil, err
		}
		sym, err := t.symbolAt(pathInfo{depth: int(depth), path: path})
		if err != nil {
			return nil, err
		}
		out = appendSymbol(out, sym, c.width)
	}
	return out, nil
}

// DotGraph builds the model tree for src and renders it in Graphviz format.
// Useful for inspecting which paths a buffer's symbols were assigned.
func (c *Codec) DotGraph(src []byte) (string, error) {
	if len(src)%c.width != 0 {
		return "", ErrMisalignedInput
	}
	alphabet := buildAlphabet(captureRuns(src, c.width))
	if len(alphabet) > maxAlphabetSize {
		return "", ErrAlphabetOverflow
	}
	t := newTree()
	for _, l := range alphabet {
		t.insert(l.sym)
	}
	return t.dot(), nil
}
