package model

import (
	"bufio"
	"fmt"
	"io"
)

// Decoder reads successive items from a stream. Items may be separated by any
// amount of whitespace, including none.
type Decoder struct {
	s *textScanner
}

// NewDecoder returns a Decoder reading from r. r is buffered unless it
// already implements io.ByteScanner.
func NewDecoder(r io.Reader) *Decoder {
	bs, ok := r.(io.ByteScanner)
	if !ok {
		bs = bufio.NewReader(r)
	}
	return &Decoder{s: newTextScanner(bs)}
}

// Decode reads the next item into g. It returns io.EOF when the stream ends
// before another item starts, a *ParseError for malformed text, or the
// underlying read error. g is only written on success.
func (d *Decoder) Decode(g *GroceryItem) error {
	if !d.s.skipSpace() {
		if d.s.err != nil {
			return fmt.Errorf("read grocery item: %w", d.s.err)
		}
		return io.EOF
	}
	v, err := d.s.record()
	if d.s.err != nil {
		return fmt.Errorf("read grocery item: %w", d.s.err)
	}
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// InputOffset returns the number of bytes consumed so far.
func (d *Decoder) InputOffset() int { return d.s.off }

// Encoder writes items one per line.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

// Encode writes Format(g) followed by a newline.
func (e *Encoder) Encode(g GroceryItem) error {
	if _, err := io.WriteString(e.w, Format(g)+"\n"); err != nil {
		return fmt.Errorf("write grocery item: %w", err)
	}
	return nil
}
