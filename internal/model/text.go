package model

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedRecordText is returned, wrapped in a *ParseError, when text does
// not match the grocery item grammar:
//
//	"<upc>", "<brand>", "<product>", <price>
var ErrMalformedRecordText = errors.New("malformed grocery item text")

// ParseError describes where and why parsing stopped.
type ParseError struct {
	Field  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d: %s", ErrMalformedRecordText, e.Field, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformedRecordText }

const (
	fieldUPCCode     = "upc_code"
	fieldBrandName   = "brand_name"
	fieldProductName = "product_name"
	fieldPrice       = "price"
	fieldEnd         = "end_of_record"
)

// Format renders g in wire order: UPC code, brand name, product name, price.
// String fields are double-quoted with '"' and '\' escaped by a backslash; the
// price uses the shortest decimal form that parses back to the same float64.
func Format(g GroceryItem) string {
	var b strings.Builder
	b.Grow(len(g.upcCode) + len(g.brandName) + len(g.productName) + 32)
	writeQuoted(&b, g.upcCode)
	b.WriteString(", ")
	writeQuoted(&b, g.brandName)
	b.WriteString(", ")
	writeQuoted(&b, g.productName)
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(g.price, 'g', -1, 64))
	return b.String()
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}

// Parse reads exactly one item from text. Leading and trailing whitespace is
// allowed; anything else after the price is an error.
func Parse(text string) (GroceryItem, error) {
	s := newTextScanner(strings.NewReader(text))
	g, err := s.record()
	if err != nil {
		return GroceryItem{}, err
	}
	if s.skipSpace() {
		return GroceryItem{}, s.fail(fieldEnd, s.off, "unexpected trailing content")
	}
	return g, nil
}

func (g GroceryItem) String() string { return Format(g) }

// MarshalText implements encoding.TextMarshaler.
func (g GroceryItem) MarshalText() ([]byte, error) {
	return []byte(Format(g)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error g is left
// unchanged.
func (g *GroceryItem) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// textScanner works on bytes: every delimiter of the grammar is ASCII, so
// multi-byte UTF-8 sequences pass through untouched.
type textScanner struct {
	r   io.ByteScanner
	off int
	err error
}

func newTextScanner(r io.ByteScanner) *textScanner {
	return &textScanner{r: r}
}

func (s *textScanner) next() (byte, bool) {
	c, err := s.r.ReadByte()
	if err != nil {
		if err != io.EOF && s.err == nil {
			s.err = err
		}
		return 0, false
	}
	s.off++
	return c, true
}

// unread must only follow a successful next.
func (s *textScanner) unread() {
	if err := s.r.UnreadByte(); err == nil {
		s.off--
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSign(c byte) bool  { return c == '+' || c == '-' }

// skipSpace consumes whitespace and reports whether a non-space byte follows.
func (s *textScanner) skipSpace() bool {
	for {
		c, ok := s.next()
		if !ok {
			return false
		}
		if !isSpace(c) {
			s.unread()
			return true
		}
	}
}

func (s *textScanner) fail(field string, offset int, reason string) error {
	return &ParseError{Field: field, Offset: offset, Reason: reason}
}

func (s *textScanner) record() (GroceryItem, error) {
	upc, err := s.quoted(fieldUPCCode)
	if err != nil {
		return GroceryItem{}, err
	}
	if err := s.delimiter(fieldUPCCode); err != nil {
		return GroceryItem{}, err
	}
	brand, err := s.quoted(fieldBrandName)
	if err != nil {
		return GroceryItem{}, err
	}
	if err := s.delimiter(fieldBrandName); err != nil {
		return GroceryItem{}, err
	}
	product, err := s.quoted(fieldProductName)
	if err != nil {
		return GroceryItem{}, err
	}
	if err := s.delimiter(fieldProductName); err != nil {
		return GroceryItem{}, err
	}
	price, err := s.number(fieldPrice)
	if err != nil {
		return GroceryItem{}, err
	}
	return New(product, brand, upc, price), nil
}

func (s *textScanner) quoted(field string) (string, error) {
	if !s.skipSpace() {
		return "", s.fail(field, s.off, "unexpected end of input")
	}
	start := s.off
	if c, _ := s.next(); c != '"' {
		return "", s.fail(field, start, "expected opening quote")
	}
	var b strings.Builder
	for {
		c, ok := s.next()
		if !ok {
			return "", s.fail(field, start, "unterminated quoted string")
		}
		switch c {
		case '"':
			return b.String(), nil
		case '\\':
			if c, ok = s.next(); !ok {
				return "", s.fail(field, start, "unterminated escape")
			}
		}
		b.WriteByte(c)
	}
}

// delimiter consumes the ',' that follows field.
func (s *textScanner) delimiter(field string) error {
	if !s.skipSpace() {
		return s.fail(field, s.off, "unexpected end of input, expected ','")
	}
	start := s.off
	if c, _ := s.next(); c != ',' {
		return s.fail(field, start, "expected ','")
	}
	return nil
}

// number reads [sign] (digits [. digits] | . digits) [(e|E) [sign] digits].
func (s *textScanner) number(field string) (float64, error) {
	if !s.skipSpace() {
		return 0, s.fail(field, s.off, "unexpected end of input")
	}
	start := s.off
	var lexeme []byte
	accept := func(pred func(byte) bool) bool {
		c, ok := s.next()
		if !ok {
			return false
		}
		if !pred(c) {
			s.unread()
			return false
		}
		lexeme = append(lexeme, c)
		return true
	}
	digits := func() int {
		n := 0
		for accept(isDigit) {
			n++
		}
		return n
	}

	accept(isSign)
	n := digits()
	if accept(func(c byte) bool { return c == '.' }) {
		n += digits()
	}
	if n == 0 {
		return 0, s.fail(field, start, "expected a number")
	}
	if accept(func(c byte) bool { return c == 'e' || c == 'E' }) {
		accept(isSign)
		if digits() == 0 {
			return 0, s.fail(field, start, "malformed exponent")
		}
	}
	v, err := strconv.ParseFloat(string(lexeme), 64)
	if err != nil {
		return 0, s.fail(field, start, "number out of range")
	}
	return v, nil
}
