package arith

import (
	"strings"
	"unicode/utf8"
)

// defaultSpace contains the runes which are always insignificant between
// tokens. Newlines are not included; see the Whitespace option.
const defaultSpace = " \t\v\f"

// scanner is the cursor over a single expression. It is created fresh for
// each evaluation and never outlives it.
type scanner struct {
	src string
	pos int
	// space is the set of runes skipped as whitespace.
	space string
}

func scan(src string, p *evalctx) *scanner {
	return &scanner{
		src:   src,
		space: defaultSpace + p.space,
	}
}

// done returns whether the cursor has consumed the entire input.
func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

// current returns the rune at the cursor, or 0 at the end of the input.
func (s *scanner) current() rune {
	if s.done() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

// skipSpace advances over whitespace.
func (s *scanner) skipSpace() {
	for !s.done() {
		r, sz := utf8.DecodeRuneInString(s.src[s.pos:])
		if !strings.ContainsRune(s.space, r) {
			return
		}
		s.pos += sz
	}
}

// match skips whitespace, then consumes the next byte if it is want. The
// position is left after the whitespace if it does not match.
func (s *scanner) match(want byte) bool {
	s.skipSpace()
	if !s.done() && s.src[s.pos] == want {
		s.pos++
		return true
	}
	return false
}

// scanNum consumes the digits and at most one decimal point at the cursor and
// returns the text and its starting offset. The result is empty if there is
// no number at the cursor.
func (s *scanner) scanNum() (string, int, error) {
	s.skipSpace()
	start := s.pos
	dot := false
	for !s.done() {
		c := s.src[s.pos]
		switch {
		case '0' <= c && c <= '9':
		case c == '.':
			if dot {
				return "", start, &NumberError{Off: s.pos, Text: s.src[start : s.pos+1]}
			}
			dot = true
		default:
			return s.src[start:s.pos], start, nil
		}
		s.pos++
	}
	return s.src[start:s.pos], start, nil
}
