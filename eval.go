package arith

import (
	"errors"
	"math"
	"strconv"
)

// Expression = Term { ('+' | '-') Term }
// Term       = Exponent { ('*' | '/') Exponent }
// Exponent   = Primary [ '^' Exponent ]
// Primary    = '+' Primary | '-' Primary | '(' Expression ')' | Number
// Number     = digit { digit | '.' }  (at most one '.')

// Eval parses and evaluates an arithmetic expression. The entire input must
// be a single expression, optionally surrounded by whitespace. Errors from
// invalid input implement InputError. The given options are applied in order.
//
// Eval keeps no state between calls, so it is safe to call concurrently.
func Eval(expr string, opts ...Option) (float64, error) {
	var p evalctx
	for _, opt := range opts {
		p = opt.evalOption(p)
	}
	s := scan(expr, &p)
	r, err := parseExpression(s)
	if err != nil {
		return 0, err
	}
	s.skipSpace()
	if !s.done() {
		return 0, &TokenError{Off: s.pos, Char: s.current()}
	}
	return r, nil
}

// parseExpression parses addition and subtraction.
func parseExpression(s *scanner) (float64, error) {
	v, err := parseTerm(s)
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case s.match('+'):
			rhs, err := parseTerm(s)
			if err != nil {
				return 0, err
			}
			v += rhs
		case s.match('-'):
			rhs, err := parseTerm(s)
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// parseTerm parses multiplication and division.
func parseTerm(s *scanner) (float64, error) {
	v, err := parseExponent(s)
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case s.match('*'):
			rhs, err := parseExponent(s)
			if err != nil {
				return 0, err
			}
			v *= rhs
		case s.match('/'):
			s.skipSpace()
			at := s.pos
			rhs, err := parseExponent(s)
			if err != nil {
				return 0, err
			}
			// Negative zero is also zero.
			if rhs == 0 {
				return 0, &DivisionError{Off: at}
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

// parseExponent parses exponentiation. The exponent recurses into
// parseExponent, which makes a^b^c group as a^(b^c).
func parseExponent(s *scanner) (float64, error) {
	base, err := parsePrimary(s)
	if err != nil {
		return 0, err
	}
	if !s.match('^') {
		return base, nil
	}
	exp, err := parseExponent(s)
	if err != nil {
		return 0, err
	}
	// math.Pow gives NaN for a negative base with a fractional exponent.
	// That is the result, not an error.
	return math.Pow(base, exp), nil
}

// parsePrimary parses unary signs, parenthesized subexpressions, and numbers.
// Unary signs bind tighter than ^, so -2^2 is 4.
func parsePrimary(s *scanner) (float64, error) {
	switch {
	case s.match('+'):
		return parsePrimary(s)
	case s.match('-'):
		v, err := parsePrimary(s)
		return -v, err
	case s.match('('):
		v, err := parseExpression(s)
		if err != nil {
			return 0, err
		}
		if !s.match(')') {
			return 0, &ParenError{Off: s.pos, Found: s.current()}
		}
		return v, nil
	default:
		return parseNumber(s)
	}
}

// parseNumber parses a decimal literal.
func parseNumber(s *scanner) (float64, error) {
	text, start, err := s.scanNum()
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, &EmptyNumberError{Off: s.pos, Found: s.current()}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &ConversionError{Off: start, Text: text, Err: err}
	}
	return v, nil
}
