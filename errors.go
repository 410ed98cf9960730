package arith

import "strconv"

// TokenError is an error indicating input left over after a complete
// expression. It implements InputError.
type TokenError struct {
	// Off is the position of the unexpected character.
	Off int
	// Char is the unexpected character. A byte which is not valid UTF-8 is
	// reported as utf8.RuneError.
	Char rune
}

func (err *TokenError) Error() string {
	return errpos("unexpected token", err.Off) + ": " + strconv.QuoteRune(err.Char)
}

func (err *TokenError) Pos() int {
	return err.Off
}

// DivisionError is an error indicating division by exactly zero. It
// implements InputError.
type DivisionError struct {
	// Off is the position where the divisor begins.
	Off int
}

func (err *DivisionError) Error() string {
	return errpos("division by zero", err.Off)
}

func (err *DivisionError) Pos() int {
	return err.Off
}

// ParenError is an error indicating an open parenthesis with no matching
// close parenthesis. It implements InputError.
type ParenError struct {
	// Off is the position where the close parenthesis was expected.
	Off int
	// Found is the character found instead, or 0 at the end of the input.
	Found rune
}

func (err *ParenError) Error() string {
	return errpos("missing closing parenthesis", err.Off)
}

func (err *ParenError) Pos() int {
	return err.Off
}

// EmptyNumberError is an error indicating that a number was required but
// none was found, including when the input is empty. It implements
// InputError.
type EmptyNumberError struct {
	// Off is the position where the number was expected.
	Off int
	// Found is the character found instead, or 0 at the end of the input.
	Found rune
}

func (err *EmptyNumberError) Error() string {
	return errpos("expected a number", err.Off)
}

func (err *EmptyNumberError) Pos() int {
	return err.Off
}

// NumberError is an error indicating a numeric literal with more than one
// decimal point. It implements InputError.
type NumberError struct {
	// Off is the position of the second decimal point.
	Off int
	// Text is the literal up to and including the second decimal point.
	Text string
}

func (err *NumberError) Error() string {
	return errpos("invalid number format", err.Off)
}

func (err *NumberError) Pos() int {
	return err.Off
}

// ConversionError is an error indicating a literal that has the shape of a
// number but cannot be converted to a float64, e.g. "." or a value too large
// to represent. It implements InputError.
type ConversionError struct {
	// Off is the position where the literal begins.
	Off int
	// Text is the literal.
	Text string
	// Err is the reason for the failure, typically strconv.ErrSyntax or
	// strconv.ErrRange.
	Err error
}

func (err *ConversionError) Error() string {
	return errpos("number conversion error", err.Off)
}

func (err *ConversionError) Pos() int {
	return err.Off
}

func (err *ConversionError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(msg string, pos int) string {
	return msg + " at position " + strconv.Itoa(pos)
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as a zero-based byte offset into
	// the expression.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*EmptyNumberError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ConversionError)(nil)
)
