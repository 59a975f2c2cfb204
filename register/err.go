package register

import (
	"github.com/kjungsoo/cs190-ps2/translate"
)

var f = translate.From

// ErrLength is the length of text that is not a register.
type ErrLength int

func (el ErrLength) Error() string {
	return f("register text has %d characters, want %d", int(el), Length)
}

// ErrDigit is a non-decimal character in register text.
type ErrDigit struct {
	Position int
	Char     byte
}

func (err *ErrDigit) Error() string {
	return f("register text position %d: %q is not a decimal digit", err.Position, err.Char)
}
