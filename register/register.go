// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package register models the 56-bit BCD registers of the HP-35.
//
// A register is fourteen nibbles. Index 0 is the least significant:
//
//	13      12 ... 3        2          1 0
//	sign    mantissa        exp sign   exponent
//
// The text form is fourteen decimal digits, most significant first.
package register

const (
	Length            = 14 // Nibbles in a register.
	ExponentLength    = 3  // Nibbles devoted to the exponent and its sign.
	ExponentSignIndex = 2  // Exponent sign cell.
	MantissaLow       = 3  // Least significant mantissa digit.
	MantissaHigh      = 12 // Most significant mantissa digit.
	MantissaSignIndex = 13 // Mantissa sign cell.
)

// Nibble is a single 4-bit digit cell.
type Nibble uint8

// Empty is the filler digit used when assembling a register.
const Empty = Nibble(0)

// Sign is the interpretation of a sign cell (mantissa or exponent).
type Sign Nibble

const (
	Plus  = Sign(0) // Positive.
	Minus = Sign(9) // Negative.
)

// Mask is the interpretation of a cell of the mask register (B).
type Mask Nibble

const (
	MaskDigit = Mask(0) // Displayed digit.
	MaskPoint = Mask(2) // Decimal point position.
	MaskBlank = Mask(9) // Not displayed.
)

// Register is a fixed array of nibbles. It is a value type.
type Register struct {
	Nibbles [Length]Nibble
}

// NibbleFromCharacter converts a decimal character to a nibble.
func NibbleFromCharacter(char rune) (nibble Nibble, ok bool) {
	if char < '0' || char > '9' {
		return
	}

	return Nibble(char - '0'), true
}

// HexCharacterFromNibble renders a nibble as a hexadecimal digit.
func HexCharacterFromNibble(nibble Nibble) rune {
	return rune("0123456789ABCDEF"[nibble&0xf])
}

// Parse a fourteen digit decimal string, most significant digit first.
func Parse(text string) (reg Register, err error) {
	if len(text) != Length {
		err = ErrLength(len(text))
		return
	}

	for n := range Length {
		nibble, ok := NibbleFromCharacter(rune(text[n]))
		if !ok {
			err = &ErrDigit{Position: n, Char: text[n]}
			return
		}
		reg.Nibbles[Length-1-n] = nibble
	}

	return
}

// FromDecimalString is Parse for trusted text; malformed text panics.
func FromDecimalString(text string) Register {
	reg, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return reg
}

// AsDecimalString returns the fourteen character text form.
func (reg Register) AsDecimalString() string {
	var text [Length]byte
	for n := range Length {
		text[n] = byte(HexCharacterFromNibble(reg.Nibbles[Length-1-n]))
	}

	return string(text[:])
}

func (reg Register) String() string {
	return reg.AsDecimalString()
}

// SetNibble sets the cell at index. The index must be in [0, Length).
func (reg *Register) SetNibble(index int, value Nibble) {
	reg.Nibbles[index] = value
}

// Nibble returns the cell at index.
func (reg Register) Nibble(index int) Nibble {
	return reg.Nibbles[index]
}

// MantissaSign interprets cell 13 as a sign.
func (reg Register) MantissaSign() Sign {
	return Sign(reg.Nibbles[MantissaSignIndex])
}

// ExponentSign interprets cell 2 as a sign.
func (reg Register) ExponentSign() Sign {
	return Sign(reg.Nibbles[ExponentSignIndex])
}

// Mask interprets the cell at index as a mask register cell.
func (reg Register) Mask(index int) Mask {
	return Mask(reg.Nibbles[index])
}

// Exponent is the two digit exponent field, without its sign.
func (reg Register) Exponent() int {
	return int(reg.Nibbles[1])*10 + int(reg.Nibbles[0])
}

// IsZero is true when every mantissa digit is zero.
func (reg Register) IsZero() bool {
	for n := MantissaLow; n <= MantissaHigh; n++ {
		if reg.Nibbles[n] != Empty {
			return false
		}
	}

	return true
}
