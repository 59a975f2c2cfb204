package register

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromDecimalString(t *testing.T) {
	assert := assert.New(t)

	reg := FromDecimalString("91250000000902")
	expected := [Length]Nibble{
		0b0010, 0b0000, 0b1001, 0b0000,
		0b0000, 0b0000, 0b0000, 0b0000,
		0b0000, 0b0000, 0b0101, 0b0010,
		0b0001, 0b1001,
	}
	assert.Equal(expected, reg.Nibbles)

	assert.Equal(Minus, reg.MantissaSign())
	assert.Equal(Minus, reg.ExponentSign())
	assert.Equal(2, reg.Exponent())
	assert.False(reg.IsZero())
}

func TestAsDecimalString(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"91250000000902",
		"00000000000000",
		"02999999999999",
		"99999999999099",
		"01234567890123",
	} {
		reg := FromDecimalString(text)
		assert.Equal(text, reg.AsDecimalString())
		assert.Equal(text, reg.String())
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"empty", "", ErrLength(0)},
		{"short", "0123456789012", ErrLength(13)},
		{"long", "012345678901234", ErrLength(15)},
		{"hex", "0123456789A123", &ErrDigit{Position: 10, Char: 'A'}},
		{"space", " 0000000000000", &ErrDigit{Position: 0, Char: ' '}},
		{"minus", "-1000000000000", &ErrDigit{Position: 0, Char: '-'}},
	}

	for _, entry := range table {
		_, err := Parse(entry.text)
		assert.Error(err, entry.name)
		assert.Equal(entry.err, err, entry.name)
	}

	var el ErrLength
	_, err := Parse("0")
	assert.True(errors.As(err, &el))
	assert.Equal(ErrLength(1), el)
}

func TestFromDecimalString_Panics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { FromDecimalString("0000") })
	assert.Panics(func() { FromDecimalString("0000000000000x") })
	assert.NotPanics(func() { FromDecimalString("00000000000000") })
}

func TestSetNibble(t *testing.T) {
	assert := assert.New(t)

	reg := FromDecimalString("00000000000000")
	copied := reg

	reg.SetNibble(MantissaSignIndex, Nibble(Minus))
	reg.SetNibble(MantissaHigh, 7)
	reg.SetNibble(0, 3)

	assert.Equal("97000000000003", reg.AsDecimalString())
	assert.Equal("00000000000000", copied.AsDecimalString())
	assert.Equal(Nibble(7), reg.Nibble(MantissaHigh))
}

func TestMask(t *testing.T) {
	assert := assert.New(t)

	reg := FromDecimalString("02999999999999")
	assert.Equal(MaskDigit, reg.Mask(MantissaSignIndex))
	assert.Equal(MaskPoint, reg.Mask(MantissaHigh))
	for n := 0; n < MantissaHigh; n++ {
		assert.Equal(MaskBlank, reg.Mask(n))
	}
	assert.True(FromDecimalString("90000000000000").IsZero())
	assert.True(FromDecimalString("00000000000999").IsZero())
	assert.False(FromDecimalString("91000000000000").IsZero())
	assert.False(FromDecimalString("00000000001000").IsZero())
}

func TestNibbleFromCharacter(t *testing.T) {
	assert := assert.New(t)

	nibble, ok := NibbleFromCharacter('5')
	assert.True(ok)
	assert.Equal(Nibble(0b0101), nibble)

	_, ok = NibbleFromCharacter('F')
	assert.False(ok)
}

func TestHexCharacterFromNibble(t *testing.T) {
	assert := assert.New(t)

	assert.Equal('F', HexCharacterFromNibble(Nibble(0b1111)))
	assert.Equal('9', HexCharacterFromNibble(Nibble(9)))
	assert.Equal('0', HexCharacterFromNibble(Empty))
}
