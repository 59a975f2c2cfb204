// Package display decodes the A and B registers into the characters of the
// HP-35's fifteen position LED display.
//
// A holds the digits in display order, and B masks them: a 9 blanks the
// position, a 2 places the decimal point, and a 0 shows the digit from A.
// The point takes a display position of its own, so B runs one cell ahead
// of A until the point is consumed.
//
// The exponent shown is the one in A, as keyed in. It is not the
// complemented exponent of the canonical C register.
package display

import (
	"fmt"
	"iter"
	"maps"

	"github.com/kjungsoo/cs190-ps2/register"
)

const (
	Width = 15 // Display positions.
)

// Character is a displayable character.
type Character byte

const (
	CHAR_0     = Character('0')
	CHAR_1     = Character('1')
	CHAR_2     = Character('2')
	CHAR_3     = Character('3')
	CHAR_4     = Character('4')
	CHAR_5     = Character('5')
	CHAR_6     = Character('6')
	CHAR_7     = Character('7')
	CHAR_8     = Character('8')
	CHAR_9     = Character('9')
	CHAR_POINT = Character('.')
	CHAR_MINUS = Character('-')
	CHAR_BLANK = Character(' ')
)

func (char Character) String() string {
	return string(rune(char))
}

var digitCharacters = [10]Character{
	CHAR_0, CHAR_1, CHAR_2, CHAR_3, CHAR_4,
	CHAR_5, CHAR_6, CHAR_7, CHAR_8, CHAR_9,
}

var _display_defines = map[string]string{
	"DISPLAY_WIDTH": fmt.Sprintf("%v", Width),
}

// Characters is the content of the whole display.
type Characters [Width]Character

// String returns the display as text.
func (chars Characters) String() string {
	text := make([]byte, Width)
	for n, char := range chars {
		text[n] = byte(char)
	}

	return string(text)
}

// Defines for the display.
func Defines() iter.Seq2[string, string] {
	return maps.All(_display_defines)
}

// digit returns the character for a nibble; values above 9 show blank.
func digit(nibble register.Nibble) Character {
	if int(nibble) >= len(digitCharacters) {
		return CHAR_BLANK
	}

	return digitCharacters[nibble]
}

// Decode returns the display characters for the contents of A and B.
//
// Only the first decimal point of B is consumed; any later point cell
// shows its digit.
func Decode(a, b register.Register) (chars Characters) {
	for n := range chars {
		chars[n] = CHAR_BLANK
	}

	idxA := register.MantissaSignIndex
	idxB := register.MantissaSignIndex
	idxChar := 0

	// Mantissa sign. B does not take part.
	if a.MantissaSign() == register.Minus {
		chars[idxChar] = CHAR_MINUS
	}
	idxA--
	idxChar++

	// Mantissa digits.
	pointShown := false
	for idxA >= register.ExponentLength {
		mask := b.Mask(idxB)
		if mask == register.MaskPoint && !pointShown {
			chars[idxChar] = CHAR_POINT
			pointShown = true
			idxChar++
			idxB--
			mask = b.Mask(idxB)
		}
		if mask != register.MaskBlank {
			chars[idxChar] = digit(a.Nibble(idxA))
		}
		idxChar++
		idxA--
		idxB--
	}

	// Exponent sign.
	if a.ExponentSign() == register.Minus {
		chars[idxChar] = CHAR_MINUS
	}
	idxChar++
	idxA--
	idxB--

	// Exponent digits.
	for idxA >= 0 {
		if b.Mask(idxB) != register.MaskBlank {
			chars[idxChar] = digit(a.Nibble(idxA))
		}
		idxChar++
		idxA--
		idxB--
	}

	return
}

// Text returns the display for A and B as text.
func Text(a, b register.Register) string {
	return Decode(a, b).String()
}
