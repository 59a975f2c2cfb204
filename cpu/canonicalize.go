package cpu

import (
	"log"

	"github.com/kjungsoo/cs190-ps2/register"
)

// displayed copies the mantissa digits of A that B shows, walking the
// registers as the display does: B runs one cell ahead of A until the
// decimal point is consumed. It returns the index of the units digit;
// without a point that is the lowest digit shown.
func displayed(a, b register.Register) (mantissa register.Register, units int) {
	units = -1
	lowest := register.MantissaLow

	idxB := register.MantissaSignIndex
	for idxA := register.MantissaHigh; idxA >= register.MantissaLow; idxA-- {
		if b.Mask(idxB) == register.MaskPoint && units < 0 {
			units = idxB
			idxB--
		}
		if b.Mask(idxB) != register.MaskBlank {
			mantissa.Nibbles[idxA] = a.Nibbles[idxA]
			lowest = idxA
		}
		idxB--
	}

	if units < 0 {
		units = lowest
	}

	return
}

// leadingDigit finds the most significant non-zero mantissa digit.
func leadingDigit(reg register.Register) (index int, ok bool) {
	for n := register.MantissaHigh; n >= register.MantissaLow; n-- {
		if reg.Nibbles[n] != register.Empty {
			return n, true
		}
	}

	return
}

// shiftMantissa moves the mantissa digits up by count places. Digits
// shifted past the top are lost, vacated low digits become Empty.
func shiftMantissa(reg *register.Register, count int) {
	if count <= 0 {
		return
	}

	for n := register.MantissaHigh; n >= register.MantissaLow; n-- {
		from := n - count
		if from >= register.MantissaLow {
			reg.Nibbles[n] = reg.Nibbles[from]
		} else {
			reg.Nibbles[n] = register.Empty
		}
	}
}

// setExponent writes a signed exponent into the sign cell and the two digit
// field. Negative exponents are complemented from 100.
// The exponent must be in [-EXPONENT_MAX, EXPONENT_MAX].
func setExponent(reg *register.Register, exponent int) {
	sign := register.Plus
	field := exponent
	if exponent < 0 {
		sign = register.Minus
		field = EXPONENT_COMPLEMENT + exponent
	}

	reg.Nibbles[register.ExponentSignIndex] = register.Nibble(sign)
	reg.Nibbles[1] = register.Nibble(field / 10)
	reg.Nibbles[0] = register.Nibble(field % 10)
}

// Canonicalize computes register C from what A and B show to the user.
//
// C holds the value with its first significant digit in the top mantissa
// cell. If the exponent falls outside two digits, A and B are replaced by
// the overflow or underflow contents instead, and C is computed from those.
func (st *State) Canonicalize() {
	a := st.Registers[REG_A]
	b := st.Registers[REG_B]

	c, point := displayed(a, b)
	c.Nibbles[register.MantissaSignIndex] = a.Nibbles[register.MantissaSignIndex]

	if c.IsZero() {
		// Exactly zero: no exponent, whatever was keyed in.
		st.store(c)
		return
	}

	lead, _ := leadingDigit(c)

	exponent := a.Exponent()
	if a.ExponentSign() == register.Minus {
		exponent = -exponent
	}
	exponent += lead - point

	switch {
	case exponent > EXPONENT_MAX:
		st.Overflow(a.MantissaSign() != register.Minus)
		return
	case exponent < -EXPONENT_MAX:
		st.Underflow()
		return
	}

	shiftMantissa(&c, register.MantissaHigh-lead)
	setExponent(&c, exponent)

	st.store(c)
}

func (st *State) store(c register.Register) {
	if st.Verbose {
		log.Printf("cpu: canonical A:%v B:%v C:%v", st.Registers[REG_A], st.Registers[REG_B], c)
	}

	st.Registers[REG_C] = c
}
