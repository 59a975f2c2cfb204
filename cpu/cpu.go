// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/kjungsoo/cs190-ps2/register"
)

const (
	EXPONENT_MAX        = 99  // Largest exponent magnitude held by the two digit field.
	EXPONENT_COMPLEMENT = 100 // Negative exponents are stored as 100 - |exponent|.
)

// Power-on and range-substitution register contents.
const (
	POWER_ON_A       = "00000000000000"
	POWER_ON_B       = "02999999999999"
	OVERFLOW_A_PLUS  = "09999999999099"
	OVERFLOW_A_MINUS = "99999999999099"
	OVERFLOW_B       = "02000000000000"
	UNDERFLOW_A      = "00000000000000"
	UNDERFLOW_B      = "02999999999999"
)

var _cpu_defines = map[string]string{
	"REGISTER_LENGTH":     fmt.Sprintf("%v", register.Length),
	"EXPONENT_LENGTH":     fmt.Sprintf("%v", register.ExponentLength),
	"EXPONENT_MAX":        fmt.Sprintf("%v", EXPONENT_MAX),
	"EXPONENT_COMPLEMENT": fmt.Sprintf("%v", EXPONENT_COMPLEMENT),
}

// State is the register bank of the calculator.
type State struct {
	Verbose bool // Set to enable verbose logging.

	Registers [REG_COUNT]register.Register // Register bank, indexed by RegId.
}

// NewState creates a bank in the power-on state: the display shows "0.".
func NewState() (st *State) {
	return NewStateFromStrings(POWER_ON_A, POWER_ON_B)
}

// NewStateFromStrings creates a bank with A and B set from decimal strings
// and C canonicalized from them. The remaining registers are zero.
// Malformed strings panic.
func NewStateFromStrings(a, b string) (st *State) {
	st = &State{}
	st.Registers[REG_A] = register.FromDecimalString(a)
	st.Registers[REG_B] = register.FromDecimalString(b)

	st.Canonicalize()

	return
}

// Defines for the register bank.
func (st *State) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Register returns a copy of a register.
func (st *State) Register(id RegId) register.Register {
	return st.Registers[id]
}

// SetRegister replaces a register. C is not recomputed.
func (st *State) SetRegister(id RegId, reg register.Register) {
	if st.Verbose {
		log.Printf("cpu: %v <- %v", id, reg)
	}

	st.Registers[id] = reg
}

// DecimalString returns the text form of a register.
func (st *State) DecimalString(id RegId) string {
	return st.Registers[id].AsDecimalString()
}

// String returns the bank as text, one register per line.
func (st *State) String() (text string) {
	for _, id := range RegIds {
		text += fmt.Sprintf("% 5s: %v\n", id.String(), st.Registers[id])
	}

	return
}

// Reset returns the bank to the power-on state.
func (st *State) Reset() {
	if st.Verbose {
		log.Printf("cpu: reset")
	}

	clear(st.Registers[:])
	st.replace(POWER_ON_A, POWER_ON_B)
}

// Overflow replaces A and B with the largest magnitude of the given sign,
// and canonicalizes.
func (st *State) Overflow(positive bool) {
	if st.Verbose {
		log.Printf("cpu: overflow (positive %v)", positive)
	}

	if positive {
		st.replace(OVERFLOW_A_PLUS, OVERFLOW_B)
	} else {
		st.replace(OVERFLOW_A_MINUS, OVERFLOW_B)
	}
}

// Underflow replaces A and B with a displayed zero, and canonicalizes.
func (st *State) Underflow() {
	if st.Verbose {
		log.Printf("cpu: underflow")
	}

	st.replace(UNDERFLOW_A, UNDERFLOW_B)
}

// replace A and B with fixed contents that are always in range.
func (st *State) replace(a, b string) {
	st.Registers[REG_A] = register.FromDecimalString(a)
	st.Registers[REG_B] = register.FromDecimalString(b)

	st.Canonicalize()
}
