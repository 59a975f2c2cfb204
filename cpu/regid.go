package cpu

import (
	"strings"
)

// RegId names a register of the bank.
type RegId int

//go:generate go tool stringer -linecomment -type=RegId
const (
	REG_A = RegId(0) // A
	REG_B = RegId(1) // B
	REG_C = RegId(2) // C
	REG_D = RegId(3) // D
	REG_E = RegId(4) // E
	REG_F = RegId(5) // F
	REG_M = RegId(6) // M

	REG_COUNT = 7 // Registers in the bank.
)

// RegIds lists the registers in bank order.
var RegIds = [REG_COUNT]RegId{REG_A, REG_B, REG_C, REG_D, REG_E, REG_F, REG_M}

// ParseRegId looks up a register by its single letter name.
func ParseRegId(name string) (id RegId, err error) {
	for _, id = range RegIds {
		if strings.EqualFold(id.String(), name) {
			return
		}
	}

	err = ErrRegId(name)
	return
}

// Valid is true for registers that exist in the bank.
func (id RegId) Valid() bool {
	return id >= REG_A && id < REG_COUNT
}
