package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzRegister(f *testing.F) {
	f.Add("91250000000902")
	f.Add("00000000000000")
	f.Add("99999999999999")
	f.Add("0000")
	f.Add("0123456789abcd")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		reg, err := Parse(text)
		if err != nil {
			assert.Panics(func() { FromDecimalString(text) })
			return
		}

		assert.Len(reg.AsDecimalString(), Length)
		assert.Equal(text, reg.AsDecimalString())
		for _, nibble := range reg.Nibbles {
			assert.LessOrEqual(nibble, Nibble(9))
		}
	})
}
