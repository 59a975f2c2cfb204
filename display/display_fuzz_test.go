package display

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjungsoo/cs190-ps2/register"
)

func FuzzDecode(f *testing.F) {
	f.Add(uint64(0), uint64(2999999999999))
	f.Add(uint64(91250000000902), uint64(2009999999000))
	f.Add(uint64(99999999999999), uint64(20202020202020))

	f.Fuzz(func(t *testing.T, va uint64, vb uint64) {
		assert := assert.New(t)

		a := register.FromDecimalString(fmt.Sprintf("%014d", va%100_000_000_000_000))
		b := register.FromDecimalString(fmt.Sprintf("%014d", vb%100_000_000_000_000))

		text := Text(a, b)
		assert.Len(text, Width)
		assert.Empty(strings.Trim(text, "0123456789.- "), text)
		assert.LessOrEqual(strings.Count(text, "."), 1, text)

		// Blank positions depend on B and the sign cells of A only.
		other := a
		for n := range register.Length {
			if n != register.MantissaSignIndex && n != register.ExponentSignIndex {
				other.SetNibble(n, register.Nibble((int(a.Nibble(n))+1)%10))
			}
		}
		otherText := Text(other, b)
		for n := range Width {
			assert.Equal(text[n] == ' ', otherText[n] == ' ', fmt.Sprintf("A:%v B:%v [%d]", a, b, n))
		}
	})
}
