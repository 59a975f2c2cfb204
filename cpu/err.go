package cpu

import (
	"github.com/kjungsoo/cs190-ps2/translate"
)

var f = translate.From

// ErrRegId is an unknown register name.
type ErrRegId string

func (err ErrRegId) Error() string {
	return f("register %q unknown", string(err))
}
