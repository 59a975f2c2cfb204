package script

import (
	"github.com/kjungsoo/cs190-ps2/translate"
)

var f = translate.From

// ErrRegister is a script value that does not name a register.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("%v is not a register", string(err))
}

// ErrScript indicates the script that failed.
type ErrScript struct {
	Filename string
	Err      error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
