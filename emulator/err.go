package emulator

import (
	"github.com/kjungsoo/cs190-ps2/cpu"
	"github.com/kjungsoo/cs190-ps2/translate"
)

var f = translate.From

// ErrRuntime indicates the tape line of an error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrEntry indicates the register that could not be keyed in.
type ErrEntry struct {
	RegId cpu.RegId
	Err   error
}

func (err *ErrEntry) Error() string {
	return f("register %v: %v", err.RegId, err.Err)
}

func (err *ErrEntry) Unwrap() error {
	return err.Err
}

// ErrRegId is a register index outside the bank.
type ErrRegId int

func (err ErrRegId) Error() string {
	return f("register %d out of range", int(err))
}

// ErrTapeFields is a tape line without exactly two registers.
type ErrTapeFields int

func (err ErrTapeFields) Error() string {
	return f("tape line has %d fields, want A and B", int(err))
}
