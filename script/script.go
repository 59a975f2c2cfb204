// Package script drives an emulator from Starlark programs.
//
// A script keys values into the registers and reads back the canonical
// register and the display:
//
//	enter("91250000000902", "02009999999000")
//	c = get(C)       # "91250000000998"
//	shown = display() # "-1.25       -02"
//
// Builtins: set(reg, digits), get(reg), enter(a, b), canonicalize(),
// overflow(positive), underflow(), reset(), display().
//
// Registers are named by the predeclared strings A, B, C, D, E, F and M,
// or by index. The emulator defines are predeclared as well.
package script

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/kjungsoo/cs190-ps2/cpu"
	"github.com/kjungsoo/cs190-ps2/emulator"
)

// Script binds an emulator to a Starlark environment.
type Script struct {
	Emulator *emulator.Emulator

	// Print receives the output of the print() builtin. Defaults to
	// discarding it.
	Print func(msg string)
}

// New returns a script environment for an emulator.
func New(emu *emulator.Emulator) *Script {
	return &Script{Emulator: emu}
}

// Predeclared returns the names visible to a script.
func (sc *Script) Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}

	for key, value := range sc.Emulator.Defines() {
		if num, err := strconv.Atoi(value); err == nil {
			pred[key] = starlark.MakeInt(num)
		} else {
			pred[key] = starlark.String(value)
		}
	}

	for _, id := range cpu.RegIds {
		pred[id.String()] = starlark.String(id.String())
	}

	for _, builtin := range []*starlark.Builtin{
		starlark.NewBuiltin("set", sc.set),
		starlark.NewBuiltin("get", sc.get),
		starlark.NewBuiltin("enter", sc.enter),
		starlark.NewBuiltin("canonicalize", sc.canonicalize),
		starlark.NewBuiltin("overflow", sc.overflow),
		starlark.NewBuiltin("underflow", sc.underflow),
		starlark.NewBuiltin("reset", sc.reset),
		starlark.NewBuiltin("display", sc.display),
	} {
		pred[builtin.Name()] = builtin
	}

	return
}

// Exec runs a script, returning its global variables.
func (sc *Script) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if sc.Print != nil {
				sc.Print(msg)
			}
		},
	}
	opts := syntax.FileOptions{}

	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, sc.Predeclared())
	if err != nil {
		err = &ErrScript{Filename: filename, Err: err}
	}

	return
}

// regId converts a register name or index argument.
func regId(value starlark.Value) (id cpu.RegId, err error) {
	switch v := value.(type) {
	case starlark.String:
		return cpu.ParseRegId(string(v))
	case starlark.Int:
		n, ok := v.Int64()
		if !ok || !cpu.RegId(n).Valid() {
			err = ErrRegister(v.String())
			return
		}
		id = cpu.RegId(n)
		return
	}

	err = ErrRegister(value.String())
	return
}

func (sc *Script) set(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var reg starlark.Value
	var digits string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &reg, "digits", &digits)
	if err != nil {
		return nil, err
	}

	id, err := regId(reg)
	if err != nil {
		return nil, err
	}

	err = sc.Emulator.Set(id, digits)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}

func (sc *Script) get(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var reg starlark.Value
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "reg", &reg)
	if err != nil {
		return nil, err
	}

	id, err := regId(reg)
	if err != nil {
		return nil, err
	}

	return starlark.String(sc.Emulator.DecimalString(id)), nil
}

func (sc *Script) enter(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var a, mask string
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "a", &a, "b", &mask)
	if err != nil {
		return nil, err
	}

	err = sc.Emulator.Enter(a, mask)
	if err != nil {
		return nil, err
	}

	return starlark.String(sc.Emulator.Canonical()), nil
}

func (sc *Script) canonicalize(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	sc.Emulator.Canonicalize()

	return starlark.String(sc.Emulator.Canonical()), nil
}

func (sc *Script) overflow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	positive := true
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "positive?", &positive)
	if err != nil {
		return nil, err
	}

	sc.Emulator.Overflow(positive)

	return starlark.String(sc.Emulator.Canonical()), nil
}

func (sc *Script) underflow(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	sc.Emulator.Underflow()

	return starlark.String(sc.Emulator.Canonical()), nil
}

func (sc *Script) reset(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	sc.Emulator.Reset()

	return starlark.None, nil
}

func (sc *Script) display(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.String(sc.Emulator.Display()), nil
}
