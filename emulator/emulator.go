// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/kjungsoo/cs190-ps2/cpu"
	"github.com/kjungsoo/cs190-ps2/display"
	"github.com/kjungsoo/cs190-ps2/internal"
	"github.com/kjungsoo/cs190-ps2/register"
)

const (
	TAPE_COMMENT = "#" // Lines of a tape starting with this are ignored.
)

var _emulator_defines = map[string]string{
	"TAPE_FIELDS": fmt.Sprintf("%v", 2),
}

// Emulator state. Register bank + display.
type Emulator struct {
	Verbose    bool // If set, enables verbose logging.
	*cpu.State      // Reference to the register bank.
}

// NewEmulator creates a new emulator in the power-on state.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		State: cpu.NewState(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.State.Defines(),
		display.Defines(),
	)
}

// sync carries the emulator's verbosity down to the register bank.
func (emu *Emulator) sync() {
	emu.State.Verbose = emu.Verbose
}

// Reset the emulator to the power-on state.
func (emu *Emulator) Reset() {
	emu.sync()
	emu.State.Reset()
}

// Set replaces a register from its text form. C is not recomputed.
func (emu *Emulator) Set(id cpu.RegId, text string) (err error) {
	if !id.Valid() {
		err = ErrRegId(int(id))
		return
	}

	reg, err := register.Parse(text)
	if err != nil {
		err = &ErrEntry{RegId: id, Err: err}
		return
	}

	emu.sync()
	emu.State.SetRegister(id, reg)

	return
}

// Enter replaces A and B as keyed in, and recomputes C.
// Neither register changes unless both parse.
func (emu *Emulator) Enter(a, b string) (err error) {
	regA, err := register.Parse(a)
	if err != nil {
		err = &ErrEntry{RegId: cpu.REG_A, Err: err}
		return
	}

	regB, err := register.Parse(b)
	if err != nil {
		err = &ErrEntry{RegId: cpu.REG_B, Err: err}
		return
	}

	emu.sync()
	emu.State.SetRegister(cpu.REG_A, regA)
	emu.State.SetRegister(cpu.REG_B, regB)
	emu.State.Canonicalize()

	return
}

// Canonicalize recomputes C from the current A and B.
func (emu *Emulator) Canonicalize() {
	emu.sync()
	emu.State.Canonicalize()
}

// Overflow replaces A and B with the largest magnitude of the given sign.
func (emu *Emulator) Overflow(positive bool) {
	emu.sync()
	emu.State.Overflow(positive)
}

// Underflow replaces A and B with zero.
func (emu *Emulator) Underflow() {
	emu.sync()
	emu.State.Underflow()
}

// Canonical returns the text of register C.
func (emu *Emulator) Canonical() string {
	return emu.State.DecimalString(cpu.REG_C)
}

// Display returns what the display shows for A and B.
func (emu *Emulator) Display() string {
	return display.Text(emu.State.Register(cpu.REG_A), emu.State.Register(cpu.REG_B))
}

// Run reads a tape of A and B pairs, one per line, and writes C and the
// display for each.
func (emu *Emulator) Run(in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)

	lineno := 0
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	for scanner.Scan() {
		lineno++

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, TAPE_COMMENT) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			err = ErrTapeFields(len(fields))
			return
		}

		err = emu.Enter(fields[0], fields[1])
		if err != nil {
			return
		}

		if emu.Verbose {
			log.Printf("emulator: line %d\n%v", lineno, emu.State.String())
		}

		_, err = fmt.Fprintf(out, "%v %q\n", emu.Canonical(), emu.Display())
		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}
