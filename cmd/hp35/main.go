// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kjungsoo/cs190-ps2/cpu"
	"github.com/kjungsoo/cs190-ps2/emulator"
	"github.com/kjungsoo/cs190-ps2/internal"
	"github.com/kjungsoo/cs190-ps2/script"
	"github.com/kjungsoo/cs190-ps2/translate"
)

func main() {
	var a string
	var b string
	var exec string
	var input string
	var output string
	var lang string
	var registers bool
	var defines bool
	var verbose bool

	flag.StringVar(&a, "a", "", "Register A, 14 digits")
	flag.StringVar(&b, "b", "", "Register B (display mask), 14 digits")
	flag.StringVar(&exec, "e", "", ".star script to execute")
	flag.StringVar(&input, "i", "", "Tape input of A B pairs ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Output")
	flag.StringVar(&lang, "l", "", "Message language (ie en-US)")
	flag.BoolVar(&registers, "r", false, "Print the register bank when done")
	flag.BoolVar(&defines, "D", false, "Print the defines and exit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	if verbose {
		log.Printf("hp35: language %v", translate.Language())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	if defines {
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Fprintf(out, "%v=%v\n", key, value)
		}
		return
	}

	// Key in a single value.
	if len(a) != 0 || len(b) != 0 {
		if len(a) == 0 {
			a = emu.DecimalString(cpu.REG_A)
		}
		if len(b) == 0 {
			b = emu.DecimalString(cpu.REG_B)
		}
		err := emu.Enter(a, b)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		fmt.Fprintf(out, "%v %q\n", emu.Canonical(), emu.Display())
	}

	// Run a script against the bank.
	if len(exec) != 0 {
		src, err := os.ReadFile(exec)
		if err != nil {
			log.Fatalf("%v: %v", exec, err)
		}

		sc := script.New(emu)
		sc.Print = func(msg string) { fmt.Fprintln(out, msg) }
		_, err = sc.Exec(exec, src)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Run a tape of values.
	if len(input) != 0 {
		inf := os.Stdin
		if input != "-" {
			var err error
			inf, err = os.Open(input)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
			defer inf.Close()
		}

		err := emu.Run(inf, out)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	if registers {
		fmt.Fprint(out, emu.State.String())
	}
}
