// Copyright 2025, The arams-go Authors

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"

	"github.com/arams-go/arams/aram"
	"github.com/arams-go/arams/asm"
	"github.com/arams-go/arams/diag"
	"github.com/arams-go/arams/internal"
	"github.com/arams-go/arams/machine"
	"github.com/arams-go/arams/translate"
)

const (
	EXIT_OK     = 0 // Program checked or ran successfully.
	EXIT_USER   = 1 // Bad usage, compile or execution error.
	EXIT_SYSTEM = 2 // Input could not be read.
)

const DEFAULT_MAX_STEPS = 10_000_000

var errNoInput = errors.New("no program given, and stdin is a terminal")

// readSource reads the program from the -c file, the single positional
// argument (a path, or else the program text itself), or stdin.
func readSource(compile string, args []string, stdin io.Reader) (name string, text string, err error) {
	switch {
	case len(compile) != 0:
		name = compile
	case len(args) == 1:
		if info, serr := os.Stat(args[0]); serr == nil && info.Mode().IsRegular() {
			name = args[0]
		} else {
			return "<argument>", args[0], nil
		}
	default:
		name = "<stdin>"
		if inf, ok := stdin.(*os.File); ok {
			if info, serr := inf.Stat(); serr == nil && info.Mode()&os.ModeCharDevice != 0 {
				err = errNoInput
				return
			}
		}
		var data []byte
		data, err = io.ReadAll(stdin)
		text = string(data)
		return
	}

	data, err := os.ReadFile(name)
	text = string(data)
	return
}

// registerTable renders the accumulator and register bank.
func registerTable(snap *machine.Snapshot) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Register", "Value"})
	tw.AppendRow(table.Row{"acc", snap.Accumulator})
	for addr, value := range internal.Sorted(snap.Registers) {
		tw.AppendRow(table.Row{addr, value})
	}
	return tw.Render()
}

// listingTable renders a resolved program.
func listingTable(prog *asm.Program) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Ip", "Line", "Labels", "Instruction"})
	for ip, inst := range prog.Instructions {
		tw.AppendRow(table.Row{ip, inst.LineNo, strings.Join(prog.LabelsAt(ip), " "), inst.String()})
	}
	return tw.Render()
}

func writeJSON(w io.Writer, value any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(value)
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (code int) {
	var compile string
	var registers string
	var lang string
	var check bool
	var analyze bool
	var listing bool
	var asJSON bool
	var maxSteps int
	var verbose bool

	flags := flag.NewFlagSet("aram", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&compile, "c", "", ".aram file to run")
	flags.StringVar(&registers, "r", "", "Initial registers, as a dict: '{1: 5}'")
	flags.StringVar(&lang, "lang", "", "Message language, overriding the locale")
	flags.BoolVar(&check, "check", false, "Check the program, do not execute")
	flags.BoolVar(&analyze, "analyze", false, "Print the tokens of every line, do not execute")
	flags.BoolVar(&listing, "l", false, "Print the resolved program listing")
	flags.BoolVar(&asJSON, "json", false, "Print results as JSON")
	flags.IntVar(&maxSteps, "max-steps", DEFAULT_MAX_STEPS, "Maximum executed instructions, 0 for no limit")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return EXIT_OK
		}
		return EXIT_USER
	}

	logger := log.New(stderr, "aram: ", 0)
	if verbose {
		log.SetOutput(stderr)
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if flags.NArg() > 1 || (len(compile) != 0 && flags.NArg() != 0) {
		logger.Printf("unknown arguments: %v", flags.Args())
		return EXIT_USER
	}

	name, text, err := readSource(compile, flags.Args(), stdin)
	if err != nil {
		logger.Printf("%v: %v", name, err)
		if errors.Is(err, errNoInput) {
			flags.Usage()
			return EXIT_USER
		}
		return EXIT_SYSTEM
	}

	if analyze {
		writeJSON(stdout, aram.Analyze(text))
		return EXIT_OK
	}

	opts := []aram.Option{aram.WithVerbose(verbose), aram.WithMaxSteps(maxSteps)}

	prog, diags := aram.Compile(text, opts...)
	if len(diags) > 0 {
		if asJSON {
			writeJSON(stdout, diags)
		}
		for _, d := range diags {
			logger.Printf("%v: %v", name, d.Error())
		}
		return EXIT_USER
	}

	if listing {
		fmt.Fprintln(stdout, listingTable(prog))
	}

	if check {
		if asJSON {
			writeJSON(stdout, diag.List{})
		}
		return EXIT_OK
	}

	regs, err := aram.ParseRegisters(registers)
	if err != nil {
		logger.Printf("-r: %v", err)
		return EXIT_USER
	}

	snap, err := aram.Execute(prog, regs, opts...)
	if err != nil {
		if asJSON {
			writeJSON(stdout, err)
		}
		logger.Printf("%v: %v", name, err)
		return EXIT_USER
	}

	if asJSON {
		writeJSON(stdout, snap)
	} else {
		fmt.Fprintln(stdout, registerTable(snap))
	}

	return EXIT_OK
}

func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		out.Flush()
	})

	atexit.Exit(run(os.Args[1:], os.Stdin, out, os.Stderr))
}
