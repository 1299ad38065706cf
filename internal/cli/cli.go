// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/disasm8086/internal/config"
	"github.com/retroenv/disasm8086/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" && opts.Input == "" {
		opts.Input = args[0]
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, config.DisassemblerOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: disasm8086 [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations rejects options that contradict each other.
func validateOptionCombinations(opts options.Program) error {
	if opts.AssembleTest && opts.Output == "" && opts.Batch == "" {
		return errors.New("verification requires an output file, set it with -o")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input file, raw 8086 binary or .asm source")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.bin")
	flags.StringVar(&opts.Assembler, "nasm", "nasm", "path of the nasm executable used for .asm input and verification")
	flags.BoolVar(&opts.Binary, "binary", false, "read input file as raw binary even if it has an .asm extension")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by assembling with nasm and check if it matches the input")
	flags.BoolVar(&opts.CrossCheck, "crosscheck", false, "compare the decoded instructions against an independent x86 decoder")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.Strict, "strict", false, "fail on unsupported encodings instead of skipping a single byte")
	flags.BoolVar(&opts.UnknownAsData, "data", false, "output unsupported bytes as db directives instead of noop")
	flags.BoolVar(&opts.RelativeJumps, "relative", false, "output jump increments relative to $ so the output can be reassembled")
}
