// Package options contains the program options.
package options

import (
	"github.com/retroenv/disasm8086/internal/arch/i8086"
)

// Parameters contains file path options.
type Parameters struct {
	Input     string `flag:"i" usage:"input file, raw 8086 binary or .asm source"`
	Output    string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch     string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
	Assembler string `flag:"nasm" usage:"path of the nasm executable" default:"nasm"`
}

// Flags contains behavior options.
type Flags struct {
	Binary       bool `flag:"binary" usage:"treat input as raw binary, even with .asm extension"`
	AssembleTest bool `flag:"verify" usage:"verify output by reassembling and comparing to input"`
	CrossCheck   bool `flag:"crosscheck" usage:"compare decoded instructions against an independent x86 decoder"`
	Debug        bool `flag:"debug" usage:"enable debug logging and byte tracing"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit file offsets in comments"`
	Strict        bool `flag:"strict" usage:"fail on unsupported encodings instead of skipping one byte"`
	UnknownAsData bool `flag:"data" usage:"output unsupported bytes as db directives instead of noop"`
	RelativeJumps bool `flag:"relative" usage:"output jump increments relative to $ for reassembly"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	Unknown i8086.UnknownPolicy // handling of unsupported encodings

	HexComments    bool
	OffsetComments bool
	RelativeJumps  bool // output branch increments as $+2+n
	Trace          bool // log every consumed byte at debug level
	UnknownAsData  bool // output noop instructions as db directives
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		Unknown:        i8086.Lenient,
		HexComments:    true,
		OffsetComments: true,
	}
}
