// Package assembler defines the external assembler used to turn assembly
// source into 8086 machine code.
package assembler

import "context"

const (
	Nasm = "nasm"
)

// Assembler assembles an assembly source file into a raw binary file.
type Assembler interface {
	Assemble(ctx context.Context, asmFile, outputFile string) error
}
