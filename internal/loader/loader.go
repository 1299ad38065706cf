// Package loader produces the machine code buffer to disassemble.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/disasm8086/internal/assembler"
	"github.com/retroenv/disasm8086/internal/detector"
	"github.com/retroenv/retrogolib/log"
)

// Loader reads input files, assembling source files first.
type Loader struct {
	logger    *log.Logger
	assembler assembler.Assembler
}

// New creates a new loader that uses the given assembler for source input.
func New(logger *log.Logger, asm assembler.Assembler) *Loader {
	return &Loader{
		logger:    logger,
		assembler: asm,
	}
}

// Load returns the machine code of the input file.
func (l *Loader) Load(ctx context.Context, input string, kind detector.Kind) ([]byte, error) {
	switch kind {
	case detector.Binary:
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("reading file '%s': %w", input, err)
		}
		return data, nil

	case detector.Source:
		return l.assemble(ctx, input)

	default:
		return nil, fmt.Errorf("unsupported input kind '%s'", kind)
	}
}

// assemble assembles the source file into a temporary binary file, reads it
// and removes it again.
func (l *Loader) assemble(ctx context.Context, input string) ([]byte, error) {
	outputFile, err := os.CreateTemp("", filepath.Base(input)+".*.bin")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	_ = outputFile.Close()
	defer func() {
		_ = os.Remove(outputFile.Name())
	}()

	if err := l.assembler.Assemble(ctx, input, outputFile.Name()); err != nil {
		return nil, fmt.Errorf("assembling '%s': %w", input, err)
	}

	data, err := os.ReadFile(outputFile.Name())
	if err != nil {
		return nil, fmt.Errorf("reading assembled file: %w", err)
	}
	l.logger.Debug("Assembled source file",
		log.String("file", input),
		log.Int("size", len(data)))
	return data, nil
}
