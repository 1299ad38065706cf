// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/assembler"
	"github.com/retroenv/disasm8086/internal/detector"
	"github.com/retroenv/disasm8086/internal/disasm"
	"github.com/retroenv/disasm8086/internal/loader"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/disasm8086/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger    *log.Logger
	assembler assembler.Assembler
	detector  *detector.Detector
	loader    *loader.Loader
}

// New creates a new disassembly pipeline that uses the given assembler for
// source input and verification.
func New(logger *log.Logger, asm assembler.Assembler) *Pipeline {
	return &Pipeline{
		logger:    logger,
		assembler: asm,
		detector:  detector.New(logger),
		loader:    loader.New(logger, asm),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, writer io.Writer) ([]i8086.Decoded, error) {
	kind := p.detector.Detect(opts)

	data, err := p.loader.Load(ctx, opts.Input, kind)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	return p.ExecuteWithData(ctx, data, opts, disasmOpts, writer)
}

// ExecuteWithData runs the disassembly pipeline with machine code that is
// already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) ([]i8086.Decoded, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.printInfo(opts, data)

	dis := disasm.New(p.logger, disasmOpts)
	listing, err := dis.Process(data, writer)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if opts.CrossCheck {
		if err := verification.CrossCheck(p.logger, data, listing); err != nil {
			return nil, fmt.Errorf("cross check failed: %w", err)
		}
		p.logger.Info("Cross check successful")
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(ctx, p.logger, p.assembler, opts.Output, data); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return listing, nil
}

// printInfo prints the information about the input file.
func (p *Pipeline) printInfo(opts options.Program, data []byte) {
	if opts.Quiet {
		return
	}
	p.logger.Info("Processing 8086 machine code",
		log.String("file", opts.Input),
		log.Int("size", len(data)))
}
