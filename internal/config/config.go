// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// DisassemblerOptions derives the disassembler options from the program
// options. Verification needs output that reassembles into the input, which
// forces unsupported bytes to be written as data and jumps as relative
// expressions.
func DisassemblerOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	disasmOptions.RelativeJumps = opts.RelativeJumps
	disasmOptions.UnknownAsData = opts.UnknownAsData
	disasmOptions.Trace = opts.Debug

	if opts.Strict {
		disasmOptions.Unknown = i8086.Strict
	}
	if opts.AssembleTest {
		disasmOptions.RelativeJumps = true
		disasmOptions.UnknownAsData = true
	}
	return disasmOptions
}
