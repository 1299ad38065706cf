// Package detector handles input kind detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Kind is the kind of an input file.
type Kind string

const (
	// Binary is raw 8086 machine code.
	Binary Kind = "binary"
	// Source is nasm assembly source that has to be assembled first.
	Source Kind = "source"
)

// Detector handles input kind detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new input detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input kind from options or the input filename
// extension. The binary flag overrides the detection.
func (d *Detector) Detect(opts options.Program) Kind {
	if opts.Binary {
		return Binary
	}

	kind := detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected input kind",
		log.String("kind", string(kind)),
		log.String("file", opts.Input))
	return kind
}

// detectFromFile determines the input kind based on file extension.
func detectFromFile(filename string) Kind {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".asm", ".s", ".nasm":
		return Source
	default:
		return Binary
	}
}
