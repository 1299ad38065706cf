// Package disasm implements the 8086 disassembler that turns machine code
// into a nasm compatible listing.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Disasm implements a disassembler.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler

	decoder   *i8086.Decoder
	formatter i8086.Formatter
}

// New creates a new disassembler for the given options.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	dis := &Disasm{
		logger:  logger,
		options: options,
		formatter: i8086.Formatter{
			RelativeJumps: options.RelativeJumps,
		},
	}

	cfg := i8086.Config{
		Unknown: options.Unknown,
	}
	if options.Trace {
		cfg.Observer = i8086.ObserverFunc(dis.traceByte)
	}
	dis.decoder = i8086.New(cfg)
	return dis
}

// Process disassembles the machine code and writes the listing to the writer.
// It returns the decoded instructions.
func (dis *Disasm) Process(data []byte, mainWriter io.Writer) ([]i8086.Decoded, error) {
	listing, err := dis.decoder.DecodeListing(data)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	dis.logger.Debug("Decoded machine code",
		log.Int("bytes", len(data)),
		log.Int("instructions", len(listing)),
		log.String("unknown_policy", dis.options.Unknown.String()))

	w := newWriter(mainWriter, dis.options, dis.formatter)
	if err := w.write(listing); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return listing, nil
}

// traceByte logs every byte consumed by the decoder.
func (dis *Disasm) traceByte(offset int, b byte) {
	dis.logger.Debug("Byte",
		log.Hex("offset", offset),
		log.String("bits", fmt.Sprintf("%08b", b)))
}
