package disasm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/options"
)

// header selects the 16 bit mode of nasm.
const header = "bits 16\n\n"

// commentColumn is the column that comments start at.
const commentColumn = 32

// writer writes a decoded listing as nasm source.
type writer struct {
	out       *bufio.Writer
	options   options.Disassembler
	formatter i8086.Formatter
}

func newWriter(out io.Writer, options options.Disassembler, formatter i8086.Formatter) *writer {
	return &writer{
		out:       bufio.NewWriter(out),
		options:   options,
		formatter: formatter,
	}
}

func (w *writer) write(listing []i8086.Decoded) error {
	if _, err := w.out.WriteString(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, dec := range listing {
		line := w.line(dec)
		if _, err := w.out.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	return w.out.Flush()
}

// line renders a single instruction with its optional comment.
func (w *writer) line(dec i8086.Decoded) string {
	code := w.code(dec)

	comment := w.comment(dec)
	if comment == "" {
		return code
	}
	if len(code) < commentColumn {
		code += strings.Repeat(" ", commentColumn-len(code))
	} else {
		code += " "
	}
	return code + "; " + comment
}

func (w *writer) code(dec i8086.Decoded) string {
	if _, ok := dec.Instruction.(i8086.Noop); ok && w.options.UnknownAsData {
		values := make([]string, len(dec.Bytes))
		for i, b := range dec.Bytes {
			values[i] = fmt.Sprintf("0x%02X", b)
		}
		return "db " + strings.Join(values, ", ")
	}
	return w.formatter.Format(dec.Instruction)
}

func (w *writer) comment(dec i8086.Decoded) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("%04X:", dec.Offset))
	}
	if w.options.HexComments {
		for _, b := range dec.Bytes {
			parts = append(parts, fmt.Sprintf("%02X", b))
		}
	}
	return strings.Join(parts, " ")
}
