package i8086

import (
	"fmt"
	"strconv"
)

// branchSize is the encoded size of every conditional jump and loop.
const branchSize = 2

// Formatter renders instructions as assembly text.
type Formatter struct {
	// RelativeJumps renders branch increments relative to the current
	// instruction address using the nasm $ symbol, for example "jne $+2-4",
	// which keeps the text assemblable back into identical bytes.
	RelativeJumps bool
}

// Format renders a single instruction using the default formatter.
func Format(ins Instruction) string {
	return Formatter{}.Format(ins)
}

// FormatAll renders every instruction using the default formatter.
func FormatAll(instructions []Instruction) []string {
	return Formatter{}.FormatAll(instructions)
}

// Format renders a single instruction without trailing newline.
func (f Formatter) Format(ins Instruction) string {
	switch i := ins.(type) {
	case Transfer:
		return fmt.Sprintf("%s %s, %s", i.Operation, i.Dest, i.Src)

	case ImmediateTransfer:
		return fmt.Sprintf("%s %s, %s", i.Operation, i.Dest, formatImmediate(i.Data, i.Dest))

	case Branch:
		if f.RelativeJumps {
			return fmt.Sprintf("%s $+%d%+d", i.Operation, branchSize, i.Increment)
		}
		return i.Operation.String() + " " + strconv.Itoa(int(i.Increment))

	case Noop:
		return OpNoop.String()

	default:
		panic(fmt.Sprintf("unsupported instruction type %T", ins))
	}
}

// FormatAll renders every instruction, one line per instruction in the same
// order.
func (f Formatter) FormatAll(instructions []Instruction) []string {
	lines := make([]string, len(instructions))
	for i, ins := range instructions {
		lines[i] = f.Format(ins)
	}
	return lines
}

// formatImmediate prefixes immediates that are written to memory with their
// size, as the bracketed address does not convey it.
func formatImmediate(data Immediate, dest Location) string {
	if dest.IsMemAddr {
		return data.Width.Prefix() + " " + data.String()
	}
	return data.String()
}
