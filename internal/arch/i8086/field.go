package i8086

import "fmt"

// Field extracts width bits of b starting at bit offset start. Bit 0 is the
// most significant bit of the byte, matching the bit order of the opcode
// tables in the 8086 manual.
func Field(b byte, start, width uint) byte {
	if width == 0 || start+width > 8 {
		panic(fmt.Sprintf("invalid bit field start %d width %d", start, width))
	}
	return b >> (8 - start - width) & (1<<width - 1)
}
