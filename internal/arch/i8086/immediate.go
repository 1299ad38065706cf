package i8086

import "strconv"

// Width is the encoded size of an immediate value.
type Width uint8

const (
	Byte Width = iota
	Word
)

// Prefix returns the nasm size specifier of the width.
func (w Width) Prefix() string {
	if w == Word {
		return "word"
	}
	return "byte"
}

// Immediate is an immediate data value tagged with the width it was encoded
// with, which can differ from the width of the destination operand.
type Immediate struct {
	Width Width
	Value int16
}

// ByteImmediate returns an immediate that was encoded as a single byte.
func ByteImmediate(v int8) Immediate {
	return Immediate{Width: Byte, Value: int16(v)}
}

// WordImmediate returns an immediate that is word sized.
func WordImmediate(v int16) Immediate {
	return Immediate{Width: Word, Value: v}
}

func (i Immediate) String() string {
	return strconv.Itoa(int(i.Value))
}

// decodeImmediate reads the data bytes of an instruction. The sign extend
// flag s only applies to word data, in which case a single byte is read and
// sign extended.
func decodeImmediate(c *Cursor, s, w byte) (Immediate, error) {
	lo, err := c.mustNext()
	if err != nil {
		return Immediate{}, err
	}

	switch {
	case w == 0:
		return ByteImmediate(int8(lo)), nil
	case s == 1:
		return WordImmediate(int16(int8(lo))), nil
	}

	hi, err := c.mustNext()
	if err != nil {
		return Immediate{}, err
	}
	return WordImmediate(int16(uint16(hi)<<8 | uint16(lo))), nil
}

// decodeWord reads a 16 bit little endian value.
func decodeWord(c *Cursor) (int16, error) {
	lo, err := c.mustNext()
	if err != nil {
		return 0, err
	}
	hi, err := c.mustNext()
	if err != nil {
		return 0, err
	}
	return int16(uint16(hi)<<8 | uint16(lo)), nil
}
