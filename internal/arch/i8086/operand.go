package i8086

// Addressing modes of the mod field.
const (
	modMemory       = 0b00
	modMemory8      = 0b01
	modMemory16     = 0b10
	modRegister     = 0b11
	rmDirectAddress = 0b110
	directionToReg  = 1
)

// modeByte is a split mod/reg/r-m byte.
type modeByte struct {
	mod byte
	reg byte
	rm  byte
}

func splitModeByte(b byte) modeByte {
	return modeByte{
		mod: Field(b, 0, 2),
		reg: Field(b, 2, 3),
		rm:  Field(b, 5, 3),
	}
}

// readModeByte consumes and splits the mode byte of an instruction.
func readModeByte(c *Cursor) (modeByte, error) {
	b, err := c.mustNext()
	if err != nil {
		return modeByte{}, err
	}
	return splitModeByte(b), nil
}

// peekModeByte splits the mode byte without consuming it, for opcodes whose
// operation is selected by the reg field.
func peekModeByte(c *Cursor) (modeByte, error) {
	b, err := c.mustPeek()
	if err != nil {
		return modeByte{}, err
	}
	return splitModeByte(b), nil
}

// decodeRegRM decodes a mode byte with a register operand in the reg field
// and returns the source and destination operands as selected by the
// direction flag d.
func decodeRegRM(c *Cursor, d, w byte) (src, dest Location, err error) {
	m, err := readModeByte(c)
	if err != nil {
		return Location{}, Location{}, err
	}

	reg := RegisterLocation(DecodeRegister(m.reg, w))
	rm, err := decodeRM(c, m, w)
	if err != nil {
		return Location{}, Location{}, err
	}

	if d == directionToReg {
		return rm, reg, nil
	}
	return reg, rm, nil
}

// decodeRM decodes the r/m operand of a mode byte and consumes any trailing
// displacement bytes.
func decodeRM(c *Cursor, m modeByte, w byte) (Location, error) {
	switch m.mod {
	case modRegister:
		return RegisterLocation(DecodeRegister(m.rm, w)), nil

	case modMemory:
		if m.rm == rmDirectAddress {
			address, err := decodeWord(c)
			if err != nil {
				return Location{}, err
			}
			return DirectAddress(uint16(address)), nil
		}
		return MemoryLocation(effectiveAddressTable[m.rm][0], effectiveAddressTable[m.rm][1]), nil

	default:
		displacement, err := decodeDisplacement(c, m.mod)
		if err != nil {
			return Location{}, err
		}
		return Location{
			IsMemAddr:       true,
			Register:        effectiveAddressTable[m.rm][0],
			AddrCalc:        effectiveAddressTable[m.rm][1],
			Displacement:    displacement,
			HasDisplacement: true,
		}, nil
	}
}

// decodeDisplacement reads a sign extended 8 bit displacement for mod 01 or
// a full 16 bit displacement for mod 10.
func decodeDisplacement(c *Cursor, mod byte) (int16, error) {
	if mod == modMemory16 {
		return decodeWord(c)
	}

	b, err := c.mustNext()
	if err != nil {
		return 0, err
	}
	return int16(int8(b)), nil
}
