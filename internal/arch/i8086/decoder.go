package i8086

import (
	"errors"
)

// UnknownPolicy selects how leading bytes that match no instruction family
// are handled.
type UnknownPolicy uint8

const (
	// Lenient emits a Noop for the unknown byte and continues decoding at
	// the following byte.
	Lenient UnknownPolicy = iota
	// Strict aborts decoding with ErrUnsupportedEncoding.
	Strict
)

func (p UnknownPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "lenient"
}

// Config controls a Decoder.
type Config struct {
	Unknown  UnknownPolicy
	Observer Observer // optional, receives every consumed byte
}

// Decoded is an instruction together with its offset and its encoded bytes.
// Bytes references the decoded buffer.
type Decoded struct {
	Offset      int
	Bytes       []byte
	Instruction Instruction
}

// Decoder decodes 8086 machine code. It holds no state between calls and can
// be used concurrently on different buffers.
type Decoder struct {
	cfg Config
}

// New returns a decoder using the given configuration.
func New(cfg Config) *Decoder {
	return &Decoder{cfg: cfg}
}

// Decode decodes the buffer using a lenient decoder.
func Decode(data []byte) ([]Instruction, error) {
	return New(Config{}).Decode(data)
}

// Decode returns the instructions of the buffer in order.
func (d *Decoder) Decode(data []byte) ([]Instruction, error) {
	listing, err := d.DecodeListing(data)
	if err != nil {
		return nil, err
	}

	instructions := make([]Instruction, len(listing))
	for i, dec := range listing {
		instructions[i] = dec.Instruction
	}
	return instructions, nil
}

// DecodeListing returns the instructions of the buffer in order together with
// their offsets and encoded bytes. No instructions are returned on error.
func (d *Decoder) DecodeListing(data []byte) ([]Decoded, error) {
	c := NewCursor(data, d.cfg.Observer)
	var listing []Decoded

	for {
		c.begin()
		b, ok := c.Next()
		if !ok {
			return listing, nil
		}

		ins, err := decodeInstruction(c, b)
		if err != nil {
			if !errors.Is(err, ErrUnsupportedEncoding) {
				return nil, err
			}
			if d.cfg.Unknown == Strict {
				return nil, &DecodeError{Offset: c.start, Err: err}
			}
			ins = Noop{}
		}

		listing = append(listing, Decoded{
			Offset:      c.start,
			Bytes:       c.span(),
			Instruction: ins,
		})
	}
}

// arithmeticOps maps the 3 bit operation field shared by the arithmetic
// opcode groups to the supported operations.
var arithmeticOps = map[byte]Op{
	0b000: OpAdd,
	0b101: OpSub,
	0b111: OpCmp,
}

// branchOps maps the opcode of every conditional jump and loop.
var branchOps = map[byte]Op{
	0x70: OpJo,
	0x71: OpJno,
	0x72: OpJb,
	0x73: OpJnb,
	0x74: OpJe,
	0x75: OpJne,
	0x76: OpJbe,
	0x77: OpJnbe,
	0x78: OpJs,
	0x79: OpJns,
	0x7A: OpJp,
	0x7B: OpJnp,
	0x7C: OpJl,
	0x7D: OpJnl,
	0x7E: OpJle,
	0x7F: OpJnle,
	0xE0: OpLoopnz,
	0xE1: OpLoopz,
	0xE2: OpLoop,
	0xE3: OpJcxz,
}

// decodeInstruction classifies the leading byte b and decodes the rest of the
// instruction. It returns ErrUnsupportedEncoding without consuming further
// bytes if b matches no family.
func decodeInstruction(c *Cursor, b byte) (Instruction, error) {
	if op, ok := branchOps[b]; ok {
		return decodeBranch(c, op)
	}

	switch {
	case Field(b, 0, 2) == 0b00:
		op, ok := arithmeticOps[Field(b, 2, 3)]
		if !ok {
			return nil, ErrUnsupportedEncoding
		}
		switch Field(b, 5, 2) {
		case 0b00, 0b01: // 00ooo0dw
			return decodeRegMemArithmetic(c, op, b)
		case 0b10: // 00ooo10w
			return decodeAccumulatorImmediate(c, op, b)
		}

	case Field(b, 0, 6) == 0b100000:
		return decodeImmediateArithmetic(c, b)

	case Field(b, 0, 6) == 0b100010:
		return decodeRegMemMov(c, b)

	case Field(b, 0, 6) == 0b101000:
		return decodeAccumulatorMov(c, b)

	case Field(b, 0, 4) == 0b1011:
		return decodeImmediateToRegister(c, b)

	case Field(b, 0, 7) == 0b1100011:
		return decodeImmediateMov(c, b)
	}

	return nil, ErrUnsupportedEncoding
}

// decodeRegMemArithmetic decodes add, sub and cmp between register and
// register/memory: 00ooo0dw mod-reg-r/m.
func decodeRegMemArithmetic(c *Cursor, op Op, b byte) (Instruction, error) {
	src, dest, err := decodeRegRM(c, Field(b, 6, 1), Field(b, 7, 1))
	if err != nil {
		return nil, err
	}
	return Transfer{Operation: op, Src: src, Dest: dest}, nil
}

// decodeAccumulatorImmediate decodes add, sub and cmp of immediate data to
// the accumulator: 00ooo10w data.
func decodeAccumulatorImmediate(c *Cursor, op Op, b byte) (Instruction, error) {
	w := Field(b, 7, 1)
	data, err := decodeImmediate(c, 0, w)
	if err != nil {
		return nil, err
	}
	return ImmediateTransfer{Operation: op, Data: data, Dest: RegisterLocation(accumulator(w))}, nil
}

// decodeImmediateArithmetic decodes add, sub and cmp of immediate data to
// register/memory: 100000sw mod-ooo-r/m data. The operation is selected by
// the reg field of the mode byte.
func decodeImmediateArithmetic(c *Cursor, b byte) (Instruction, error) {
	m, err := peekModeByte(c)
	if err != nil {
		return nil, err
	}
	op, ok := arithmeticOps[m.reg]
	if !ok {
		return nil, ErrUnsupportedEncoding
	}
	_, _ = c.Next()

	s, w := Field(b, 6, 1), Field(b, 7, 1)
	dest, err := decodeRM(c, m, w)
	if err != nil {
		return nil, err
	}
	data, err := decodeImmediate(c, s, w)
	if err != nil {
		return nil, err
	}
	return ImmediateTransfer{Operation: op, Data: data, Dest: dest}, nil
}

// decodeRegMemMov decodes mov between register and register/memory:
// 100010dw mod-reg-r/m.
func decodeRegMemMov(c *Cursor, b byte) (Instruction, error) {
	src, dest, err := decodeRegRM(c, Field(b, 6, 1), Field(b, 7, 1))
	if err != nil {
		return nil, err
	}
	return Transfer{Operation: OpMov, Src: src, Dest: dest}, nil
}

// decodeAccumulatorMov decodes mov between accumulator and a direct memory
// address: 1010000w addr for memory to accumulator, 1010001w addr for
// accumulator to memory.
func decodeAccumulatorMov(c *Cursor, b byte) (Instruction, error) {
	toMemory, w := Field(b, 6, 1), Field(b, 7, 1)
	address, err := decodeWord(c)
	if err != nil {
		return nil, err
	}

	acc := RegisterLocation(accumulator(w))
	mem := DirectAddress(uint16(address))
	if toMemory == 1 {
		return Transfer{Operation: OpMov, Src: acc, Dest: mem}, nil
	}
	return Transfer{Operation: OpMov, Src: mem, Dest: acc}, nil
}

// decodeImmediateToRegister decodes mov of immediate data to a register:
// 1011wreg data.
func decodeImmediateToRegister(c *Cursor, b byte) (Instruction, error) {
	w := Field(b, 4, 1)
	dest := RegisterLocation(DecodeRegister(Field(b, 5, 3), w))
	data, err := decodeImmediate(c, 0, w)
	if err != nil {
		return nil, err
	}
	return ImmediateTransfer{Operation: OpMov, Data: data, Dest: dest}, nil
}

// decodeImmediateMov decodes mov of immediate data to register/memory:
// 1100011w mod-000-r/m data.
func decodeImmediateMov(c *Cursor, b byte) (Instruction, error) {
	m, err := peekModeByte(c)
	if err != nil {
		return nil, err
	}
	if m.reg != 0b000 {
		return nil, ErrUnsupportedEncoding
	}
	_, _ = c.Next()

	w := Field(b, 7, 1)
	dest, err := decodeRM(c, m, w)
	if err != nil {
		return nil, err
	}
	data, err := decodeImmediate(c, 0, w)
	if err != nil {
		return nil, err
	}
	return ImmediateTransfer{Operation: OpMov, Data: data, Dest: dest}, nil
}

// decodeBranch decodes a conditional jump or loop and its 8 bit increment.
func decodeBranch(c *Cursor, op Op) (Instruction, error) {
	b, err := c.mustNext()
	if err != nil {
		return nil, err
	}
	return Branch{Operation: op, Increment: int8(b)}, nil
}
