package i8086

// Register is one of the 8 byte or 8 word general purpose registers.
// NoRegister marks an absent register in a Location.
type Register uint8

const (
	NoRegister Register = iota
	AL
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

var registerNames = [...]string{
	NoRegister: "",
	AL:         "al",
	CL:         "cl",
	DL:         "dl",
	BL:         "bl",
	AH:         "ah",
	CH:         "ch",
	DH:         "dh",
	BH:         "bh",
	AX:         "ax",
	CX:         "cx",
	DX:         "dx",
	BX:         "bx",
	SP:         "sp",
	BP:         "bp",
	SI:         "si",
	DI:         "di",
}

// registerTable maps a 3 bit register field to a register, indexed by the
// width flag first.
var registerTable = [2][8]Register{
	{AL, CL, DL, BL, AH, CH, DH, BH},
	{AX, CX, DX, BX, SP, BP, SI, DI},
}

// effectiveAddressTable maps the r/m field of a memory operand to its base
// and index register.
var effectiveAddressTable = [8][2]Register{
	{BX, SI},
	{BX, DI},
	{BP, SI},
	{BP, DI},
	{SI, NoRegister},
	{DI, NoRegister},
	{BP, NoRegister},
	{BX, NoRegister},
}

// String returns the lowercase register name.
func (r Register) String() string {
	if int(r) >= len(registerNames) {
		return ""
	}
	return registerNames[r]
}

// IsWord returns whether the register is one of the 16 bit registers.
func (r Register) IsWord() bool {
	return r >= AX && r <= DI
}

// DecodeRegister maps a 3 bit register field to a register of the set
// selected by the width flag w.
func DecodeRegister(field, w byte) Register {
	return registerTable[w&1][field&0b111]
}

// accumulator returns AL or AX depending on the width flag.
func accumulator(w byte) Register {
	return DecodeRegister(0b000, w)
}
