package i8086

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormatLocation(t *testing.T) {
	base := MemoryLocation(BX, SI)

	tests := []struct {
		name     string
		location Location
		expected string
	}{
		{"register", RegisterLocation(CX), "cx"},
		{"no displacement", base, "[bx + si]"},
		{"zero displacement", Location{IsMemAddr: true, Register: BX, AddrCalc: SI, HasDisplacement: true}, "[bx + si]"},
		{"negative displacement", Location{IsMemAddr: true, Register: BX, AddrCalc: SI, Displacement: -5, HasDisplacement: true}, "[bx + si - 5]"},
		{"positive displacement", Location{IsMemAddr: true, Register: BX, AddrCalc: SI, Displacement: 5, HasDisplacement: true}, "[bx + si + 5]"},
		{"lowest displacement", Location{IsMemAddr: true, Register: DI, Displacement: -32768, HasDisplacement: true}, "[di - 32768]"},
		{"base only", MemoryLocation(BP, NoRegister), "[bp]"},
		{"direct address", DirectAddress(1000), "[1000]"},
		{"high direct address", DirectAddress(0xFFFF), "[65535]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.location.String())
		})
	}
}

func TestFormatInvalidLocation(t *testing.T) {
	tests := []struct {
		name     string
		location Location
	}{
		{"memory without base or displacement", Location{IsMemAddr: true}},
		{"register without name", Location{}},
		{"register with displacement", Location{Register: AX, HasDisplacement: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.location.Validate())
			defer func() {
				assert.True(t, recover() != nil)
			}()
			_ = tt.location.String()
		})
	}
}

func TestFormatImmediateSizePrefix(t *testing.T) {
	memory := MemoryLocation(BP, DI)

	tests := []struct {
		name        string
		instruction Instruction
		expected    string
	}{
		{"byte to memory", ImmediateTransfer{Operation: OpMov, Data: ByteImmediate(12), Dest: memory}, "mov [bp + di], byte 12"},
		{"word to memory", ImmediateTransfer{Operation: OpMov, Data: WordImmediate(347), Dest: memory}, "mov [bp + di], word 347"},
		{"byte to register", ImmediateTransfer{Operation: OpMov, Data: ByteImmediate(12), Dest: RegisterLocation(CL)}, "mov cl, 12"},
		{"word to register", ImmediateTransfer{Operation: OpCmp, Data: WordImmediate(-1), Dest: RegisterLocation(SI)}, "cmp si, -1"},
		{"word to direct address", ImmediateTransfer{Operation: OpAdd, Data: WordImmediate(7), Dest: DirectAddress(16)}, "add [16], word 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.instruction))
		})
	}
}

func TestFormatInstructions(t *testing.T) {
	tests := []struct {
		name        string
		instruction Instruction
		expected    string
	}{
		{"transfer destination first", Transfer{Operation: OpSub, Src: RegisterLocation(BX), Dest: RegisterLocation(CX)}, "sub cx, bx"},
		{"branch", Branch{Operation: OpJnle, Increment: -7}, "jnle -7"},
		{"noop", Noop{}, "noop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.instruction))
		})
	}
}

func TestFormatRelativeJumps(t *testing.T) {
	f := Formatter{RelativeJumps: true}
	assert.Equal(t, "jne $+2-4", f.Format(Branch{Operation: OpJne, Increment: -4}))
	assert.Equal(t, "loop $+2+0", f.Format(Branch{Operation: OpLoop}))
	assert.Equal(t, "mov cx, bx", f.Format(Transfer{Operation: OpMov, Src: RegisterLocation(BX), Dest: RegisterLocation(CX)}))
}

func TestFormatIdempotent(t *testing.T) {
	ins := ImmediateTransfer{
		Operation: OpAdd,
		Data:      ByteImmediate(-3),
		Dest:      Location{IsMemAddr: true, Register: BP, AddrCalc: SI, Displacement: -300, HasDisplacement: true},
	}
	first := Format(ins)
	assert.Equal(t, "add [bp + si - 300], byte -3", first)
	assert.Equal(t, first, Format(ins))
	assert.Equal(t, first, ins.String())
}
