package i8086

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is an instruction operand: either a register, or a memory
// address computed from an optional base register, an optional index
// register and an optional displacement.
type Location struct {
	IsMemAddr bool
	Register  Register // base register for memory operands
	AddrCalc  Register // index register added to the base

	Displacement    int16
	HasDisplacement bool
}

// RegisterLocation returns a register direct operand.
func RegisterLocation(reg Register) Location {
	return Location{Register: reg}
}

// DirectAddress returns a memory operand that only consists of an absolute
// 16 bit offset.
func DirectAddress(address uint16) Location {
	return Location{
		IsMemAddr:       true,
		Displacement:    int16(address),
		HasDisplacement: true,
	}
}

// MemoryLocation returns a memory operand with a base register, an optional
// index register and no displacement.
func MemoryLocation(base, index Register) Location {
	return Location{
		IsMemAddr: true,
		Register:  base,
		AddrCalc:  index,
	}
}

// WithDisplacement returns a copy of the memory operand with the given
// displacement.
func (l Location) WithDisplacement(displacement int16) Location {
	l.Displacement = displacement
	l.HasDisplacement = true
	return l
}

// IsDirectAddress returns whether the operand is a memory operand without
// base register.
func (l Location) IsDirectAddress() bool {
	return l.IsMemAddr && l.Register == NoRegister
}

// Validate checks the operand invariants. A violation is a defect in the
// code that constructed the operand.
func (l Location) Validate() error {
	if l.Register == NoRegister && (!l.IsMemAddr || !l.HasDisplacement) {
		return ErrInvalidDirectAddressing
	}
	if !l.IsMemAddr && (l.AddrCalc != NoRegister || l.HasDisplacement) {
		return fmt.Errorf("register operand %s with address calculation: %w", l.Register, ErrInvalidDirectAddressing)
	}
	return nil
}

// String renders the operand in nasm syntax. It panics if the operand
// violates its invariants.
func (l Location) String() string {
	if err := l.Validate(); err != nil {
		panic(err)
	}

	if !l.IsMemAddr {
		return l.Register.String()
	}
	if l.Register == NoRegister {
		return "[" + strconv.Itoa(int(uint16(l.Displacement))) + "]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(l.Register.String())
	if l.AddrCalc != NoRegister {
		sb.WriteString(" + ")
		sb.WriteString(l.AddrCalc.String())
	}
	if l.HasDisplacement {
		switch {
		case l.Displacement < 0:
			sb.WriteString(" - ")
			sb.WriteString(strconv.Itoa(-int(l.Displacement)))
		case l.Displacement > 0:
			sb.WriteString(" + ")
			sb.WriteString(strconv.Itoa(int(l.Displacement)))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
