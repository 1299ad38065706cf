package verification

import (
	"fmt"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/arch/x86/x86asm"
)

// decoderMode is the x86asm operand size mode of the 8086.
const decoderMode = 16

// referenceOps maps every operation to the mnemonic used by x86asm, which
// prefers the above/greater spelling of some conditional jumps.
var referenceOps = map[i8086.Op]x86asm.Op{
	i8086.OpMov:    x86asm.MOV,
	i8086.OpAdd:    x86asm.ADD,
	i8086.OpSub:    x86asm.SUB,
	i8086.OpCmp:    x86asm.CMP,
	i8086.OpJe:     x86asm.JE,
	i8086.OpJl:     x86asm.JL,
	i8086.OpJle:    x86asm.JLE,
	i8086.OpJb:     x86asm.JB,
	i8086.OpJbe:    x86asm.JBE,
	i8086.OpJp:     x86asm.JP,
	i8086.OpJo:     x86asm.JO,
	i8086.OpJs:     x86asm.JS,
	i8086.OpJne:    x86asm.JNE,
	i8086.OpJnl:    x86asm.JGE,
	i8086.OpJnle:   x86asm.JG,
	i8086.OpJnb:    x86asm.JAE,
	i8086.OpJnbe:   x86asm.JA,
	i8086.OpJnp:    x86asm.JNP,
	i8086.OpJno:    x86asm.JNO,
	i8086.OpJns:    x86asm.JNS,
	i8086.OpLoop:   x86asm.LOOP,
	i8086.OpLoopz:  x86asm.LOOPE,
	i8086.OpLoopnz: x86asm.LOOPNE,
	i8086.OpJcxz:   x86asm.JCXZ,
}

// CrossCheck decodes every instruction of the listing again using x86asm and
// reports instructions whose length or operation differ. Noop instructions
// are skipped as they do not represent a decoded encoding.
func CrossCheck(logger *log.Logger, data []byte, listing []i8086.Decoded) error {
	mismatches := set.New[int]()
	var count int

	// mark records a mismatching instruction and returns whether it should
	// be logged.
	mark := func(offset int) bool {
		if !mismatches.Contains(offset) {
			mismatches.Add(offset)
			count++
		}
		return count <= maxReportedMismatches
	}

	for _, dec := range listing {
		if _, ok := dec.Instruction.(i8086.Noop); ok {
			continue
		}

		inst, err := x86asm.Decode(data[dec.Offset:], decoderMode)
		if err != nil {
			if mark(dec.Offset) {
				logger.Error("Reference decoder failed",
					log.Hex("offset", dec.Offset),
					log.String("decoded", i8086.Format(dec.Instruction)),
					log.Err(err))
			}
			continue
		}

		if inst.Len != len(dec.Bytes) && mark(dec.Offset) {
			logger.Error("Instruction length mismatch",
				log.Hex("offset", dec.Offset),
				log.String("decoded", i8086.Format(dec.Instruction)),
				log.Int("expected", inst.Len),
				log.Int("got", len(dec.Bytes)))
		}
		if expected := referenceOps[dec.Instruction.Op()]; inst.Op != expected && mark(dec.Offset) {
			logger.Error("Instruction mismatch",
				log.Hex("offset", dec.Offset),
				log.String("expected", inst.Op.String()),
				log.String("got", dec.Instruction.Op().String()))
		}
	}

	if count == 0 {
		return nil
	}
	return fmt.Errorf("%d instruction mismatches", count)
}
