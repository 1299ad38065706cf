package i8086

// Op identifies the operation of an instruction.
type Op uint8

const (
	OpNoop Op = iota
	OpMov
	OpAdd
	OpSub
	OpCmp
	OpJe
	OpJl
	OpJle
	OpJb
	OpJbe
	OpJp
	OpJo
	OpJs
	OpJne
	OpJnl
	OpJnle
	OpJnb
	OpJnbe
	OpJnp
	OpJno
	OpJns
	OpLoop
	OpLoopz
	OpLoopnz
	OpJcxz
)

var opNames = [...]string{
	OpNoop:   "noop",
	OpMov:    "mov",
	OpAdd:    "add",
	OpSub:    "sub",
	OpCmp:    "cmp",
	OpJe:     "je",
	OpJl:     "jl",
	OpJle:    "jle",
	OpJb:     "jb",
	OpJbe:    "jbe",
	OpJp:     "jp",
	OpJo:     "jo",
	OpJs:     "js",
	OpJne:    "jne",
	OpJnl:    "jnl",
	OpJnle:   "jnle",
	OpJnb:    "jnb",
	OpJnbe:   "jnbe",
	OpJnp:    "jnp",
	OpJno:    "jno",
	OpJns:    "jns",
	OpLoop:   "loop",
	OpLoopz:  "loopz",
	OpLoopnz: "loopnz",
	OpJcxz:   "jcxz",
}

// String returns the lowercase mnemonic.
func (o Op) String() string {
	if int(o) >= len(opNames) {
		return ""
	}
	return opNames[o]
}

// IsBranch returns whether the operation is a conditional jump or loop.
func (o Op) IsBranch() bool {
	return o >= OpJe && o <= OpJcxz
}

// Instruction is a decoded instruction. The set of implementations is closed:
// Transfer, ImmediateTransfer, Branch and Noop.
type Instruction interface {
	// Op returns the operation of the instruction.
	Op() Op

	isInstruction()
}

// Transfer is a mov, add, sub or cmp between two register or memory operands.
type Transfer struct {
	Operation Op
	Src       Location
	Dest      Location
}

// ImmediateTransfer is a mov, add, sub or cmp of immediate data into a
// register or memory operand.
type ImmediateTransfer struct {
	Operation Op
	Data      Immediate
	Dest      Location
}

// Branch is a conditional jump or loop with a signed relative increment.
type Branch struct {
	Operation Op
	Increment int8
}

// Noop is the placeholder for a byte that did not match any known encoding.
type Noop struct{}

func (i Transfer) Op() Op          { return i.Operation }
func (i ImmediateTransfer) Op() Op { return i.Operation }
func (i Branch) Op() Op            { return i.Operation }
func (Noop) Op() Op                { return OpNoop }

func (Transfer) isInstruction()          {}
func (ImmediateTransfer) isInstruction() {}
func (Branch) isInstruction()            {}
func (Noop) isInstruction()              {}

func (i Transfer) String() string          { return Format(i) }
func (i ImmediateTransfer) String() string { return Format(i) }
func (i Branch) String() string            { return Format(i) }
func (i Noop) String() string              { return Format(i) }
