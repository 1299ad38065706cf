package i8086

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedInstruction is returned when the buffer ends inside an instruction.
	ErrTruncatedInstruction = errors.New("truncated instruction")
	// ErrUnsupportedEncoding is returned in strict mode for a leading byte
	// that matches no known instruction family.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	// ErrInvalidDirectAddressing signals a memory operand that has neither a
	// base register nor a displacement. It is only raised as a panic since it
	// can not result from decoding input bytes.
	ErrInvalidDirectAddressing = errors.New("invalid direct addressing")
)

// DecodeError reports the offset of the first byte of the instruction that
// could not be decoded.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding instruction at offset 0x%04X: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
