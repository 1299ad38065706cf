// Package i8086 decodes Intel 8086 machine code into instruction values and
// renders them as nasm compatible assembly text.
//
// # Decoding
//
// A Decoder consumes a byte buffer strictly left to right through a Cursor.
// Every leading byte is classified into an instruction family:
//   - register/memory to register/memory: mov, add, sub, cmp
//   - immediate to register/memory: mov, add, sub, cmp
//   - immediate to accumulator: add, sub, cmp
//   - accumulator to/from direct memory and immediate to register: mov
//   - conditional jumps and loops with an 8 bit relative increment
//
// Leading bytes that match no family are handled by the UnknownPolicy of the
// decoder: Lenient emits a Noop and resynchronizes on the next byte, Strict
// aborts with ErrUnsupportedEncoding.
//
// # Formatting
//
// A Formatter renders one instruction per line without a trailing newline:
//
//	mov cx, bx
//	add [bx + si - 5], byte 12
//	jne -4
//
// Relative jump increments are printed as decoded and are never resolved to
// absolute addresses or labels.
package i8086
