package i8086

// Observer receives every byte consumed by a Cursor together with its offset
// in the buffer. It replaces unconditional debug tracing of the decoder.
type Observer interface {
	ObserveByte(offset int, b byte)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(offset int, b byte)

// ObserveByte calls f(offset, b).
func (f ObserverFunc) ObserveByte(offset int, b byte) {
	f(offset, b)
}

// Cursor is a forward only reader over a read only byte buffer.
type Cursor struct {
	data     []byte
	offset   int
	start    int // offset of the first byte of the instruction being decoded
	observer Observer
}

// NewCursor returns a cursor positioned at the start of data. The observer
// is optional.
func NewCursor(data []byte, observer Observer) *Cursor {
	return &Cursor{
		data:     data,
		observer: observer,
	}
}

// Next returns the next byte and advances the cursor. It returns false at
// the end of the buffer.
func (c *Cursor) Next() (byte, bool) {
	if c.offset >= len(c.data) {
		return 0, false
	}
	b := c.data[c.offset]
	if c.observer != nil {
		c.observer.ObserveByte(c.offset, b)
	}
	c.offset++
	return b, true
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.offset >= len(c.data) {
		return 0, false
	}
	return c.data[c.offset], true
}

// Offset returns the offset of the next byte to be read.
func (c *Cursor) Offset() int {
	return c.offset
}

// Done returns whether all bytes have been consumed.
func (c *Cursor) Done() bool {
	return c.offset >= len(c.data)
}

// begin marks the current offset as the start of a new instruction.
func (c *Cursor) begin() {
	c.start = c.offset
}

// span returns the bytes consumed since the last call to begin.
func (c *Cursor) span() []byte {
	return c.data[c.start:c.offset]
}

// mustNext returns the next byte of an instruction that requires it. Running
// out of bytes is reported as a truncated instruction at the instruction start.
func (c *Cursor) mustNext() (byte, error) {
	b, ok := c.Next()
	if !ok {
		return 0, &DecodeError{Offset: c.start, Err: ErrTruncatedInstruction}
	}
	return b, nil
}

// mustPeek is like mustNext but does not consume the byte.
func (c *Cursor) mustPeek() (byte, error) {
	b, ok := c.Peek()
	if !ok {
		return 0, &DecodeError{Offset: c.start, Err: ErrTruncatedInstruction}
	}
	return b, nil
}
