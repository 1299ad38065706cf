package i8086

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCursorNext(t *testing.T) {
	var observed []int
	observer := ObserverFunc(func(offset int, b byte) {
		observed = append(observed, offset)
	})
	c := NewCursor([]byte{0x89, 0xD9}, observer)

	b, ok := c.Peek()
	assert.True(t, ok)
	assert.Equal(t, byte(0x89), b)
	assert.Equal(t, 0, c.Offset())

	b, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0x89), b)

	b, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, byte(0xD9), b)
	assert.True(t, c.Done())

	_, ok = c.Next()
	assert.False(t, ok)
	_, ok = c.Peek()
	assert.False(t, ok)

	assert.Equal(t, []int{0, 1}, observed)
}

func TestCursorMustNextTruncated(t *testing.T) {
	c := NewCursor([]byte{0x90, 0x89}, nil)
	_, _ = c.Next()
	c.begin()
	_, err := c.mustNext()
	assert.NoError(t, err)

	_, err = c.mustNext()
	assert.True(t, errors.Is(err, ErrTruncatedInstruction))

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 1, decodeErr.Offset)
}
