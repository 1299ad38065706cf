package nasm

import (
	"context"
	"testing"

	"github.com/retroenv/disasm8086/internal/assembler"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	assert.Equal(t, assembler.Nasm, New("").path)
	assert.Equal(t, "/opt/nasm/bin/nasm", New("/opt/nasm/bin/nasm").path)
}

func TestAssembleMissingExecutable(t *testing.T) {
	n := New("nasm-executable-that-does-not-exist")
	err := n.Assemble(context.Background(), "in.asm", "out")
	assert.ErrorContains(t, err, "is not installed")
}
