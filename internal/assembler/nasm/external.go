// Package nasm provides helpers to call the nasm assembler.
package nasm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/retroenv/disasm8086/internal/assembler"
)

var _ assembler.Assembler = (*Nasm)(nil)

// Nasm calls an external nasm executable.
type Nasm struct {
	path string
}

// New returns a nasm assembler using the given executable path, which
// defaults to nasm from the PATH.
func New(path string) *Nasm {
	if path == "" {
		path = assembler.Nasm
	}
	return &Nasm{path: path}
}

// Assemble calls the external assembler to generate a raw binary file from
// the given asm file.
func (n *Nasm) Assemble(ctx context.Context, asmFile, outputFile string) error {
	if _, err := exec.LookPath(n.path); err != nil {
		return fmt.Errorf("%s is not installed", n.path)
	}

	cmd := exec.CommandContext(ctx, n.path, "-f", "bin", "-o", outputFile, asmFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembling file: %s: %w", strings.TrimSpace(string(out)), err)
	}

	return nil
}
