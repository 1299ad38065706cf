package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "listing_0039.disasm.asm", GenerateOutputFilename("listing_0039"))
	assert.Equal(t, filepath.Join("dir", "code.disasm.asm"), GenerateOutputFilename(filepath.Join("dir", "code.bin")))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	files, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Input: "single.bin"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.bin"}, files)

	files, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.bin")}})
	assert.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.bin"), filepath.Join(dir, "b.bin")}, files)

	_, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.com")}})
	assert.ErrorContains(t, err, "no files found")
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "listing")
	output := filepath.Join(dir, "listing.disasm.asm")
	assert.NoError(t, os.WriteFile(input, []byte{0x88, 0xC6, 0x90}, 0o600))

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{Quiet: true},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.Disassembler{})
	assert.NoError(t, err)

	content, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "bits 16\n\nmov dh, al\nnoop\n", string(content))
}
