package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/disasm8086/internal/arch/i8086"
	"github.com/retroenv/disasm8086/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fakeAssembler writes fixed bytes as the assembled output and records the
// assembled source files.
type fakeAssembler struct {
	data    []byte
	sources []string
}

func (f *fakeAssembler) Assemble(_ context.Context, asmFile, outputFile string) error {
	f.sources = append(f.sources, asmFile)
	return os.WriteFile(outputFile, f.data, 0o600)
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger, &fakeAssembler{})

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecuteBinary(t *testing.T) {
	input := filepath.Join(t.TempDir(), "listing_0037")
	assert.NoError(t, os.WriteFile(input, []byte{0x89, 0xD9}, 0o600))

	p := New(log.NewTestLogger(t), &fakeAssembler{})
	opts := options.Program{Parameters: options.Parameters{Input: input}}

	var buf bytes.Buffer
	listing, err := p.Execute(context.Background(), opts, options.Disassembler{}, &buf)
	assert.NoError(t, err)
	assert.Len(t, listing, 1)
	assert.Equal(t, "bits 16\n\nmov cx, bx\n", buf.String())
}

func TestExecuteSource(t *testing.T) {
	asm := &fakeAssembler{data: []byte{0xB1, 0x0C, 0xE2, 0xFC}}
	p := New(log.NewTestLogger(t), asm)
	opts := options.Program{
		Parameters: options.Parameters{Input: "listing.asm"},
		Flags:      options.Flags{CrossCheck: true},
	}

	var buf bytes.Buffer
	_, err := p.Execute(context.Background(), opts, options.Disassembler{}, &buf)
	assert.NoError(t, err)
	assert.Equal(t, []string{"listing.asm"}, asm.sources)
	assert.Equal(t, "bits 16\n\nmov cl, 12\nloop -4\n", buf.String())
}

func TestExecuteWithDataVerify(t *testing.T) {
	data := []byte{0x0F, 0x89, 0xD9, 0x75, 0xFB}
	output := filepath.Join(t.TempDir(), "out.asm")

	tests := []struct {
		name        string
		assembled   []byte
		errContains string
	}{
		{
			name:      "identical reassembly",
			assembled: data,
		},
		{
			name:        "mismatching reassembly",
			assembled:   []byte{0x0F, 0x89, 0xD9, 0x75, 0xFD},
			errContains: "verification failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := &fakeAssembler{data: tt.assembled}
			p := New(log.NewTestLogger(t), asm)
			opts := options.Program{
				Parameters: options.Parameters{Output: output},
				Flags:      options.Flags{AssembleTest: true},
			}
			disasmOpts := options.Disassembler{RelativeJumps: true, UnknownAsData: true}

			var buf bytes.Buffer
			_, err := p.ExecuteWithData(context.Background(), data, opts, disasmOpts, &buf)
			if tt.errContains == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errContains)
			}
			assert.Equal(t, []string{output}, asm.sources)
			assert.Equal(t, "bits 16\n\ndb 0x0F\nmov cx, bx\njne $+2-5\n", buf.String())
		})
	}
}

func TestExecuteWithDataStrict(t *testing.T) {
	p := New(log.NewTestLogger(t), &fakeAssembler{})
	disasmOpts := options.Disassembler{Unknown: i8086.Strict}

	var buf bytes.Buffer
	_, err := p.ExecuteWithData(context.Background(), []byte{0x90}, options.Program{}, disasmOpts, &buf)
	assert.True(t, errors.Is(err, i8086.ErrUnsupportedEncoding))
}

func TestExecuteWithDataCancelled(t *testing.T) {
	p := New(log.NewTestLogger(t), &fakeAssembler{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := p.ExecuteWithData(ctx, []byte{0x89, 0xD9}, options.Program{}, options.Disassembler{}, &buf)
	assert.True(t, errors.Is(err, context.Canceled))
}
