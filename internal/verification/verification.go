// Package verification verifies that the generated output file recreates the input.
package verification

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/disasm8086/internal/assembler"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the number of logged mismatches.
const maxReportedMismatches = 10

// VerifyOutput reassembles the output file and verifies that it recreates
// the exact input machine code.
func VerifyOutput(ctx context.Context, logger *log.Logger, asm assembler.Assembler, outputFile string, input []byte) error {
	binaryFile, err := os.CreateTemp("", filepath.Base(outputFile)+".*.bin")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	_ = binaryFile.Close()
	defer func() {
		_ = os.Remove(binaryFile.Name())
	}()

	if err := asm.Assemble(ctx, outputFile, binaryFile.Name()); err != nil {
		return fmt.Errorf("reassembling '%s' failed: %w", outputFile, err)
	}

	destination, err := os.ReadFile(binaryFile.Name())
	if err != nil {
		return fmt.Errorf("reading destination file for comparison: %w", err)
	}

	return checkBufferEqual(logger, input, destination)
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
