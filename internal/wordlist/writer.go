package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteTextFile writes lines to a plain text file, one per line.
func WriteTextFile(lines []string, outputPath string) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n" // Add trailing newline
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	return nil
}

// WriteLines writes lines to w, one per line.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
