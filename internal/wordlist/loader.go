package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// Scanner buffer sizes for reading word lists
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// ErrMalformedInput is returned when a word list cannot be read as lines.
var ErrMalformedInput = errors.New("malformed word list")

// Deduper collects words once each, keeping the order they were first seen.
type Deduper struct {
	seen  map[string]struct{}
	words []string
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Add records w unless it was already added. It reports whether w was new.
func (d *Deduper) Add(w string) bool {
	if _, ok := d.seen[w]; ok {
		return false
	}
	d.seen[w] = struct{}{}
	d.words = append(d.words, w)
	return true
}

// Words returns the distinct words in first-seen order.
func (d *Deduper) Words() []string {
	return d.words
}

// Read reads one word per line from r into d. Empty lines are skipped;
// other lines are kept as-is, whitespace included.
func (d *Deduper) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		w := scanner.Text()
		if w != "" {
			d.Add(w)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return nil
}

// LoadReader reads a deduplicated word list from r.
func LoadReader(r io.Reader) ([]string, error) {
	d := NewDeduper()
	if err := d.Read(r); err != nil {
		return nil, err
	}
	return d.Words(), nil
}

// LoadFile reads all distinct, non-empty lines from a file.
func LoadFile(filename string) ([]string, error) {
	return LoadFiles(filename)
}

// LoadFiles reads the union of several word lists. The name "-" reads
// from standard input.
func LoadFiles(filenames ...string) ([]string, error) {
	d := NewDeduper()

	for _, filename := range filenames {
		if err := loadInto(d, filename); err != nil {
			return nil, err
		}
	}

	return d.Words(), nil
}

func loadInto(d *Deduper, filename string) error {
	if filename == "-" {
		if err := d.Read(os.Stdin); err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		return nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	if err := d.Read(f); err != nil {
		return fmt.Errorf("error reading file %s: %w", filename, err)
	}

	return nil
}
