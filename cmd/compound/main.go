package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"compound-words/internal/compound"
	"compound-words/internal/store"
	"compound-words/internal/wordlist"
)

func main() {
	// Define command-line flags
	input := flag.String("input", "", "Comma-separated word list files, or - for stdin (required)")
	target := flag.Int("target", 0, "Length of the words to rebuild from shorter words (required)")
	outputFile := flag.String("output", "", "Output file path (default: stdout)")
	workers := flag.Int("workers", 0, "Number of parallel workers (default: number of CPUs)")
	dbPath := flag.String("db", "", "SQLite database to record the run in (optional)")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	flag.Parse()

	// Validate input
	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: --input flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *target <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --target must be greater than 0\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Track start time for elapsed time reporting
	programStart := time.Now()

	// Progress goes to stderr so results on stdout stay clean
	progressCallback := func(msg string) {
		if *quiet {
			return
		}
		elapsed := time.Since(programStart)
		fmt.Fprintf(os.Stderr, "[%s] %s\n", formatElapsed(elapsed), msg)
	}

	files := splitInputs(*input)
	progressCallback(fmt.Sprintf("Reading %d word list(s)...", len(files)))

	words, err := wordlist.LoadFiles(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	progressCallback(fmt.Sprintf("Loaded %d distinct words", len(words)))

	startTime := time.Now()
	results, err := compound.ProcessLines(context.Background(), words, *target, compound.Options{
		Workers:  *workers,
		Progress: progressCallback,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	processingTime := time.Since(startTime)

	// Sort results for consistent output
	sort.Strings(results)

	if *outputFile == "" {
		err = wordlist.WriteLines(os.Stdout, results)
	} else {
		progressCallback("Writing output file...")
		err = wordlist.WriteTextFile(results, *outputFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError writing output: %v\n", err)
		os.Exit(1)
	}

	if *dbPath != "" {
		runID, err := recordRun(*dbPath, *target, len(words), results)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError recording run: %v\n", err)
			os.Exit(1)
		}
		progressCallback(fmt.Sprintf("Recorded run %s", runID))
	}

	progressCallback(fmt.Sprintf("Done: %d results in %s", len(results), processingTime.Round(time.Millisecond)))
}

// splitInputs turns the -input flag value into a list of file names
func splitInputs(s string) []string {
	var files []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			files = append(files, f)
		}
	}
	return files
}

func recordRun(dbPath string, target, vocabularySize int, results []string) (string, error) {
	db, err := store.InitDB(dbPath)
	if err != nil {
		return "", err
	}
	defer db.Close()

	if err := store.EnsureSchema(db); err != nil {
		return "", err
	}

	return store.SaveRun(db, store.RunInput{
		TargetLength:   target,
		VocabularySize: vocabularySize,
		Results:        results,
	})
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
