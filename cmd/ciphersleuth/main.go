// Command ciphersleuth identifies which classical cipher most likely
// produced a ciphertext. It is a thin orchestrator: reading input, wiring
// flags, and formatting output are all this file does; the actual
// normalize → stat → classify pipeline lives in the ciphersleuth package.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/duskwatch/cipher-sleuth"
	"github.com/duskwatch/cipher-sleuth/internal/catalog"
	"github.com/duskwatch/cipher-sleuth/internal/normalize"
	"github.com/duskwatch/cipher-sleuth/internal/profiles"
)

const (
	exitOK          = 0
	exitUsage       = 2
	exitInputTooBad = 3
	exitLoadFailure = 4
)

func main() {
	stat, statErr := os.Stdin.Stat()
	piped := statErr == nil && (stat.Mode()&os.ModeCharDevice) == 0
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Stdin, piped))
}

// run is main's testable core: stdin/piped are passed in explicitly so
// tests never depend on the test process's own stdin.
func run(args []string, stdout, stderr io.Writer, stdin io.Reader, piped bool) int {
	fs := flag.NewFlagSet("ciphersleuth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		text        string
		file        string
		number      int
		cipherName  string
		catalogPath string
		jsonOut     bool
		verbose     verbosity
	)
	fs.StringVar(&text, "text", "", "inline ciphertext")
	fs.StringVar(&text, "t", "", "inline ciphertext (shorthand)")
	fs.StringVar(&file, "file", "", "ciphertext file (UTF-8)")
	fs.StringVar(&file, "f", "", "ciphertext file (shorthand)")
	fs.IntVar(&number, "number", 5, "top-N candidates to report")
	fs.IntVar(&number, "n", 5, "top-N candidates to report (shorthand)")
	fs.StringVar(&cipherName, "cipher", "", "cipher name to highlight")
	fs.StringVar(&cipherName, "c", "", "cipher name to highlight (shorthand)")
	fs.StringVar(&catalogPath, "catalog", "", "override path to the cipher catalog JSON")
	fs.BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of a report")
	fs.Var(&verbose, "verbose", "increase diagnostic output (repeatable)")
	fs.Var(&verbose, "v", "increase diagnostic output (repeatable, shorthand)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if number < 1 {
		fmt.Fprintf(stderr, "%s--number/-n must be >= 1%s\n", colorRed, colorReset)
		return exitUsage
	}

	data, err := readInput(text, file, stdin, piped)
	if err != nil {
		fmt.Fprintf(stderr, "%s%v%s\n", colorRed, err, colorReset)
		return exitUsage
	}

	analyzer, cat, err := loadAnalyzer(catalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s[!] Failed to load profiles/catalog: %v%s\n", colorRed, err, colorReset)
		return exitLoadFailure
	}

	if verbose > 0 {
		fmt.Fprintf(stderr, "%s[+] Catalog fingerprint: %s (%d ciphers)%s\n", colorCyan, cat.Fingerprint(), cat.Len(), colorReset)
	}

	scores, identifyErr := analyzer.Identify(string(data), number, cipherName)
	if identifyErr != nil && !errors.Is(identifyErr, normalize.ErrInputTooShort) {
		if errors.Is(identifyErr, normalize.ErrEmptyInput) {
			fmt.Fprintf(stderr, "%s[!] No retainable A-Z characters in input%s\n", colorRed, colorReset)
			return exitInputTooBad
		}
		fmt.Fprintf(stderr, "%s[!] %v%s\n", colorRed, identifyErr, colorReset)
		return exitUsage
	}
	if identifyErr != nil {
		fmt.Fprintf(stderr, "%s[!] Warning: input is short; results are advisory%s\n", colorYellow, colorReset)
	}

	if jsonOut {
		return writeJSON(stdout, analyzer, string(data), scores)
	}

	if verbose > 1 {
		if err := analyzer.DisplayBasic(stdout, string(data)); err != nil && !errors.Is(err, normalize.ErrInputTooShort) {
			fmt.Fprintf(stderr, "%s[!] %v%s\n", colorRed, err, colorReset)
		}
	}

	fmt.Fprintf(stdout, "%s[+] Ranked candidates:%s\n", colorBlue, colorReset)
	for _, s := range scores {
		primary := cat.PrimaryType(s.Cipher)
		marker := ""
		if cipherName != "" && s.Cipher == cipherName {
			marker = colorGreen + " <-- highlighted" + colorReset
		}
		fmt.Fprintf(stdout, "%s%2d.%s %-20s score=%.4f type=%s%s\n", colorCyan, s.Rank, colorReset, s.Cipher, s.Score, primary, marker)
	}

	return exitOK
}

func loadAnalyzer(catalogPath string) (*ciphersleuth.Analyzer, *catalog.Catalog, error) {
	var cat *catalog.Catalog
	var err error
	if catalogPath != "" {
		cat, err = catalog.LoadFile(catalogPath)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	profileSet, err := profiles.Load(cat.Names())
	if err != nil {
		return nil, nil, err
	}

	return ciphersleuth.New(cat, profileSet), cat, nil
}

func readInput(text, file string, stdin io.Reader, piped bool) ([]byte, error) {
	switch {
	case text != "":
		return []byte(text), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		return bytes.TrimSpace(data), nil
	case piped:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return bytes.TrimSpace(data), nil
	default:
		return nil, errors.New("no input: use --text, --file, or pipe input")
	}
}

func writeJSON(w io.Writer, a *ciphersleuth.Analyzer, text string, scores []ciphersleuth.CipherScore) int {
	fv, err := a.Stats(text)
	if err != nil && !errors.Is(err, normalize.ErrInputTooShort) {
		return exitInputTooBad
	}

	type result struct {
		Features map[string]float64        `json:"features"`
		Ranked   []ciphersleuth.CipherScore `json:"ranked"`
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result{Features: ciphersleuth.FeatureMap(fv), Ranked: scores}); err != nil {
		return exitUsage
	}
	return exitOK
}
