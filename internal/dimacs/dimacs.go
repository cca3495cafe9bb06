// Package dimacs reads and writes the DIMACS CNF and solution formats
// described in spec §6. The reader transparently decodes gzip-compressed
// input (by content sniffing, not by file extension, so a piped stream
// works too) and produces plain sat.Literal slices; it does not know
// anything about the solver's internal (possibly renumbered) variable
// space.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hbradburn/satyr/internal/sat"
)

// gzipMagic is the two-byte gzip header; sniffed to decide whether to
// wrap the input reader in a gzip.Reader.
var gzipMagic = [2]byte{0x1f, 0x8b}

// CNF is a parsed DIMACS instance: the declared variable count and the
// list of clauses, each a plain literal slice in file order.
type CNF struct {
	NumVars int
	Clauses [][]sat.Literal
}

// ParseFile opens path and parses it as DIMACS CNF, transparently
// decoding gzip compression if present.
func ParseFile(path string) (*CNF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()
	cnf, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %s: %w", path, err)
	}
	return cnf, nil
}

// Parse reads a DIMACS CNF instance from r.
func Parse(r io.Reader) (*CNF, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("malformed gzip stream: %w", err)
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	declaredVars, declaredClauses, headerFound := 0, 0, false
	var clauses [][]sat.Literal
	var current []sat.Literal

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == 'c' || line[0] == '%' {
			continue
		}
		if !headerFound {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, fmt.Errorf("malformed or missing DIMACS header")
			}
			declaredVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("invalid variable count in header: %w", err)
			}
			declaredClauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("invalid clause count in header: %w", err)
			}
			headerFound = true
			continue
		}

		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid literal %q", tok)
			}
			if n == 0 {
				clauses = append(clauses, current)
				current = nil
				continue
			}
			current = append(current, sat.Literal(n))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !headerFound {
		return nil, fmt.Errorf("malformed or missing DIMACS header")
	}
	if len(current) != 0 {
		return nil, fmt.Errorf("final clause is not terminated by 0")
	}
	if len(clauses) != declaredClauses {
		return nil, fmt.Errorf("header declares %d clauses, found %d", declaredClauses, len(clauses))
	}

	return &CNF{NumVars: declaredVars, Clauses: clauses}, nil
}
