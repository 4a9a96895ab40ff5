package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Per-line errors. They are attached to the pair and do not stop a run.
var (
	// ErrMalformedLine marks a line without exactly two tokens.
	ErrMalformedLine = errors.New("expected two whitespace-separated strings")

	// ErrTokenTooLong marks a token longer than the configured maximum.
	ErrTokenTooLong = errors.New("string exceeds maximum length")
)

// Pair is one input line of a batch.
type Pair struct {
	// Source names the input the pair came from.
	Source string

	// Line is the 1-based line number in Source.
	Line int

	S1 []byte
	S2 []byte

	// Err is set when the line could not be turned into a pair.
	Err error
}

// ReadPairs reads one pair per line from r. Blank lines and lines starting
// with '#' are skipped. A maxLength of zero or less disables the length check.
func ReadPairs(ctx context.Context, source string, r io.Reader, maxLength int) ([]Pair, error) {
	reader := bufio.NewReader(r)

	var pairs []Pair
	for lineNo := 1; ; lineNo++ {
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("read %s: %w", source, err)
			}
		}

		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			if pair, ok := parseLine(source, lineNo, line, maxLength); ok {
				pairs = append(pairs, pair)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return pairs, nil
		}
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", source, readErr)
		}
	}
}

func parseLine(source string, lineNo int, line []byte, maxLength int) (Pair, bool) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 || trimmed[0] == '#' {
		return Pair{}, false
	}

	pair := Pair{Source: source, Line: lineNo}

	fields := bytes.Fields(trimmed)
	if len(fields) != 2 {
		pair.Err = fmt.Errorf("%w, found %d", ErrMalformedLine, len(fields))
		return pair, true
	}

	for _, field := range fields {
		if maxLength > 0 && len(field) > maxLength {
			pair.Err = fmt.Errorf("%w: %d > %d", ErrTokenTooLong, len(field), maxLength)
			return pair, true
		}
	}

	pair.S1, pair.S2 = fields[0], fields[1]
	return pair, true
}
