package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// stringCount is the number of strings find reads from stdin.
const stringCount = 2

// readStrings reads two whitespace-delimited tokens from in. When in is a
// terminal each token is preceded by a prompt on prompt.
func readStrings(in io.Reader, prompt io.Writer, maxLength int) ([2][]byte, error) {
	var tokens [2][]byte

	interactive := isTerminal(in)
	reader := bufio.NewReader(in)

	for i := range stringCount {
		if interactive {
			fmt.Fprintf(prompt, "enter string %d: ", i+1)
		}

		token, err := readToken(reader, maxLength)
		if errors.Is(err, ErrInputTooLong) {
			return tokens, fmt.Errorf("string %d: %w of %d bytes", i+1, err, maxLength)
		}
		if err != nil {
			return tokens, fmt.Errorf("read string %d: %w", i+1, err)
		}
		if token == nil {
			return tokens, fmt.Errorf("%w: expected %d strings on stdin, got %d", ErrUsage, stringCount, i)
		}
		tokens[i] = token
	}

	return tokens, nil
}

// readToken skips leading whitespace and returns the next run of
// non-whitespace bytes. It returns nil at end of input.
func readToken(reader *bufio.Reader, maxLength int) ([]byte, error) {
	var token []byte
	for {
		b, err := reader.ReadByte()
		if errors.Is(err, io.EOF) {
			return token, nil
		}
		if err != nil {
			return nil, err
		}

		if isSpace(b) {
			if token != nil {
				return token, nil
			}
			continue
		}

		if len(token) == maxLength {
			return nil, ErrInputTooLong
		}
		token = append(token, b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
