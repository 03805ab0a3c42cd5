package system

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// Stdout receives everything written by Print.
	Stdout io.Writer = os.Stdout

	stdin = bufio.NewReader(os.Stdin)
)

// SetStdin replaces the reader Input reads from.
func SetStdin(r io.Reader) {
	stdin = bufio.NewReader(r)
}

// Print writes msg followed by a newline.
func Print(msg string) {
	if _, err := fmt.Fprintln(Stdout, msg); err != nil {
		logger.Warn("Print: writing failed", "error", err)
	}
}

// Input writes prompt and returns the next line of input without its line
// ending. At the end of the input, the remaining partial line is returned.
func Input(prompt string) string {
	if _, err := fmt.Fprint(Stdout, prompt); err != nil {
		logger.Warn("Input: writing prompt failed", "error", err)
	}

	line, err := stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		logger.Warn("Input: reading failed", "error", err)
	}

	return strings.TrimRight(line, "\r\n")
}
