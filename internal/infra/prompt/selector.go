// Package prompt asks for folders on the terminal when none were given.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type LineSelector struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewLineSelector(in io.Reader, out io.Writer) *LineSelector {
	return &LineSelector{reader: bufio.NewReader(in), out: out}
}

// SelectFolder returns the entered path, or "" when the user enters nothing
// or input ends.
func (s *LineSelector) SelectFolder(prompt string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", prompt)
	answer, err := s.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(answer), `"`), nil
}
