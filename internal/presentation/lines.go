package presentation

import (
	"fmt"
	"io"
)

// ProgressLines is a progress sink for non-interactive output: one line per update.
type ProgressLines struct {
	Writer io.Writer
}

func (s ProgressLines) Update(label, status string, percent float64) {
	fmt.Fprintf(s.Writer, "%s: %s\n", label, status)
}

func (s ProgressLines) Complete(label, status string) {
	fmt.Fprintf(s.Writer, "%s: %s\n", label, status)
}
