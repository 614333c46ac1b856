package logparse

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Stats is what one full read of a log yields.
type Stats struct {
	// Records is the number of lines after the leading banner line.
	Records uint
	// Bytes is the sum of all freestanding numeric tokens, saturating at
	// math.MaxUint64.
	Bytes uint64
	// SizeTokens is how many tokens contributed to Bytes.
	SizeTokens uint
}

// Parse counts records and sums byte sizes in raw log text. The result does
// not depend on line order. A line still being appended may be missing from
// both counts until the next read.
func Parse(text string) Stats {
	var stats Stats
	if lines := CountLines(text); lines > 1 {
		stats.Records = lines - 1
	}

	tok := NewTokenizer(text)
	for {
		token, ok := tok.Next()
		if !ok {
			break
		}
		value, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			// out of range for uint64, cannot be a file size
			continue
		}
		sum, carry := bits.Add64(stats.Bytes, value, 0)
		if carry != 0 {
			sum = math.MaxUint64
		}
		stats.Bytes = sum
		stats.SizeTokens++
	}
	return stats
}

// CountLines counts newline-terminated lines, plus a final unterminated one.
// Empty text has no lines.
func CountLines(text string) uint {
	if text == "" {
		return 0
	}
	n := uint(strings.Count(text, "\n"))
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
