// Package logparse derives record and byte counts from the copy utility's
// unstructured text log.
package logparse

// Tokenizer yields freestanding numeric tokens: maximal runs of ASCII digits
// with whitespace immediately before and after. Digits touching any other
// character (a path, a timestamp, a percent sign) are not tokens, and neither
// is a run at the very start or end of the text, since the tail of a log that
// is still being written may hold a truncated number.
//
// Adjacent tokens may share a single separating whitespace byte.
type Tokenizer struct {
	text string
	pos  int
}

// NewTokenizer returns a Tokenizer positioned at the start of text.
func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{text: text}
}

// Next returns the next token, or false once the text is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	for t.pos < len(t.text) {
		if !isDigit(t.text[t.pos]) {
			t.pos++
			continue
		}

		start := t.pos
		for t.pos < len(t.text) && isDigit(t.text[t.pos]) {
			t.pos++
		}
		end := t.pos

		if start == 0 || !isSpace(t.text[start-1]) {
			continue
		}
		if end == len(t.text) || !isSpace(t.text[end]) {
			continue
		}
		return t.text[start:end], true
	}
	return "", false
}

// FreestandingNumbers returns every token in text, in order.
func FreestandingNumbers(text string) []string {
	var tokens []string
	tok := NewTokenizer(text)
	for {
		token, ok := tok.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
