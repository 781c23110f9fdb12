package css

import "fmt"

// LexicalError describes a malformed or unrecognized region of raw source
type LexicalError struct {
	Message string
	Offset  int
	Length  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at offset %d: %s", e.Offset, e.Message)
}

// NoToken is the SyntaxError index used when the error is at end of input
const NoToken = -1

// SyntaxError describes a grammar violation at an already-lexed token.
// Index is NoToken when the parser ran out of input.
type SyntaxError struct {
	Message string
	Index   int
	Token   Token
	eof     int // len(source), used as the position when Index is NoToken
}

// AtEOF reports whether the error refers to the end of input rather than a token
func (e *SyntaxError) AtEOF() bool {
	return e.Index == NoToken
}

// Offset returns the byte offset of the offending token, or the source length at end of input
func (e *SyntaxError) Offset() int {
	if e.AtEOF() {
		return e.eof
	}
	return e.Token.Offset
}

// Length returns the byte length of the offending token, 1 at end of input
func (e *SyntaxError) Length() int {
	if e.AtEOF() {
		return 1
	}
	return e.Token.Length
}

func (e *SyntaxError) Error() string {
	if e.AtEOF() {
		return fmt.Sprintf("syntax error at end of input: %s", e.Message)
	}
	return fmt.Sprintf("syntax error at offset %d (%s %q): %s", e.Token.Offset, e.Token.Kind, e.Token.Text, e.Message)
}
