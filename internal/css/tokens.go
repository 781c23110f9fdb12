package css

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// TokenKind classifies a token
type TokenKind int

// Single-character kinds come first, in the order of symbolChars
const (
	TokenBlockStart TokenKind = iota
	TokenBlockEnd
	TokenBracketStart
	TokenBracketEnd
	TokenParenStart
	TokenParenEnd
	TokenSemicolon
	TokenColon
	TokenComma
	TokenHash
	TokenDot
	TokenAt
	TokenExclamation
	TokenPercent
	TokenGreaterThan
	TokenSlash
	TokenPlus
	TokenMinus
	TokenEqual
	TokenAsterisk
	TokenTilde
	TokenCaret
	TokenDollar

	TokenSpace
	TokenComment
	TokenIdentifier
	TokenString
	TokenNumber
)

// symbolChars maps each single-character kind to its byte
var symbolChars = [...]byte{
	TokenBlockStart:   '{',
	TokenBlockEnd:     '}',
	TokenBracketStart: '[',
	TokenBracketEnd:   ']',
	TokenParenStart:   '(',
	TokenParenEnd:     ')',
	TokenSemicolon:    ';',
	TokenColon:        ':',
	TokenComma:        ',',
	TokenHash:         '#',
	TokenDot:          '.',
	TokenAt:           '@',
	TokenExclamation:  '!',
	TokenPercent:      '%',
	TokenGreaterThan:  '>',
	TokenSlash:        '/',
	TokenPlus:         '+',
	TokenMinus:        '-',
	TokenEqual:        '=',
	TokenAsterisk:     '*',
	TokenTilde:        '~',
	TokenCaret:        '^',
	TokenDollar:       '$',
}

var tokenNames = [...]string{
	TokenBlockStart:   "Block start",
	TokenBlockEnd:     "Block end",
	TokenBracketStart: "Bracket start",
	TokenBracketEnd:   "Bracket end",
	TokenParenStart:   "Parenthesis start",
	TokenParenEnd:     "Parenthesis end",
	TokenSemicolon:    "Semicolon",
	TokenColon:        "Colon",
	TokenComma:        "Comma",
	TokenHash:         "Hash",
	TokenDot:          "Dot",
	TokenAt:           "At",
	TokenExclamation:  "Exclamation",
	TokenPercent:      "Percent",
	TokenGreaterThan:  "Greater than",
	TokenSlash:        "Slash",
	TokenPlus:         "Plus",
	TokenMinus:        "Minus",
	TokenEqual:        "Equal",
	TokenAsterisk:     "Asterisk",
	TokenTilde:        "Tilde",
	TokenCaret:        "Caret",
	TokenDollar:       "Dollar",

	TokenSpace:      "Space",
	TokenComment:    "Comment",
	TokenIdentifier: "Identifier",
	TokenString:     "Quoted string",
	TokenNumber:     "Number",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "Unknown"
	}
	return tokenNames[k]
}

// IsTrivia reports whether tokens of this kind are skipped between meaningful tokens
func (k TokenKind) IsTrivia() bool {
	return k == TokenSpace || k == TokenComment
}

// ParseTokenKind resolves a kind by its String() name, case-sensitive.
func ParseTokenKind(name string) (TokenKind, bool) {
	for k, n := range tokenNames {
		if n == name {
			return TokenKind(k), true
		}
	}
	return 0, false
}

// Token is a classified span of the source buffer
type Token struct {
	Kind   TokenKind
	Offset int    // byte offset into the source
	Length int    // length in bytes
	Text   string // source[Offset:Offset+Length]
}

// End returns the byte offset just past the token
func (t Token) End() int {
	return t.Offset + t.Length
}

// Number decodes a number token. ok is false for other kinds.
func (t Token) Number() (float64, bool) {
	if t.Kind != TokenNumber {
		return 0, false
	}
	f, n := strconv.ParseFloat([]byte(t.Text))
	if n != len(t.Text) {
		return 0, false
	}
	return f, true
}

// TokenList owns the source buffer and the tokens produced from it.
// Elements refer to tokens by index into Tokens.
type TokenList struct {
	Source string
	Tokens []Token
}

// Len returns the number of tokens
func (tl TokenList) Len() int {
	return len(tl.Tokens)
}

// At returns the token at index i
func (tl TokenList) At(i int) Token {
	return tl.Tokens[i]
}

// Span returns the source text from the first byte of token first
// through the last byte of token last, trivia in between included.
func (tl TokenList) Span(first, last int) string {
	return tl.Source[tl.Tokens[first].Offset:tl.Tokens[last].End()]
}
