package css

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// classifier tries to match one token kind at pos.
// It returns n == 0 when the kind does not apply at pos.
type classifier func(src string, pos int) (kind TokenKind, n int, err *LexicalError)

// classifiers in priority order. Identifiers go before numbers and symbols so
// that "--foo" is not read as two minus tokens, numbers before symbols so that
// the sign of "-5" is not read as a minus token.
var classifiers = []classifier{
	scanSpace,
	scanComment,
	scanIdentifier,
	scanNumber,
	scanString,
	scanSymbol,
}

// Tokenize splits source into tokens. The first lexical error aborts the scan
// and no tokens are returned.
func Tokenize(source string) (TokenList, error) {
	tokens := make([]Token, 0, len(source)/4+1)

	for pos := 0; pos < len(source); {
		tok, err := nextToken(source, pos)
		if err != nil {
			return TokenList{}, err
		}
		tokens = append(tokens, tok)
		pos += tok.Length
	}

	return TokenList{Source: source, Tokens: tokens}, nil
}

func nextToken(src string, pos int) (Token, *LexicalError) {
	for _, classify := range classifiers {
		kind, n, err := classify(src, pos)
		if err != nil {
			return Token{}, err
		}
		if n > 0 {
			return Token{Kind: kind, Offset: pos, Length: n, Text: src[pos : pos+n]}, nil
		}
	}

	return Token{}, &LexicalError{Message: "unexpected character", Offset: pos, Length: 1}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func scanSpace(src string, pos int) (TokenKind, int, *LexicalError) {
	i := pos
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return TokenSpace, i - pos, nil
}

func scanComment(src string, pos int) (TokenKind, int, *LexicalError) {
	if !strings.HasPrefix(src[pos:], "/*") {
		return TokenComment, 0, nil
	}

	end := strings.Index(src[pos+2:], "*/")
	if end == -1 {
		return TokenComment, 0, &LexicalError{Message: "unmatched comment start", Offset: pos, Length: 2}
	}

	return TokenComment, end + 4, nil
}

func scanIdentifier(src string, pos int) (TokenKind, int, *LexicalError) {
	i := pos
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])

		if i == pos && unicode.IsDigit(r) {
			return TokenIdentifier, 0, nil
		}
		// "-1" is a number, not an identifier
		if i == pos+1 && src[pos] == '-' && unicode.IsDigit(r) {
			return TokenIdentifier, 0, nil
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			break
		}
		i += size
	}

	n := i - pos
	if n == 1 && src[pos] == '-' {
		return TokenIdentifier, 0, nil
	}
	return TokenIdentifier, n, nil
}

func scanNumber(src string, pos int) (TokenKind, int, *LexicalError) {
	i := pos
	if src[i] == '-' {
		i++
	}

	start := i
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i == start {
		return TokenNumber, 0, nil
	}

	if i < len(src) && src[i] == '.' {
		i++
		frac := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		if i == frac {
			return TokenNumber, 0, &LexicalError{Message: "expected a number after '.'", Offset: i, Length: 1}
		}
	}

	return TokenNumber, i - pos, nil
}

func scanString(src string, pos int) (TokenKind, int, *LexicalError) {
	quote := src[pos]
	if quote != '"' && quote != '\'' {
		return TokenString, 0, nil
	}

	end := strings.IndexByte(src[pos+1:], quote)
	if end == -1 {
		return TokenString, 0, &LexicalError{Message: "unmatched quote", Offset: pos, Length: 1}
	}

	return TokenString, end + 2, nil
}

func scanSymbol(src string, pos int) (TokenKind, int, *LexicalError) {
	for kind, c := range symbolChars {
		if src[pos] == c {
			return TokenKind(kind), 1, nil
		}
	}
	return 0, 0, nil
}
