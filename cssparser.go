// Package cssparser tokenizes and parses CSS stylesheets into a concrete
// syntax tree, and checks whole trees of stylesheets for syntax errors.
//
// # Parsing
//
// Parse a stylesheet held in memory:
//
//	tl, elements, err := cssparser.ParseString(`a { color: red }`)
//	for _, el := range elements {
//		fmt.Println(el.Kind, el.Text(tl))
//	}
//
// Tokens keep their byte offsets into the source; elements refer to tokens
// by index, so every node can be mapped back to the exact source text it
// was built from.
//
// Errors are either a *LexicalError (raw text that is not a token) or a
// *SyntaxError (tokens that do not fit the grammar):
//
//	var synErr *cssparser.SyntaxError
//	if errors.As(err, &synErr) {
//		line, col := cssparser.Position(tl.Source, synErr.Offset())
//	}
//
// # Checking
//
// Validate every stylesheet matched by a set of glob patterns:
//
//	result, err := cssparser.Check(cssparser.CheckConfig{
//		Paths: []string{"web/styles/**/*.css"},
//	})
//
// # CLI Tool
//
// cssparser also provides a CLI tool. Install with:
//
//	go install github.com/lancerrevx/cssparser/cmd/cssparser@latest
package cssparser

import "github.com/lancerrevx/cssparser/internal/css"

// Core types, re-exported from the parser implementation
type (
	Token        = css.Token
	TokenKind    = css.TokenKind
	TokenList    = css.TokenList
	Element      = css.Element
	ElementKind  = css.ElementKind
	LexicalError = css.LexicalError
	SyntaxError  = css.SyntaxError
	Stats        = css.Stats
)

// Tokenize splits source into tokens
func Tokenize(source string) (TokenList, error) {
	return css.Tokenize(source)
}

// Parse builds the syntax tree of a tokenized stylesheet
func Parse(tl TokenList) ([]*Element, error) {
	return css.Parse(tl)
}

// ParseString tokenizes and parses source in one step. The token list is
// returned even when parsing fails, so syntax errors can be positioned.
func ParseString(source string) (TokenList, []*Element, error) {
	tl, err := css.Tokenize(source)
	if err != nil {
		return TokenList{Source: source}, nil, err
	}

	elements, err := css.Parse(tl)
	if err != nil {
		return tl, nil, err
	}

	return tl, elements, nil
}

// Position returns the 1-based line and column of a byte offset in source
func Position(source string, offset int) (line, col int) {
	return css.Position(source, offset)
}
