package css

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
)

// Position returns the 1-based line and column of a byte offset in source.
// Columns count characters, not bytes.
func Position(source string, offset int) (line, col int) {
	line, col, _ = parse.Position(strings.NewReader(source), offset)
	return line, col
}

// LineIndex answers many offset-to-position queries over one source
// without rescanning it. Lines end where parse.Position ends them: at
// "\n", "\r\n", "\r", U+2028 and U+2029.
type LineIndex struct {
	source string
	starts []int // byte offset of the first byte of each line
}

// NewLineIndex records the line starts of source
func NewLineIndex(source string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case 0xe2: // first byte of U+2028 and U+2029
			if strings.HasPrefix(source[i:], lineSeparator) || strings.HasPrefix(source[i:], paragraphSeparator) {
				i += len(lineSeparator) - 1
				starts = append(starts, i+1)
			}
		}
	}
	return &LineIndex{source: source, starts: starts}
}

const (
	lineSeparator      = "\u2028"
	paragraphSeparator = "\u2029"
)

// Position returns the 1-based line and column of offset, same as the
// package-level Position. An offset inside a multi-byte character or
// between the bytes of "\r\n" resolves to the first byte.
func (li *LineIndex) Position(offset int) (line, col int) {
	if offset > len(li.source) {
		offset = len(li.source)
	}
	if offset < 0 {
		offset = 0
	}
	offset = li.charStart(offset)

	line = li.lineOf(offset)
	start := li.starts[line-1]
	return line, utf8.RuneCountInString(li.source[start:offset]) + 1
}

func (li *LineIndex) charStart(offset int) int {
	src := li.source
	if offset == 0 || offset >= len(src) {
		return offset
	}
	if src[offset] == '\n' && src[offset-1] == '\r' {
		return offset - 1
	}
	if utf8.RuneStart(src[offset]) {
		return offset
	}
	for back := 1; back < utf8.UTFMax && back <= offset; back++ {
		if utf8.RuneStart(src[offset-back]) {
			if _, size := utf8.DecodeRuneInString(src[offset-back:]); size > back {
				return offset - back
			}
			break
		}
	}
	return offset
}

// LineStart returns the byte offset at which the line holding offset begins
func (li *LineIndex) LineStart(offset int) int {
	return li.starts[li.lineOf(offset)-1]
}

// Line returns the text of the 1-based line n without its terminator,
// or "" when n is out of range.
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > len(li.starts) {
		return ""
	}
	start := li.starts[n-1]
	end := len(li.source)
	if n < len(li.starts) {
		end = li.starts[n]
	}
	text := li.source[start:end]
	for _, sep := range []string{"\n", "\r", lineSeparator, paragraphSeparator} {
		if strings.HasSuffix(text, sep) {
			text = strings.TrimSuffix(text, sep)
			break
		}
	}
	return strings.TrimSuffix(text, "\r")
}

// Lines returns the number of lines; an empty source has one empty line
func (li *LineIndex) Lines() int {
	return len(li.starts)
}

func (li *LineIndex) lineOf(offset int) int {
	// first line whose start is past offset, minus one
	return sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
}
