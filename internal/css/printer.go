package css

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FormatDeclaration renders a declaration as "property: value;"
func FormatDeclaration(tl TokenList, decl *Element) string {
	return decl.Property().Text(tl) + ": " + decl.Value().Text(tl) + ";"
}

// PrintTree writes elements as a tab-indented outline. Declarations are
// printed on one line, other leaves as `Kind: "text"`.
func PrintTree(w io.Writer, tl TokenList, elements []*Element) error {
	bw := bufio.NewWriter(w)
	for _, el := range elements {
		printElement(bw, tl, el, 0)
	}
	return bw.Flush()
}

func printElement(w *bufio.Writer, tl TokenList, el *Element, depth int) {
	w.WriteString(strings.Repeat("\t", depth))

	switch {
	case el.Kind == Declaration:
		w.WriteString(FormatDeclaration(tl, el))
		w.WriteByte('\n')
	case el.IsLeaf():
		fmt.Fprintf(w, "%s: %q\n", el.Kind, el.Text(tl))
	default:
		fmt.Fprintf(w, "%s:\n", el.Kind)
		for _, child := range el.Children {
			printElement(w, tl, child, depth+1)
		}
	}
}

// TreeString is PrintTree into a string
func TreeString(tl TokenList, elements []*Element) string {
	var sb strings.Builder
	_ = PrintTree(&sb, tl, elements)
	return sb.String()
}
