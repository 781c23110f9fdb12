package cssparser

// Issue represents a single stylesheet error in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "lexer" or "parser"
	Text        string   `json:"Text"`        // "missing '}' at the end of declaration block"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Line holding the offending token
	Pos         IssuePos `json:"Pos"`
	Length      int      `json:"Length"` // Characters covered by the offending token on its line
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/buttons.css"
	Offset   int    `json:"Offset"`   // byte offset into the file
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 5 (1-based, in characters)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names, one per analysis stage
const (
	LinterLexer  = "lexer"
	LinterParser = "parser"
	LinterIO     = "io"
)
