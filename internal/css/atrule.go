package css

// AtRuleSyntax describes what may follow an at-rule identifier.
// A required part is always allowed.
type AtRuleSyntax struct {
	Identifier      string
	PreludeAllowed  bool
	PreludeRequired bool
	BlockAllowed    bool
	BlockRequired   bool
	BlockNested     bool // block holds rule sets and at-rules instead of declarations

	// KeyframeSelectors lets selectors of the nested rule sets use numbers
	// and percentages ("from, 50% { ... }").
	KeyframeSelectors bool
}

// atRuleSyntaxes is read-only; lookups are by exact identifier, first match wins.
// Any identifier not listed here is unknown.
var atRuleSyntaxes = []AtRuleSyntax{
	{Identifier: "charset", PreludeRequired: true},
	{Identifier: "import", PreludeRequired: true},
	{Identifier: "namespace", PreludeRequired: true},
	{Identifier: "font-face", BlockRequired: true},
	{Identifier: "property", PreludeRequired: true, BlockRequired: true},
	{Identifier: "keyframes", PreludeRequired: true, BlockRequired: true, BlockNested: true, KeyframeSelectors: true},
	{Identifier: "media", PreludeRequired: true, BlockRequired: true, BlockNested: true},
}

// LookupAtRule returns the syntax registered for identifier (without the '@')
func LookupAtRule(identifier string) (AtRuleSyntax, bool) {
	for _, syntax := range atRuleSyntaxes {
		if syntax.Identifier == identifier {
			return syntax, true
		}
	}
	return AtRuleSyntax{}, false
}

// AtRuleIdentifiers lists the known at-rule identifiers in table order
func AtRuleIdentifiers() []string {
	ids := make([]string, len(atRuleSyntaxes))
	for i, syntax := range atRuleSyntaxes {
		ids[i] = syntax.Identifier
	}
	return ids
}

func (s AtRuleSyntax) preludeAllowed() bool {
	return s.PreludeAllowed || s.PreludeRequired
}

func (s AtRuleSyntax) blockAllowed() bool {
	return s.BlockAllowed || s.BlockRequired
}
