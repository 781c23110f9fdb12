package css

import "strings"

// CustomPropertyPrefix starts the name of every custom property ("--brand-color")
const CustomPropertyPrefix = "--"

// CustomProperties returns the declarations whose property is a custom
// property, in source order. Declarations nested in at-rules are included.
func CustomProperties(tl TokenList, elements []*Element) []*Element {
	var found []*Element
	for _, decl := range FindAll(elements, Declaration) {
		if strings.HasPrefix(decl.Property().Text(tl), CustomPropertyPrefix) {
			found = append(found, decl)
		}
	}
	return found
}

// Stats counts the elements of a parsed stylesheet
type Stats struct {
	Tokens           int
	AtRules          int
	RuleSets         int
	Selectors        int
	Declarations     int
	CustomProperties int
}

// Collect counts the tokens and elements of one parse
func Collect(tl TokenList, elements []*Element) Stats {
	return Stats{
		Tokens:           tl.Len(),
		AtRules:          len(FindAll(elements, AtRule)),
		RuleSets:         len(FindAll(elements, RuleSet)),
		Selectors:        len(FindAll(elements, Selector)),
		Declarations:     len(FindAll(elements, Declaration)),
		CustomProperties: len(CustomProperties(tl, elements)),
	}
}

// Add sums two stats
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Tokens:           s.Tokens + o.Tokens,
		AtRules:          s.AtRules + o.AtRules,
		RuleSets:         s.RuleSets + o.RuleSets,
		Selectors:        s.Selectors + o.Selectors,
		Declarations:     s.Declarations + o.Declarations,
		CustomProperties: s.CustomProperties + o.CustomProperties,
	}
}
