package css

// ElementKind identifies the production that built an Element
type ElementKind int

// Element kinds
const (
	AtRule ElementKind = iota
	AtRuleRule
	RuleSet
	Selector
	SelectorList
	Declaration
	DeclarationBlock
	Property
	Value
)

var elementNames = [...]string{
	AtRule:           "At rule",
	AtRuleRule:       "Rule of at-rule",
	RuleSet:          "Rule set",
	Selector:         "Selector",
	SelectorList:     "Selector list",
	Declaration:      "Declaration",
	DeclarationBlock: "Declaration block",
	Property:         "Property",
	Value:            "Value",
}

func (k ElementKind) String() string {
	if k < 0 || int(k) >= len(elementNames) {
		return "Unknown"
	}
	return elementNames[k]
}

// Element is a node of the syntax tree.
//
// Start and End are inclusive indexes into the TokenList the element was
// parsed from; both always point at meaningful (non-trivia) tokens. Children
// are in source order:
//
//   - RuleSet: [SelectorList, DeclarationBlock]
//   - Declaration: [Property, Value]
//   - SelectorList: Selectors
//   - DeclarationBlock: Declarations, or RuleSets and AtRules for nested at-rule blocks
//   - AtRule: optional AtRuleRule, then optional block
//
// Property, Value, Selector and AtRuleRule are leaves.
type Element struct {
	Kind     ElementKind
	Start    int
	End      int
	Children []*Element
}

func newLeaf(kind ElementKind, start, end int) *Element {
	return &Element{Kind: kind, Start: start, End: end}
}

func (e *Element) addChild(child *Element) {
	e.Children = append(e.Children, child)
}

// Text returns the source text covered by the element
func (e *Element) Text(tl TokenList) string {
	return tl.Span(e.Start, e.End)
}

// Length returns the number of source bytes covered by the element
func (e *Element) Length(tl TokenList) int {
	return tl.Tokens[e.End].End() - tl.Tokens[e.Start].Offset
}

// TokenCount returns the number of tokens in the span, trivia included
func (e *Element) TokenCount() int {
	return e.End - e.Start + 1
}

// IsLeaf reports whether the element has no children
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}

// Property returns the property of a declaration, nil for other kinds
func (e *Element) Property() *Element {
	if e.Kind != Declaration || len(e.Children) != 2 {
		return nil
	}
	return e.Children[0]
}

// Value returns the value of a declaration, nil for other kinds
func (e *Element) Value() *Element {
	if e.Kind != Declaration || len(e.Children) != 2 {
		return nil
	}
	return e.Children[1]
}

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the visited element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Find returns all descendants of e (e included) of the given kind, in source order
func (e *Element) Find(kind ElementKind) []*Element {
	var found []*Element
	e.Walk(func(el *Element) bool {
		if el.Kind == kind {
			found = append(found, el)
		}
		return true
	})
	return found
}

// FindAll runs Find over a sequence of top-level elements
func FindAll(elements []*Element, kind ElementKind) []*Element {
	var found []*Element
	for _, el := range elements {
		found = append(found, el.Find(kind)...)
	}
	return found
}
