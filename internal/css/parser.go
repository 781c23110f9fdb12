package css

// parser is a cursor over a token list. Every parse method skips leading
// trivia itself, advances pos past everything it consumed and returns a
// *SyntaxError on failure, after which pos is meaningless.
type parser struct {
	tl  TokenList
	pos int
}

func newParser(tl TokenList) *parser {
	return &parser{tl: tl}
}

// Parse builds the top-level elements of a stylesheet from its tokens.
// The first syntax error discards everything parsed so far.
func Parse(tl TokenList) ([]*Element, error) {
	return newParser(tl).parseElements()
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tl.Tokens)
}

// peekIs reports whether the current token exists and has the given kind
func (p *parser) peekIs(kind TokenKind) bool {
	return !p.atEnd() && p.tl.Tokens[p.pos].Kind == kind
}

func (p *parser) skipTrivia() {
	for !p.atEnd() && p.tl.Tokens[p.pos].Kind.IsTrivia() {
		p.pos++
	}
}

func (p *parser) errorAt(i int, message string) *SyntaxError {
	return &SyntaxError{
		Message: message,
		Index:   i,
		Token:   p.tl.Tokens[i],
		eof:     len(p.tl.Source),
	}
}

// errorHere reports at the current token, or at end of input
func (p *parser) errorHere(message string) *SyntaxError {
	if p.atEnd() {
		return &SyntaxError{Message: message, Index: NoToken, eof: len(p.tl.Source)}
	}
	return p.errorAt(p.pos, message)
}

func (p *parser) parseElements() ([]*Element, error) {
	var elements []*Element

	p.skipTrivia()
	for !p.atEnd() {
		var el *Element
		var err error

		switch p.tl.Tokens[p.pos].Kind {
		case TokenAt:
			el, err = p.parseAtRule()
		case TokenDot, TokenHash, TokenIdentifier, TokenColon:
			el, err = p.parseRuleSet(false)
		default:
			return nil, p.errorAt(p.pos, "unexpected token")
		}
		if err != nil {
			return nil, err
		}

		elements = append(elements, el)
		p.skipTrivia()
	}

	return elements, nil
}

func (p *parser) parseProperty() (*Element, error) {
	p.skipTrivia()

	if p.atEnd() {
		return nil, p.errorHere("expected property")
	}
	if !p.peekIs(TokenIdentifier) {
		return nil, p.errorAt(p.pos, "unexpected token while parsing property")
	}

	property := newLeaf(Property, p.pos, p.pos)
	p.pos++
	return property, nil
}

// parseValue stops before a '}' or ';' outside parentheses, or at end of input
func (p *parser) parseValue() (*Element, error) {
	value := &Element{Kind: Value}
	var open []int // indexes of unmatched '('
	count := 0

	for ; !p.atEnd(); p.pos++ {
		tok := p.tl.Tokens[p.pos]
		if len(open) == 0 && (tok.Kind == TokenBlockEnd || tok.Kind == TokenSemicolon) {
			break
		}

		switch tok.Kind {
		case TokenSpace, TokenComment:
			continue
		case TokenIdentifier, TokenNumber, TokenComma, TokenString, TokenPercent, TokenHash, TokenExclamation:
		case TokenParenStart:
			open = append(open, p.pos)
		case TokenParenEnd:
			if len(open) == 0 {
				return nil, p.errorAt(p.pos, "unmatched closing parenthesis")
			}
			open = open[:len(open)-1]
		default:
			if len(open) == 0 {
				return nil, p.errorAt(p.pos, "unexpected token while parsing value")
			}
		}

		if count == 0 {
			value.Start = p.pos
		}
		value.End = p.pos
		count++
	}

	if len(open) > 0 {
		return nil, p.errorAt(open[len(open)-1], "unclosed parentheses")
	}
	if count == 0 {
		return nil, p.errorHere("empty value")
	}
	return value, nil
}

func (p *parser) parseDeclaration() (*Element, error) {
	property, err := p.parseProperty()
	if err != nil {
		return nil, err
	}

	for {
		if p.atEnd() {
			return nil, p.errorAt(property.Start, "expected colon after property")
		}
		kind := p.tl.Tokens[p.pos].Kind
		if kind == TokenColon {
			p.pos++
			break
		}
		if !kind.IsTrivia() {
			return nil, p.errorAt(p.pos, "unexpected token while parsing declaration")
		}
		p.pos++
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &Element{
		Kind:     Declaration,
		Start:    property.Start,
		End:      value.End,
		Children: []*Element{property, value},
	}, nil
}

func (p *parser) parseDeclarationBlock() (*Element, error) {
	p.skipTrivia()
	if !p.peekIs(TokenBlockStart) {
		return nil, p.errorHere("declaration block must start with '{'")
	}

	block := &Element{Kind: DeclarationBlock, Start: p.pos}
	p.pos++

	for {
		p.skipTrivia()
		if p.atEnd() {
			return nil, p.errorAt(block.Start, "missing '}' at the end of declaration block")
		}
		if p.peekIs(TokenBlockEnd) {
			block.End = p.pos
			p.pos++
			return block, nil
		}

		declaration, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		block.addChild(declaration)

		p.skipTrivia()
		if p.peekIs(TokenSemicolon) {
			p.pos++
		}
	}
}

func closesBracket(open, close TokenKind) bool {
	return (open == TokenBracketStart && close == TokenBracketEnd) ||
		(open == TokenParenStart && close == TokenParenEnd)
}

// parseSelector stops before a '{' or ',' or at end of input. Only one
// bracket or parenthesis may be open at a time. Keyframe selectors may also
// contain numbers and percentages.
func (p *parser) parseSelector(keyframes bool) (*Element, error) {
	p.skipTrivia()

	selector := &Element{Kind: Selector}
	bracket := NoToken
	count := 0

	for ; !p.atEnd(); p.pos++ {
		tok := p.tl.Tokens[p.pos]
		if tok.Kind == TokenBlockStart || tok.Kind == TokenComma {
			break
		}

		switch tok.Kind {
		case TokenSpace, TokenComment:
			continue
		case TokenBracketStart, TokenParenStart:
			if bracket != NoToken {
				return nil, p.errorAt(p.pos, "nested parentheses")
			}
			bracket = p.pos
		case TokenBracketEnd, TokenParenEnd:
			if bracket == NoToken {
				return nil, p.errorAt(p.pos, "unmatched bracket")
			}
			if !closesBracket(p.tl.Tokens[bracket].Kind, tok.Kind) {
				return nil, p.errorAt(p.pos, "invalid closing bracket")
			}
			bracket = NoToken
		case TokenHash, TokenDot, TokenColon, TokenGreaterThan, TokenIdentifier, TokenString:
		case TokenNumber, TokenPercent:
			if !keyframes && bracket == NoToken {
				return nil, p.errorAt(p.pos, "unexpected token while parsing selector")
			}
		default:
			if bracket == NoToken {
				return nil, p.errorAt(p.pos, "unexpected token while parsing selector")
			}
		}

		if count == 0 {
			selector.Start = p.pos
		}
		selector.End = p.pos
		count++
	}

	if count == 0 {
		return nil, p.errorHere("empty selector")
	}
	if bracket != NoToken {
		return nil, p.errorAt(bracket, "unmatched bracket")
	}
	return selector, nil
}

func (p *parser) parseSelectorList(keyframes bool) (*Element, error) {
	p.skipTrivia()

	list := &Element{Kind: SelectorList}
	for !p.atEnd() && !p.peekIs(TokenBlockStart) {
		if len(list.Children) > 0 {
			if !p.peekIs(TokenComma) {
				return nil, p.errorAt(p.pos, "expected comma")
			}
			p.pos++
		}

		selector, err := p.parseSelector(keyframes)
		if err != nil {
			return nil, err
		}
		list.addChild(selector)
		p.skipTrivia()
	}

	if len(list.Children) == 0 {
		return nil, p.errorHere("empty selector list")
	}

	list.Start = list.Children[0].Start
	list.End = list.Children[len(list.Children)-1].End
	return list, nil
}

func (p *parser) parseRuleSet(keyframes bool) (*Element, error) {
	selectors, err := p.parseSelectorList(keyframes)
	if err != nil {
		return nil, err
	}

	block, err := p.parseDeclarationBlock()
	if err != nil {
		return nil, err
	}

	return &Element{
		Kind:     RuleSet,
		Start:    selectors.Start,
		End:      block.End,
		Children: []*Element{selectors, block},
	}, nil
}

// parseAtRuleRule reads an at-rule prelude up to a '{' or a ';' outside
// parentheses. Any token kind is accepted.
func (p *parser) parseAtRuleRule() (*Element, error) {
	rule := &Element{Kind: AtRuleRule}
	var open []int
	count := 0

	for ; !p.atEnd(); p.pos++ {
		tok := p.tl.Tokens[p.pos]
		if tok.Kind == TokenBlockStart || (tok.Kind == TokenSemicolon && len(open) == 0) {
			break
		}
		if tok.Kind.IsTrivia() {
			continue
		}

		switch tok.Kind {
		case TokenParenStart:
			open = append(open, p.pos)
		case TokenParenEnd:
			if len(open) == 0 {
				return nil, p.errorAt(p.pos, "unmatched closing parenthesis")
			}
			open = open[:len(open)-1]
		}

		if count == 0 {
			rule.Start = p.pos
		}
		rule.End = p.pos
		count++
	}

	if len(open) > 0 {
		return nil, p.errorAt(open[len(open)-1], "unclosed parentheses")
	}
	if count == 0 {
		return nil, p.errorHere("empty at-rule rule")
	}
	return rule, nil
}

func (p *parser) parseAtRule() (*Element, error) {
	p.skipTrivia()
	if !p.peekIs(TokenAt) {
		return nil, p.errorHere("at-rule must start with '@'")
	}

	atRule := &Element{Kind: AtRule, Start: p.pos}
	p.pos++

	if !p.peekIs(TokenIdentifier) {
		return nil, p.errorHere("expected at-rule identifier")
	}
	syntax, ok := LookupAtRule(p.tl.Tokens[p.pos].Text)
	if !ok {
		return nil, p.errorAt(p.pos, "unknown at-rule identifier")
	}
	atRule.End = p.pos
	p.pos++

	p.skipTrivia()
	if syntax.PreludeRequired || (syntax.preludeAllowed() && !p.peekIs(TokenBlockStart)) {
		rule, err := p.parseAtRuleRule()
		if err != nil {
			return nil, err
		}
		atRule.addChild(rule)
		atRule.End = rule.End
	}

	p.skipTrivia()
	if syntax.BlockRequired || (syntax.blockAllowed() && p.peekIs(TokenBlockStart)) {
		var block *Element
		var err error
		if syntax.BlockNested {
			block, err = p.parseConditionalGroupBlock(syntax.KeyframeSelectors)
		} else {
			block, err = p.parseDeclarationBlock()
		}
		if err != nil {
			return nil, err
		}
		atRule.addChild(block)
		atRule.End = block.End
		return atRule, nil
	}

	// statement at-rules end with ';', which is consumed but not spanned
	if p.peekIs(TokenSemicolon) {
		p.pos++
	}
	return atRule, nil
}

// parseConditionalGroupBlock reads a '{ ... }' block of rule sets and nested
// at-rules, as used by @media and friends.
func (p *parser) parseConditionalGroupBlock(keyframes bool) (*Element, error) {
	p.skipTrivia()
	if !p.peekIs(TokenBlockStart) {
		return nil, p.errorHere("block must start with '{'")
	}

	block := &Element{Kind: DeclarationBlock, Start: p.pos}
	p.pos++

	for {
		p.skipTrivia()
		if p.atEnd() {
			return nil, p.errorAt(block.Start, "block must end with '}'")
		}
		if p.peekIs(TokenBlockEnd) {
			block.End = p.pos
			p.pos++
			return block, nil
		}

		var child *Element
		var err error
		if p.peekIs(TokenAt) {
			child, err = p.parseAtRule()
		} else {
			child, err = p.parseRuleSet(keyframes)
		}
		if err != nil {
			return nil, err
		}
		block.addChild(child)
	}
}
