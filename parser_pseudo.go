package selectors

import (
	"strings"

	"github.com/cssparse/selectors/token"
)

// consumePseudo consumes ":name", "::name" or their functional forms.
func (p *parser) consumePseudo(r *token.Range) bool {
	offset := r.Offset()
	r.Consume()
	colons := 1
	if r.Peek().Kind == token.Colon {
		r.Consume()
		colons = 2
	}
	t := r.Peek()
	if t.Kind != token.Ident && t.Kind != token.Function {
		return p.fail(SyntaxError, offset, "expected pseudo-class or pseudo-element name")
	}
	name := strings.ToLower(t.Value)
	hasArguments := t.Kind == token.Function

	s := Selector{value: name}
	entry, found := lookupPseudo(name, hasArguments)
	switch {
	case found && entry.form == formClass:
		if colons == 2 {
			return p.fail(SyntaxError, offset, "::"+name+" is a pseudo-class")
		}
		s.match, s.pseudo = MatchPseudoClass, entry.pseudo
	case found && entry.form == formElement:
		if colons == 1 {
			return p.fail(SyntaxError, offset, ":"+name+" is a pseudo-element")
		}
		s.match, s.pseudo = MatchPseudoElement, entry.pseudo
	case found:
		s.match, s.pseudo = MatchPseudoElement, entry.pseudo
	case colons == 2 && !hasArguments && strings.HasPrefix(name, "-webkit-") && !p.inSupports:
		s.match, s.pseudo = MatchPseudoElement, PseudoWebKitCustomElement
	case colons == 2 && !hasArguments && strings.HasPrefix(name, "-internal-") && p.ctx.Mode == UASheetMode:
		s.match, s.pseudo = MatchPseudoElement, PseudoInternalElement
	default:
		return p.fail(SyntaxError, offset, "unknown pseudo "+strings.Repeat(":", colons)+name)
	}

	if s.match == MatchPseudoElement && p.disallowPseudoElements {
		return p.fail(RestrictionError, offset, "pseudo-element not allowed here")
	}
	if s.pseudo == PseudoHas && (p.inHasArgument || p.insideCompoundPseudo) {
		return p.fail(RestrictionError, offset, ":has() not allowed here")
	}

	if !hasArguments {
		r.Consume()
		p.arena.append(s)
		return true
	}
	block := r.ConsumeBlock()
	block.ConsumeWhitespace()
	if !p.consumePseudoArgument(&s, &block) {
		if !p.failed {
			p.fail(SyntaxError, offset, "invalid argument to "+strings.Repeat(":", colons)+name+"()")
		}
		return false
	}
	block.ConsumeWhitespace()
	if !block.AtEnd() {
		return p.fail(SyntaxError, block.Offset(), "unexpected "+block.Peek().Kind.String()+" in "+name+"()")
	}
	p.arena.append(s)
	return true
}

// argumentState is the parser state an argument parse may change.
type argumentState struct {
	inHasArgument          bool
	insideCompoundPseudo   bool
	disallowPseudoElements bool
}

func (p *parser) saveArgumentState() argumentState {
	return argumentState{p.inHasArgument, p.insideCompoundPseudo, p.disallowPseudoElements}
}

func (p *parser) restoreArgumentState(st argumentState) {
	p.inHasArgument, p.insideCompoundPseudo, p.disallowPseudoElements = st.inHasArgument, st.insideCompoundPseudo, st.disallowPseudoElements
}

// nestedList runs consume in its own arena scope and returns a copy of
// what it added. The arena is rolled back either way.
func (p *parser) nestedList(consume func() bool) (*SelectorList, bool) {
	sc := p.arena.enter()
	defer sc.rollback()
	if !consume() {
		return nil, false
	}
	return adopt(sc.added()), true
}

// consumePseudoArgument parses the argument block of a functional pseudo
// into s.
func (p *parser) consumePseudoArgument(s *Selector, block *token.Range) bool {
	st := p.saveArgumentState()
	defer p.restoreArgumentState(st)
	if isCompoundOnlyArgument(s.pseudo) {
		p.insideCompoundPseudo = true
	}

	switch s.pseudo {
	case PseudoIs, PseudoWhere:
		p.disallowPseudoElements = true
		list, ok := p.nestedList(func() bool {
			return p.consumeForgivingComplexSelectorList(block, NestingNone)
		})
		if !ok {
			return false
		}
		s.extended().list = list

	case PseudoNot:
		p.disallowPseudoElements = true
		list, ok := p.nestedList(func() bool {
			return p.consumeComplexSelectorList(block, NestingNone)
		})
		if !ok {
			return false
		}
		s.extended().list = list

	case PseudoHas:
		p.inHasArgument = true
		p.disallowPseudoElements = true
		list, ok := p.nestedList(func() bool {
			return p.consumeRelativeSelectorList(block)
		})
		if !ok {
			return false
		}
		s.extended().list = list
		s.ext.hasFlags = hasArgumentFlagsOf(list)

	case PseudoHost, PseudoHostContext, PseudoSlotted:
		p.disallowPseudoElements = true
		list, ok := p.nestedList(func() bool {
			if !p.consumeCompoundAsComplex(block) {
				return false
			}
			p.arena.last().flags |= flagLastInList
			return true
		})
		if !ok {
			return false
		}
		s.extended().list = list

	case PseudoAny, PseudoCue:
		p.disallowPseudoElements = true
		list, ok := p.nestedList(func() bool {
			return p.consumeCompoundSelectorList(block)
		})
		if !ok {
			return false
		}
		s.extended().list = list

	case PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		return p.consumeNthArgument(s, block)

	case PseudoLang:
		return consumeLangArgument(s, block)

	case PseudoDir, PseudoState, PseudoHighlight:
		t := block.ConsumeIncludingWhitespace()
		if t.Kind != token.Ident {
			return false
		}
		s.extended().argument = t.Value

	case PseudoPart:
		ext := s.extended()
		for block.Peek().Kind == token.Ident {
			ext.idents = append(ext.idents, block.ConsumeIncludingWhitespace().Value)
		}
		return len(ext.idents) > 0

	case PseudoViewTransitionGroup, PseudoViewTransitionImagePair, PseudoViewTransitionNew, PseudoViewTransitionOld:
		return consumeViewTransitionArgument(s, block)

	default:
		return false
	}
	return true
}

// consumeCompoundAsComplex consumes a single compound selector and stores
// it as a complex selector of its own.
func (p *parser) consumeCompoundAsComplex(r *token.Range) bool {
	sc := p.arena.enter()
	defer sc.rollback()
	if _, ok := p.consumeCompoundSelector(r); !ok {
		return false
	}
	p.arena.reverse(sc.start(), p.arena.len())
	p.arena.last().flags |= flagLastInComplex
	sc.commit()
	return true
}

// consumeCompoundSelectorList consumes a comma-separated list of compound
// selectors, for :-webkit-any() and ::cue().
func (p *parser) consumeCompoundSelectorList(r *token.Range) bool {
	for {
		if !p.consumeCompoundAsComplex(r) {
			return false
		}
		r.ConsumeWhitespace()
		if r.Peek().Kind != token.Comma {
			break
		}
		r.ConsumeIncludingWhitespace()
	}
	p.arena.last().flags |= flagLastInList
	return r.AtEnd()
}

// consumeForgivingComplexSelectorList consumes the argument of :is() and
// :where(). Invalid members are dropped; a dropped member that mentioned
// "&" or ":scope" leaves a placeholder behind so that containment queries
// stay correct.
func (p *parser) consumeForgivingComplexSelectorList(r *token.Range, nesting NestingType) bool {
	if p.inSupports {
		return p.consumeComplexSelectorList(r, nesting)
	}
	start := p.arena.len()
	for {
		r.ConsumeWhitespace()
		member := r.ConsumeUntilComma()
		p.consumeForgivingMember(&member, nesting)
		if r.AtEnd() {
			break
		}
		r.Consume()
	}
	if p.arena.len() > start {
		p.arena.last().flags |= flagLastInList
	}
	return true
}

func (p *parser) consumeForgivingMember(member *token.Range, nesting NestingType) {
	saved := p.saveFailure()
	defer p.restoreFailure(saved)
	p.failed, p.err = false, nil

	sc := p.arena.enter()
	defer sc.rollback()
	pos := member.Save()
	text := strings.TrimSpace(member.Text())
	if p.consumeComplexSelector(member, nesting) {
		member.ConsumeWhitespace()
		if member.AtEnd() && !p.failed {
			sc.commit()
			return
		}
		p.fail(SyntaxError, member.Offset(), "unexpected "+member.Peek().Kind.String())
	}
	sc.rollback()
	if text != "" {
		tracer().Debugf("dropping %q from forgiving selector list: %v", text, p.err)
	}
	member.Restore(pos)
	nt := unparsedNestingType(member)
	if nt == NestingNone {
		return
	}
	p.arena.append(Selector{
		match:  MatchPseudoClass,
		pseudo: PseudoUnparsed,
		value:  "-internal-unparsed",
		flags:  flagLastInComplex,
		ext:    &extendedData{argument: text, unparsed: nt},
	})
}

// unparsedNestingType reports whether the tokens mention "&" or ":scope"
// outside any nested block.
func unparsedNestingType(r *token.Range) NestingType {
	found := NestingNone
	for !r.AtEnd() {
		t := r.Peek()
		switch {
		case t.IsDelim('&'):
			return NestingNesting
		case t.Kind == token.Colon:
			if n := r.PeekAt(1); n.Kind == token.Ident && strings.EqualFold(n.Value, "scope") {
				found = NestingScope
			}
		}
		r.ConsumeComponentValue()
	}
	return found
}

// hasArgumentFlagsOf computes what a :has() argument contains.
func hasArgumentFlagsOf(list *SelectorList) HasArgumentFlags {
	var flags HasArgumentFlags
	for i := range list.sels {
		s := &list.sels[i]
		if s.match == MatchPseudoClass && s.pseudo != PseudoRelativeAnchor {
			flags |= HasContainsPseudo
		}
		nested := s.SelectorList()
		if nested == nil {
			continue
		}
		if isLogicalCombination(s.pseudo) {
			for _, c := range nested.ComplexSelectors() {
				if len(c.Compounds()) > 1 {
					flags |= HasContainsComplexLogicalCombinations
				}
			}
		}
		flags |= hasArgumentFlagsOf(nested)
	}
	return flags
}

func consumeLangArgument(s *Selector, block *token.Range) bool {
	ext := s.extended()
	for {
		t := block.ConsumeIncludingWhitespace()
		if t.Kind != token.Ident && t.Kind != token.String {
			return false
		}
		ext.idents = append(ext.idents, t.Value)
		if block.Peek().Kind != token.Comma {
			return true
		}
		block.ConsumeIncludingWhitespace()
	}
}

// consumeViewTransitionArgument parses "*" or a name, followed by any
// number of ".class" selectors. The name defaults to "*" when only
// classes are given.
func consumeViewTransitionArgument(s *Selector, block *token.Range) bool {
	t := block.Peek()
	switch {
	case t.IsDelim('*'), t.Kind == token.Ident:
		block.Consume()
		s.extended().argument = t.Value
	case t.IsDelim('.'):
		s.extended().argument = "*"
	default:
		return false
	}
	for block.Peek().IsDelim('.') {
		block.Consume()
		c := block.Consume()
		if c.Kind != token.Ident {
			return false
		}
		s.ext.idents = append(s.ext.idents, c.Value)
	}
	return true
}
