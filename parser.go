package selectors

import (
	"strings"

	"github.com/cssparse/selectors/token"
	"golang.org/x/net/html/atom"
)

// Mode is the parsing mode of the style sheet a selector belongs to.
type Mode uint8

const (
	HTMLStandardMode Mode = iota
	HTMLQuirksMode
	// UASheetMode additionally accepts ::-internal-* pseudo-elements.
	UASheetMode
)

// Context configures a parse. The zero value (and a nil *Context) parses
// in standard mode, without namespaces, outside any nesting context.
type Context struct {
	Mode Mode
	// DefaultNamespace is the URI of the @namespace rule without prefix;
	// empty means any namespace.
	DefaultNamespace string
	// Namespaces maps declared prefixes to namespace URIs.
	Namespaces map[string]string
	// Nesting makes every complex selector relative to an anchor: "&" for
	// nested style rules, ":scope" for @scope.
	Nesting NestingType
	// Parent is the rule "&" refers to.
	Parent ParentRule
}

var defaultContext = &Context{}

// a parser for CSS selectors
type parser struct {
	ctx   *Context
	arena arena

	// failed is sticky. Contexts that tolerate failure save and restore it
	// together with err.
	failed bool
	err    *Error

	// restricting is the pseudo-element of the compound being parsed, which
	// limits what may follow it. It is inherited by argument parses.
	restricting PseudoType

	inHasArgument          bool
	insideCompoundPseudo   bool
	disallowPseudoElements bool
	// inSupports parses forgiving lists strictly, for selector() probes.
	inSupports bool
}

func newParser(ctx *Context) *parser {
	if ctx == nil {
		ctx = defaultContext
	}
	return &parser{ctx: ctx}
}

// Parse parses a selector list, e.g. "div.a > p, #x".
func Parse(text string) (*SelectorList, error) {
	return ParseWithContext(text, nil)
}

// MustParse is like Parse, but panics instead of returning an error.
func MustParse(text string) *SelectorList {
	l, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseWithContext parses a selector list within ctx.
func ParseWithContext(text string, ctx *Context) (*SelectorList, error) {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(r, ctx)
}

// ParseTokens parses a selector list from a token range. The whole range
// must be consumed; any invalid member makes the list invalid.
func ParseTokens(r *token.Range, ctx *Context) (*SelectorList, error) {
	p := newParser(ctx)
	return p.parseTop(r, func() bool {
		return p.consumeComplexSelectorList(r, p.ctx.Nesting)
	})
}

// ParseScopeBoundary parses the start or end boundary of an @scope rule.
// Invalid members are dropped, so the result may be empty.
func ParseScopeBoundary(text string, ctx *Context) (*SelectorList, error) {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return nil, err
	}
	p := newParser(ctx)
	return p.parseTop(r, func() bool {
		return p.consumeForgivingComplexSelectorList(r, p.ctx.Nesting)
	})
}

// ParseRelative parses a relative selector list, the argument grammar of
// :has(), e.g. "> img, + .caption".
func ParseRelative(text string, ctx *Context) (*SelectorList, error) {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return nil, err
	}
	p := newParser(ctx)
	p.inHasArgument = true
	p.disallowPseudoElements = true
	list, err := p.parseTop(r, func() bool {
		return p.consumeRelativeSelectorList(r)
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// SupportsSelector reports whether text is a selector list the parser
// fully supports, as probed by @supports selector(...). Forgiving lists
// must be valid as a whole and unknown ::-webkit-* pseudo-elements are
// rejected.
func SupportsSelector(text string, ctx *Context) bool {
	r, err := token.NewRangeFromText(text)
	if err != nil {
		return false
	}
	p := newParser(ctx)
	p.inSupports = true
	l, err := p.parseTop(r, func() bool {
		return p.consumeComplexSelectorList(r, p.ctx.Nesting)
	})
	return err == nil && !l.IsEmpty()
}

// parseTop runs consume within a top-level arena scope and adopts the
// result into a SelectorList.
func (p *parser) parseTop(r *token.Range, consume func() bool) (*SelectorList, error) {
	sc := p.arena.enter()
	r.ConsumeWhitespace()
	ok := consume()
	if ok {
		r.ConsumeWhitespace()
		if !r.AtEnd() {
			ok = p.fail(SyntaxError, r.Offset(), "unexpected "+r.Peek().Kind.String())
		}
	}
	if !ok || p.failed {
		sc.rollback()
		p.arena.checkBalanced()
		return nil, p.error(r)
	}
	list := adopt(sc.commit())
	p.arena.checkBalanced()
	return list, nil
}

// fail marks the parse failed and records the first error. It always
// returns false so that callers can write "return p.fail(...)".
func (p *parser) fail(kind ErrorKind, offset int, msg string) bool {
	p.failed = true
	if p.err == nil {
		p.err = &Error{Kind: kind, Offset: offset, Msg: msg}
		tracer().Debugf("%s", p.err)
	}
	return false
}

func (p *parser) error(r *token.Range) error {
	if p.err != nil {
		return p.err
	}
	return &Error{Kind: SyntaxError, Offset: r.Offset(), Msg: errEmpty}
}

// failureState is the sticky failure of a parser, saved around parses
// whose failure is tolerated.
type failureState struct {
	failed bool
	err    *Error
}

func (p *parser) saveFailure() failureState {
	return failureState{p.failed, p.err}
}

func (p *parser) restoreFailure(st failureState) {
	p.failed, p.err = st.failed, st.err
}

func (p *parser) defaultNamespace() string {
	if p.ctx.DefaultNamespace == "" {
		return AnyNamespace
	}
	return p.ctx.DefaultNamespace
}

// resolveNamespace maps a written namespace prefix to its URI. It returns
// false for undeclared prefixes.
func (p *parser) resolveNamespace(prefix string, hasPrefix bool) (string, bool) {
	switch {
	case !hasPrefix:
		return p.defaultNamespace(), true
	case prefix == "":
		return "", true
	case prefix == AnyNamespace:
		return AnyNamespace, true
	}
	uri, ok := p.ctx.Namespaces[prefix]
	return uri, ok
}

// consumeComplexSelectorList consumes a comma-separated list of complex
// selectors. Any invalid member fails the list.
func (p *parser) consumeComplexSelectorList(r *token.Range, nesting NestingType) bool {
	for {
		if !p.consumeComplexSelector(r, nesting) {
			return false
		}
		r.ConsumeWhitespace()
		if r.Peek().Kind != token.Comma {
			break
		}
		r.ConsumeIncludingWhitespace()
	}
	p.arena.last().flags |= flagLastInList
	return true
}

// consumeCombinator consumes the combinator between two compounds and
// returns SubSelector if there is none.
func (p *parser) consumeCombinator(r *token.Range) Relation {
	skipped := r.ConsumeWhitespace()
	t := r.Peek()
	if t.Kind == token.Delim {
		switch t.Delim {
		case '>':
			r.ConsumeIncludingWhitespace()
			return Child
		case '+':
			r.ConsumeIncludingWhitespace()
			return DirectAdjacent
		case '~':
			r.ConsumeIncludingWhitespace()
			return IndirectAdjacent
		}
	}
	if skipped && !r.AtEnd() && t.Kind != token.Comma {
		return Descendant
	}
	return SubSelector
}

// consumeComplexSelector consumes one complex selector into the arena.
// Storage order is subject compound first.
func (p *parser) consumeComplexSelector(r *token.Range, nesting NestingType) bool {
	sc := p.arena.enter()
	defer sc.rollback()
	start := sc.start()

	leading := SubSelector
	if nesting != NestingNone {
		leading = p.consumeCombinator(r)
	}
	if !p.consumeCompoundChain(r) {
		return false
	}
	p.arena.reverse(start, p.arena.len())

	if nesting != NestingNone {
		if leading != SubSelector || !containsAnchor(p.arena.sels[start:], nesting) {
			if leading == SubSelector {
				leading = Descendant
			}
			p.arena.last().relation = leading
			p.arena.append(p.implicitAnchor(nesting))
		}
		if nesting == NestingScope {
			p.markScopeActivations(start)
		}
	}
	p.arena.last().flags |= flagLastInComplex
	sc.commit()
	return true
}

// consumeCompoundChain consumes compounds joined by combinators, in input
// order. Each compound but the first carries its combinator on its first
// stored record.
func (p *parser) consumeCompoundChain(r *token.Range) bool {
	hasPseudoElement, ok := p.consumeCompoundSelector(r)
	if !ok {
		return false
	}
	for {
		offset := r.Offset()
		rel := p.consumeCombinator(r)
		if rel == SubSelector {
			return true
		}
		if hasPseudoElement {
			return p.fail(RestrictionError, offset, "combinator after pseudo-element")
		}
		at := p.arena.len()
		if hasPseudoElement, ok = p.consumeCompoundSelector(r); !ok {
			return false
		}
		p.arena.sels[at].relation = rel
	}
}

// containsAnchor reports whether a complex selector refers to the anchor
// of its nesting context.
func containsAnchor(sels []Selector, nesting NestingType) bool {
	for i := range sels {
		s := &sels[i]
		if s.IsOrContainsNesting() {
			return true
		}
		if nesting == NestingScope && s.IsOrContainsScope() {
			return true
		}
	}
	return false
}

func (p *parser) implicitAnchor(nesting NestingType) Selector {
	if nesting == NestingScope {
		return Selector{
			match:  MatchPseudoClass,
			pseudo: PseudoScope,
			value:  "scope",
			flags:  flagImplicit,
		}
	}
	return Selector{
		match:  MatchPseudoClass,
		pseudo: PseudoParent,
		value:  "&",
		flags:  flagImplicit,
		parent: p.ctx.Parent,
	}
}

// markScopeActivations inserts a scope activation marker after every
// compound of the complex selector at start that contains :scope or "&".
// The marker takes over the relation of the compound to its left.
func (p *parser) markScopeActivations(start int) {
	for i := start; i < p.arena.len(); {
		end := compoundEnd(p.arena.sels, i)
		anchored := false
		for j := i; j < end; j++ {
			s := &p.arena.sels[j]
			if s.IsOrContainsScope() || s.IsOrContainsNesting() {
				anchored = true
				break
			}
		}
		if !anchored {
			i = end
			continue
		}
		last := &p.arena.sels[end-1]
		marker := Selector{
			match:    MatchPseudoClass,
			pseudo:   PseudoTrue,
			value:    "true",
			relation: last.relation,
			flags:    flagImplicit | flagInvisible,
			signal:   SignalScopeActivation,
		}
		last.relation = ScopeActivation
		p.arena.insertAt(end, marker)
		i = end + 1
	}
}

// compoundEnd returns the index after the compound starting at i.
func compoundEnd(sels []Selector, i int) int {
	for ; i < len(sels); i++ {
		if sels[i].relation != SubSelector || sels[i].flags&flagLastInComplex != 0 {
			return i + 1
		}
	}
	return len(sels)
}

// consumeRelativeSelectorList consumes the argument of :has(). It is not
// forgiving.
func (p *parser) consumeRelativeSelectorList(r *token.Range) bool {
	for {
		if !p.consumeRelativeSelector(r) {
			return false
		}
		r.ConsumeWhitespace()
		if r.Peek().Kind != token.Comma {
			break
		}
		r.ConsumeIncludingWhitespace()
	}
	p.arena.last().flags |= flagLastInList
	return true
}

// consumeRelativeSelector consumes a complex selector with an optional
// leading combinator and anchors it on an implicit relative anchor.
func (p *parser) consumeRelativeSelector(r *token.Range) bool {
	sc := p.arena.enter()
	defer sc.rollback()
	start := sc.start()

	rel := RelativeDescendant
	switch p.consumeCombinator(r) {
	case Child:
		rel = RelativeChild
	case DirectAdjacent:
		rel = RelativeDirectAdjacent
	case IndirectAdjacent:
		rel = RelativeIndirectAdjacent
	}
	if !p.consumeCompoundChain(r) {
		return false
	}
	p.arena.reverse(start, p.arena.len())
	p.arena.last().relation = rel
	p.arena.append(Selector{
		match:  MatchPseudoClass,
		pseudo: PseudoRelativeAnchor,
		value:  "-internal-relative-anchor",
		flags:  flagImplicit | flagInvisible | flagLastInComplex,
		signal: SignalRelativeAnchor,
	})
	sc.commit()
	return true
}

// consumeCompoundSelector consumes one compound selector into the arena.
// Within the compound, records keep source order once the complex
// selector is reversed; shadow-crossing pseudo-elements split it into
// sub-compounds.
func (p *parser) consumeCompoundSelector(r *token.Range) (hasPseudoElement bool, ok bool) {
	sc := p.arena.enter()
	defer sc.rollback()
	saved := p.restricting
	defer func() { p.restricting = saved }()

	start := sc.start()
	offset := r.Offset()
	name, hasPrefix, hasName := p.consumeName(r)
	if hasName && p.restricting != PseudoUnknown {
		return false, p.fail(RestrictionError, offset, "type selector after pseudo-element")
	}
	for {
		at := p.arena.len()
		simpleOffset := r.Offset()
		if !p.consumeSimpleSelector(r) {
			break
		}
		s := &p.arena.sels[at]
		if !isSimpleSelectorValidAfterPseudoElement(s, p.restricting, p.ctx.Mode) {
			return false, p.fail(RestrictionError, simpleOffset, "selector not allowed after ::"+p.restricting.String())
		}
		if s.match == MatchPseudoElement {
			hasPseudoElement = true
			p.restricting = s.pseudo
		}
	}
	if p.failed {
		return false, false
	}
	if !hasName && p.arena.len() == start {
		if r.AtEnd() {
			return false, p.fail(SyntaxError, offset, errEmpty)
		}
		return false, p.fail(SyntaxError, offset, "unexpected "+r.Peek().Kind.String())
	}

	if !p.prependTypeSelector(start, name, hasPrefix, hasName, offset) {
		return false, false
	}
	p.splitShadowCompounds(start)
	sc.commit()
	return hasPseudoElement, true
}

// prependTypeSelector inserts the type selector at the start of the
// compound: the explicit one, or an implicit universal selector where a
// shadow-crossing pseudo-element or a default namespace needs one.
func (p *parser) prependTypeSelector(start int, name QualifiedName, hasPrefix, hasName bool, offset int) bool {
	if !hasName {
		needed := false
		for i := start; i < p.arena.len(); i++ {
			if _, ok := implicitShadowRelation(&p.arena.sels[i]); ok {
				needed = true
				break
			}
		}
		if !needed && p.defaultNamespace() != AnyNamespace && !startsWithHost(p.arena.sels[start:]) {
			needed = true
		}
		if !needed {
			return true
		}
		ns := p.defaultNamespace()
		p.arena.insertAt(start, Selector{
			match: MatchTag,
			value: "*",
			name:  QualifiedName{Local: "*", Namespace: ns},
			flags: flagImplicit,
		})
		return true
	}
	ns, ok := p.resolveNamespace(name.Prefix, hasPrefix)
	if !ok {
		return p.fail(RestrictionError, offset, "undeclared namespace prefix "+name.Prefix)
	}
	name.Namespace = ns
	tag := Selector{match: MatchTag, value: name.Local, name: name}
	if !name.Universal() {
		tag.atom = atom.Lookup([]byte(strings.ToLower(name.Local)))
	}
	p.arena.insertAt(start, tag)
	return true
}

func startsWithHost(sels []Selector) bool {
	if len(sels) == 0 || sels[0].match != MatchPseudoClass {
		return false
	}
	return sels[0].pseudo == PseudoHost || sels[0].pseudo == PseudoHostContext
}

// splitShadowCompounds reverses the compound at start in place, segment by
// segment. A segment starts at every pseudo-element living in a shadow
// tree and is joined to the segment on its left by that shadow relation.
func (p *parser) splitShadowCompounds(start int) {
	end := p.arena.len()
	segStart, segRel := start, SubSelector
	for i := start + 1; i <= end; i++ {
		var rel Relation
		boundary := i == end
		if !boundary {
			rel, boundary = implicitShadowRelation(&p.arena.sels[i])
		}
		if !boundary {
			continue
		}
		p.arena.reverse(segStart, i)
		if segStart > start {
			p.arena.sels[segStart].relation = segRel
		}
		segStart, segRel = i, rel
	}
}

// consumeName consumes a possibly namespace-qualified name: "name",
// "*", "ns|name", "*|name", "|name". On a malformed name nothing is
// consumed.
func (p *parser) consumeName(r *token.Range) (name QualifiedName, hasPrefix bool, ok bool) {
	pos := r.Save()
	t := r.Peek()
	switch {
	case t.Kind == token.Ident:
		name.Local = t.Value
		r.Consume()
	case t.IsDelim('*'):
		name.Local = "*"
		r.Consume()
	case t.IsDelim('|'):
		// empty prefix
	default:
		return QualifiedName{}, false, false
	}
	if !r.Peek().IsDelim('|') {
		return name, false, true
	}
	r.Consume()
	prefix := name.Local
	t = r.Peek()
	switch {
	case t.Kind == token.Ident:
		name.Local = t.Value
	case t.IsDelim('*'):
		name.Local = "*"
	default:
		r.Restore(pos)
		return QualifiedName{}, false, false
	}
	r.Consume()
	name.Prefix = prefix
	return name, true, true
}

// consumeSimpleSelector consumes one simple selector. It returns false
// if the next token does not start one, or on failure (p.failed is set).
func (p *parser) consumeSimpleSelector(r *token.Range) bool {
	t := r.Peek()
	switch {
	case t.Kind == token.Hash:
		return p.consumeID(r)
	case t.IsDelim('.'):
		return p.consumeClass(r)
	case t.Kind == token.LeftBracket:
		return p.consumeAttribute(r)
	case t.Kind == token.Colon:
		return p.consumePseudo(r)
	case t.IsDelim('&'):
		r.Consume()
		p.arena.append(Selector{
			match:  MatchPseudoClass,
			pseudo: PseudoParent,
			value:  "&",
			parent: p.ctx.Parent,
		})
		return true
	}
	return false
}

func (p *parser) consumeID(r *token.Range) bool {
	t := r.Consume()
	if !t.HashID {
		return p.fail(SyntaxError, t.Offset, "invalid id selector #"+t.Value)
	}
	p.arena.append(Selector{match: MatchID, value: t.Value})
	return true
}

func (p *parser) consumeClass(r *token.Range) bool {
	dot := r.Consume()
	t := r.Peek()
	if t.Kind != token.Ident {
		return p.fail(SyntaxError, dot.Offset, "expected identifier after '.'")
	}
	r.Consume()
	p.arena.append(Selector{match: MatchClass, value: t.Value})
	return true
}

var attributeOperators = map[token.Kind]Match{
	token.IncludeMatch:   MatchAttributeList,
	token.DashMatch:      MatchAttributeHyphen,
	token.PrefixMatch:    MatchAttributeBegin,
	token.SuffixMatch:    MatchAttributeEnd,
	token.SubstringMatch: MatchAttributeContain,
}

func (p *parser) consumeAttribute(r *token.Range) bool {
	offset := r.Offset()
	block := r.ConsumeBlock()
	block.ConsumeWhitespace()

	name, hasPrefix, ok := p.consumeName(&block)
	if !ok || name.Universal() {
		return p.fail(SyntaxError, offset, "expected attribute name")
	}
	block.ConsumeWhitespace()
	ns := ""
	if hasPrefix {
		if ns, ok = p.resolveNamespace(name.Prefix, true); !ok {
			return p.fail(RestrictionError, offset, "undeclared namespace prefix "+name.Prefix)
		}
	}
	name.Namespace = ns
	s := Selector{match: MatchAttributeSet, name: name}
	if block.AtEnd() {
		p.arena.append(s)
		return true
	}

	op := block.ConsumeIncludingWhitespace()
	if op.IsDelim('=') {
		s.match = MatchAttributeExact
	} else if m, found := attributeOperators[op.Kind]; found {
		s.match = m
	} else {
		return p.fail(SyntaxError, op.Offset, "expected attribute operator")
	}
	v := block.ConsumeIncludingWhitespace()
	if v.Kind != token.Ident && v.Kind != token.String {
		return p.fail(SyntaxError, v.Offset, "expected attribute value")
	}
	s.value = v.Value
	if !block.AtEnd() {
		flag := block.ConsumeIncludingWhitespace()
		switch {
		case flag.Kind == token.Ident && strings.EqualFold(flag.Value, "i"):
			s.attrCase = CaseInsensitive
		case flag.Kind == token.Ident && strings.EqualFold(flag.Value, "s"):
			s.attrCase = CaseSensitiveAlways
		default:
			return p.fail(SyntaxError, flag.Offset, "invalid attribute selector flag")
		}
	}
	if !block.AtEnd() {
		return p.fail(SyntaxError, block.Offset(), "unexpected "+block.Peek().Kind.String()+" in attribute selector")
	}
	p.arena.append(s)
	return true
}
