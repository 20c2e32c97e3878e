package selectors

// SelectorList is a parsed, comma-separated list of complex selectors. Its
// records are stored complex selector by complex selector, each subject
// compound first.
type SelectorList struct {
	sels []Selector
}

// adopt copies a committed arena range into a new list.
func adopt(sels []Selector) *SelectorList {
	l := &SelectorList{sels: make([]Selector, len(sels))}
	copy(l.sels, sels)
	if n := len(l.sels); n > 0 {
		l.sels[n-1].flags |= flagLastInList
	}
	return l
}

// Len returns the number of simple selector records, implicit ones
// included.
func (l *SelectorList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.sels)
}

// IsEmpty reports whether the list holds no selector, as for ":is()"
// with only invalid members.
func (l *SelectorList) IsEmpty() bool {
	return l.Len() == 0
}

// Selectors returns the records of the list in storage order. The slice
// must not be modified.
func (l *SelectorList) Selectors() []Selector {
	if l == nil {
		return nil
	}
	return l.sels
}

// ComplexSelectors splits the list into its complex selectors.
func (l *SelectorList) ComplexSelectors() []ComplexSelector {
	if l == nil {
		return nil
	}
	var out []ComplexSelector
	start := 0
	for i := range l.sels {
		if l.sels[i].IsLastInComplexSelector() || i == len(l.sels)-1 {
			out = append(out, ComplexSelector(l.sels[start:i+1]))
			start = i + 1
		}
	}
	return out
}

// MaximumSpecificity returns the largest specificity among the complex
// selectors of the list.
func (l *SelectorList) MaximumSpecificity() Specificity {
	var out Specificity
	for _, c := range l.ComplexSelectors() {
		out = maxSpecificity(out, c.Specificity())
	}
	return out
}

// IsNestContaining reports whether any selector of the list is, or
// contains, the nesting selector "&".
func (l *SelectorList) IsNestContaining() bool {
	for i := range l.Selectors() {
		if l.sels[i].IsOrContainsNesting() {
			return true
		}
	}
	return false
}

// IsScopeContaining reports whether any selector of the list is, or
// contains, ":scope".
func (l *SelectorList) IsScopeContaining() bool {
	for i := range l.Selectors() {
		if l.sels[i].IsOrContainsScope() {
			return true
		}
	}
	return false
}

// MarkCoveredByBucketing records that the matcher's rule bucketing already
// guarantees the selector at index i matches.
func (l *SelectorList) MarkCoveredByBucketing(i int) {
	l.sels[i].flags |= flagCoveredByBucketing
}

// Reparent returns a copy of the list in which every "&", at any depth,
// refers to parent.
func (l *SelectorList) Reparent(parent ParentRule) *SelectorList {
	if l == nil {
		return nil
	}
	out := &SelectorList{sels: make([]Selector, len(l.sels))}
	copy(out.sels, l.sels)
	for i := range out.sels {
		s := &out.sels[i]
		if s.match == MatchPseudoClass && s.pseudo == PseudoParent {
			s.parent = parent
		}
		if s.ext != nil && s.ext.list != nil {
			ext := *s.ext
			ext.list = s.ext.list.Reparent(parent)
			s.ext = &ext
		}
	}
	return out
}

// ComplexSelector is one complex selector of a list: compounds joined by
// combinators, subject compound first.
type ComplexSelector []Selector

// Specificity returns the specificity of c.
func (c ComplexSelector) Specificity() Specificity {
	return specificityOf(c)
}

// Compounds splits c into its compound selectors, subject first. Each
// compound's last record carries the relation to the next compound.
func (c ComplexSelector) Compounds() [][]Selector {
	var out [][]Selector
	for i := 0; i < len(c); {
		end := compoundEnd(c, i)
		out = append(out, c[i:end])
		i = end
	}
	return out
}

// PseudoElement returns the pseudo-element of the subject compound, or
// PseudoUnknown.
func (c ComplexSelector) PseudoElement() PseudoType {
	comps := c.Compounds()
	if len(comps) == 0 {
		return PseudoUnknown
	}
	pe := PseudoUnknown
	for _, s := range comps[0] {
		if s.match == MatchPseudoElement {
			pe = s.pseudo
		}
	}
	return pe
}
