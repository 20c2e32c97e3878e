// Package selectors parses CSS selectors into a flat, index-addressed
// representation and computes their specificity.
package selectors

import (
	"strconv"

	"golang.org/x/net/html/atom"
)

// Match is the kind of a simple selector.
type Match uint8

const (
	MatchUnknown Match = iota
	MatchTag
	MatchID
	MatchClass
	MatchPseudoClass
	MatchPseudoElement
	MatchPagePseudoClass
	MatchAttributeExact    // [a=b]
	MatchAttributeSet      // [a]
	MatchAttributeHyphen   // [a|=b]
	MatchAttributeList     // [a~=b]
	MatchAttributeContain  // [a*=b]
	MatchAttributeBegin    // [a^=b]
	MatchAttributeEnd      // [a$=b]
	MatchInvalidList
)

var matchNames = [...]string{
	MatchUnknown:          "Unknown",
	MatchTag:              "Tag",
	MatchID:               "Id",
	MatchClass:            "Class",
	MatchPseudoClass:      "PseudoClass",
	MatchPseudoElement:    "PseudoElement",
	MatchPagePseudoClass:  "PagePseudoClass",
	MatchAttributeExact:   "AttributeExact",
	MatchAttributeSet:     "AttributeSet",
	MatchAttributeHyphen:  "AttributeHyphen",
	MatchAttributeList:    "AttributeList",
	MatchAttributeContain: "AttributeContain",
	MatchAttributeBegin:   "AttributeBegin",
	MatchAttributeEnd:     "AttributeEnd",
	MatchInvalidList:      "InvalidList",
}

func (m Match) String() string {
	if int(m) < len(matchNames) {
		return matchNames[m]
	}
	return "Match(" + strconv.Itoa(int(m)) + ")"
}

// IsAttribute reports whether m is one of the attribute selector kinds.
func (m Match) IsAttribute() bool {
	return m >= MatchAttributeExact && m <= MatchAttributeEnd
}

// Relation connects a simple selector to the next one in storage order.
type Relation uint8

const (
	SubSelector Relation = iota // same compound
	Descendant
	Child
	DirectAdjacent
	IndirectAdjacent
	RelativeDescendant
	RelativeChild
	RelativeDirectAdjacent
	RelativeIndirectAdjacent
	ShadowPart
	UAShadow
	ShadowSlot
	ScopeActivation
)

var relationNames = [...]string{
	SubSelector:              "SubSelector",
	Descendant:               "Descendant",
	Child:                    "Child",
	DirectAdjacent:           "DirectAdjacent",
	IndirectAdjacent:         "IndirectAdjacent",
	RelativeDescendant:       "RelativeDescendant",
	RelativeChild:            "RelativeChild",
	RelativeDirectAdjacent:   "RelativeDirectAdjacent",
	RelativeIndirectAdjacent: "RelativeIndirectAdjacent",
	ShadowPart:               "ShadowPart",
	UAShadow:                 "UAShadow",
	ShadowSlot:               "ShadowSlot",
	ScopeActivation:          "ScopeActivation",
}

func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return "Relation(" + strconv.Itoa(int(r)) + ")"
}

// IsRelative reports whether r is one of the leading relations of a
// relative selector (the argument of :has()).
func (r Relation) IsRelative() bool {
	return r >= RelativeDescendant && r <= RelativeIndirectAdjacent
}

// IsShadowCrossing reports whether r is an implicit shadow-tree combinator.
func (r Relation) IsShadowCrossing() bool {
	return r == ShadowPart || r == UAShadow || r == ShadowSlot
}

// AttributeMatchType is the case-sensitivity of an attribute value match.
type AttributeMatchType uint8

const (
	CaseSensitive       AttributeMatchType = iota
	CaseInsensitive                        // [a=b i]
	CaseSensitiveAlways                    // [a=b s]
)

// Signal tags selectors the parser inserted for the benefit of matching.
type Signal uint8

const (
	SignalNone Signal = iota
	SignalScopeActivation
	SignalRelativeAnchor
)

// NestingType is the anchor context a selector list is parsed in.
type NestingType uint8

const (
	NestingNone    NestingType = iota
	NestingNesting             // CSS Nesting, anchored on "&"
	NestingScope               // @scope, anchored on ":scope"
)

// QualifiedName is a namespace-qualified name. Prefix is the prefix as
// written ("" when none was written, "*" for "*|"). Namespace is the
// resolved namespace URI; AnyNamespace matches every namespace and ""
// means no namespace.
type QualifiedName struct {
	Prefix    string
	Local     string
	Namespace string
}

// AnyNamespace is the namespace of a name without namespace restriction.
const AnyNamespace = "*"

// Universal reports whether the local name is "*".
func (q QualifiedName) Universal() bool {
	return q.Local == "*"
}

// ParentRule is the rule an "&" selector refers to.
type ParentRule interface {
	SelectorList() *SelectorList
}

type selectorFlags uint16

const (
	flagLastInComplex selectorFlags = 1 << iota
	flagLastInList
	flagImplicit
	flagForPage
	flagInvisible
	flagCoveredByBucketing
)

// HasArgumentFlags records what a :has() argument contains, for style
// invalidation.
type HasArgumentFlags uint8

const (
	HasContainsPseudo HasArgumentFlags = 1 << iota
	HasContainsComplexLogicalCombinations
)

// Selector is one simple selector and its relation to the next selector in
// storage order. Records are stored subject compound first; within a
// compound, simple selectors keep source order.
type Selector struct {
	match    Match
	relation Relation
	pseudo   PseudoType
	flags    selectorFlags
	signal   Signal
	attrCase AttributeMatchType

	// value is the tag local name, id, class, lower-cased pseudo name or
	// attribute value.
	value string
	// name is the tag name or attribute name.
	name QualifiedName
	atom atom.Atom

	parent ParentRule
	ext    *extendedData
}

// extendedData holds the rarely needed payload of a selector.
type extendedData struct {
	argument string
	a, b     int
	hasNth   bool
	list     *SelectorList
	idents   []string
	hasFlags HasArgumentFlags
	unparsed NestingType
}

func (s *Selector) extended() *extendedData {
	if s.ext == nil {
		s.ext = &extendedData{}
	}
	return s.ext
}

// Match returns the kind of s.
func (s *Selector) Match() Match { return s.match }

// Relation returns the relation of s to the next selector in storage order.
func (s *Selector) Relation() Relation { return s.relation }

// Pseudo returns the pseudo kind; meaningful for pseudo matches only.
func (s *Selector) Pseudo() PseudoType { return s.pseudo }

// Value returns the tag local name, id, class, pseudo name or attribute
// value of s.
func (s *Selector) Value() string { return s.value }

// Name returns the qualified tag or attribute name.
func (s *Selector) Name() QualifiedName { return s.name }

// Atom returns the interned HTML element name of a tag selector, or zero.
func (s *Selector) Atom() atom.Atom { return s.atom }

// AttributeMatch returns the case-sensitivity mode of an attribute selector.
func (s *Selector) AttributeMatch() AttributeMatchType { return s.attrCase }

func (s *Selector) IsLastInComplexSelector() bool { return s.flags&flagLastInComplex != 0 }
func (s *Selector) IsLastInSelectorList() bool    { return s.flags&flagLastInList != 0 }
func (s *Selector) IsImplicit() bool              { return s.flags&flagImplicit != 0 }
func (s *Selector) IsForPage() bool               { return s.flags&flagForPage != 0 }
func (s *Selector) IsInvisible() bool             { return s.flags&flagInvisible != 0 }
func (s *Selector) IsCoveredByBucketing() bool    { return s.flags&flagCoveredByBucketing != 0 }
func (s *Selector) Signal() Signal                { return s.signal }
func (s *Selector) HasExtendedData() bool         { return s.ext != nil }

// ParentRule returns the rule an "&" selector is bound to.
func (s *Selector) ParentRule() ParentRule { return s.parent }

// Nth returns the An+B pair of an :nth-* pseudo-class.
func (s *Selector) Nth() (a, b int, ok bool) {
	if s.ext == nil || !s.ext.hasNth {
		return 0, 0, false
	}
	return s.ext.a, s.ext.b, true
}

// SelectorList returns the argument list of a functional pseudo, or nil.
func (s *Selector) SelectorList() *SelectorList {
	if s.ext == nil {
		return nil
	}
	return s.ext.list
}

// Identifiers returns the identifier arguments of ::part(), :lang() and
// ::view-transition-*().
func (s *Selector) Identifiers() []string {
	if s.ext == nil {
		return nil
	}
	return s.ext.idents
}

// Argument returns the free-form argument of a functional pseudo.
func (s *Selector) Argument() string {
	if s.ext == nil {
		return ""
	}
	return s.ext.argument
}

// HasArgumentFlags returns what the argument of a :has() contains.
func (s *Selector) HasArgumentFlags() HasArgumentFlags {
	if s.ext == nil {
		return 0
	}
	return s.ext.hasFlags
}

// UnparsedNestingType returns which anchor a dropped forgiving-list member
// contained, for placeholder selectors.
func (s *Selector) UnparsedNestingType() NestingType {
	if s.ext == nil {
		return NestingNone
	}
	return s.ext.unparsed
}

// IsOrContainsNesting reports whether s is "&", a placeholder for a member
// that contained "&", or has such a selector in its argument list.
func (s *Selector) IsOrContainsNesting() bool {
	switch {
	case s.match == MatchPseudoClass && s.pseudo == PseudoParent:
		return true
	case s.pseudo == PseudoUnparsed:
		return s.UnparsedNestingType() == NestingNesting
	}
	if l := s.SelectorList(); l != nil {
		return l.IsNestContaining()
	}
	return false
}

// IsOrContainsScope is like IsOrContainsNesting for ":scope".
func (s *Selector) IsOrContainsScope() bool {
	switch {
	case s.match == MatchPseudoClass && s.pseudo == PseudoScope:
		return true
	case s.pseudo == PseudoUnparsed:
		return s.UnparsedNestingType() == NestingScope
	}
	if l := s.SelectorList(); l != nil {
		return l.IsScopeContaining()
	}
	return false
}
