package selectors

import "fmt"

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C]. Each component saturates at
// 255 instead of overflowing.
type Specificity [3]uint8

// returns `true` if s < other (strictly), false otherwise
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Add returns the saturated component-wise sum of s and other.
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		if sum := int(s[i]) + int(sp); sum > 255 {
			s[i] = 255
		} else {
			s[i] = uint8(sum)
		}
	}
	return s
}

// Value packs s into one comparable number, A<<16 | B<<8 | C.
func (s Specificity) Value() uint32 {
	return uint32(s[0])<<16 | uint32(s[1])<<8 | uint32(s[2])
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

func maxSpecificity(a, b Specificity) Specificity {
	if a.Less(b) {
		return b
	}
	return a
}

var (
	specID      = Specificity{1, 0, 0}
	specClass   = Specificity{0, 1, 0}
	specElement = Specificity{0, 0, 1}
)

// specificityOf sums the specificity of the simple selectors of one
// complex selector.
func specificityOf(sels []Selector) Specificity {
	var out Specificity
	for i := range sels {
		out = out.Add(sels[i].specificity())
	}
	return out
}

// specificity of one simple selector, including its arguments
func (s *Selector) specificity() Specificity {
	if s.IsForPage() {
		return s.pageSpecificity()
	}
	switch s.match {
	case MatchID:
		return specID
	case MatchClass:
		return specClass
	case MatchTag:
		if s.name.Universal() {
			return Specificity{}
		}
		return specElement
	case MatchPseudoElement:
		if s.pseudo == PseudoSlotted {
			return specElement.Add(s.SelectorList().MaximumSpecificity())
		}
		return specElement
	case MatchPseudoClass:
		return s.pseudoClassSpecificity()
	}
	if s.match.IsAttribute() {
		return specClass
	}
	return Specificity{}
}

func (s *Selector) pseudoClassSpecificity() Specificity {
	switch s.pseudo {
	case PseudoWhere, PseudoTrue, PseudoRelativeAnchor, PseudoUnparsed:
		return Specificity{}
	case PseudoScope:
		if s.IsImplicit() {
			return Specificity{}
		}
	case PseudoIs, PseudoNot, PseudoHas:
		return s.SelectorList().MaximumSpecificity()
	case PseudoNthChild, PseudoNthLastChild, PseudoHost, PseudoHostContext:
		return specClass.Add(s.SelectorList().MaximumSpecificity())
	case PseudoParent:
		if s.parent == nil {
			return Specificity{}
		}
		return s.parent.SelectorList().MaximumSpecificity()
	}
	return specClass
}

// pageSpecificity follows CSS Paged Media: page name, then :first and
// :blank, then :left and :right.
func (s *Selector) pageSpecificity() Specificity {
	switch {
	case s.match == MatchTag && !s.name.Universal():
		return specID
	case s.pseudo == PseudoFirstPage, s.pseudo == PseudoBlankPage:
		return specClass
	case s.pseudo == PseudoLeftPage, s.pseudo == PseudoRightPage:
		return specElement
	}
	return Specificity{}
}
