package selectors

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the storage structure of the list as a tree: complex
// selectors, their compounds in storage order and every simple selector
// record with its relation and flags. Nested argument lists are rendered
// below the pseudo-class owning them.
func (l *SelectorList) Dump() string {
	root := treeprint.New()
	root.SetValue(fmt.Sprintf("selector list %q", l.String()))
	dumpList(root, l)
	return root.String()
}

func dumpList(t treeprint.Tree, l *SelectorList) {
	for _, c := range l.ComplexSelectors() {
		ct := t.AddBranch(fmt.Sprintf("complex %q %s", c.String(), c.Specificity()))
		for _, comp := range c.Compounds() {
			rel := comp[len(comp)-1].relation
			bt := ct.AddBranch("compound " + rel.String())
			for i := range comp {
				dumpSelector(bt, &comp[i])
			}
		}
	}
}

func dumpSelector(t treeprint.Tree, s *Selector) {
	label := s.match.String()
	switch s.match {
	case MatchPseudoClass, MatchPseudoElement, MatchPagePseudoClass:
		label += " " + s.pseudo.String()
	default:
		if text := s.String(); text != "" {
			label += " " + text
		}
	}
	if a, b, ok := s.Nth(); ok {
		label += fmt.Sprintf(" a=%d b=%d", a, b)
	}
	if s.relation != SubSelector {
		label += " → " + s.relation.String()
	}
	if s.IsImplicit() {
		label += " [implicit]"
	}
	if s.IsInvisible() {
		label += " [invisible]"
	}
	if s.signal != SignalNone {
		label += fmt.Sprintf(" [signal %d]", s.signal)
	}
	if nested := s.SelectorList(); nested != nil {
		dumpList(t.AddBranch(label), nested)
		return
	}
	t.AddNode(label)
}
