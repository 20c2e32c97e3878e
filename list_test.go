package selectors

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRule struct {
	sels *SelectorList
}

func (r testRule) SelectorList() *SelectorList { return r.sels }

func TestNestedSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "css.selectors")
	defer teardown()
	//
	parent := testRule{MustParse("#p")}
	ctx := &Context{Nesting: NestingNesting, Parent: parent}
	for _, test := range []struct {
		selector, serialized string
		specificity          Specificity
	}{
		{".foo", ".foo", Specificity{1, 1, 0}},
		{"> .a", "> .a", Specificity{1, 1, 0}},
		{"+ .a .b", "+ .a .b", Specificity{1, 2, 0}},
		{"& .foo", "& .foo", Specificity{1, 1, 0}},
		{".a &", ".a &", Specificity{1, 1, 0}},
		{"&.a", "&.a", Specificity{1, 1, 0}},
		{":is(&) .b", ":is(&) .b", Specificity{1, 1, 0}},
		{".a, & .b", ".a, & .b", Specificity{1, 1, 0}},
	} {
		l, err := ParseWithContext(test.selector, ctx)
		if err != nil {
			t.Errorf("error parsing %q: %s", test.selector, err)
			continue
		}
		assert.Equal(t, test.serialized, l.String(), test.selector)
		assert.Equal(t, test.specificity, l.MaximumSpecificity(), test.selector)
		assert.True(t, l.IsNestContaining(), test.selector)
	}
}

func TestImplicitNestingAnchor(t *testing.T) {
	parent := testRule{MustParse(".p")}
	l, err := ParseWithContext(".foo", &Context{Nesting: NestingNesting, Parent: parent})
	require.NoError(t, err)
	sels := l.Selectors()
	require.Len(t, sels, 2)
	assert.Equal(t, Descendant, sels[0].Relation())
	assert.Equal(t, PseudoParent, sels[1].Pseudo())
	assert.True(t, sels[1].IsImplicit())
	assert.Equal(t, parent, sels[1].ParentRule())

	l, err = ParseWithContext("& .foo", &Context{Nesting: NestingNesting, Parent: parent})
	require.NoError(t, err)
	assert.Len(t, l.Selectors(), 2)
	assert.False(t, l.Selectors()[1].IsImplicit())
}

func TestScopeSelectors(t *testing.T) {
	ctx := &Context{Nesting: NestingScope}
	l, err := ParseWithContext(".a", ctx)
	require.NoError(t, err)
	assert.Equal(t, ".a", l.String())
	assert.Equal(t, Specificity{0, 1, 0}, l.MaximumSpecificity())
	sels := l.Selectors()
	require.Len(t, sels, 3)
	assert.Equal(t, PseudoScope, sels[1].Pseudo())
	assert.True(t, sels[1].IsImplicit())
	assert.Equal(t, ScopeActivation, sels[1].Relation())
	assert.Equal(t, SignalScopeActivation, sels[2].Signal())
	assert.True(t, sels[2].IsInvisible())
	assert.True(t, sels[2].IsLastInComplexSelector())

	l, err = ParseWithContext(":scope > .a", ctx)
	require.NoError(t, err)
	assert.Equal(t, ":scope > .a", l.String())
	assert.Equal(t, Specificity{0, 2, 0}, l.MaximumSpecificity())
	assert.Len(t, l.Selectors(), 3)

	l, err = ParseWithContext("> .a", ctx)
	require.NoError(t, err)
	assert.Equal(t, "> .a", l.String())
}

func TestReparent(t *testing.T) {
	first := testRule{MustParse("#x")}
	second := testRule{MustParse(".y")}
	l, err := ParseWithContext(":is(&) .a", &Context{Nesting: NestingNesting, Parent: first})
	require.NoError(t, err)
	assert.Equal(t, Specificity{1, 1, 0}, l.MaximumSpecificity())

	moved := l.Reparent(second)
	assert.Equal(t, Specificity{0, 2, 0}, moved.MaximumSpecificity())
	assert.Equal(t, Specificity{1, 1, 0}, l.MaximumSpecificity(), "original list must not change")
	assert.Equal(t, l.String(), moved.String())

	var nilList *SelectorList
	assert.Nil(t, nilList.Reparent(second))
}

func TestMarkCoveredByBucketing(t *testing.T) {
	l := MustParse("div.a")
	l.MarkCoveredByBucketing(1)
	assert.False(t, l.Selectors()[0].IsCoveredByBucketing())
	assert.True(t, l.Selectors()[1].IsCoveredByBucketing())
}

func TestDump(t *testing.T) {
	l := MustParse("div.a > span.b, :is(.c)")
	dump := l.Dump()
	for _, want := range []string{
		`selector list "div.a > span.b, :is(.c)"`,
		`complex "div.a > span.b" (0,2,2)`,
		"compound Child",
		"Tag span",
		"Class .a",
		"PseudoClass is",
	} {
		assert.True(t, strings.Contains(dump, want), "dump lacks %q:\n%s", want, dump)
	}
}

func TestPageSelectors(t *testing.T) {
	for _, test := range []struct {
		selector, serialized string
		specificity          Specificity
	}{
		{"", "", Specificity{0, 0, 0}},
		{":first", ":first", Specificity{0, 1, 0}},
		{"named", "named", Specificity{1, 0, 0}},
		{"named:first:left", "named:first:left", Specificity{1, 1, 1}},
		{" :BLANK ", ":blank", Specificity{0, 1, 0}},
		{":right", ":right", Specificity{0, 0, 1}},
	} {
		l, err := ParsePageSelector(test.selector)
		if err != nil {
			t.Errorf("error parsing page selector %q: %s", test.selector, err)
			continue
		}
		assert.Equal(t, test.serialized, l.String(), test.selector)
		assert.Equal(t, test.specificity, l.MaximumSpecificity(), test.selector)
		assert.True(t, l.Selectors()[0].IsForPage())
	}
	for _, text := range []string{":hover", "a b", "::first", ".a", ":first(1)"} {
		_, err := ParsePageSelector(text)
		assert.Error(t, err, text)
	}
}
