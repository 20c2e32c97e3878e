package selectors

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPseudoTablesSorted(t *testing.T) {
	for name, table := range map[string][]pseudoEntry{
		"without arguments": pseudoWithoutArguments,
		"with arguments":    pseudoWithArguments,
		"page":              pagePseudoClasses,
	} {
		sorted := sort.SliceIsSorted(table, func(i, j int) bool { return table[i].name < table[j].name })
		assert.True(t, sorted, "table %s is not sorted", name)
		for _, e := range table {
			found, ok := searchPseudo(table, e.name)
			assert.True(t, ok, "%s not found in table %s", e.name, name)
			assert.Equal(t, e.pseudo, found.pseudo)
		}
	}
}

func TestLookupPseudo(t *testing.T) {
	e, ok := lookupPseudo("hover", false)
	assert.True(t, ok)
	assert.Equal(t, PseudoHover, e.pseudo)

	_, ok = lookupPseudo("hover", true)
	assert.False(t, ok, "hover takes no argument")

	e, ok = lookupPseudo("host", true)
	assert.True(t, ok)
	assert.Equal(t, PseudoHost, e.pseudo)

	_, ok = lookupPseudo("no-such-thing", false)
	assert.False(t, ok)
}

func TestPseudoTypeString(t *testing.T) {
	assert.Equal(t, "hover", PseudoHover.String())
	assert.Equal(t, "any-link", PseudoAnyLink.String())
	assert.Equal(t, "fullscreen", PseudoFullscreen.String())
	assert.Equal(t, "nth-child", PseudoNthChild.String())
	assert.Equal(t, "&", PseudoParent.String())
	assert.Equal(t, "first", PseudoFirstPage.String())
	assert.Equal(t, "unknown", PseudoUnknown.String())
}

func TestPseudoElementAfterPseudoElement(t *testing.T) {
	assert.True(t, isPseudoElementValidAfter(PseudoMarker, PseudoBefore))
	assert.False(t, isPseudoElementValidAfter(PseudoBefore, PseudoAfter))
	assert.True(t, isPseudoElementValidAfter(PseudoAfter, PseudoSlotted))
	assert.True(t, isPseudoElementValidAfter(PseudoSelection, PseudoPart))
	assert.False(t, isPseudoElementValidAfter(PseudoPart, PseudoPart))
}

func TestPseudoClassAfterPseudoElement(t *testing.T) {
	assert.True(t, isPseudoClassValidAfter(PseudoHover, PseudoPart))
	assert.False(t, isPseudoClassValidAfter(PseudoFirstChild, PseudoPart))
	assert.False(t, isPseudoClassValidAfter(PseudoHas, PseudoPart))
	assert.True(t, isPseudoClassValidAfter(PseudoHover, PseudoPlaceholder))
	assert.False(t, isPseudoClassValidAfter(PseudoChecked, PseudoPlaceholder))
	assert.True(t, isPseudoClassValidAfter(PseudoHorizontal, PseudoScrollbarThumb))
	assert.False(t, isPseudoClassValidAfter(PseudoFocus, PseudoScrollbarThumb))
	assert.True(t, isPseudoClassValidAfter(PseudoWindowInactive, PseudoSelection))
	assert.True(t, isPseudoClassValidAfter(PseudoOnlyChild, PseudoViewTransitionNew))
	assert.False(t, isPseudoClassValidAfter(PseudoHover, PseudoBefore))
}

func TestWebKitCustomElementCarveOut(t *testing.T) {
	checked := &Selector{match: MatchPseudoClass, pseudo: PseudoChecked}
	assert.True(t, isSimpleSelectorValidAfterPseudoElement(checked, PseudoWebKitCustomElement, HTMLStandardMode))
	assert.False(t, isSimpleSelectorValidAfterPseudoElement(checked, PseudoWebKitCustomElement, UASheetMode))
	class := &Selector{match: MatchClass, value: "a"}
	assert.True(t, isSimpleSelectorValidAfterPseudoElement(class, PseudoUnknown, HTMLStandardMode))
	assert.False(t, isSimpleSelectorValidAfterPseudoElement(class, PseudoWebKitCustomElement, HTMLStandardMode))
}

func TestImplicitShadowRelation(t *testing.T) {
	for _, test := range []struct {
		pseudo PseudoType
		rel    Relation
		ok     bool
	}{
		{PseudoPlaceholder, UAShadow, true},
		{PseudoWebKitCustomElement, UAShadow, true},
		{PseudoSlotted, ShadowSlot, true},
		{PseudoPart, ShadowPart, true},
		{PseudoBefore, SubSelector, false},
	} {
		rel, ok := implicitShadowRelation(&Selector{match: MatchPseudoElement, pseudo: test.pseudo})
		assert.Equal(t, test.ok, ok, test.pseudo.String())
		assert.Equal(t, test.rel, rel, test.pseudo.String())
	}
	_, ok := implicitShadowRelation(&Selector{match: MatchPseudoClass, pseudo: PseudoHover})
	assert.False(t, ok)
}
