package selectors

import (
	"sort"
	"strconv"
	"strings"
)

// PseudoType identifies a pseudo-class or pseudo-element.
type PseudoType uint8

const (
	PseudoUnknown PseudoType = iota
	PseudoActive
	PseudoAfter
	PseudoAny // :-webkit-any()
	PseudoAnyLink
	PseudoAutofill
	PseudoBackdrop
	PseudoBefore
	PseudoBlankPage
	PseudoChecked
	PseudoCornerPresent
	PseudoCue
	PseudoDecrement
	PseudoDefault
	PseudoDefined
	PseudoDetailsContent
	PseudoDir
	PseudoDisabled
	PseudoDoubleButton
	PseudoEmpty
	PseudoEnabled
	PseudoEnd
	PseudoFileSelectorButton
	PseudoFirstChild
	PseudoFirstLetter
	PseudoFirstLine
	PseudoFirstOfType
	PseudoFirstPage
	PseudoFocus
	PseudoFocusVisible
	PseudoFocusWithin
	PseudoFullscreen
	PseudoFuture
	PseudoGrammarError
	PseudoHas
	PseudoHighlight
	PseudoHorizontal
	PseudoHost
	PseudoHostContext
	PseudoHover
	PseudoInRange
	PseudoIncrement
	PseudoIndeterminate
	PseudoInternalElement // ::-internal-*
	PseudoInvalid
	PseudoIs
	PseudoLang
	PseudoLastChild
	PseudoLastOfType
	PseudoLeftPage
	PseudoLink
	PseudoMarker
	PseudoModal
	PseudoNoButton
	PseudoNot
	PseudoNthChild
	PseudoNthLastChild
	PseudoNthLastOfType
	PseudoNthOfType
	PseudoOnlyChild
	PseudoOnlyOfType
	PseudoOpen
	PseudoOptional
	PseudoOutOfRange
	PseudoParent // "&"
	PseudoPart
	PseudoPast
	PseudoPaused
	PseudoPlaceholder
	PseudoPlaceholderShown
	PseudoPlaying
	PseudoPopoverOpen
	PseudoReadOnly
	PseudoReadWrite
	PseudoRelativeAnchor
	PseudoRequired
	PseudoResizer
	PseudoRightPage
	PseudoRoot
	PseudoScope
	PseudoScrollbar
	PseudoScrollbarButton
	PseudoScrollbarCorner
	PseudoScrollbarThumb
	PseudoScrollbarTrack
	PseudoScrollbarTrackPiece
	PseudoSelection
	PseudoSingleButton
	PseudoSlotted
	PseudoSpellingError
	PseudoStart
	PseudoState
	PseudoTarget
	PseudoTargetText
	PseudoTrue
	PseudoUnparsed
	PseudoUserInvalid
	PseudoUserValid
	PseudoValid
	PseudoVertical
	PseudoViewTransition
	PseudoViewTransitionGroup
	PseudoViewTransitionImagePair
	PseudoViewTransitionNew
	PseudoViewTransitionOld
	PseudoVisited
	PseudoWebKitCustomElement // ::-webkit-*
	PseudoWhere
	PseudoWindowInactive
)

// pseudoForm says with how many colons a pseudo may be written.
type pseudoForm uint8

const (
	formClass   pseudoForm = iota // ":name"
	formElement                   // "::name"
	formLegacy                    // "::name", or ":name" for CSS2 pseudo-elements
)

type pseudoEntry struct {
	name   string
	pseudo PseudoType
	form   pseudoForm
}

// pseudoWithoutArguments is sorted by name for binary search.
var pseudoWithoutArguments = []pseudoEntry{
	{"-webkit-any-link", PseudoAnyLink, formClass},
	{"-webkit-autofill", PseudoAutofill, formClass},
	{"-webkit-full-screen", PseudoFullscreen, formClass},
	{"-webkit-resizer", PseudoResizer, formElement},
	{"-webkit-scrollbar", PseudoScrollbar, formElement},
	{"-webkit-scrollbar-button", PseudoScrollbarButton, formElement},
	{"-webkit-scrollbar-corner", PseudoScrollbarCorner, formElement},
	{"-webkit-scrollbar-thumb", PseudoScrollbarThumb, formElement},
	{"-webkit-scrollbar-track", PseudoScrollbarTrack, formElement},
	{"-webkit-scrollbar-track-piece", PseudoScrollbarTrackPiece, formElement},
	{"active", PseudoActive, formClass},
	{"after", PseudoAfter, formLegacy},
	{"any-link", PseudoAnyLink, formClass},
	{"autofill", PseudoAutofill, formClass},
	{"backdrop", PseudoBackdrop, formElement},
	{"before", PseudoBefore, formLegacy},
	{"checked", PseudoChecked, formClass},
	{"corner-present", PseudoCornerPresent, formClass},
	{"cue", PseudoCue, formElement},
	{"decrement", PseudoDecrement, formClass},
	{"default", PseudoDefault, formClass},
	{"defined", PseudoDefined, formClass},
	{"details-content", PseudoDetailsContent, formElement},
	{"disabled", PseudoDisabled, formClass},
	{"double-button", PseudoDoubleButton, formClass},
	{"empty", PseudoEmpty, formClass},
	{"enabled", PseudoEnabled, formClass},
	{"end", PseudoEnd, formClass},
	{"file-selector-button", PseudoFileSelectorButton, formElement},
	{"first-child", PseudoFirstChild, formClass},
	{"first-letter", PseudoFirstLetter, formLegacy},
	{"first-line", PseudoFirstLine, formLegacy},
	{"first-of-type", PseudoFirstOfType, formClass},
	{"focus", PseudoFocus, formClass},
	{"focus-visible", PseudoFocusVisible, formClass},
	{"focus-within", PseudoFocusWithin, formClass},
	{"fullscreen", PseudoFullscreen, formClass},
	{"future", PseudoFuture, formClass},
	{"grammar-error", PseudoGrammarError, formElement},
	{"horizontal", PseudoHorizontal, formClass},
	{"host", PseudoHost, formClass},
	{"hover", PseudoHover, formClass},
	{"in-range", PseudoInRange, formClass},
	{"increment", PseudoIncrement, formClass},
	{"indeterminate", PseudoIndeterminate, formClass},
	{"invalid", PseudoInvalid, formClass},
	{"last-child", PseudoLastChild, formClass},
	{"last-of-type", PseudoLastOfType, formClass},
	{"link", PseudoLink, formClass},
	{"marker", PseudoMarker, formElement},
	{"modal", PseudoModal, formClass},
	{"no-button", PseudoNoButton, formClass},
	{"only-child", PseudoOnlyChild, formClass},
	{"only-of-type", PseudoOnlyOfType, formClass},
	{"open", PseudoOpen, formClass},
	{"optional", PseudoOptional, formClass},
	{"out-of-range", PseudoOutOfRange, formClass},
	{"past", PseudoPast, formClass},
	{"paused", PseudoPaused, formClass},
	{"placeholder", PseudoPlaceholder, formElement},
	{"placeholder-shown", PseudoPlaceholderShown, formClass},
	{"playing", PseudoPlaying, formClass},
	{"popover-open", PseudoPopoverOpen, formClass},
	{"read-only", PseudoReadOnly, formClass},
	{"read-write", PseudoReadWrite, formClass},
	{"required", PseudoRequired, formClass},
	{"root", PseudoRoot, formClass},
	{"scope", PseudoScope, formClass},
	{"selection", PseudoSelection, formElement},
	{"single-button", PseudoSingleButton, formClass},
	{"spelling-error", PseudoSpellingError, formElement},
	{"start", PseudoStart, formClass},
	{"target", PseudoTarget, formClass},
	{"target-text", PseudoTargetText, formElement},
	{"user-invalid", PseudoUserInvalid, formClass},
	{"user-valid", PseudoUserValid, formClass},
	{"valid", PseudoValid, formClass},
	{"vertical", PseudoVertical, formClass},
	{"view-transition", PseudoViewTransition, formElement},
	{"visited", PseudoVisited, formClass},
	{"window-inactive", PseudoWindowInactive, formClass},
}

// pseudoWithArguments is sorted by name for binary search. Names are
// function names without the parenthesis.
var pseudoWithArguments = []pseudoEntry{
	{"-webkit-any", PseudoAny, formClass},
	{"cue", PseudoCue, formElement},
	{"dir", PseudoDir, formClass},
	{"has", PseudoHas, formClass},
	{"highlight", PseudoHighlight, formElement},
	{"host", PseudoHost, formClass},
	{"host-context", PseudoHostContext, formClass},
	{"is", PseudoIs, formClass},
	{"lang", PseudoLang, formClass},
	{"not", PseudoNot, formClass},
	{"nth-child", PseudoNthChild, formClass},
	{"nth-last-child", PseudoNthLastChild, formClass},
	{"nth-last-of-type", PseudoNthLastOfType, formClass},
	{"nth-of-type", PseudoNthOfType, formClass},
	{"part", PseudoPart, formElement},
	{"slotted", PseudoSlotted, formElement},
	{"state", PseudoState, formClass},
	{"view-transition-group", PseudoViewTransitionGroup, formElement},
	{"view-transition-image-pair", PseudoViewTransitionImagePair, formElement},
	{"view-transition-new", PseudoViewTransitionNew, formElement},
	{"view-transition-old", PseudoViewTransitionOld, formElement},
	{"where", PseudoWhere, formClass},
}

// pagePseudoClasses is sorted by name for binary search.
var pagePseudoClasses = []pseudoEntry{
	{"blank", PseudoBlankPage, formClass},
	{"first", PseudoFirstPage, formClass},
	{"left", PseudoLeftPage, formClass},
	{"right", PseudoRightPage, formClass},
}

func searchPseudo(table []pseudoEntry, name string) (pseudoEntry, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].name >= name })
	if i < len(table) && table[i].name == name {
		return table[i], true
	}
	return pseudoEntry{}, false
}

// lookupPseudo finds the pseudo named name (already lower-cased).
func lookupPseudo(name string, hasArguments bool) (pseudoEntry, bool) {
	if hasArguments {
		return searchPseudo(pseudoWithArguments, name)
	}
	return searchPseudo(pseudoWithoutArguments, name)
}

// pseudoNames maps every table entry back to its canonical name.
var pseudoNames = func() map[PseudoType]string {
	m := map[PseudoType]string{
		PseudoParent:              "&",
		PseudoRelativeAnchor:      "-internal-relative-anchor",
		PseudoTrue:                "true",
		PseudoUnparsed:            "-internal-unparsed",
		PseudoWebKitCustomElement: "-webkit-custom",
		PseudoInternalElement:     "-internal-custom",
	}
	for _, table := range [][]pseudoEntry{pagePseudoClasses, pseudoWithArguments, pseudoWithoutArguments} {
		for _, e := range table {
			if strings.HasPrefix(e.name, "-webkit-") {
				if _, ok := m[e.pseudo]; ok {
					continue
				}
			}
			m[e.pseudo] = e.name
		}
	}
	return m
}()

func (p PseudoType) String() string {
	if name, ok := pseudoNames[p]; ok {
		return name
	}
	if p == PseudoUnknown {
		return "unknown"
	}
	return "PseudoType(" + strconv.Itoa(int(p)) + ")"
}
