package selectors

// Validation tables. Each is a pure function of the pseudo kind so it can
// be tested on its own.

// implicitShadowRelation returns the relation a pseudo-element needs to
// its left when it lives in a shadow tree.
func implicitShadowRelation(s *Selector) (Relation, bool) {
	if s.match != MatchPseudoElement {
		return SubSelector, false
	}
	switch s.pseudo {
	case PseudoWebKitCustomElement, PseudoInternalElement, PseudoCue,
		PseudoPlaceholder, PseudoFileSelectorButton, PseudoDetailsContent:
		return UAShadow, true
	case PseudoSlotted:
		return ShadowSlot, true
	case PseudoPart:
		return ShadowPart, true
	}
	return SubSelector, false
}

func isTreeStructural(p PseudoType) bool {
	switch p {
	case PseudoRoot, PseudoEmpty, PseudoFirstChild, PseudoLastChild, PseudoOnlyChild,
		PseudoFirstOfType, PseudoLastOfType, PseudoOnlyOfType,
		PseudoNthChild, PseudoNthLastChild, PseudoNthOfType, PseudoNthLastOfType:
		return true
	}
	return false
}

func isUserAction(p PseudoType) bool {
	switch p {
	case PseudoHover, PseudoActive, PseudoFocus, PseudoFocusVisible, PseudoFocusWithin:
		return true
	}
	return false
}

func isLogicalCombination(p PseudoType) bool {
	switch p {
	case PseudoIs, PseudoWhere, PseudoNot, PseudoAny:
		return true
	}
	return false
}

func isScrollbarPseudoElement(p PseudoType) bool {
	switch p {
	case PseudoScrollbar, PseudoScrollbarButton, PseudoScrollbarCorner, PseudoScrollbarThumb,
		PseudoScrollbarTrack, PseudoScrollbarTrackPiece, PseudoResizer:
		return true
	}
	return false
}

func isScrollbarPseudoClass(p PseudoType) bool {
	switch p {
	case PseudoHorizontal, PseudoVertical, PseudoDecrement, PseudoIncrement, PseudoStart,
		PseudoEnd, PseudoDoubleButton, PseudoSingleButton, PseudoNoButton,
		PseudoCornerPresent, PseudoWindowInactive, PseudoEnabled, PseudoDisabled,
		PseudoHover, PseudoActive:
		return true
	}
	return false
}

func isViewTransitionPseudoElement(p PseudoType) bool {
	switch p {
	case PseudoViewTransition, PseudoViewTransitionGroup, PseudoViewTransitionImagePair,
		PseudoViewTransitionNew, PseudoViewTransitionOld:
		return true
	}
	return false
}

// isPseudoElementValidAfter reports which pseudo-elements may follow
// another one in the same compound ("::before::marker").
func isPseudoElementValidAfter(next, restricting PseudoType) bool {
	switch restricting {
	case PseudoBefore, PseudoAfter:
		return next == PseudoMarker
	case PseudoSlotted:
		switch next {
		case PseudoBefore, PseudoAfter, PseudoMarker, PseudoPlaceholder, PseudoFileSelectorButton:
			return true
		}
	case PseudoPart:
		switch next {
		case PseudoBefore, PseudoAfter, PseudoMarker, PseudoPlaceholder, PseudoFileSelectorButton,
			PseudoFirstLine, PseudoFirstLetter, PseudoSelection, PseudoTargetText, PseudoHighlight,
			PseudoSpellingError, PseudoGrammarError, PseudoBackdrop:
			return true
		}
	}
	return false
}

// isPseudoClassValidAfter reports which pseudo-classes may follow the
// pseudo-element restricting.
func isPseudoClassValidAfter(next, restricting PseudoType) bool {
	switch {
	case restricting == PseudoPart:
		if isTreeStructural(next) {
			return false
		}
		switch next {
		case PseudoHas, PseudoHost, PseudoHostContext, PseudoScope, PseudoParent, PseudoAny:
			return false
		}
		return true
	case restricting == PseudoWebKitCustomElement, restricting == PseudoInternalElement,
		restricting == PseudoPlaceholder, restricting == PseudoFileSelectorButton,
		restricting == PseudoDetailsContent, restricting == PseudoSlotted:
		return isUserAction(next) || next == PseudoIs || next == PseudoWhere || next == PseudoNot
	case isScrollbarPseudoElement(restricting):
		return isScrollbarPseudoClass(next)
	case restricting == PseudoSelection:
		return next == PseudoWindowInactive
	case isViewTransitionPseudoElement(restricting):
		return next == PseudoOnlyChild
	}
	return false
}

// isSimpleSelectorValidAfterPseudoElement is the single gate for every
// simple selector that follows a pseudo-element in a compound.
func isSimpleSelectorValidAfterPseudoElement(s *Selector, restricting PseudoType, mode Mode) bool {
	if restricting == PseudoUnknown {
		return true
	}
	switch s.match {
	case MatchPseudoElement:
		return isPseudoElementValidAfter(s.pseudo, restricting)
	case MatchPseudoClass:
		// Author sheets accept any pseudo-class after the legacy
		// ::-webkit-* custom pseudo-elements.
		if restricting == PseudoWebKitCustomElement && mode != UASheetMode {
			return true
		}
		return isPseudoClassValidAfter(s.pseudo, restricting)
	}
	return false
}

// isCompoundOnlyArgument reports whether the pseudo takes compound
// selectors only (no combinators) as its argument.
func isCompoundOnlyArgument(p PseudoType) bool {
	switch p {
	case PseudoHost, PseudoHostContext, PseudoAny, PseudoCue, PseudoSlotted:
		return true
	}
	return false
}
