package selectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaScopes(t *testing.T) {
	var a arena
	outer := a.enter()
	a.append(Selector{match: MatchClass, value: "a"})

	inner := a.enter()
	a.append(Selector{match: MatchClass, value: "b"})
	a.append(Selector{match: MatchClass, value: "c"})
	require.Len(t, inner.added(), 2)
	inner.rollback()
	assert.Equal(t, 1, a.len())

	kept := a.enter()
	a.append(Selector{match: MatchID, value: "d"})
	kept.commit()
	kept.rollback() // no-op after commit
	assert.Equal(t, 2, a.len())

	sels := outer.commit()
	require.Len(t, sels, 2)
	assert.Equal(t, "a", sels[0].value)
	assert.Equal(t, "d", sels[1].value)
	assert.NotPanics(t, a.checkBalanced)
}

func TestArenaUnbalanced(t *testing.T) {
	var a arena
	a.enter()
	assert.Panics(t, a.checkBalanced)
}

func TestArenaInsertAndReverse(t *testing.T) {
	var a arena
	for _, v := range []string{"a", "b", "c"} {
		a.append(Selector{match: MatchClass, value: v})
	}
	a.insertAt(1, Selector{match: MatchTag, value: "x"})
	a.reverse(0, a.len())
	var got []string
	for _, s := range a.sels {
		got = append(got, s.value)
	}
	assert.Equal(t, []string{"c", "b", "x", "a"}, got)
	a.reverse(1, 3)
	assert.Equal(t, "x", a.sels[1].value)
	assert.Equal(t, "a", a.last().value)
}
