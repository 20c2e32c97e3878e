package selectors

// arena holds every Selector record of one parse operation. Nested parses
// share it through scopes entered and left in strict LIFO order.
type arena struct {
	sels []Selector
	open int // scopes neither committed nor rolled back
}

// scope marks the arena length on entry. Leaving it with rollback drops
// everything added since; commit keeps the records.
type scope struct {
	a     *arena
	mark  int
	armed bool
}

func (a *arena) enter() *scope {
	a.open++
	return &scope{a: a, mark: len(a.sels), armed: true}
}

func (a *arena) len() int {
	return len(a.sels)
}

func (a *arena) append(s Selector) int {
	a.sels = append(a.sels, s)
	return len(a.sels) - 1
}

func (a *arena) last() *Selector {
	return &a.sels[len(a.sels)-1]
}

// insertAt inserts s at index i, shifting the tail right.
func (a *arena) insertAt(i int, s Selector) {
	a.sels = append(a.sels, Selector{})
	copy(a.sels[i+1:], a.sels[i:])
	a.sels[i] = s
}

// reverse reverses the records in [from, to).
func (a *arena) reverse(from, to int) {
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		a.sels[i], a.sels[j] = a.sels[j], a.sels[i]
	}
}

// added returns the records appended since the scope was entered.
func (s *scope) added() []Selector {
	return s.a.sels[s.mark:]
}

// start returns the arena index of the first record of the scope.
func (s *scope) start() int {
	return s.mark
}

// commit keeps the records and disarms the scope.
func (s *scope) commit() []Selector {
	if s.armed {
		s.armed = false
		s.a.open--
	}
	return s.added()
}

// rollback truncates the arena back to the mark. It is a no-op after
// commit, so it can always be deferred.
func (s *scope) rollback() {
	if !s.armed {
		return
	}
	s.armed = false
	s.a.open--
	for i := s.mark; i < len(s.a.sels); i++ {
		s.a.sels[i] = Selector{}
	}
	s.a.sels = s.a.sels[:s.mark]
}

// checkBalanced panics if a scope was left open. Called at the end of each
// top-level parse.
func (a *arena) checkBalanced() {
	if a.open != 0 {
		panic("selectors: unbalanced arena scope")
	}
}
