// Package nav tracks the position in a deck with two stacks: slides still
// ahead and slides already left behind.
package nav

// Navigator steps through slide indices [0, total). It starts before the
// first slide, at position 0 with nothing current.
//
// Invariant: Trail always returns 0..total-1 in order.
type Navigator struct {
	// forward holds upcoming indices; the next slide is at the end.
	forward []int
	// backward holds visited indices; the previous slide is at the end.
	backward []int
	current  int
	hasCur   bool
	position int
	total    int
}

// New returns a Navigator over total slides.
func New(total int) *Navigator {
	total = max(total, 0)
	forward := make([]int, total)
	for i := range forward {
		forward[i] = total - 1 - i
	}
	return &Navigator{
		forward:  forward,
		backward: make([]int, 0, total),
		total:    total,
	}
}

// Advance moves to the next slide. It reports false, changing nothing, when
// there is none.
func (n *Navigator) Advance() bool {
	if len(n.forward) == 0 {
		return false
	}
	if n.hasCur {
		n.backward = append(n.backward, n.current)
	}
	n.current = pop(&n.forward)
	n.hasCur = true
	n.position++
	return true
}

// Retreat moves to the previous slide. It reports false, changing nothing,
// when the first slide or nothing is showing.
func (n *Navigator) Retreat() bool {
	if len(n.backward) == 0 {
		return false
	}
	n.forward = append(n.forward, n.current)
	n.current = pop(&n.backward)
	n.position--
	return true
}

// Current returns the index of the showing slide.
func (n *Navigator) Current() (int, bool) {
	return n.current, n.hasCur
}

// Position is the 1-based number of the showing slide, 0 before the first.
func (n *Navigator) Position() int {
	return n.position
}

func (n *Navigator) Total() int {
	return n.total
}

// AtEnd reports whether the last slide is showing.
func (n *Navigator) AtEnd() bool {
	return n.hasCur && len(n.forward) == 0
}

// Trail reconstructs the full order: visited, current, then upcoming.
func (n *Navigator) Trail() []int {
	out := make([]int, 0, n.total)
	out = append(out, n.backward...)
	if n.hasCur {
		out = append(out, n.current)
	}
	for i := len(n.forward) - 1; i >= 0; i-- {
		out = append(out, n.forward[i])
	}
	return out
}

func pop(s *[]int) int {
	last := len(*s) - 1
	v := (*s)[last]
	*s = (*s)[:last]
	return v
}
