package glink

// Chain is an owning, indexable sequence of glinks (§9: "a simple owning
// vector of glinks"). The zero value is an empty chain ready to use.
type Chain struct {
	links []Glink
}

// Len returns the number of glinks in the chain.
func (c *Chain) Len() int {
	return len(c.links)
}

// Append adds a new glink to the end of the chain.
func (c *Chain) Append(g Glink) {
	c.links = append(c.links, g)
}

// Head returns the chain's first glink. Panics if the chain is empty — a
// chain must always be initialised with a head glink before any other
// operation touches it (§3).
func (c *Chain) Head() Glink {
	if len(c.links) == 0 {
		panic("glink: Head() on empty chain")
	}
	return c.links[0]
}

// Tail returns the chain's last glink. Panics if the chain is empty.
func (c *Chain) Tail() Glink {
	if len(c.links) == 0 {
		panic("glink: Tail() on empty chain")
	}
	return c.links[len(c.links)-1]
}

// At returns the i-th glink (0 = head). Panics if i is out of range.
func (c *Chain) At(i int) Glink {
	return c.links[i]
}

// Glinks returns the chain's glinks in order. The returned slice aliases
// the chain's backing array; callers must not mutate it.
func (c *Chain) Glinks() []Glink {
	return c.links
}

// NonHeadGlinks returns every glink after the head, in order — the set
// whose costs sum to the chain's predicted cost (§3).
func (c *Chain) NonHeadGlinks() []Glink {
	if len(c.links) <= 1 {
		return nil
	}
	return c.links[1:]
}

// Cost returns the chain's predicted cost: the sum of every non-head
// glink's Cost under the given regime (§3).
func (c *Chain) Cost(depthRegime bool) int {
	total := 0
	for _, g := range c.NonHeadGlinks() {
		total += g.Cost(depthRegime)
	}
	return total
}
