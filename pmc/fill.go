package pmc

import (
	"fmt"

	"github.com/katalvlaran/twexact/td"
	"github.com/katalvlaran/twexact/vset"
)

// fill adds bag to d and hangs the memoized subtree of every component of
// comp \ bag below it. It returns the index of bag in d.
func (s *state) fill(d *td.Decomposition, bag, comp vset.Set) (int, error) {
	r := d.AddBag(bag)
	for _, c := range s.g.ComponentsOf(comp.Minus(bag)) {
		sub, ok := s.memo[c.Key()]
		if !ok {
			return r, fmt.Errorf("component %v below bag %v: %w", c, bag, ErrInconsistent)
		}
		b, err := s.fill(d, sub, c)
		if err != nil {
			return r, err
		}
		d.AddEdge(r, b)
	}

	return r, nil
}
