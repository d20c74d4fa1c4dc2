package vset

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// Set is a set of vertex ids drawn from the universe 0..n-1.
//
// The zero value is an empty set over an empty universe. Sets over different
// universes may be combined; the result uses the larger universe.
type Set struct {
	n int      // universe size
	w []uint64 // bit i of w[i/64] ⇔ i ∈ set
}

func wordsFor(n int) int { return (n + wordBits - 1) / wordBits }

// New returns an empty Set over the universe 0..n-1.
// Panics if n is negative.
func New(n int) Set {
	if n < 0 {
		panic("vset: negative universe size")
	}

	return Set{n: n, w: make([]uint64, wordsFor(n))}
}

// Of returns a Set over 0..n-1 holding the given members.
// Panics if a member lies outside the universe.
func Of(n int, members ...int) Set {
	s := New(n)
	for _, v := range members {
		s.Add(v)
	}

	return s
}

// Full returns the Set {0, 1, ..., n-1}.
func Full(n int) Set {
	s := New(n)
	for i := range s.w {
		s.w[i] = ^uint64(0)
	}
	if r := n % wordBits; r != 0 {
		s.w[len(s.w)-1] = (uint64(1) << r) - 1
	}

	return s
}

// Universe returns n, the size of the universe the set was created over.
func (s Set) Universe() int { return s.n }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	w := make([]uint64, len(s.w))
	copy(w, s.w)

	return Set{n: s.n, w: w}
}

// Contains reports whether v ∈ s. Out-of-range ids are never members.
func (s Set) Contains(v int) bool {
	if v < 0 || v >= s.n {
		return false
	}

	return s.w[v/wordBits]&(uint64(1)<<(v%wordBits)) != 0
}

// Len returns |s|.
func (s Set) Len() int {
	c := 0
	for _, x := range s.w {
		c += bits.OnesCount64(x)
	}

	return c
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	for _, x := range s.w {
		if x != 0 {
			return false
		}
	}

	return true
}

// Next returns the smallest member ≥ from, or -1 if there is none.
// Iterate with: for v := s.Next(0); v >= 0; v = s.Next(v + 1).
func (s Set) Next(from int) int {
	if from < 0 {
		from = 0
	}
	if from >= s.n {
		return -1
	}
	i := from / wordBits
	x := s.w[i] >> (from % wordBits)
	if x != 0 {
		return from + bits.TrailingZeros64(x)
	}
	for i++; i < len(s.w); i++ {
		if s.w[i] != 0 {
			return i*wordBits + bits.TrailingZeros64(s.w[i])
		}
	}

	return -1
}

// Min returns the smallest member of s, or -1 if s is empty.
func (s Set) Min() int { return s.Next(0) }

// Members returns the members of s in ascending order.
func (s Set) Members() []int {
	out := make([]int, 0, s.Len())
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		out = append(out, v)
	}

	return out
}

// Word returns the i-th 64-bit word of s, or 0 past the end.
func (s Set) Word(i int) uint64 {
	if i < 0 || i >= len(s.w) {
		return 0
	}

	return s.w[i]
}

// ---------------------------------------------------------------------------
// In-place mutation. Only call these on Sets you own.
// ---------------------------------------------------------------------------

// Add inserts v into s in place. Panics if v is outside the universe.
func (s *Set) Add(v int) {
	if v < 0 || v >= s.n {
		panic("vset: member " + strconv.Itoa(v) + " outside universe of size " + strconv.Itoa(s.n))
	}
	s.w[v/wordBits] |= uint64(1) << (v % wordBits)
}

// Remove deletes v from s in place. Out-of-range ids are ignored.
func (s *Set) Remove(v int) {
	if v < 0 || v >= s.n {
		return
	}
	s.w[v/wordBits] &^= uint64(1) << (v % wordBits)
}

// Or sets s = s ∪ t in place, growing the universe if t's is larger.
func (s *Set) Or(t Set) {
	s.grow(t.n)
	for i, x := range t.w {
		s.w[i] |= x
	}
}

// AndNot sets s = s \ t in place.
func (s *Set) AndNot(t Set) {
	for i := range s.w {
		if i >= len(t.w) {
			break
		}
		s.w[i] &^= t.w[i]
	}
}

// And sets s = s ∩ t in place.
func (s *Set) And(t Set) {
	for i := range s.w {
		if i < len(t.w) {
			s.w[i] &= t.w[i]
		} else {
			s.w[i] = 0
		}
	}
}

func (s *Set) grow(n int) {
	if n <= s.n {
		return
	}
	if need := wordsFor(n); need > len(s.w) {
		w := make([]uint64, need)
		copy(w, s.w)
		s.w = w
	}
	s.n = n
}

// ---------------------------------------------------------------------------
// Value-style algebra. The receiver and arguments are left untouched.
// ---------------------------------------------------------------------------

// With returns s ∪ {v}.
func (s Set) With(v int) Set {
	r := s.Clone()
	r.Add(v)

	return r
}

// Without returns s \ {v}.
func (s Set) Without(v int) Set {
	r := s.Clone()
	r.Remove(v)

	return r
}

// Union returns s ∪ t.
func (s Set) Union(t Set) Set {
	r := s.Clone()
	r.Or(t)

	return r
}

// Intersect returns s ∩ t.
func (s Set) Intersect(t Set) Set {
	r := s.Clone()
	r.And(t)

	return r
}

// Minus returns s \ t.
func (s Set) Minus(t Set) Set {
	r := s.Clone()
	r.AndNot(t)

	return r
}

// IntersectLen returns |s ∩ t| without allocating.
func (s Set) IntersectLen(t Set) int {
	c := 0
	m := min(len(s.w), len(t.w))
	for i := 0; i < m; i++ {
		c += bits.OnesCount64(s.w[i] & t.w[i])
	}

	return c
}

// MinusLen returns |s \ t| without allocating.
func (s Set) MinusLen(t Set) int {
	c := 0
	for i, x := range s.w {
		c += bits.OnesCount64(x &^ t.Word(i))
	}

	return c
}

// IsSubset reports whether s ⊆ t.
func (s Set) IsSubset(t Set) bool {
	for i, x := range s.w {
		if x&^t.Word(i) != 0 {
			return false
		}
	}

	return true
}

// Intersects reports whether s ∩ t ≠ ∅.
func (s Set) Intersects(t Set) bool {
	m := min(len(s.w), len(t.w))
	for i := 0; i < m; i++ {
		if s.w[i]&t.w[i] != 0 {
			return true
		}
	}

	return false
}

// Equal reports whether s and t hold the same members. Universe sizes are
// not compared.
func (s Set) Equal(t Set) bool {
	m := max(len(s.w), len(t.w))
	for i := 0; i < m; i++ {
		if s.Word(i) != t.Word(i) {
			return false
		}
	}

	return true
}

// Compare orders sets by cardinality, then by their members in ascending
// lexicographic order. It returns -1, 0 or +1.
func (s Set) Compare(t Set) int {
	ls, lt := s.Len(), t.Len()
	switch {
	case ls < lt:
		return -1
	case ls > lt:
		return 1
	}
	a, b := s.Min(), t.Min()
	for a >= 0 && b >= 0 {
		if a != b {
			if a < b {
				return -1
			}

			return 1
		}
		a, b = s.Next(a+1), t.Next(b+1)
	}

	return 0
}

// Convert renumbers s under conv: each member v maps to conv[v], members with
// conv[v] < 0 (or outside conv) are dropped. The result lives in universe m.
func (s Set) Convert(conv []int, m int) Set {
	r := New(m)
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		if v < len(conv) && conv[v] >= 0 {
			r.Add(conv[v])
		}
	}

	return r
}

// Key returns a string that identifies the members of s, suitable as a map
// key. Sets with equal members share a key regardless of universe size.
func (s Set) Key() string {
	last := len(s.w) - 1
	for last >= 0 && s.w[last] == 0 {
		last--
	}
	buf := make([]byte, 8*(last+1))
	for i := 0; i <= last; i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], s.w[i])
	}

	return string(buf)
}

// String renders s as "{a b c}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := s.Next(0); v >= 0; v = s.Next(v + 1) {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
		first = false
	}
	sb.WriteByte('}')

	return sb.String()
}
