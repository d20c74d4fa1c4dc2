package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/twexact/graph"
	"github.com/katalvlaran/twexact/td"
	"github.com/katalvlaran/twexact/vset"
)

// Sentinel errors.
var (
	// ErrSyntax marks malformed input; the wrapping message names the line.
	ErrSyntax = errors.New("pace: syntax error")

	// ErrCount reports a header whose counts disagree with the body.
	ErrCount = errors.New("pace: count mismatch")
)

// lines yields non-blank, non-comment lines split into fields together with
// their 1-based line numbers.
type lines struct {
	sc   *bufio.Scanner
	line int
}

func newLines(r io.Reader) *lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &lines{sc: sc}
}

func (l *lines) next() ([]string, bool) {
	for l.sc.Scan() {
		l.line++
		f := strings.Fields(l.sc.Text())
		if len(f) == 0 || f[0] == "c" {
			continue
		}
		return f, true
	}

	return nil, false
}

func (l *lines) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", l.line, fmt.Sprintf(format, args...), ErrSyntax)
}

func (l *lines) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, l.errorf("%q is not an integer", s)
		}
		out[i] = v
	}

	return out, nil
}

// ReadGraph parses a .gr stream. Duplicate edges are collapsed; self-loops
// and out-of-range ids are errors.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	l := newLines(r)
	f, ok := l.next()
	if !ok {
		return nil, l.errorf("missing header")
	}
	if len(f) != 4 || f[0] != "p" || f[1] != "tw" {
		return nil, l.errorf("want header \"p tw n m\", got %q", strings.Join(f, " "))
	}
	nm, err := l.ints(f[2:])
	if err != nil {
		return nil, err
	}
	n, m := nm[0], nm[1]
	if n < 0 || m < 0 {
		return nil, l.errorf("negative count")
	}

	g := graph.New(n)
	read := 0
	for {
		f, ok := l.next()
		if !ok {
			break
		}
		if len(f) != 2 {
			return nil, l.errorf("want edge \"u v\", got %q", strings.Join(f, " "))
		}
		uv, err := l.ints(f)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(uv[0]-1, uv[1]-1); err != nil {
			return nil, fmt.Errorf("line %d: %w", l.line, err)
		}
		read++
	}
	if err := l.sc.Err(); err != nil {
		return nil, fmt.Errorf("pace: read: %w", err)
	}
	if read != m {
		return nil, fmt.Errorf("header announces %d edges, read %d: %w", m, read, ErrCount)
	}

	return g, nil
}

// WriteGraph writes g in .gr format, edges in lexicographic order.
func WriteGraph(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p tw %d %d\n", g.N(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1)
	}

	return bw.Flush()
}

// WriteDecomposition writes d in .td format.
func WriteDecomposition(w io.Writer, d *td.Decomposition) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "s td %d %d %d\n", len(d.Bags), d.Width+1, d.N)
	for i, b := range d.Bags {
		fmt.Fprintf(bw, "b %d", i+1)
		for v := b.Next(0); v >= 0; v = b.Next(v + 1) {
			fmt.Fprintf(bw, " %d", v+1)
		}
		bw.WriteByte('\n')
	}
	for _, e := range d.Edges {
		fmt.Fprintf(bw, "%d %d\n", e[0]+1, e[1]+1)
	}

	return bw.Flush()
}

// ReadDecomposition parses a .td stream. Bags may be listed in any order
// but every index 1..<bags> must appear exactly once.
func ReadDecomposition(r io.Reader) (*td.Decomposition, error) {
	l := newLines(r)
	f, ok := l.next()
	if !ok {
		return nil, l.errorf("missing header")
	}
	if len(f) != 5 || f[0] != "s" || f[1] != "td" {
		return nil, l.errorf("want header \"s td bags maxbag n\", got %q", strings.Join(f, " "))
	}
	hdr, err := l.ints(f[2:])
	if err != nil {
		return nil, err
	}
	nb, maxBag, n := hdr[0], hdr[1], hdr[2]
	if nb < 0 || maxBag < 0 || n < 0 {
		return nil, l.errorf("negative count")
	}

	bags := make([]vset.Set, nb)
	seen := make([]bool, nb)
	var edges [][2]int
	for {
		f, ok := l.next()
		if !ok {
			break
		}
		if f[0] == "b" {
			if len(f) < 2 {
				return nil, l.errorf("bag line without index")
			}
			ids, err := l.ints(f[1:])
			if err != nil {
				return nil, err
			}
			i := ids[0] - 1
			if i < 0 || i >= nb {
				return nil, l.errorf("bag index %d outside 1..%d", ids[0], nb)
			}
			if seen[i] {
				return nil, l.errorf("bag %d listed twice", ids[0])
			}
			seen[i] = true
			bag := vset.New(n)
			for _, v := range ids[1:] {
				if v < 1 || v > n {
					return nil, l.errorf("vertex %d outside 1..%d", v, n)
				}
				bag.Add(v - 1)
			}
			bags[i] = bag
			continue
		}
		if len(f) != 2 {
			return nil, l.errorf("want tree edge \"i j\", got %q", strings.Join(f, " "))
		}
		ij, err := l.ints(f)
		if err != nil {
			return nil, err
		}
		if ij[0] < 1 || ij[0] > nb || ij[1] < 1 || ij[1] > nb {
			return nil, l.errorf("tree edge %d %d outside 1..%d", ij[0], ij[1], nb)
		}
		edges = append(edges, [2]int{ij[0] - 1, ij[1] - 1})
	}
	if err := l.sc.Err(); err != nil {
		return nil, fmt.Errorf("pace: read: %w", err)
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("bag %d never listed: %w", i+1, ErrCount)
		}
	}

	d := td.New(n)
	for _, b := range bags {
		d.AddBag(b)
	}
	d.Edges = edges
	if d.Width+1 > maxBag {
		return nil, fmt.Errorf("header max bag %d, largest bag %d: %w", maxBag, d.Width+1, ErrCount)
	}

	return d, nil
}
