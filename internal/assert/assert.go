// Package assert holds internal consistency checks for the treewidth
// engines. The checks compile to no-ops unless the module is built with the
// "debug" build tag:
//
//	go test -tags debug ./...
//
// A failed check is a bug in the engine, never a property of the input, so
// it panics.
package assert

import "fmt"

// That panics with the formatted message when Enabled and cond is false.
func That(cond bool, format string, args ...interface{}) {
	if Enabled && !cond {
		panic("twexact: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
