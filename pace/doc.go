// Package pace reads and writes the PACE challenge text formats for
// treewidth.
//
// Graph (.gr):
//
//	c optional comment lines
//	p tw <n> <m>
//	<u> <v>        (m lines, 1-based vertex ids)
//
// Tree decomposition (.td):
//
//	s td <bags> <max bag size> <n>
//	b <i> <v> ...  (one line per bag, 1-based bag and vertex ids)
//	<i> <j>        (tree edges between bags)
//
// Comment lines ("c ...") and blank lines are allowed anywhere. Parse errors
// wrap ErrSyntax and name the offending line.
package pace
