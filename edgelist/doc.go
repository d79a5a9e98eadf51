// Package edgelist reads and writes trees in a plain text edge-list format.
//
// One edge per line, two vertex names separated by whitespace or a comma:
//
//	# comment
//	root: 16
//	1 4
//	1,3
//
// Everything after '#' is ignored and blank lines are skipped. A "root:"
// directive sets the broadcast origin; the last directive wins and
// overrides the root passed to Read. Edges are inserted in file order, so
// neighbor order (and therefore traversal order) follows the file.
//
// Write produces the same format, so Read(Write(t)) rebuilds t with the
// same root, edges and neighbor order.
package edgelist
