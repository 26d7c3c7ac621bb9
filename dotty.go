package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Every node is labelled with its range and its aggregates. Nodes carrying a
// pending value are highlighted and show the pending value.
func Tree2Dot[V any](tree *Tree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree != nil && len(tree.array) > 0 {
		var nodelist, edgelist strings.Builder
		tree.dotNode(root, &nodelist, &edgelist)
		io.WriteString(w, nodelist.String())
		io.WriteString(w, edgelist.String())
	}
	io.WriteString(w, "}\n")
}

func (t *Tree[V]) dotNode(v int, nodelist, edgelist *strings.Builder) {
	n := t.store.node(v)
	label := fmt.Sprintf("[%d,%d]\\n%v", n.from, n.to, t.store.accum(v))
	if n.hasPending {
		label += fmt.Sprintf("\\n⇣ %v", n.pending)
	}
	fmt.Fprintf(nodelist, "\t\"%d\" [label=\"%s\" %s];\n", v, label, nodeDotStyles(n.isLeaf(), n.hasPending))
	if n.isLeaf() {
		return
	}
	fmt.Fprintf(edgelist, "\t\"%d\" -> \"%d\";\n", v, left(v))
	fmt.Fprintf(edgelist, "\t\"%d\" -> \"%d\";\n", v, right(v))
	t.dotNode(left(v), nodelist, edgelist)
	t.dotNode(right(v), nodelist, edgelist)
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=ellipse"
	}
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
