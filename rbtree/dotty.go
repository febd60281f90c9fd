package rbtree

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordmap/arena"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Tree edges are solid, chain edges are dashed;
// empty child slots are drawn as small black circles.
func (t *Tree[T]) ToDot(w io.Writer) {
	io.WriteString(w, "digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	nilid := 0
	for ref := range t.Nodes() {
		n := t.node(ref)
		label := fmt.Sprintf("%v", n.Data)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", ref, escapeDot(label), nodeDotStyles(n.color))
		for _, c := range [2]Ref{n.left, n.right} {
			if c == arena.Nil {
				nilid++
				nodelist += fmt.Sprintf("\t\"nil%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\t\"%d\" -> \"nil%d\";\n", ref, nilid)
			} else {
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", ref, c)
			}
		}
		if n.next != arena.Nil {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\" [style=dashed,color=gray,constraint=false];\n", ref, n.next)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=circle,fixedsize=true,width=.15]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ee3333\""
	} else {
		s += ",color=black,fillcolor=\"#333333\""
	}
	return s
}

func escapeDot(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
