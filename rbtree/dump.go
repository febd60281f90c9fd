package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap/arena"
	"golang.org/x/term"
)

var redNode = color.New(color.FgRed, color.Bold)

// String renders the tree in the form
//
//	key(B) <left, right>
//
// with "nil" for empty child slots. An empty tree renders as "nil".
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.writeSubtree(&b, t.root)
	return b.String()
}

func (t *Tree[T]) writeSubtree(b *strings.Builder, ref Ref) {
	if ref == arena.Nil {
		b.WriteString("nil")
		return
	}
	n := t.node(ref)
	fmt.Fprintf(b, "%v(%s) <", n.Data, n.color)
	t.writeSubtree(b, n.left)
	b.WriteString(", ")
	t.writeSubtree(b, n.right)
	b.WriteString(">")
}

// Dump writes the tree sideways to w, the root at the left margin and the
// right subtree above the left one. If colored is set, red nodes are printed
// in red, otherwise their color tag is printed.
func (t *Tree[T]) Dump(w io.Writer, colored bool) {
	if t.root == arena.Nil {
		io.WriteString(w, "(empty)\n")
		return
	}
	t.dumpSubtree(w, t.root, 0, colored)
}

// Print dumps the tree to stdout, coloring red nodes if stdout is a terminal.
func (t *Tree[T]) Print() {
	t.Dump(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())) && !color.NoColor)
}

func (t *Tree[T]) dumpSubtree(w io.Writer, ref Ref, depth int, colored bool) {
	if ref == arena.Nil {
		return
	}
	n := t.node(ref)
	t.dumpSubtree(w, n.right, depth+1, colored)
	indent := strings.Repeat("    ", depth)
	label := fmt.Sprintf("%v", n.Data)
	switch {
	case colored && n.color == Red:
		io.WriteString(w, indent)
		redNode.Fprint(w, label)
		io.WriteString(w, "\n")
	case colored:
		fmt.Fprintf(w, "%s%s\n", indent, label)
	default:
		fmt.Fprintf(w, "%s%s(%s)\n", indent, label, n.color)
	}
	t.dumpSubtree(w, n.left, depth+1, colored)
}
