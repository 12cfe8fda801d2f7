package rbtree

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var redTag = color.New(color.FgRed)

// Sprint renders the tree as an indented diagram, one node per line in
// pre-order, each child indented under its parent and tagged with its
// color as (R) or (B). Red tags are colorized unless fatih/color output
// is disabled.
func (t *Tree) Sprint() string {
	var buf bytes.Buffer
	t.Fprint(&buf)
	return buf.String()
}

// Fprint writes the Sprint rendering to w.
func (t *Tree) Fprint(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "Empty Red-Black Tree")
		return
	}
	t.fprint(w, t.root, "", true)
}

func (t *Tree) fprint(w io.Writer, n *Node, prefix string, tail bool) {
	if n == t.sent {
		return
	}
	branch := "├── "
	if tail {
		branch = "└── "
	}
	tag := "(B)"
	if n.color == Red {
		tag = redTag.Sprint("(R)")
	}
	fmt.Fprintf(w, "%s%s%v %s\n", prefix, branch, n.value, tag)
	childPrefix := prefix + "│   "
	if tail {
		childPrefix = prefix + "    "
	}
	t.fprint(w, n.left, childPrefix, n.right == t.sent)
	t.fprint(w, n.right, childPrefix, true)
}
