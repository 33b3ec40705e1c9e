package omap

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// --- Graphviz DOT output ---------------------------------------------------

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Red nodes are drawn in red, black nodes filled
// black; absent children appear as small point-shaped leaves.
func Tree2Dot[K, V any](t *Tree[K, V], w io.Writer) {
	T().Debugf("tree DOT: dumping %d entries", t.Len())
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	t.eachNode(func(n *node[K, V]) {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", ID, n.key, nodeDotStyles(n))
		if n.left == nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.left))
		}
		if n.right == nil {
			nilid := ID + 20000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.right))
		}
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// eachNode walks nodes in pre-order, parents before children.
func (t *Tree[K, V]) eachNode(fn func(n *node[K, V])) {
	if t == nil || t.root == nil {
		return
	}
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		fn(n)
		if n.left != nil {
			walk(n.left)
		}
		if n.right != nil {
			walk(n.right)
		}
	}
	walk(t.root)
}

func emptyNode() string {
	return "[label=\"\",color=gray,shape=point,fixedsize=true,width=.2]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=circle"
	if n.color == red {
		s += ",color=red,fillcolor=\"#ffdddd\",fontcolor=red"
	} else {
		s += ",color=black,fillcolor=\"#dddddd\""
	}
	return s
}

// --- Console output --------------------------------------------------------

var redKey = color.New(color.FgRed)

// Print writes an indented sideways rendering of the tree to w, right
// subtrees above their parent, left subtrees below. Red keys are colored
// when w supports ANSI sequences.
//
// Lines longer than the terminal width are clipped; when stdout is not a
// terminal a default width is used.
func (t *Tree[K, V]) Print(w io.Writer) {
	width := lineWidthFromTerminal()
	if t == nil || t.root == nil {
		io.WriteString(w, ".\n")
		return
	}
	t.printNode(w, t.root, 0, width)
}

func (t *Tree[K, V]) printNode(w io.Writer, n *node[K, V], depth int, width int) {
	if n.right != nil {
		t.printNode(w, n.right, depth+1, width)
	}
	line := fmt.Sprintf("%*s", depth*4, "")
	if len(line) > width {
		line = line[:width]
	}
	io.WriteString(w, line)
	if n.color == red {
		redKey.Fprintf(w, "%v", n.key)
	} else {
		fmt.Fprintf(w, "%v", n.key)
	}
	io.WriteString(w, "\n")
	if n.left != nil {
		t.printNode(w, n.left, depth+1, width)
	}
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width.
func lineWidthFromTerminal() int {
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil && w > 10 {
			return w
		}
	}
	return 65
}
