package driver

import (
	"fmt"
	"io"

	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"
)

// Tree is a parse tree laid out as an arena of nodes addressed by index.
// The arena owns every node; parent references exist for upward read-only
// traversal only and never carry ownership.
type Tree struct {
	nodes []treeNode
}

type treeNode struct {
	sym      grammar.Symbol
	parent   int
	children []int
	tok      *lexer.Token
}

func newTree(root grammar.Symbol) *Tree {
	return &Tree{
		nodes: []treeNode{
			{sym: root, parent: -1},
		},
	}
}

func (t *Tree) addChild(parent int, sym grammar.Symbol) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{sym: sym, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *Tree) attachToken(id int, tok *lexer.Token) {
	t.nodes[id].tok = tok
}

// Root returns a handle to the start-symbol node.
func (t *Tree) Root() Node {
	return Node{tree: t, id: 0}
}

// Node is a lightweight handle addressing one node of a Tree.
type Node struct {
	tree *Tree
	id   int
}

func (n Node) Symbol() grammar.Symbol {
	return n.tree.nodes[n.id].sym
}

// Token returns the raw token matched at a terminal leaf, or nil for inner
// nodes and epsilon leaves.
func (n Node) Token() *lexer.Token {
	return n.tree.nodes[n.id].tok
}

func (n Node) Children() []Node {
	ids := n.tree.nodes[n.id].children
	children := make([]Node, len(ids))
	for i, id := range ids {
		children[i] = Node{tree: n.tree, id: id}
	}
	return children
}

// Parent returns the parent handle; ok is false at the root.
func (n Node) Parent() (Node, bool) {
	parent := n.tree.nodes[n.id].parent
	if parent < 0 {
		return Node{}, false
	}
	return Node{tree: n.tree, id: parent}, true
}

func (n Node) IsEpsilon() bool {
	return n.Symbol() == grammar.SymbolEpsilon
}

// PrintTree writes a tree with ruled lines, terminal leaves annotated with
// their lexemes.
func PrintTree(w io.Writer, node Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node Node, ruledLine string, childRuledLinePrefix string) {
	if tok := node.Token(); tok != nil {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, node.Symbol(), tok.Literal)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Symbol())
	}

	children := node.Children()
	num := len(children)
	for i, child := range children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}
