package driver

import (
	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"
)

// FindDeclaredType reports the type a name was first declared with, walking
// the tree depth-first. A hit is a declarator list (an L node, or any name
// in the comma chain hanging off its Z child) that sits under an Id node;
// the result is the literal of Id's reserved-word leaf, `int` or `float`.
// The lookup is flat and first-match: there is no block scoping and no
// shadowing.
func FindDeclaredType(t *Tree, name string) (string, bool) {
	if t == nil {
		return "", false
	}
	return findDeclaredType(t.Root(), name)
}

func findDeclaredType(node Node, name string) (string, bool) {
	if node.Symbol() == grammar.SymbolOfNonTerminal(grammar.NtL) && declaratorChainContains(node, name) {
		if typ, ok := declaredTypeOf(node); ok {
			return typ, true
		}
		// An L without an Id ancestor is a plain assignment statement, not
		// a declaration; keep searching.
	}
	for _, child := range node.Children() {
		if typ, ok := findDeclaredType(child, name); ok {
			return typ, true
		}
	}
	return "", false
}

// declaratorChainContains checks the identifier declared by an L node and
// every identifier reached through the comma-separated Z chain. Initializer
// expressions under Assign are not part of the chain.
func declaratorChainContains(l Node, name string) bool {
	if leafLiteral(l, grammar.TermIdentifier) == name {
		return true
	}
	z, ok := childNonTerminal(l, grammar.NtZ)
	for ok {
		if leafLiteral(z, grammar.TermIdentifier) == name {
			return true
		}
		z, ok = childNonTerminal(z, grammar.NtZ)
	}
	return false
}

// declaredTypeOf walks upward from an L node to the nearest Id ancestor and
// returns the literal of Id's reserved-word leaf.
func declaredTypeOf(l Node) (string, bool) {
	node, ok := l.Parent()
	for ok {
		if node.Symbol() == grammar.SymbolOfNonTerminal(grammar.NtId) {
			for _, child := range node.Children() {
				if tok := child.Token(); tok != nil && tok.Kind == lexer.KindReservedWord {
					return tok.Literal, true
				}
			}
			return "", false
		}
		node, ok = node.Parent()
	}
	return "", false
}

// leafLiteral returns the literal of a node's direct child leaf matched
// against the given terminal, or the empty string.
func leafLiteral(node Node, term grammar.Terminal) string {
	for _, child := range node.Children() {
		if child.Symbol() != grammar.SymbolOfTerminal(term) {
			continue
		}
		if tok := child.Token(); tok != nil {
			return tok.Literal
		}
	}
	return ""
}

func childNonTerminal(node Node, nt grammar.NonTerminal) (Node, bool) {
	for _, child := range node.Children() {
		if child.Symbol() == grammar.SymbolOfNonTerminal(nt) {
			return child, true
		}
	}
	return Node{}, false
}
