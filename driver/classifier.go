package driver

import (
	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"
)

// classification is the result of mapping the token at the cursor to a
// grammar terminal. When skip is true, no terminal is produced and the
// engine just advances the cursor. A TermNil terminal with skip false marks
// a token outside the terminal universe, which the engine reports as an
// unexpected token.
type classification struct {
	term     grammar.Terminal
	consumed int
	skip     bool
}

func terminalOf(term grammar.Terminal, consumed int) classification {
	return classification{term: term, consumed: consumed}
}

func skipOf(consumed int) classification {
	return classification{consumed: consumed, skip: true}
}

// classify maps the token at the cursor to a terminal. It may peek up to two
// tokens past the cursor to merge compounds or elide library brackets, but
// it never revisits tokens before the cursor.
func classify(toks []*lexer.Token, cur int) classification {
	tok := toks[cur]
	switch tok.Kind {
	case lexer.KindEOF:
		return terminalOf(grammar.TermEOF, 1)
	case lexer.KindIdentifier:
		return terminalOf(grammar.TermIdentifier, 1)
	case lexer.KindNumber:
		return terminalOf(grammar.TermNumber, 1)
	case lexer.KindString:
		return terminalOf(grammar.TermString, 1)
	case lexer.KindReservedWord:
		return literalTerminal(tok, 1)
	case lexer.KindSymbol:
		return classifySymbol(toks, cur)
	default:
		return terminalOf(grammar.TermNil, 1)
	}
}

func classifySymbol(toks []*lexer.Token, cur int) classification {
	tok := toks[cur]
	switch tok.Literal {
	case "#":
		// A # merges with a following include keyword. A stray # produces
		// no terminal at all.
		if next, ok := peek(toks, cur, 1); ok &&
			next.Kind == lexer.KindReservedWord && next.Literal == "include" {
			return terminalOf(grammar.TermInclude, 2)
		}
		return skipOf(1)
	case "<":
		// The library-bracket idiom < name > is not part of the grammar and
		// must be elided before the parser sees the brackets as operators.
		if name, ok := peek(toks, cur, 1); ok {
			if rangle, ok := peek(toks, cur, 2); ok &&
				(name.Literal == "iostream" || name.Kind == lexer.KindIdentifier) &&
				rangle.Literal == ">" {
				return skipOf(3)
			}
		}
		return angleOrLiteral(toks, cur)
	case ">":
		return angleOrLiteral(toks, cur)
	default:
		return literalTerminal(tok, 1)
	}
}

// angleOrLiteral guards against mis-lexed compound operators: a bare < or >
// immediately followed by the same literal is dropped. Only one token of
// lookahead is checked, so `< <` with intervening whitespace is elided
// rather than parsed; the grammar gives the pair no meaning either way.
func angleOrLiteral(toks []*lexer.Token, cur int) classification {
	tok := toks[cur]
	if next, ok := peek(toks, cur, 1); ok && next.Literal == tok.Literal {
		return skipOf(1)
	}
	return literalTerminal(tok, 1)
}

func literalTerminal(tok *lexer.Token, consumed int) classification {
	term, ok := grammar.TerminalByText(tok.Literal)
	if !ok {
		return terminalOf(grammar.TermNil, consumed)
	}
	return terminalOf(term, consumed)
}

func peek(toks []*lexer.Token, cur, ahead int) (*lexer.Token, bool) {
	if cur+ahead >= len(toks) {
		return nil, false
	}
	return toks[cur+ahead], true
}
