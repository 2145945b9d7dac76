package driver

import (
	"github.com/tliron/commonlog"

	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"

	cerr "github.com/cppiler/cppiler/error"
)

var log = commonlog.GetLogger("cppiler.driver")

type ParserOption func(p *Parser) error

// OnlyParse makes the parser check syntax without building a parse tree or
// a production trace.
func OnlyParse() ParserOption {
	return func(p *Parser) error {
		p.onlyParse = true
		return nil
	}
}

// Parser drives the predictive-parsing automaton over a token stream. All
// cursor, stack, and trace state is scoped to one Parser, so repeated or
// concurrent parses never interfere; use a fresh Parser per input.
type Parser struct {
	tab    *grammar.Table
	src    *cerr.SourceFile
	tokens []*lexer.Token

	// symStack and nodeStack are structurally parallel: they always have
	// the same depth, and the node at some depth is the tree node awaiting
	// the grammar symbol at the same depth. The end marker $ is paired with
	// the node sentinel -1.
	symStack  []grammar.Symbol
	nodeStack []int

	cursor    int
	tree      *Tree
	trace     []*grammar.Production
	onlyParse bool
	done      bool
}

// NewParser builds a single-use parser. src is the raw source text backing
// the tokens and may be nil when only token-level positions are available;
// tokens must be terminated by an end-marker token (lexer.EOFToken).
func NewParser(tab *grammar.Table, src []byte, tokens []*lexer.Token, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		tab:    tab,
		src:    cerr.NewSourceFile(src),
		tokens: tokens,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Parse runs the automaton to acceptance or to the first fatal error. The
// returned error, if any, is a *SyntaxError.
func (p *Parser) Parse() error {
	start := p.tab.Grammar().StartSymbol()
	if !p.onlyParse {
		p.tree = newTree(start)
	}
	p.push(grammar.SymbolEOF, -1)
	p.push(start, 0)

	for len(p.symStack) > 0 && p.cursor < len(p.tokens) {
		c := classify(p.tokens, p.cursor)
		if c.skip {
			p.cursor += c.consumed
			continue
		}

		tok := p.tokens[p.cursor]
		top, topNode := p.top()

		if top == grammar.SymbolEOF && c.term == grammar.TermEOF {
			log.Debugf("accepted after %v steps", len(p.trace))
			p.done = true
			return nil
		}

		if top.IsTerminal() {
			// A terminal also matches when its text equals the raw lexeme,
			// which lets the literal 0 in `V -> return 0 ;` accept a number
			// token while number tokens elsewhere keep classifying as the
			// terminal `number`.
			if top.Terminal() == c.term || top.String() == tok.Literal {
				log.Debugf("match %v", top)
				if !p.onlyParse {
					p.tree.attachToken(topNode, tok)
				}
				p.pop()
				p.cursor += c.consumed
				continue
			}
			if c.term == grammar.TermEOF {
				return p.fail(ErrUnexpectedEOF, tok, top.String())
			}
			return p.fail(ErrUnexpectedToken, tok, top.String())
		}

		nt := top.NonTerminal()
		prod, ok := p.tab.Find(nt, c.term)
		if !ok {
			expected := terminalTexts(p.tab.ExpectedTerminals(nt))
			if c.term == grammar.TermEOF {
				return p.fail(ErrUnexpectedEOF, tok, expected...)
			}
			return p.fail(ErrNoProduction, tok, expected...)
		}

		log.Debugf("expand %v", prod)
		p.pop()
		if !p.onlyParse {
			p.trace = append(p.trace, prod)
		}
		if prod.IsEmpty() {
			if !p.onlyParse {
				p.tree.addChild(topNode, grammar.SymbolEpsilon)
			}
			continue
		}

		rhs := prod.RHS()
		children := make([]int, len(rhs))
		if !p.onlyParse {
			for i, sym := range rhs {
				children[i] = p.tree.addChild(topNode, sym)
			}
		}
		// Push the body in reverse so the leftmost symbol ends on top; the
		// node stack gets the same treatment to keep both stacks aligned.
		for i := len(rhs) - 1; i >= 0; i-- {
			p.push(rhs[i], children[i])
		}
	}

	if len(p.symStack) > 0 {
		if top, _ := p.top(); top != grammar.SymbolEOF {
			last := p.lastConsumedToken()
			return p.fail(ErrUnexpectedEOF, last, top.String())
		}
	}
	p.done = true
	return nil
}

// Tree returns the parse tree of an accepted parse, or nil when parsing
// failed or tree construction was disabled.
func (p *Parser) Tree() *Tree {
	if !p.done {
		return nil
	}
	return p.tree
}

// Trace returns the applied productions in application order, each rendered
// as "<non-terminal> -> <production-body>".
func (p *Parser) Trace() []string {
	entries := make([]string, len(p.trace))
	for i, prod := range p.trace {
		entries[i] = prod.String()
	}
	return entries
}

func (p *Parser) push(sym grammar.Symbol, node int) {
	p.symStack = append(p.symStack, sym)
	p.nodeStack = append(p.nodeStack, node)
}

func (p *Parser) pop() {
	p.symStack = p.symStack[:len(p.symStack)-1]
	p.nodeStack = p.nodeStack[:len(p.nodeStack)-1]
}

func (p *Parser) top() (grammar.Symbol, int) {
	return p.symStack[len(p.symStack)-1], p.nodeStack[len(p.nodeStack)-1]
}

func (p *Parser) lastConsumedToken() *lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.EOFToken(0)
	}
	if p.cursor == 0 {
		return p.tokens[0]
	}
	if p.cursor <= len(p.tokens) {
		return p.tokens[p.cursor-1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) fail(kind SyntaxErrorKind, tok *lexer.Token, expected ...string) error {
	row, col := p.src.Position(tok.Offset)
	found := tok.Literal
	if tok.Kind == lexer.KindEOF {
		found = "end of input"
	}
	return &SyntaxError{
		Kind:     kind,
		Row:      row,
		Col:      col,
		Found:    found,
		Expected: expected,
		Context:  p.src.Context(tok.Offset),
	}
}

func terminalTexts(terms []grammar.Terminal) []string {
	texts := make([]string, len(terms))
	for i, term := range terms {
		texts[i] = term.String()
	}
	return texts
}
