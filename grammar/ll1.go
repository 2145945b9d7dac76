package grammar

import (
	"fmt"
	"sort"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cppiler.grammar")

// ConflictError reports that two productions would occupy the same
// parsing-table cell. It is a construction-time failure: the grammar itself
// is broken, not the input being parsed.
type ConflictError struct {
	NonTerminal NonTerminal
	Terminal    Terminal
	Prod1       *Production
	Prod2       *Production
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar is not LL(1): conflict at (%v, %v): %q and %q",
		e.NonTerminal, e.Terminal, e.Prod1.String(), e.Prod2.String())
}

// Table is the LL(1) predictive-parsing table. It is built once and
// read-only thereafter.
type Table struct {
	grammar *Grammar
	first   *firstSet
	follow  *followSet
	// entries is row-major: entries[nonTerminal*termCount+terminal] holds a
	// production number, or productionNumNil for an error cell.
	entries []productionNum
}

type tableBuilder struct {
	grammar *Grammar
	first   *firstSet
	follow  *followSet
	entries []productionNum
}

// GenTable computes FIRST and FOLLOW sets for a grammar and synthesizes its
// LL(1) table. It fails with a *ConflictError if any cell would hold two
// productions.
func GenTable(g *Grammar) (*Table, error) {
	first, err := genFirstSet(g.prods)
	if err != nil {
		return nil, err
	}
	follow, err := genFollowSet(g.prods, first, g.start)
	if err != nil {
		return nil, err
	}

	b := &tableBuilder{
		grammar: g,
		first:   first,
		follow:  follow,
		entries: make([]productionNum, int(nonTermCount)*int(termCount)),
	}
	if err := b.build(); err != nil {
		return nil, err
	}

	log.Debugf("LL(1) table built: %v non-terminals, %v terminals",
		int(nonTermCount)-1, int(termCount)-1)

	return &Table{
		grammar: g,
		first:   first,
		follow:  follow,
		entries: b.entries,
	}, nil
}

func (b *tableBuilder) build() error {
	for _, nt := range NonTerminals() {
		prods, ok := b.grammar.prods.findByLHS(SymbolOfNonTerminal(nt))
		if !ok {
			return fmt.Errorf("non-terminal %v has no production", nt)
		}
		for _, prod := range prods {
			fst, err := b.first.find(prod, 0)
			if err != nil {
				return err
			}
			for sym := range fst.symbols {
				if err := b.set(nt, sym.Terminal(), prod); err != nil {
					return err
				}
			}
			if !fst.empty {
				continue
			}
			flw, err := b.follow.find(prod.lhs)
			if err != nil {
				return err
			}
			for sym := range flw.symbols {
				if err := b.set(nt, sym.Terminal(), prod); err != nil {
					return err
				}
			}
			if flw.eof {
				if err := b.set(nt, TermEOF, prod); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (b *tableBuilder) set(nt NonTerminal, term Terminal, prod *Production) error {
	i := int(nt)*int(termCount) + int(term)
	if occupied := b.entries[i]; occupied != productionNumNil && occupied != prod.num {
		prev, _ := b.grammar.prods.findByNum(occupied)
		return &ConflictError{
			NonTerminal: nt,
			Terminal:    term,
			Prod1:       prev,
			Prod2:       prod,
		}
	}
	b.entries[i] = prod.num
	return nil
}

// Find returns the production chosen for a (non-terminal, terminal) pair.
// The second return value is false for an error cell.
func (t *Table) Find(nt NonTerminal, term Terminal) (*Production, bool) {
	if nt <= NtNil || nt >= nonTermCount || term <= TermNil || term >= termCount {
		return nil, false
	}
	num := t.entries[int(nt)*int(termCount)+int(term)]
	if num == productionNumNil {
		return nil, false
	}
	return t.grammar.prods.findByNum(num)
}

// ExpectedTerminals returns, in a fixed order, every terminal for which a
// non-terminal has a table entry. Diagnostics use it as the expectation set.
func (t *Table) ExpectedTerminals(nt NonTerminal) []Terminal {
	var terms []Terminal
	for _, term := range Terminals() {
		if _, ok := t.Find(nt, term); ok {
			terms = append(terms, term)
		}
	}
	return terms
}

// FirstSet returns FIRST of a non-terminal in a fixed order, and whether the
// set contains the empty marker.
func (t *Table) FirstSet(nt NonTerminal) ([]Terminal, bool) {
	e := t.first.findBySymbol(SymbolOfNonTerminal(nt))
	if e == nil {
		return nil, false
	}
	return sortedTerminals(e.symbols), e.empty
}

// FollowSet returns FOLLOW of a non-terminal in a fixed order, with the
// end-of-input marker included as TermEOF when present.
func (t *Table) FollowSet(nt NonTerminal) []Terminal {
	e, err := t.follow.find(SymbolOfNonTerminal(nt))
	if err != nil {
		return nil
	}
	terms := sortedTerminals(e.symbols)
	if e.eof {
		terms = append([]Terminal{TermEOF}, terms...)
	}
	return terms
}

// Grammar returns the grammar the table was built from.
func (t *Table) Grammar() *Grammar {
	return t.grammar
}

func sortedTerminals(symbols map[Symbol]struct{}) []Terminal {
	terms := make([]Terminal, 0, len(symbols))
	for sym := range symbols {
		terms = append(terms, sym.Terminal())
	}
	sort.Slice(terms, func(i, j int) bool {
		return terms[i] < terms[j]
	})
	return terms
}
