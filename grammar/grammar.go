package grammar

import "fmt"

// Grammar is the fixed grammar of the mini C++ language. It is immutable
// after construction; callers share it freely.
type Grammar struct {
	prods *productionSet
	start Symbol
}

func t(term Terminal) Symbol {
	return SymbolOfTerminal(term)
}

func n(nt NonTerminal) Symbol {
	return SymbolOfNonTerminal(nt)
}

// rules lists every production of the grammar, alternatives in declaration
// order. An empty alternative is the epsilon production.
var rules = []struct {
	lhs  NonTerminal
	alts [][]Symbol
}{
	{NtStart, [][]Symbol{
		{n(NtS), n(NtN), n(NtM)},
	}},
	{NtS, [][]Symbol{
		{t(TermInclude), n(NtS)},
		{},
	}},
	{NtN, [][]Symbol{
		{t(TermUsing), t(TermNamespace), t(TermStd), t(TermSemicolon)},
		{},
	}},
	{NtM, [][]Symbol{
		{t(TermInt), t(TermMain), t(TermLParen), t(TermRParen), t(TermLBrace), n(NtT), n(NtV), t(TermRBrace)},
	}},
	{NtT, [][]Symbol{
		{n(NtId), n(NtT)},
		{n(NtL), n(NtT)},
		{n(NtLoop), n(NtT)},
		{n(NtInput), n(NtT)},
		{n(NtOutput), n(NtT)},
		{},
	}},
	{NtV, [][]Symbol{
		{t(TermReturn), t(TermZero), t(TermSemicolon)},
		{},
	}},
	{NtId, [][]Symbol{
		{t(TermInt), n(NtL)},
		{t(TermFloat), n(NtL)},
	}},
	{NtL, [][]Symbol{
		{t(TermIdentifier), n(NtAssign), n(NtZ)},
	}},
	{NtZ, [][]Symbol{
		{t(TermComma), t(TermIdentifier), n(NtAssign), n(NtZ)},
		{t(TermSemicolon)},
	}},
	{NtOperation, [][]Symbol{
		{t(TermNumber), n(NtP)},
		{t(TermIdentifier), n(NtP)},
	}},
	{NtP, [][]Symbol{
		{n(NtO), n(NtW), n(NtP)},
		{},
	}},
	{NtO, [][]Symbol{
		{t(TermPlus)},
		{t(TermMinus)},
		{t(TermStar)},
	}},
	{NtW, [][]Symbol{
		{t(TermNumber)},
		{t(TermIdentifier)},
	}},
	{NtAssign, [][]Symbol{
		{t(TermAssign), n(NtOperation)},
		{},
	}},
	{NtExpression, [][]Symbol{
		{n(NtOperation), n(NtK), n(NtOperation)},
	}},
	{NtK, [][]Symbol{
		{t(TermEqual)},
		{t(TermGreaterEqual)},
		{t(TermLessEqual)},
		{t(TermNotEqual)},
	}},
	{NtLoop, [][]Symbol{
		{t(TermWhile), t(TermLParen), n(NtExpression), t(TermRParen), t(TermLBrace), n(NtT), t(TermRBrace)},
	}},
	{NtInput, [][]Symbol{
		{t(TermCin), t(TermShiftRight), t(TermIdentifier), n(NtF), t(TermSemicolon)},
	}},
	{NtF, [][]Symbol{
		{t(TermShiftRight), t(TermIdentifier), n(NtF)},
		{},
	}},
	{NtOutput, [][]Symbol{
		{t(TermCout), t(TermShiftLeft), n(NtC), n(NtH), t(TermSemicolon)},
	}},
	{NtH, [][]Symbol{
		{t(TermShiftLeft), n(NtC), n(NtH)},
		{},
	}},
	{NtC, [][]Symbol{
		{t(TermNumber)},
		{t(TermString)},
		{t(TermIdentifier)},
	}},
}

// New constructs the grammar. The production set is built fresh per call so
// grammars never share mutable state.
func New() (*Grammar, error) {
	prods := newProductionSet()
	for _, rule := range rules {
		lhs := SymbolOfNonTerminal(rule.lhs)
		for _, alt := range rule.alts {
			prod, err := newProduction(lhs, alt)
			if err != nil {
				return nil, err
			}
			if !prods.append(prod) {
				return nil, fmt.Errorf("duplicate production: %v", prod)
			}
		}
	}

	return &Grammar{
		prods: prods,
		start: SymbolOfNonTerminal(NtStart),
	}, nil
}

// StartSymbol returns the start symbol of the grammar.
func (g *Grammar) StartSymbol() Symbol {
	return g.start
}

// ProductionsOf returns the alternatives of a non-terminal in declaration
// order.
func (g *Grammar) ProductionsOf(nt NonTerminal) []*Production {
	prods, _ := g.prods.findByLHS(SymbolOfNonTerminal(nt))
	return prods
}
