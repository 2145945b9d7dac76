package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenFirstSet(t *testing.T) {
	tests := []struct {
		nt    NonTerminal
		terms []Terminal
		empty bool
	}{
		{nt: NtStart, terms: []Terminal{TermInclude, TermUsing, TermInt}},
		{nt: NtS, terms: []Terminal{TermInclude}, empty: true},
		{nt: NtN, terms: []Terminal{TermUsing}, empty: true},
		{nt: NtM, terms: []Terminal{TermInt}},
		{nt: NtT, terms: []Terminal{TermInt, TermFloat, TermIdentifier, TermWhile, TermCin, TermCout}, empty: true},
		{nt: NtV, terms: []Terminal{TermReturn}, empty: true},
		{nt: NtId, terms: []Terminal{TermInt, TermFloat}},
		{nt: NtL, terms: []Terminal{TermIdentifier}},
		{nt: NtZ, terms: []Terminal{TermComma, TermSemicolon}},
		{nt: NtOperation, terms: []Terminal{TermNumber, TermIdentifier}},
		{nt: NtP, terms: []Terminal{TermPlus, TermMinus, TermStar}, empty: true},
		{nt: NtO, terms: []Terminal{TermPlus, TermMinus, TermStar}},
		{nt: NtW, terms: []Terminal{TermNumber, TermIdentifier}},
		{nt: NtAssign, terms: []Terminal{TermAssign}, empty: true},
		{nt: NtExpression, terms: []Terminal{TermNumber, TermIdentifier}},
		{nt: NtK, terms: []Terminal{TermEqual, TermGreaterEqual, TermLessEqual, TermNotEqual}},
		{nt: NtLoop, terms: []Terminal{TermWhile}},
		{nt: NtInput, terms: []Terminal{TermCin}},
		{nt: NtF, terms: []Terminal{TermShiftRight}, empty: true},
		{nt: NtOutput, terms: []Terminal{TermCout}},
		{nt: NtH, terms: []Terminal{TermShiftLeft}, empty: true},
		{nt: NtC, terms: []Terminal{TermNumber, TermString, TermIdentifier}},
	}

	g, err := New()
	require.NoError(t, err)
	fst, err := genFirstSet(g.prods)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.nt.String(), func(t *testing.T) {
			e := fst.findBySymbol(SymbolOfNonTerminal(tt.nt))
			require.NotNil(t, e)
			require.ElementsMatch(t, tt.terms, entryTerminals(e.symbols))
			require.Equal(t, tt.empty, e.empty)
		})
	}
}

func entryTerminals(symbols map[Symbol]struct{}) []Terminal {
	var terms []Terminal
	for sym := range symbols {
		terms = append(terms, sym.Terminal())
	}
	return terms
}
