package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func genTestTable(t *testing.T) *Table {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	tab, err := GenTable(g)
	require.NoError(t, err)
	return tab
}

// The fixed grammar is claimed LL(1); table construction must never report
// a conflict.
func TestGenTable_NoConflict(t *testing.T) {
	genTestTable(t)
}

func TestGenTable_Deterministic(t *testing.T) {
	tab1 := genTestTable(t)
	tab2 := genTestTable(t)
	require.Equal(t, tab1.entries, tab2.entries)
}

// Every non-error cell must be justified by FIRST of its production, or be
// the epsilon production placed on a FOLLOW terminal.
func TestGenTable_Invariant(t *testing.T) {
	tab := genTestTable(t)
	for _, nt := range NonTerminals() {
		for _, term := range Terminals() {
			prod, ok := tab.Find(nt, term)
			if !ok {
				continue
			}
			fst, err := tab.first.find(prod, 0)
			require.NoError(t, err)
			if _, ok := fst.symbols[SymbolOfTerminal(term)]; ok {
				continue
			}
			require.True(t, prod.IsEmpty(), "cell (%v, %v) holds %v without FIRST justification", nt, term, prod)
			flw, err := tab.follow.find(SymbolOfNonTerminal(nt))
			require.NoError(t, err)
			if term == TermEOF {
				require.True(t, flw.eof, "cell (%v, $) is not justified by FOLLOW", nt)
				continue
			}
			_, inFollow := flw.symbols[SymbolOfTerminal(term)]
			require.True(t, inFollow, "cell (%v, %v) is not justified by FOLLOW", nt, term)
		}
	}
}

func TestGenTable_Entries(t *testing.T) {
	tests := []struct {
		nt   NonTerminal
		term Terminal
		want string
	}{
		{NtStart, TermInclude, "Start -> S N M"},
		{NtStart, TermUsing, "Start -> S N M"},
		{NtStart, TermInt, "Start -> S N M"},
		{NtS, TermInclude, "S -> #include S"},
		{NtS, TermInt, "S -> epsilon"},
		{NtS, TermUsing, "S -> epsilon"},
		{NtN, TermUsing, "N -> using namespace std ;"},
		{NtT, TermWhile, "T -> Loop T"},
		{NtT, TermCout, "T -> Output T"},
		{NtT, TermRBrace, "T -> epsilon"},
		{NtT, TermReturn, "T -> epsilon"},
		{NtV, TermReturn, "V -> return 0 ;"},
		{NtZ, TermComma, "Z -> , identifier Assign Z"},
		{NtZ, TermSemicolon, "Z -> ;"},
		{NtAssign, TermAssign, "Assign -> = Operation"},
		{NtAssign, TermSemicolon, "Assign -> epsilon"},
		{NtOperation, TermNumber, "Operation -> number P"},
		{NtK, TermGreaterEqual, "K -> >="},
		{NtOutput, TermCout, "Output -> cout << C H ;"},
	}
	tab := genTestTable(t)
	for _, tt := range tests {
		prod, ok := tab.Find(tt.nt, tt.term)
		require.True(t, ok, "no entry at (%v, %v)", tt.nt, tt.term)
		require.Equal(t, tt.want, prod.String())
	}
}

func TestGenTable_ErrorCells(t *testing.T) {
	tab := genTestTable(t)
	for _, tt := range []struct {
		nt   NonTerminal
		term Terminal
	}{
		{NtAssign, TermInt},
		{NtM, TermFloat},
		{NtStart, TermEOF},
		{NtExpression, TermWhile},
	} {
		_, ok := tab.Find(tt.nt, tt.term)
		require.False(t, ok, "unexpected entry at (%v, %v)", tt.nt, tt.term)
	}
}

func TestExpectedTerminals(t *testing.T) {
	tab := genTestTable(t)
	require.ElementsMatch(t,
		[]Terminal{TermAssign, TermComma, TermSemicolon},
		tab.ExpectedTerminals(NtAssign))
	require.ElementsMatch(t,
		[]Terminal{TermSemicolon, TermShiftLeft},
		tab.ExpectedTerminals(NtH))
}

func TestTableBuilder_Conflict(t *testing.T) {
	g, err := New()
	require.NoError(t, err)

	prods, _ := g.prods.findByLHS(SymbolOfNonTerminal(NtO))
	require.Len(t, prods, 3)

	b := &tableBuilder{
		grammar: g,
		entries: make([]productionNum, int(nonTermCount)*int(termCount)),
	}
	require.NoError(t, b.set(NtO, TermPlus, prods[0]))
	err = b.set(NtO, TermPlus, prods[1])

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, NtO, conflict.NonTerminal)
	require.Equal(t, TermPlus, conflict.Terminal)
}
