package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	toks, err := Lex([]byte("int s=0, t=10;"))
	require.NoError(t, err)

	want := []*Token{
		{Kind: KindReservedWord, Literal: "int", Offset: 0},
		{Kind: KindIdentifier, Literal: "s", Offset: 4},
		{Kind: KindSymbol, Literal: "=", Offset: 5},
		{Kind: KindNumber, Literal: "0", Offset: 6},
		{Kind: KindSymbol, Literal: ",", Offset: 7},
		{Kind: KindIdentifier, Literal: "t", Offset: 9},
		{Kind: KindSymbol, Literal: "=", Offset: 10},
		{Kind: KindNumber, Literal: "10", Offset: 11},
		{Kind: KindSymbol, Literal: ";", Offset: 13},
		{Kind: KindEOF, Literal: "$", Offset: 14},
	}
	require.Len(t, toks, len(want))
	for i, tok := range toks {
		require.Equal(t, want[i].Kind, tok.Kind, "token %v", i)
		require.Equal(t, want[i].Literal, tok.Literal, "token %v", i)
		require.Equal(t, want[i].Offset, tok.Offset, "token %v", i)
	}
}

// Compound operators must win over their single-character prefixes.
func TestLex_CompoundOperators(t *testing.T) {
	toks, err := Lex([]byte("a<=b<<c>>d"))
	require.NoError(t, err)

	var lits []string
	for _, tok := range toks {
		lits = append(lits, tok.Literal)
	}
	require.Equal(t, []string{"a", "<=", "b", "<<", "c", ">>", "d", "$"}, lits)
}

func TestLex_MultiLine(t *testing.T) {
	toks, err := Lex([]byte("int x;\nx = 1;\n"))
	require.NoError(t, err)

	require.Equal(t, "x", toks[3].Literal)
	require.Equal(t, 7, toks[3].Offset)
	require.Equal(t, 1, toks[3].Row)
	require.Equal(t, 0, toks[3].Col)
	require.Equal(t, "$", toks[len(toks)-1].Literal)
	require.Equal(t, 14, toks[len(toks)-1].Offset)
}

func TestLex_InvalidToken(t *testing.T) {
	_, err := Lex([]byte("int @x;"))

	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 4, lexErr.Offset)
}

func TestTokenTable(t *testing.T) {
	toks, err := Lex([]byte(`cout<<"x";cout<<"x";`))
	require.NoError(t, err)

	entries := TokenTable(toks)
	require.Len(t, entries, 4)
	require.Equal(t, KindString, entries[0].Kind)
	require.Equal(t, `"x"`, entries[0].Literal)
	require.Equal(t, KindSymbol, entries[1].Kind)
	require.Equal(t, ";", entries[1].Literal)
	require.Equal(t, KindSymbol, entries[2].Kind)
	require.Equal(t, "<<", entries[2].Literal)
	require.Equal(t, KindReservedWord, entries[3].Kind)
	require.Equal(t, "cout", entries[3].Literal)
	for _, e := range entries {
		require.Len(t, e.Hash, 8)
	}
}
