package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"
)

const sumProgram = `#include <iostream>
using namespace std;
int main(){
int s=0, t=10;
while (t>=1){
s = s + t;
t = t - 1;
}
cout<<"sum="<<s;
return 0;
}
`

func parseSource(t *testing.T, src string, opts ...ParserOption) (*Parser, error) {
	t.Helper()
	toks, err := lexer.Lex([]byte(src))
	require.NoError(t, err)
	g, err := grammar.New()
	require.NoError(t, err)
	tab, err := grammar.GenTable(g)
	require.NoError(t, err)
	p, err := NewParser(tab, []byte(src), toks, opts...)
	require.NoError(t, err)
	return p, p.Parse()
}

func TestParse(t *testing.T) {
	p, err := parseSource(t, sumProgram)
	require.NoError(t, err)
	require.NotNil(t, p.Tree())

	trace := p.Trace()
	require.NotEmpty(t, trace)
	require.Equal(t, "Start -> S N M", trace[0])
	require.Equal(t, "S -> #include S", trace[1])
	require.Contains(t, trace, "N -> using namespace std ;")
	require.Contains(t, trace, "Loop -> while ( Expression ) { T }")
	require.Contains(t, trace, "V -> return 0 ;")
}

func TestParse_InputStatement(t *testing.T) {
	src := `#include <iostream>
using namespace std;
int main(){ int x; int s=0,t=10; while(t>=0){ cin>>x; t=t-1; s=s+x; } cout<<"sum="<<s; return 0; }
`
	p, err := parseSource(t, src)
	require.NoError(t, err)
	require.NotNil(t, p.Tree())

	trace := p.Trace()
	require.NotEmpty(t, trace)
	require.Equal(t, "Start -> S N M", trace[0])
	require.Contains(t, trace, "Input -> cin >> identifier F ;")
	require.Contains(t, trace, "F -> epsilon")

	typ, ok := FindDeclaredType(p.Tree(), "s")
	require.True(t, ok)
	require.Equal(t, "int", typ)
	_, ok = FindDeclaredType(p.Tree(), "zzz")
	require.False(t, ok)
}

func TestParse_OnlyParse(t *testing.T) {
	p, err := parseSource(t, sumProgram, OnlyParse())
	require.NoError(t, err)
	require.Nil(t, p.Tree())
	require.Empty(t, p.Trace())
}

func TestParse_MissingSemicolon(t *testing.T) {
	src := `#include <iostream>
using namespace std;
int main(){
int x
int s=0;
return 0;
}
`
	_, err := parseSource(t, src)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, ErrNoProduction, synErr.Kind)
	require.Equal(t, 5, synErr.Row)
	require.Equal(t, 1, synErr.Col)
	require.Equal(t, "int", synErr.Found)
	require.ElementsMatch(t, []string{";", ",", "="}, synErr.Expected)
	require.Contains(t, synErr.Context, "int s=0;")
}

func TestParse_UnexpectedToken(t *testing.T) {
	src := "int main(){\ncout \"sum=\"<<s;\nreturn 0;\n}\n"
	_, err := parseSource(t, src)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, ErrUnexpectedToken, synErr.Kind)
	require.Equal(t, 2, synErr.Row)
	require.Equal(t, 6, synErr.Col)
	require.Equal(t, `"sum="`, synErr.Found)
	require.Equal(t, []string{"<<"}, synErr.Expected)
}

func TestParse_UnexpectedEOF(t *testing.T) {
	src := "int main(){\n"
	_, err := parseSource(t, src)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, ErrUnexpectedEOF, synErr.Kind)
	require.Equal(t, "end of input", synErr.Found)
}

func TestParse_TrailingTokens(t *testing.T) {
	src := "int main(){\nreturn 0;\n}\n;\n"
	_, err := parseSource(t, src)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, ErrUnexpectedToken, synErr.Kind)
	require.Equal(t, ";", synErr.Found)
	require.Equal(t, []string{"$"}, synErr.Expected)
}

func TestParse_SingleUse(t *testing.T) {
	toks, err := lexer.Lex([]byte(sumProgram))
	require.NoError(t, err)
	g, err := grammar.New()
	require.NoError(t, err)
	tab, err := grammar.GenTable(g)
	require.NoError(t, err)

	// The table is shared; each parse gets its own Parser.
	for i := 0; i < 2; i++ {
		p, err := NewParser(tab, []byte(sumProgram), toks)
		require.NoError(t, err)
		require.NoError(t, p.Parse())
		require.NotNil(t, p.Tree())
	}
}
