package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tab := genTestTable(t)
	d := tab.Describe()
	require.Len(t, d.NonTerminals, len(NonTerminals()))

	byName := map[string]*NonTerminalDescription{}
	for _, nd := range d.NonTerminals {
		byName[nd.Name] = nd
	}

	start := byName["Start"]
	require.NotNil(t, start)
	require.ElementsMatch(t, []string{"#include", "using", "int"}, start.First)
	require.False(t, start.Nullable)
	require.Equal(t, []string{"$"}, start.Follow)

	s := byName["S"]
	require.NotNil(t, s)
	require.True(t, s.Nullable)
	require.Equal(t, []string{"#include"}, s.First)
	require.Len(t, s.Entries, 3)
	for _, e := range s.Entries {
		switch e.Terminal {
		case "#include":
			require.Equal(t, "#include S", e.Production)
		case "using", "int":
			require.Equal(t, "epsilon", e.Production)
		default:
			t.Fatalf("unexpected entry on %q", e.Terminal)
		}
	}
}
