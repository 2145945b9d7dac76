package grammar

// Description is a human-readable rendering of a parsing table, consumed by
// the CLI's show command.
type Description struct {
	NonTerminals []*NonTerminalDescription
}

type NonTerminalDescription struct {
	Name     string
	First    []string
	Nullable bool
	Follow   []string
	Entries  []*EntryDescription
}

type EntryDescription struct {
	Terminal   string
	Production string
}

// Describe flattens the table and its FIRST/FOLLOW sets into plain strings.
func (t *Table) Describe() *Description {
	d := &Description{}
	for _, nt := range NonTerminals() {
		first, nullable := t.FirstSet(nt)
		nd := &NonTerminalDescription{
			Name:     nt.String(),
			First:    terminalTextsOf(first),
			Nullable: nullable,
			Follow:   terminalTextsOf(t.FollowSet(nt)),
		}
		for _, term := range t.ExpectedTerminals(nt) {
			prod, _ := t.Find(nt, term)
			nd.Entries = append(nd.Entries, &EntryDescription{
				Terminal:   term.String(),
				Production: prod.RHSText(),
			})
		}
		d.NonTerminals = append(d.NonTerminals, nd)
	}
	return d
}

func terminalTextsOf(terms []Terminal) []string {
	texts := make([]string, len(terms))
	for i, term := range terms {
		texts[i] = term.String()
	}
	return texts
}
