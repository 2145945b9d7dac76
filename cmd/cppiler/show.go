package main

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/cppiler/cppiler/grammar"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the parsing table and the FIRST/FOLLOW sets",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	gram, err := grammar.New()
	if err != nil {
		return err
	}
	tab, err := grammar.GenTable(gram)
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, tab.Describe())
}

const descriptionTemplate = `# Parse Table
{{ range .NonTerminals }}
{{ .Name }}:
  first:  { {{ join .First ", " }}{{ if .Nullable }}, ε{{ end }} }
  follow: { {{ join .Follow ", " }} }
{{ range .Entries -}}
{{ printf "  %-15v -> %v" .Terminal .Production }}
{{ end -}}
{{ end }}`

func writeDescription(w io.Writer, d *grammar.Description) error {
	fns := template.FuncMap{
		"join": strings.Join,
	}
	tmpl, err := template.New("description").Funcs(fns).Parse(descriptionTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, d)
}
