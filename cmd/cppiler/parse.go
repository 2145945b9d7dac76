package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppiler/cppiler/driver"
	"github.com/cppiler/cppiler/grammar"
	"github.com/cppiler/cppiler/lexer"
)

var parseFlags = struct {
	source    *string
	onlyParse *bool
	typeOf    *[]string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a source text and print the parse tree and the production trace",
		Example: `  cat prog.cpp | cppiler parse --type-of s`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.onlyParse = cmd.Flags().Bool("only-parse", false, "check syntax without building a tree or a trace")
	parseFlags.typeOf = cmd.Flags().StringArray("type-of", nil, "report the declared type of an identifier (repeatable)")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if *parseFlags.onlyParse && len(*parseFlags.typeOf) > 0 {
		return fmt.Errorf("You cannot enable --only-parse and --type-of at the same time")
	}

	src, err := readSource(*parseFlags.source)
	if err != nil {
		return err
	}
	toks, err := lexer.Lex(src)
	if err != nil {
		return err
	}

	gram, err := grammar.New()
	if err != nil {
		return err
	}
	tab, err := grammar.GenTable(gram)
	if err != nil {
		return err
	}

	var opts []driver.ParserOption
	if *parseFlags.onlyParse {
		opts = append(opts, driver.OnlyParse())
	}
	p, err := driver.NewParser(tab, src, toks, opts...)
	if err != nil {
		return err
	}
	if err := p.Parse(); err != nil {
		return err
	}
	if *parseFlags.onlyParse {
		return nil
	}

	driver.PrintTree(os.Stdout, p.Tree().Root())

	fmt.Fprintf(os.Stdout, "\n=== Production Sequence ===\n")
	for i, entry := range p.Trace() {
		fmt.Fprintf(os.Stdout, "%3d. %v\n", i+1, entry)
	}

	if len(*parseFlags.typeOf) > 0 {
		fmt.Fprintf(os.Stdout, "\nIdentifier Definitions:\n")
		for _, name := range *parseFlags.typeOf {
			if typ, ok := driver.FindDeclaredType(p.Tree(), name); ok {
				fmt.Fprintf(os.Stdout, "  %-10v -> %v\n", name, typ)
			} else {
				fmt.Fprintf(os.Stdout, "  %-10v -> Not found\n", name)
			}
		}
	}

	return nil
}
