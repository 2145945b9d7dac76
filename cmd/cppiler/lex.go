package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cppiler/cppiler/lexer"
)

var lexFlags = struct {
	source *string
	table  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "lex",
		Short:   "Tokenize a source text",
		Example: `  cat prog.cpp | cppiler lex`,
		Args:    cobra.NoArgs,
		RunE:    runLex,
	}
	lexFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	lexFlags.table = cmd.Flags().Bool("table", false, "print the token table instead of the token stream")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(*lexFlags.source)
	if err != nil {
		return err
	}
	toks, err := lexer.Lex(src)
	if err != nil {
		return err
	}
	// Drop the end marker; it is parser plumbing, not a lexeme.
	toks = toks[:len(toks)-1]

	if *lexFlags.table {
		printTokenTable(toks)
		return nil
	}

	for _, tok := range toks {
		fmt.Fprintf(os.Stdout, "%v\n", tok)
	}
	fmt.Fprintf(os.Stdout, "\nSuccessfully tokenized %v tokens.\n", len(toks))
	return nil
}

func printTokenTable(toks []*lexer.Token) {
	var kind lexer.TokenKind = -1
	for _, entry := range lexer.TokenTable(toks) {
		if entry.Kind != kind {
			kind = entry.Kind
			fmt.Fprintf(os.Stdout, "\n%v:\n", strings.ToUpper(kind.String()))
		}
		fmt.Fprintf(os.Stdout, "  %-20v (hash: %v)\n", entry.Literal, entry.Hash)
	}
}
