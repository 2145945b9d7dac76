package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var rootFlags = struct {
	verbosity *int
}{}

var rootCmd = &cobra.Command{
	Use:   "cppiler",
	Short: "Parse a mini C++ program with an LL(1) predictive parser",
	Long: `cppiler is an LL(1) front-end for a small C++-like language:
- Tokenizes a source text.
- Derives a predictive-parsing table from the fixed grammar.
- Parses the token stream into a parse tree with precise diagnostics.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(*rootFlags.verbosity, nil)
	},
}

func init() {
	rootFlags.verbosity = rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

// readSource reads the whole source text from a file path, or from stdin
// when the path is empty.
func readSource(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the source file %s: %w", path, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}
