package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chimp/lexer"
	"chimp/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its canonical form",
	Long: `Parses a source file (or standard input when no file is given) and
prints the fully parenthesized canonical rendering of the resulting tree.
Diagnostics go to standard error; any diagnostic sets a non-zero exit
status. A partial tree is still printed, since the parser recovers at
statement boundaries and never aborts early.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(source))
	program := p.ParseProgram()

	if s := program.String(); s != "" {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", msg)
		}
		return fmt.Errorf("%d parse error(s)", len(errs))
	}

	return nil
}
