package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chimp/lexer"
	"chimp/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the token stream of a program",
	Long: `Tokenizes a source file (or standard input when no file is given) and
prints one token per line as TYPE "literal". Unrecognized characters show up
as ILLEGAL tokens; lexing never fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", tok.Type, tok.Literal)
	}

	return nil
}
