package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"chimp/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chimp",
	Short: "Front end for the chimp expression language",
	Long: `chimp is the lexical and syntactic front end for a small curly-brace
expression language. It turns source text into a stream of classified tokens
and parses that stream into an abstract syntax tree with correct operator
precedence and associativity.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.chimp.yaml)")
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()

	path := cfgFile
	if path == "" {
		path = "./.chimp.yaml"
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file content: %w", err)
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}

	return cfg, nil
}

// readSource loads one program: from the named file, or stdin when no
// argument is given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read standard input: %w", err)
		}
		return string(content), nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("cannot read source file: %w", err)
	}

	return string(content), nil
}
