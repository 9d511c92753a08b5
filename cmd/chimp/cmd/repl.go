package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chimp/repl"
)

var (
	replMode   string
	replPrompt string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt over standard input",
	Long: `Starts a line-buffered interactive session. Depending on the mode,
each line is either tokenized and printed token by token, or parsed and
printed in canonical form together with any diagnostics.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replMode, "mode", "", "output mode: tokens or parse")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "", "prompt string")
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the config file.
	if replMode != "" {
		cfg.REPL.Mode = replMode
	}
	if replPrompt != "" {
		cfg.REPL.Prompt = replPrompt
	}

	replCfg, logger, err := cfg.Parse()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received signal. shutting down.", "signal", sig)
		cancel()
	}()

	r := repl.New(logger, *replCfg, os.Stdin, os.Stdout)
	return r.Run(ctx)
}
