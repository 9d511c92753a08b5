package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"chimp/lexer"
	"chimp/parser"
	"chimp/token"
)

// Mode selects what a session prints for each input line.
type Mode string

const (
	// ModeTokens drives the lexer and prints every token until EOF.
	ModeTokens Mode = "tokens"
	// ModeParse parses the line and prints the canonical program string
	// plus any diagnostics.
	ModeParse Mode = "parse"
)

type Config struct {
	Prompt string
	Mode   Mode
}

// REPL is a line-buffered loop over an input stream. Each line is handed to
// a fresh lexer; state never carries over between lines.
type REPL struct {
	cfg    Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
}

func New(logger *slog.Logger, cfg Config, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		cfg:    cfg,
		logger: logger,
		in:     in,
		out:    out,
	}
}

// Run reads lines until the input is exhausted or the context is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	logger := r.logger.With("session_id", uuid.New())
	logger.Info("starting session.", "mode", r.cfg.Mode)

	scanner := bufio.NewScanner(r.in)

	for {
		select {
		case <-ctx.Done():
			logger.Info("session cancelled.")
			return nil
		default:
		}

		fmt.Fprint(r.out, r.cfg.Prompt)

		if !scanner.Scan() {
			break
		}

		switch r.cfg.Mode {
		case ModeParse:
			r.parseLine(scanner.Text())
		default:
			r.printTokens(scanner.Text())
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	logger.Info("session ended.")
	return nil
}

func (r *REPL) printTokens(line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		fmt.Fprintf(r.out, "%s %q\n", tok.Type, tok.Literal)
	}
}

func (r *REPL) parseLine(line string) {
	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	for _, msg := range p.Errors() {
		fmt.Fprintf(r.out, "parse error: %s\n", msg)
	}

	if s := program.String(); s != "" {
		fmt.Fprintln(r.out, s)
	}
}
