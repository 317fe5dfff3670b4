package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const exitCommand = "exit"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `Read expressions line by line and print their value.
Type 'exit' (any case) or send EOF to quit.`,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	svc, cleanup, err := newService(cmd.Context(), logger, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()

	r := &repl{
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		svc:    svc,
		prompt: cfg.Prompt,
		logger: logger,
	}
	return r.Run(cmd.Context())
}

type repl struct {
	in     io.Reader
	out    io.Writer
	svc    *calc.Service
	prompt string
	logger *slog.Logger
}

func (r *repl) Run(ctx context.Context) error {
	r.logger.Info("Starting program")
	fmt.Fprintln(r.out, color.CyanString("Welcome to the Math Expression Evaluator!"))

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprintln(r.out, "Enter a mathematical expression (or type 'exit' to quit):")
		fmt.Fprint(r.out, r.prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(r.out)
			r.goodbye()
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.EqualFold(strings.TrimSpace(line), exitCommand) {
			r.goodbye()
			return nil
		}

		record, err := r.svc.Evaluate(ctx, line)
		if err != nil {
			r.logger.Error("Error encountered", "expression", line, "error", err)
			fmt.Fprintf(r.out, "%s %v. Please try again.\n", color.RedString("Error:"), err)
			continue
		}
		r.logger.Debug("Evaluated expression", "expression", line, "tree", record.Tree)
		fmt.Fprintf(r.out, "%s %s\n", color.GreenString("Result:"), record.Display)
	}
}

func (r *repl) goodbye() {
	r.logger.Info("Exiting program")
	fmt.Fprintln(r.out, "Goodbye!")
}
