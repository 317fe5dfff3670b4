// Package main is the calculator command line: an interactive REPL, one-shot
// evaluation and YAML suite runs.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	envName string
	cfg     *Config
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Evaluate arithmetic expressions with an expression tree",
	Long: `Calc tokenizes an arithmetic expression, builds a binary expression tree
with operator precedence and parentheses, and evaluates it.

Supported: non-negative decimal literals, + - * / and ( ).

Without a subcommand calc starts the interactive prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := LoadConfig(envName)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: runRepl,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", os.Getenv("ENV"), "Environment name; \"local\" requires the .env file to exist")

	rootCmd.AddCommand(replCmd, evalCmd, suiteCmd)
}
