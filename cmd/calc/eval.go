package main

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/calc-tree/internal/calc"
	"github.com/DjordjeVuckovic/calc-tree/internal/eval"
	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var showAST bool

var evalCmd = &cobra.Command{
	Use:   "eval <expression...>",
	Short: "Evaluate a single expression",
	Example: `  calc eval "2 + 3 * 4"
  calc eval --ast "(1 + 2) / 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expression := strings.Join(args, " ")
		c := calc.NewCalculator()

		root, err := c.Parse(expression)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showAST {
			fmt.Fprintln(out, repr.String(root, repr.Indent("  ")))
		}

		value, err := eval.Evaluate(root)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, calc.FormatResult(value))
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&showAST, "ast", false, "Print the expression tree before the result")
}
