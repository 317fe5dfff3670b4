package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/calc-tree/internal/suite"
	"github.com/spf13/cobra"
)

var (
	suiteFile       string
	suiteIterations int
	suiteJSON       string
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run a YAML suite of expressions with expected results",
	Example: `  calc suite --file configs/suites/basic.yaml
  calc suite --file configs/suites/basic.yaml --iterations 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := suite.LoadFromFile(suiteFile)
		if err != nil {
			return err
		}

		report, err := suite.NewRunner(nil, suite.WithIterations(suiteIterations)).Run(cmd.Context(), s)
		if err != nil {
			return err
		}

		suite.WriteTable(report, cmd.OutOrStdout())
		if suiteJSON != "" {
			if err := suite.WriteJSON(report, suiteJSON); err != nil {
				return err
			}
		}
		if !report.OK() {
			return fmt.Errorf("%d of %d cases failed", report.Failed, len(report.Results))
		}
		return nil
	},
}

func init() {
	suiteCmd.Flags().StringVarP(&suiteFile, "file", "f", "configs/suites/basic.yaml", "Path to the suite YAML file")
	suiteCmd.Flags().StringVar(&suiteJSON, "json", "", "Also write the report as JSON to this path")
	suiteCmd.Flags().IntVar(&suiteIterations, "iterations", 0, "Evaluations per case; 0 uses the suite setting")
}
