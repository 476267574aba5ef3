package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <rule>",
	Short: "Parse a transition rule and print its table",
	Long: `Checks a rule string against the alphabet and prints one line per symbol read.
Quote the rule, since clauses are separated by " | ".`,
	Example: `  turing parse "0/1,R | 1/0,L" --alphabet 01 --output json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return cli.RunParse(cmd.OutOrStdout(), args[0], cfg.Alphabet, cfg.Output)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml (overrides config)")
}
