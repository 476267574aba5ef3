package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [script]",
	Short: "Open the terminal graph editor",
	Long: `Starts an editing session. Commands are read from the script file if one is given,
otherwise from standard input. Type 'help' inside the session for the command list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		opts := cli.EditOptions{
			Config: cfg,
			Input:  cmd.InOrStdin(),
			Output: cmd.OutOrStdout(),
		}
		if len(args) > 0 {
			opts.ScriptPath = args[0]
		}
		return cli.RunEdit(opts)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
