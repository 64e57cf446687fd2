package main

import "github.com/spf13/cobra"

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Start the interactive menu.

Controls:
  Up/Down or W/S or K/J - Navigate
  Enter                 - Select
  Tab                   - Scoreboard
  Q/Ctrl+C              - Quit`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMenuLoop()
	},
}
