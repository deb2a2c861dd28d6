package main

import "github.com/spf13/cobra"

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print every shape's area and frame rectangle",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	g, err := loadGroup()
	if err != nil {
		return err
	}
	return g.Report(cmd.OutOrStdout())
}
