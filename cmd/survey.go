package cmd

import (
	"github.com/spf13/cobra"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Directional survey calculations",
	Long: `Process directional survey stations with the minimum curvature
method: true vertical depth, north/east displacement and dogleg
severity at every station.`,
}

func init() {
	rootCmd.AddCommand(surveyCmd)
}
