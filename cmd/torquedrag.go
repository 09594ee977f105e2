package cmd

import (
	"github.com/spf13/cobra"
)

var torquedragCmd = &cobra.Command{
	Use:   "torquedrag",
	Short: "Soft-string torque and drag calculations",
	Long: `Soft-string (Johancsik) torque and drag along a deviated wellbore:
axial load profile, surface hookload and torque, buckling checks, and
friction-factor back-calculation from a measured hookload.`,
}

func init() {
	rootCmd.AddCommand(torquedragCmd)
}
