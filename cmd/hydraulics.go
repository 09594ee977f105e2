package cmd

import (
	"github.com/spf13/cobra"
)

var hydraulicsCmd = &cobra.Command{
	Use:   "hydraulics",
	Short: "Circulating-system hydraulics calculations",
	Long: `Circulating hydraulics for Bingham Plastic and Power Law fluids:
per-section pressure losses, standpipe pressure, ECD profile, bit
nozzle hydraulics and surge/swab tripping pressures.

The fluid is described by the shared rheology flags. Passing a
positive flow behavior index (--n) selects the Power Law model with
--k; otherwise the Bingham Plastic model uses --pv and --yp.`,
}

func init() {
	rootCmd.AddCommand(hydraulicsCmd)
}
