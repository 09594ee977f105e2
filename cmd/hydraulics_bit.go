package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/hydraulics"
)

var (
	bitFlow     float64
	bitDensity  float64
	bitNozzles  []int
	bitDiameter float64
)

var hydraulicsBitCmd = &cobra.Command{
	Use:   "bit",
	Short: "Bit nozzle hydraulics",
	Long: `Compute jet velocity, bit pressure drop, hydraulic horsepower, HSI
and jet impact force for a nozzle set sized in 32nds of an inch.

Examples:
  # Three 13/32" nozzles at 420 gpm with 12.5 ppg mud on an 8.5" bit
  drillcalc hydraulics bit --flow 420 --density 12.5 --nozzles 13,13,13 --bit-size 8.5`,
	Run: runHydraulicsBit,
}

func init() {
	hydraulicsCmd.AddCommand(hydraulicsBitCmd)

	hydraulicsBitCmd.Flags().Float64VarP(&bitFlow, "flow", "q", 0, "Flow rate (gpm) [required]")
	hydraulicsBitCmd.Flags().Float64VarP(&bitDensity, "density", "d", 0, "Mud weight (ppg) [required]")
	hydraulicsBitCmd.Flags().IntSliceVar(&bitNozzles, "nozzles", nil, "Nozzle sizes in 32nds of an inch, e.g. 13,13,13 [required]")
	hydraulicsBitCmd.Flags().Float64Var(&bitDiameter, "bit-size", 0, "Bit diameter (in) [required]")

	hydraulicsBitCmd.MarkFlagRequired("flow")
	hydraulicsBitCmd.MarkFlagRequired("density")
	hydraulicsBitCmd.MarkFlagRequired("nozzles")
	hydraulicsBitCmd.MarkFlagRequired("bit-size")
}

func runHydraulicsBit(cmd *cobra.Command, args []string) {
	result, err := hydraulics.BitHydraulics(bitNozzles, bitFlow, bitDensity, bitDiameter)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BIT NOZZLE HYDRAULICS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flow rate:\t%.0f gpm\n", bitFlow)
	fmt.Fprintf(w, "  Mud weight:\t%.2f ppg\n", bitDensity)
	fmt.Fprintf(w, "  Nozzles (32nds):\t%v\n", bitNozzles)
	fmt.Fprintf(w, "  Bit diameter:\t%.3f in\n", bitDiameter)
	fmt.Fprintf(w, "  Discharge coefficient:\t%.2f\n", hydraulics.NozzleDischargeCoeff)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total flow area (TFA):\t%.4f in²\n", result.TFA)
	fmt.Fprintf(w, "  Jet velocity:\t%.1f ft/s\n", result.JetVelocity)
	fmt.Fprintf(w, "  Bit pressure drop:\t%.1f psi\n", result.PressureDrop)
	fmt.Fprintf(w, "  Hydraulic horsepower:\t%.1f hp\n", result.HHP)
	fmt.Fprintf(w, "  HSI:\t%.2f hp/in²\n", result.HSI)
	fmt.Fprintf(w, "  Jet impact force:\t%.0f lbf\n", result.ImpactForce)
	w.Flush()
	fmt.Println()
}
