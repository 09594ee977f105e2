package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/hydraulics"
)

var (
	surgeTripSpeed float64
	surgeHoleID    float64
	surgePipeOD    float64
	surgePipeID    float64
	surgeOpenEnded bool
	surgeDensity   float64
	surgePV        float64
	surgeYP        float64
	surgeN         float64
	surgeK         float64
	surgeLength    float64
	surgeTVD       float64
)

var hydraulicsSurgeCmd = &cobra.Command{
	Use:   "surge",
	Short: "Surge and swab pressures while tripping",
	Long: `Convert a pipe tripping speed into surge and swab pressure swings
using the Burkhardt clinging-constant method, and band the swings
against fracture-margin and kick-margin thresholds.

Examples:
  # Closed-ended 5" pipe run at 90 ft/min in an 8.5" hole
  drillcalc hydraulics surge --trip-speed 1.5 --hole-id 8.5 --pipe-od 5 \
      --pipe-id 4.276 -d 12.5 --pv 18 --yp 14 --length 10000 --tvd 10000

  # Open-ended pipe (no float, bit unplugged)
  drillcalc hydraulics surge --trip-speed 1.5 --hole-id 8.5 --pipe-od 5 \
      --pipe-id 4.276 --open-ended -d 12.5 --pv 18 --yp 14 --length 10000 --tvd 10000`,
	Run: runHydraulicsSurge,
}

func init() {
	hydraulicsCmd.AddCommand(hydraulicsSurgeCmd)

	hydraulicsSurgeCmd.Flags().Float64Var(&surgeTripSpeed, "trip-speed", 0, "Pipe speed (ft/s) [required]")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgeHoleID, "hole-id", 0, "Hole or casing ID (in) [required]")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgePipeOD, "pipe-od", 0, "Pipe OD (in) [required]")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgePipeID, "pipe-id", 0, "Pipe ID (in)")
	hydraulicsSurgeCmd.Flags().BoolVar(&surgeOpenEnded, "open-ended", false, "Pipe is open ended (no float)")
	hydraulicsSurgeCmd.Flags().Float64VarP(&surgeDensity, "density", "d", 0, "Mud weight (ppg) [required]")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgePV, "pv", 0, "Plastic viscosity (cp), Bingham model")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgeYP, "yp", 0, "Yield point (lbf/100ft²), Bingham model")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgeN, "n", 0, "Flow behavior index; > 0 selects Power Law")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgeK, "k", 0, "Consistency index (lbf·sⁿ/100ft²), Power Law model")
	hydraulicsSurgeCmd.Flags().Float64VarP(&surgeLength, "length", "l", 0, "String length in the hole (ft) [required]")
	hydraulicsSurgeCmd.Flags().Float64Var(&surgeTVD, "tvd", 0, "True vertical depth (ft) [required]")

	hydraulicsSurgeCmd.MarkFlagRequired("trip-speed")
	hydraulicsSurgeCmd.MarkFlagRequired("hole-id")
	hydraulicsSurgeCmd.MarkFlagRequired("pipe-od")
	hydraulicsSurgeCmd.MarkFlagRequired("density")
	hydraulicsSurgeCmd.MarkFlagRequired("length")
	hydraulicsSurgeCmd.MarkFlagRequired("tvd")
}

func runHydraulicsSurge(cmd *cobra.Command, args []string) {
	fluid := fluidFromFlags(surgeDensity, surgePV, surgeYP, surgeN, surgeK)

	result, err := hydraulics.SurgeSwab(surgeTripSpeed, surgeHoleID, surgePipeOD, surgePipeID,
		surgeOpenEnded, fluid, surgeLength, surgeTVD)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SURGE / SWAB PRESSURES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Trip speed:\t%.2f ft/s\n", surgeTripSpeed)
	fmt.Fprintf(w, "  Hole ID / Pipe OD:\t%.3f / %.3f in\n", surgeHoleID, surgePipeOD)
	pipeEnd := "closed"
	if surgeOpenEnded {
		pipeEnd = "open"
	}
	fmt.Fprintf(w, "  Pipe end:\t%s\n", pipeEnd)
	fmt.Fprintf(w, "  Mud weight:\t%.2f ppg\n", fluid.Density)
	fmt.Fprintf(w, "  Rheology model:\t%s\n", fluid.Model)
	fmt.Fprintf(w, "  String length / TVD:\t%.0f / %.0f ft\n", surgeLength, surgeTVD)
	fmt.Fprintf(w, "  Clinging constant:\t%.2f\n", hydraulics.ClingingConstant)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Equivalent annular flow:\t%.0f gpm\n", result.EquivalentFlow)
	fmt.Fprintf(w, "  Pressure swing:\t%.1f psi\n", result.PressureSwing)
	fmt.Fprintf(w, "  ΔEMW:\t%.3f ppg\n", result.DeltaEMW)
	fmt.Fprintf(w, "  Surge EMW (running in):\t%.2f ppg\t[%s]\n", result.SurgeEMW, result.SurgeStatus)
	fmt.Fprintf(w, "  Swab EMW (pulling out):\t%.2f ppg\t[%s]\n", result.SwabEMW, result.SwabStatus)
	w.Flush()
	fmt.Println()

	if result.SurgeStatus == hydraulics.RiskCritical || result.SwabStatus == hydraulics.RiskCritical {
		fmt.Println("  ⚠ CRITICAL pressure swing - reduce tripping speed")
		fmt.Println()
	}
}
