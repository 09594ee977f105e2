package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/diagram"
	"github.com/wellteklabs/drillcalc/internal/hydraulics"
)

var (
	circuitFilePath    string
	circuitFlow        float64
	circuitDensity     float64
	circuitPV          float64
	circuitYP          float64
	circuitN           float64
	circuitK           float64
	circuitSurfaceLoss float64
	circuitNozzles     []int
	circuitBitSize     float64
	circuitASCII       bool
	circuitPlot        string
)

var hydraulicsCircuitCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Full-circuit pressure losses and ECD profile",
	Long: `Walk the circulating path from the standpipe down the drillstring
and back up the annulus, reporting per-section pressure losses, the
standpipe pressure, and the equivalent circulating density profile.

Examples:
  # Bingham mud, 420 gpm, with bit nozzles
  drillcalc hydraulics circuit -f circuit.json -q 420 -d 12.5 --pv 18 --yp 14 \
      --nozzles 13,13,13 --bit-size 8.5 --surface-loss 100

  # Power Law mud, ASCII ECD chart
  drillcalc hydraulics circuit -f circuit.json -q 420 -d 12.5 --n 0.65 --k 2.1 --ascii`,
	Run: runHydraulicsCircuit,
}

func init() {
	hydraulicsCmd.AddCommand(hydraulicsCircuitCmd)

	hydraulicsCircuitCmd.Flags().StringVarP(&circuitFilePath, "file", "f", "", "Circuit JSON file [required]")
	hydraulicsCircuitCmd.Flags().Float64VarP(&circuitFlow, "flow", "q", 0, "Flow rate (gpm) [required]")
	hydraulicsCircuitCmd.Flags().Float64VarP(&circuitDensity, "density", "d", 0, "Mud weight (ppg) [required]")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitPV, "pv", 0, "Plastic viscosity (cp), Bingham model")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitYP, "yp", 0, "Yield point (lbf/100ft²), Bingham model")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitN, "n", 0, "Flow behavior index; > 0 selects Power Law")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitK, "k", 0, "Consistency index (lbf·sⁿ/100ft²), Power Law model")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitSurfaceLoss, "surface-loss", 0, "Surface equipment pressure loss (psi)")
	hydraulicsCircuitCmd.Flags().IntSliceVar(&circuitNozzles, "nozzles", nil, "Bit nozzle sizes in 32nds of an inch")
	hydraulicsCircuitCmd.Flags().Float64Var(&circuitBitSize, "bit-size", 0, "Bit diameter (in), required with --nozzles")
	hydraulicsCircuitCmd.Flags().BoolVar(&circuitASCII, "ascii", false, "Render the ECD profile as a terminal chart")
	hydraulicsCircuitCmd.Flags().StringVar(&circuitPlot, "plot", "", "Export ECD profile image (.png, .svg, .pdf)")

	hydraulicsCircuitCmd.MarkFlagRequired("file")
	hydraulicsCircuitCmd.MarkFlagRequired("flow")
	hydraulicsCircuitCmd.MarkFlagRequired("density")
}

func runHydraulicsCircuit(cmd *cobra.Command, args []string) {
	name, sections, err := loadCircuitFile(circuitFilePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	log.Debugf("loaded %d circuit sections from %s", len(sections), circuitFilePath)

	fluid := fluidFromFlags(circuitDensity, circuitPV, circuitYP, circuitN, circuitK)

	var bit *hydraulics.BitResult
	if len(circuitNozzles) > 0 {
		bit, err = hydraulics.BitHydraulics(circuitNozzles, circuitFlow, circuitDensity, circuitBitSize)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	result, err := hydraulics.FullCircuit(sections, fluid, circuitFlow, circuitSurfaceLoss, bit)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CIRCULATING SYSTEM PRESSURE LOSSES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if name != "" {
		fmt.Printf("  Circuit: %s\n", name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flow rate:\t%.0f gpm\n", circuitFlow)
	fmt.Fprintf(w, "  Mud weight:\t%.2f ppg\n", fluid.Density)
	fmt.Fprintf(w, "  Rheology model:\t%s\n", fluid.Model)
	if fluid.Model == hydraulics.Bingham {
		fmt.Fprintf(w, "  PV / YP:\t%.1f cp / %.1f lbf/100ft²\n", fluid.PV, fluid.YP)
	} else {
		fmt.Fprintf(w, "  n / K:\t%.3f / %.3f lbf·sⁿ/100ft²\n", fluid.N, fluid.K)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION LOSSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Section\tLength (ft)\tVelocity (ft/s)\tRegime\tLoss (psi)\t")
	for _, s := range result.Sections {
		fmt.Fprintf(w, "  %s\t%.0f\t%.2f\t%s\t%.1f\t\n",
			s.Section.Kind, s.Section.Length, s.Flow.Velocity, s.Flow.Regime, s.Flow.Loss)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SYSTEM TOTALS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Surface equipment:\t%.1f psi\n", result.SurfaceLoss)
	fmt.Fprintf(w, "  Drillstring bore:\t%.1f psi\n", result.PipeLoss)
	fmt.Fprintf(w, "  Bit:\t%.1f psi\n", result.BitLoss)
	fmt.Fprintf(w, "  Annulus:\t%.1f psi\n", result.AnnulusLoss)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  STANDPIPE PRESSURE = %.1f psi     \n", result.Standpipe)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if len(result.ECD) > 0 {
		bottom := result.ECD[len(result.ECD)-1]
		fmt.Println("ECD:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Static mud weight:\t%.2f ppg\n", fluid.Density)
		fmt.Fprintf(w, "  ECD at %.0f ft:\t%.2f ppg\n", bottom.TVD, bottom.Density)
		w.Flush()
		fmt.Println()
	}

	if circuitASCII {
		fmt.Println(diagram.ASCIIECDProfile(result.ECD))
	}
	if circuitPlot != "" {
		if err := diagram.ExportECDProfile(result.ECD, fluid.Density, circuitPlot); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  ECD profile exported to %s\n", circuitPlot)
		fmt.Println()
	}
}
