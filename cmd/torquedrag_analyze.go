package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/diagram"
	"github.com/wellteklabs/drillcalc/internal/hydraulics"
	"github.com/wellteklabs/drillcalc/internal/survey"
	"github.com/wellteklabs/drillcalc/internal/torquedrag"
)

var (
	tdSurveyFile string
	tdStringFile string
	tdOperation  string
	tdMudWeight  float64
	tdWOB        float64
	tdBitTorque  float64
	tdFFCased    float64
	tdFFOpen     float64
	tdShoeMD     float64
	tdCasingOD   float64
	tdHoleSize   float64

	// ECD coupling
	tdCircuitFile string
	tdFlow        float64
	tdPV          float64
	tdYP          float64
	tdN           float64
	tdK           float64

	tdASCII bool
	tdPlot  string
)

var torquedragAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Soft-string torque and drag analysis",
	Long: `Run the Johancsik soft-string integration from the bit to surface
for a given rig operation, reporting the axial load profile, surface
hookload and torque, and buckling status.

Operations: rotating, rotating_off_bottom, sliding, tripping_in,
tripping_out, back_reaming.

When a circuit file and flow rate are given, buoyancy uses the
circulating ECD profile instead of the static mud weight.

Examples:
  # Tripping out of an S-shaped well
  drillcalc torquedrag analyze --survey well.json --string string.json \
      --operation tripping_out --mud-weight 10 --ff-cased 0.25 --ff-open 0.30 \
      --shoe 2300 --casing-od 9.625 --hole-size 8.5

  # Rotating on bottom with 25 klb WOB, ECD-coupled buoyancy
  drillcalc torquedrag analyze --survey well.json --string string.json \
      --operation rotating --mud-weight 10 --wob 25000 --bit-torque 1500 \
      --ff-cased 0.25 --ff-open 0.30 --circuit circuit.json --flow 420 --pv 18 --yp 14`,
	Run: runTorquedragAnalyze,
}

func init() {
	torquedragCmd.AddCommand(torquedragAnalyzeCmd)

	addTorquedragInputFlags(torquedragAnalyzeCmd)
	torquedragAnalyzeCmd.Flags().BoolVar(&tdASCII, "ascii", false, "Render the axial load profile as a terminal chart")
	torquedragAnalyzeCmd.Flags().StringVar(&tdPlot, "plot", "", "Export load profile image (.png, .svg, .pdf)")
}

// addTorquedragInputFlags registers the soft-string input flags shared
// by the analyze and friction commands.
func addTorquedragInputFlags(c *cobra.Command) {
	c.Flags().StringVar(&tdSurveyFile, "survey", "", "Survey JSON file [required]")
	c.Flags().StringVar(&tdStringFile, "string", "", "Drillstring JSON file [required]")
	c.Flags().StringVarP(&tdOperation, "operation", "o", "rotating", "Rig operation")
	c.Flags().Float64VarP(&tdMudWeight, "mud-weight", "m", 0, "Static mud weight (ppg) [required]")
	c.Flags().Float64Var(&tdWOB, "wob", 0, "Weight on bit (lbf), drilling operations")
	c.Flags().Float64Var(&tdBitTorque, "bit-torque", 0, "Bit torque (ft-lbf), rotating on bottom")
	c.Flags().Float64Var(&tdFFCased, "ff-cased", 0.25, "Friction factor inside casing")
	c.Flags().Float64Var(&tdFFOpen, "ff-open", 0.30, "Friction factor in open hole")
	c.Flags().Float64Var(&tdShoeMD, "shoe", 0, "Casing shoe MD (ft); 0 = no casing")
	c.Flags().Float64Var(&tdCasingOD, "casing-od", 0, "Casing size (in) for the ID lookup")
	c.Flags().Float64Var(&tdHoleSize, "hole-size", 0, "Open-hole diameter (in)")

	c.Flags().StringVar(&tdCircuitFile, "circuit", "", "Circuit JSON file for ECD-coupled buoyancy")
	c.Flags().Float64VarP(&tdFlow, "flow", "q", 0, "Flow rate (gpm), required with --circuit")
	c.Flags().Float64Var(&tdPV, "pv", 0, "Plastic viscosity (cp), Bingham model")
	c.Flags().Float64Var(&tdYP, "yp", 0, "Yield point (lbf/100ft²), Bingham model")
	c.Flags().Float64Var(&tdN, "n", 0, "Flow behavior index; > 0 selects Power Law")
	c.Flags().Float64Var(&tdK, "k", 0, "Consistency index (lbf·sⁿ/100ft²), Power Law model")

	c.MarkFlagRequired("survey")
	c.MarkFlagRequired("string")
	c.MarkFlagRequired("mud-weight")
}

// buildTorquedragInput assembles the soft-string input from the analyze
// command flags, running the survey and optional circuit hydraulics.
func buildTorquedragInput() (*torquedrag.Input, error) {
	_, stations, err := loadSurveyFile(tdSurveyFile)
	if err != nil {
		return nil, err
	}
	computed, err := survey.MinimumCurvature(stations)
	if err != nil {
		return nil, err
	}
	_, ds, err := loadStringFile(tdStringFile)
	if err != nil {
		return nil, err
	}
	op, err := torquedrag.ParseOperation(tdOperation)
	if err != nil {
		return nil, err
	}

	in := &torquedrag.Input{
		Survey:        computed,
		String:        ds,
		Operation:     op,
		MudWeight:     tdMudWeight,
		WOB:           tdWOB,
		TorqueAtBit:   tdBitTorque,
		FrictionCased: tdFFCased,
		FrictionOpen:  tdFFOpen,
		CasingShoeMD:  tdShoeMD,
		CasingOD:      tdCasingOD,
		HoleDiameter:  tdHoleSize,
	}

	if tdCircuitFile != "" {
		_, sections, err := loadCircuitFile(tdCircuitFile)
		if err != nil {
			return nil, err
		}
		fluid := fluidFromFlags(tdMudWeight, tdPV, tdYP, tdN, tdK)
		circ, err := hydraulics.FullCircuit(sections, fluid, tdFlow, 0, nil)
		if err != nil {
			return nil, err
		}
		in.ECD = circ.ECD
		log.Debugf("ECD coupling active: %d profile points, bottom ECD %.2f ppg",
			len(circ.ECD), circ.ECD.DensityAt(computed[len(computed)-1].TVD))
	}

	return in, nil
}

func runTorquedragAnalyze(cmd *cobra.Command, args []string) {
	in, err := buildTorquedragInput()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := torquedrag.Compute(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     TORQUE AND DRAG - SOFT-STRING MODEL")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Operation:\t%s\n", in.Operation)
	fmt.Fprintf(w, "  Mud weight:\t%.2f ppg\n", in.MudWeight)
	if in.WOB > 0 {
		fmt.Fprintf(w, "  WOB:\t%.0f lbf\n", in.WOB)
	}
	if in.TorqueAtBit > 0 {
		fmt.Fprintf(w, "  Bit torque:\t%.0f ft-lbf\n", in.TorqueAtBit)
	}
	fmt.Fprintf(w, "  Friction (cased / open):\t%.2f / %.2f\n", in.FrictionCased, in.FrictionOpen)
	if in.CasingShoeMD > 0 {
		fmt.Fprintf(w, "  Casing shoe:\t%.0f ft MD\n", in.CasingShoeMD)
	}
	if len(in.ECD) > 0 {
		fmt.Fprintf(w, "  Buoyancy:\tECD-coupled\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD PROFILE (bit to surface):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  MD (ft)\tInc (°)\tAxial (klb)\tNormal (klb)\tTorque (ft-klb)\tBuckling\t")
	for _, st := range result.Stations {
		fmt.Fprintf(w, "  %.0f\t%.1f\t%.1f\t%.1f\t%.2f\t%s\t\n",
			st.MD, st.Inclination, st.AxialForce/1000, st.NormalForce/1000, st.Torque/1000, st.Buckling)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  HOOKLOAD        = %.1f klb     \n", result.Hookload/1000)
	fmt.Printf("  ║  SURFACE TORQUE  = %.0f ft-lbf     \n", result.SurfaceTorque)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.WorstBuckling == torquedrag.BucklingNone {
		fmt.Println("  No buckling predicted along the string.")
	} else {
		fmt.Printf("  ⚠ Worst buckling state: %s\n", result.WorstBuckling)
	}
	fmt.Println()

	if tdASCII {
		fmt.Println(diagram.ASCIILoadProfile(result.Stations))
	}
	if tdPlot != "" {
		if err := diagram.ExportLoadProfile(result.Stations, tdPlot); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Load profile exported to %s\n", tdPlot)
		fmt.Println()
	}
}
