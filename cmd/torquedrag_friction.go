package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/torquedrag"
)

var (
	ffHookload  float64
	ffTolerance float64
	ffMaxIter   int
)

var torquedragFrictionCmd = &cobra.Command{
	Use:   "friction",
	Short: "Back-calculate a friction factor from measured hookload",
	Long: `Find the single effective friction factor that reproduces a
measured surface hookload for the given operation, by bisection over
repeated soft-string runs. The factor is searched in [0.05, 0.60] and
applied to both cased and open hole.

Examples:
  # The driller saw 164 klb pulling out; what friction factor is that?
  drillcalc torquedrag friction --survey well.json --string string.json \
      --operation tripping_out --mud-weight 10 --shoe 2300 --casing-od 9.625 \
      --hole-size 8.5 --hookload 164`,
	Run: runTorquedragFriction,
}

func init() {
	torquedragCmd.AddCommand(torquedragFrictionCmd)

	addTorquedragInputFlags(torquedragFrictionCmd)
	torquedragFrictionCmd.Flags().Float64Var(&ffHookload, "hookload", 0, "Measured surface hookload (klb) [required]")
	torquedragFrictionCmd.Flags().Float64Var(&ffTolerance, "tolerance", torquedrag.DefaultHookloadTol, "Hookload match tolerance (lbf)")
	torquedragFrictionCmd.Flags().IntVar(&ffMaxIter, "max-iter", torquedrag.DefaultMaxIterations, "Bisection iteration cap")

	torquedragFrictionCmd.MarkFlagRequired("hookload")
}

func runTorquedragFriction(cmd *cobra.Command, args []string) {
	in, err := buildTorquedragInput()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	measured := ffHookload * 1000
	result, err := torquedrag.BackCalculateFriction(in, measured, ffTolerance, ffMaxIter)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FRICTION FACTOR BACK-CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Operation:\t%s\n", in.Operation)
	fmt.Fprintf(w, "  Measured hookload:\t%.1f klb\n", ffHookload)
	fmt.Fprintf(w, "  Search bracket:\t[%.2f, %.2f]\n", torquedrag.FrictionMin, torquedrag.FrictionMax)
	fmt.Fprintf(w, "  Tolerance:\t%.0f lbf\n", ffTolerance)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Friction factor:\t%.3f\n", result.FrictionFactor)
	fmt.Fprintf(w, "  Reproduced hookload:\t%.1f klb\n", result.Hookload/1000)
	fmt.Fprintf(w, "  Residual:\t%.0f lbf\n", result.Residual)
	fmt.Fprintf(w, "  Iterations:\t%d\n", result.Iterations)
	w.Flush()
	fmt.Println()

	if result.Converged {
		fmt.Printf("  ╔═════════════════════════════════════════╗\n")
		fmt.Printf("  ║  EFFECTIVE FRICTION FACTOR = %.3f     \n", result.FrictionFactor)
		fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	} else {
		fmt.Println("  ⚠ Did not converge: the measured hookload is outside the")
		fmt.Println("    range this string and operation can produce, or the")
		fmt.Println("    iteration cap was reached. Best estimate reported above.")
	}
	fmt.Println()
}
