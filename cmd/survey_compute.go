package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/diagram"
	"github.com/wellteklabs/drillcalc/internal/survey"
)

var (
	surveyComputeFile string
	surveyComputePlot string
)

var surveyComputeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute wellbore positions from a survey file",
	Long: `Run the minimum curvature method over a directional survey and
report TVD, north/east displacement and dogleg severity at every
station.

Examples:
  # Compute positions from a survey file
  drillcalc survey compute --file well-a12.json

  # Also export the vertical section plot
  drillcalc survey compute -f well-a12.json --plot path.png`,
	Run: runSurveyCompute,
}

func init() {
	surveyCmd.AddCommand(surveyComputeCmd)

	surveyComputeCmd.Flags().StringVarP(&surveyComputeFile, "file", "f", "", "Survey JSON file [required]")
	surveyComputeCmd.Flags().StringVar(&surveyComputePlot, "plot", "", "Export well path image (.png, .svg, .pdf)")

	surveyComputeCmd.MarkFlagRequired("file")
}

func runSurveyCompute(cmd *cobra.Command, args []string) {
	name, stations, err := loadSurveyFile(surveyComputeFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	log.Debugf("loaded %d survey stations from %s", len(stations), surveyComputeFile)

	computed, err := survey.MinimumCurvature(stations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     DIRECTIONAL SURVEY - MINIMUM CURVATURE METHOD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if name != "" {
		fmt.Printf("  Well: %s\n", name)
		fmt.Println()
	}

	fmt.Println("STATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  MD (ft)\tInc (°)\tAzi (°)\tTVD (ft)\tNorth (ft)\tEast (ft)\tDLS (°/100ft)\t")
	for _, s := range computed {
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.2f\t%.1f\t%.1f\t%.1f\t%.2f\t\n",
			s.MD, s.Inclination, s.Azimuth, s.TVD, s.North, s.East, s.DLS)
	}
	w.Flush()
	fmt.Println()

	last := computed[len(computed)-1]
	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total MD:\t%.1f ft\n", last.MD)
	fmt.Fprintf(w, "  TVD at TD:\t%.1f ft\n", last.TVD)
	fmt.Fprintf(w, "  Closure N/E:\t%.1f / %.1f ft\n", last.North, last.East)
	maxDLS := 0.0
	for _, s := range computed {
		if s.DLS > maxDLS {
			maxDLS = s.DLS
		}
	}
	fmt.Fprintf(w, "  Max DLS:\t%.2f °/100ft\n", maxDLS)
	w.Flush()
	fmt.Println()

	if surveyComputePlot != "" {
		if err := diagram.ExportWellPath(computed, surveyComputePlot); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Well path exported to %s\n", surveyComputePlot)
		fmt.Println()
	}
}
