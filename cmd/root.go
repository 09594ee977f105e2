package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wellteklabs/drillcalc/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "drillcalc",
	Short: "Drillstring Mechanics and Hydraulics Calculator",
	Long: `drillcalc - Drillstring Mechanics and Circulating Hydraulics

A CLI tool for deterministic drilling-engineering calculations:
  - Directional survey processing (minimum curvature method)
  - Circulating-system pressure losses and ECD (Bingham Plastic / Power Law)
  - Bit nozzle hydraulics and surge/swab pressures
  - Soft-string torque and drag with buckling checks (Johancsik model)
  - Friction-factor back-calculation from measured hookload

All calculations use oilfield units (ft, in, ppg, gpm, psi, lbf).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   drillcalc v%-45s║\n", version.Version)
		fmt.Println("  ║   Drillstring Mechanics & Hydraulics Calculator           ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Deterministic physics for petroleum drilling operations.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Minimum-curvature survey geometry (TVD, N/E, DLS)")
		fmt.Println("    • Full-circuit pressure loss and ECD profile")
		fmt.Println("    • Bit hydraulics (jet velocity, HSI, impact force)")
		fmt.Println("    • Surge/swab tripping pressures with risk banding")
		fmt.Println("    • Johancsik torque & drag with buckling classification")
		fmt.Println()
		fmt.Println("  Use 'drillcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
}
