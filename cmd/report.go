package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/escalation-sim/escalation-sim/trial"
	"github.com/escalation-sim/escalation-sim/trial/summary"
)

var (
	batchFile       string    // Path to the YAML batch file
	doseGrid        []float64 // Dose grid the design selected from
	targetLower     float64   // Target toxicity interval lower bound
	targetUpper     float64   // Target toxicity interval upper bound
	targetDoseLower float64   // Target dose interval lower bound
	targetDoseUpper float64   // Target dose interval upper bound
	placebo         bool      // Whether the lowest grid dose is placebo
)

// reportCmd loads a saved batch, rebuilds the result object with full
// validation and prints the matching summary report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a saved simulation batch",
	Run: func(cmd *cobra.Command, args []string) {
		if batchFile == "" {
			logrus.Fatalf("No batch file provided. Use --input.")
		}

		cfg, err := LoadBatchConfig(batchFile)
		if err != nil {
			logrus.Fatalf("unable to load batch file: %v", err)
		}
		logrus.Infof("Loaded batch: family=%s, runs=%d, seed=%v",
			cfg.Family, len(cfg.Runs), cfg.Seed)

		result, err := cfg.BuildResult()
		if err != nil {
			logrus.Fatalf("invalid simulation result: %v", err)
		}

		target, err := trial.NewInterval(targetLower, targetUpper)
		if err != nil {
			logrus.Fatalf("invalid target interval: %v", err)
		}
		targetDose, err := trial.NewInterval(targetDoseLower, targetDoseUpper)
		if err != nil {
			logrus.Fatalf("invalid target dose interval: %v", err)
		}

		params := summary.Params{
			Target:             target,
			TargetDoseInterval: targetDose,
			DoseGrid:           doseGrid,
			Placebo:            placebo,
		}
		rec, err := summary.New(cfg.Family, result, params)
		if err != nil {
			logrus.Fatalf("unable to summarize batch: %v", err)
		}
		summary.Write(os.Stdout, rec)
	},
}

func init() {
	reportCmd.Flags().StringVar(&batchFile, "input", "", "YAML batch file to summarize")
	reportCmd.Flags().Float64SliceVar(&doseGrid, "dose-grid", nil, "ordered dose grid the design selected from")
	reportCmd.Flags().Float64Var(&targetLower, "target-lower", 0.2, "target toxicity interval lower bound")
	reportCmd.Flags().Float64Var(&targetUpper, "target-upper", 0.35, "target toxicity interval upper bound")
	reportCmd.Flags().Float64Var(&targetDoseLower, "target-dose-lower", 0, "target dose interval lower bound")
	reportCmd.Flags().Float64Var(&targetDoseUpper, "target-dose-upper", 0, "target dose interval upper bound")
	reportCmd.Flags().BoolVar(&placebo, "placebo", false, "lowest grid dose is placebo")
}
