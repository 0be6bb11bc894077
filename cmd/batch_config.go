package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/escalation-sim/escalation-sim/trial"
	"github.com/escalation-sim/escalation-sim/trial/summary"
)

// BatchConfig is the YAML schema of a saved simulation batch: the run set
// every family shares, plus the per-family extension sections. Only the
// sections matching the declared family are read.
type BatchConfig struct {
	Family     summary.Kind        `yaml:"family"`
	Seed       float64             `yaml:"seed"`
	Runs       []trial.PatientData `yaml:"runs"`
	FinalDoses []float64           `yaml:"final_doses"`

	// Model-based families.
	Fits            []trial.DoseFit       `yaml:"fits,omitempty"`
	StopReport      [][]bool              `yaml:"stop_report,omitempty"`
	StopReasons     [][]string            `yaml:"stop_reasons,omitempty"`
	AdditionalStats trial.AdditionalStats `yaml:"additional_stats,omitempty"`

	// Dual-endpoint extension.
	RhoEstimates     []float64       `yaml:"rho_estimates,omitempty"`
	Sigma2WEstimates []float64       `yaml:"sigma2w_estimates,omitempty"`
	BiomarkerFits    []trial.DoseFit `yaml:"biomarker_fits,omitempty"`

	// Time-to-event extension.
	TrialDurations []float64 `yaml:"trial_durations,omitempty"`

	// Pseudo-model families.
	Pseudo *PseudoSection `yaml:"pseudo,omitempty"`
}

// PseudoSection is the YAML form of the pseudo-model extension fields.
type PseudoSection struct {
	Fits                []trial.PointFit `yaml:"fits"`
	TDDuringTrial       []float64        `yaml:"td_during_trial"`
	TDDuringTrialAtGrid []float64        `yaml:"td_during_trial_at_grid"`
	TDEndOfTrial        []float64        `yaml:"td_end_of_trial"`
	TDEndOfTrialAtGrid  []float64        `yaml:"td_end_of_trial_at_grid"`
	TDEOTCIs            []trial.Interval `yaml:"tdeot_cis"`
	TDEOTRatios         []float64        `yaml:"tdeot_ratios"`
	FinalCIs            []trial.Interval `yaml:"final_cis"`
	FinalRatios         []float64        `yaml:"final_ratios"`
	StopReasons         [][]string       `yaml:"stop_reasons"`

	// Efficacy extension (pseudo-dual families).
	EffFits              []trial.PointFit `yaml:"eff_fits,omitempty"`
	GstarEstimates       []float64        `yaml:"gstar_estimates,omitempty"`
	GstarAtGrid          []float64        `yaml:"gstar_at_grid,omitempty"`
	GstarCIs             []trial.Interval `yaml:"gstar_cis,omitempty"`
	GstarRatios          []float64        `yaml:"gstar_ratios,omitempty"`
	OptimalDoses         []float64        `yaml:"optimal_doses,omitempty"`
	OptimalDosesAtGrid   []float64        `yaml:"optimal_doses_at_grid,omitempty"`
	Sigma2Estimates      []float64        `yaml:"sigma2_estimates,omitempty"`
	Sigma2BetaWEstimates []float64        `yaml:"sigma2betaw_estimates,omitempty"`
}

// LoadBatchConfig reads and parses a batch file.
func LoadBatchConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var cfg BatchConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return &cfg, nil
}

// BuildResult assembles the result object the declared family requires,
// running the full construction-time validation.
func (cfg *BatchConfig) BuildResult() (any, error) {
	runSet, err := trial.NewRunSet(cfg.Runs, cfg.FinalDoses, cfg.Seed)
	if err != nil {
		return nil, err
	}

	switch cfg.Family {
	case summary.KindModel:
		return trial.NewModelResult(runSet, cfg.Fits, cfg.StopReport, cfg.StopReasons, cfg.AdditionalStats)
	case summary.KindDual:
		return trial.NewDualResult(runSet, cfg.Fits, cfg.StopReport, cfg.StopReasons, cfg.AdditionalStats,
			cfg.RhoEstimates, cfg.Sigma2WEstimates, cfg.BiomarkerFits)
	case summary.KindDA:
		return trial.NewDAResult(runSet, cfg.Fits, cfg.StopReport, cfg.StopReasons, cfg.AdditionalStats,
			cfg.TrialDurations)
	case summary.KindPseudo:
		in, err := cfg.pseudoInput()
		if err != nil {
			return nil, err
		}
		return trial.NewPseudoResult(runSet, *in)
	case summary.KindPseudoDual:
		in, err := cfg.pseudoDualInput()
		if err != nil {
			return nil, err
		}
		return trial.NewPseudoDualResult(runSet, *in)
	case summary.KindPseudoDualFlexi:
		in, err := cfg.pseudoDualInput()
		if err != nil {
			return nil, err
		}
		return trial.NewPseudoDualFlexiResult(runSet, *in, cfg.Pseudo.Sigma2BetaWEstimates)
	default:
		return nil, fmt.Errorf("unknown result family %q", cfg.Family)
	}
}

func (cfg *BatchConfig) pseudoInput() (*trial.PseudoInput, error) {
	if cfg.Pseudo == nil {
		return nil, fmt.Errorf("family %q requires a pseudo section: %w",
			cfg.Family, trial.ErrNotImplementedFamily)
	}
	p := cfg.Pseudo
	return &trial.PseudoInput{
		Fits:                p.Fits,
		TDDuringTrial:       p.TDDuringTrial,
		TDDuringTrialAtGrid: p.TDDuringTrialAtGrid,
		TDEndOfTrial:        p.TDEndOfTrial,
		TDEndOfTrialAtGrid:  p.TDEndOfTrialAtGrid,
		TDEOTCIs:            p.TDEOTCIs,
		TDEOTRatios:         p.TDEOTRatios,
		FinalCIs:            p.FinalCIs,
		FinalRatios:         p.FinalRatios,
		StopReasons:         p.StopReasons,
	}, nil
}

func (cfg *BatchConfig) pseudoDualInput() (*trial.PseudoDualInput, error) {
	base, err := cfg.pseudoInput()
	if err != nil {
		return nil, err
	}
	p := cfg.Pseudo
	return &trial.PseudoDualInput{
		PseudoInput:        *base,
		EffFits:            p.EffFits,
		GstarEstimates:     p.GstarEstimates,
		GstarAtGrid:        p.GstarAtGrid,
		GstarCIs:           p.GstarCIs,
		GstarRatios:        p.GstarRatios,
		OptimalDoses:       p.OptimalDoses,
		OptimalDosesAtGrid: p.OptimalDosesAtGrid,
		Sigma2Estimates:    p.Sigma2Estimates,
	}, nil
}
