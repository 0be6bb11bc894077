package summary

import (
	"fmt"
	"io"
)

// Write renders a human-readable report for any concrete summary.
func Write(w io.Writer, rec Record) {
	switch s := rec.(type) {
	case *ModelSummary:
		writeGeneral(w, &s.GeneralSummary)
		writeModel(w, s)
	case *DualSummary:
		writeGeneral(w, &s.GeneralSummary)
		writeModel(w, &s.ModelSummary)
		fmt.Fprintf(w, "Biomarker fit at most-selected dose : %.4f\n", s.BiomarkerFitAtDoseMostSelected)
		writeDistribution(w, "Rho estimates", s.RhoEstimates)
		writeDistribution(w, "Sigma2W estimates", s.Sigma2WEstimates)
	case *DASummary:
		writeGeneral(w, &s.GeneralSummary)
		writeModel(w, &s.ModelSummary)
		writeDistribution(w, "Trial durations", s.TrialDurations)
	case *PseudoSummary:
		writeGeneral(w, &s.GeneralSummary)
		writePseudo(w, s)
	case *PseudoDualSummary:
		writeGeneral(w, &s.GeneralSummary)
		writePseudo(w, &s.PseudoSummary)
		writePseudoDual(w, s)
	case *PseudoDualFlexiSummary:
		writeGeneral(w, &s.GeneralSummary)
		writePseudo(w, &s.PseudoSummary)
		writePseudoDual(w, &s.PseudoDualSummary)
		writeDistribution(w, "Sigma2betaW estimates", s.Sigma2BetaWEstimates)
	default:
		fmt.Fprintf(w, "unknown summary kind %q\n", rec.Kind())
	}
}

func writeGeneral(w io.Writer, s *GeneralSummary) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Simulated trials     : %d (seed %d)\n", s.Nsim, s.Seed)
	fmt.Fprintf(w, "Target tox interval  : [%.2f, %.2f]\n", s.Target.Lower, s.Target.Upper)
	fmt.Fprintf(w, "Target dose interval : [%.2f, %.2f]\n", s.TargetDoseInterval.Lower, s.TargetDoseInterval.Upper)
	writeDistribution(w, "DLT proportions", s.PropDLTs)
	writeDistribution(w, "Patients per trial", s.NObs)
	writeDistribution(w, "Patients above target", s.NAboveTarget)
	writeDistribution(w, "Doses selected", s.DosesSelected)
	fmt.Fprintf(w, "Trials at target dose: %.1f%%\n", 100*s.PropAtTargetDose)
	fmt.Fprintf(w, "Dose most selected   : %v (observed DLT rate %.4f)\n",
		s.DoseMostSelected, s.ObsToxRateAtDoseMostSelected)
	fmt.Fprintf(w, "Mean toxicity risk   : %.4f\n", s.MeanToxRisk)
}

func writeModel(w io.Writer, s *ModelSummary) {
	fmt.Fprintf(w, "Fitted tox rate at most-selected dose : %.4f\n", s.FitAtDoseMostSelected)
	if len(s.StopRuleTriggerFractions) > 0 {
		fmt.Fprintf(w, "Stop rule trigger fractions : %v\n", s.StopRuleTriggerFractions)
	}
}

func writePseudo(w io.Writer, s *PseudoSummary) {
	writeDistribution(w, "TD during trial", s.TDDuringTrial)
	writeDistribution(w, "TD end of trial", s.TDEndOfTrial)
	writeDistribution(w, "TDEOT CI ratios", s.TDEOTRatios)
	writeDistribution(w, "Final CI ratios", s.FinalRatios)
	if s.InfiniteRatios > 0 {
		fmt.Fprintf(w, "Ratios excluded as +Inf : %d\n", s.InfiniteRatios)
	}
}

func writePseudoDual(w io.Writer, s *PseudoDualSummary) {
	writeDistribution(w, "Gstar estimates", s.GstarEstimates)
	writeDistribution(w, "Gstar CI ratios", s.GstarRatios)
	writeDistribution(w, "Optimal doses", s.OptimalDoses)
	writeDistribution(w, "Sigma2 estimates", s.Sigma2Estimates)
}

func writeDistribution(w io.Writer, label string, d Distribution) {
	fmt.Fprintf(w, "%-21s: min %.3f / q25 %.3f / med %.3f / mean %.3f / q75 %.3f / max %.3f (n=%d)\n",
		label, d.Min, d.Q25, d.Median, d.Mean, d.Q75, d.Max, d.Count)
}
