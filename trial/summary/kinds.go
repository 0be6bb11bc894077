// Package summary derives reportable aggregate records from simulation
// results, one summary type per result family. Summaries are snapshots and
// are only ever built through the New factory or the per-family Summarize
// functions; the abstract bases cannot be instantiated.
package summary

import (
	"fmt"

	"github.com/escalation-sim/escalation-sim/trial"
)

// Kind identifies one member of the closed summary hierarchy. The two
// abstract kinds exist only as embedded bases and cannot be built.
type Kind string

const (
	KindGeneral         Kind = "general"        // abstract
	KindModel           Kind = "model"          // CRM-style model-based designs
	KindDual            Kind = "dual"           // dual-endpoint designs
	KindDA              Kind = "da"             // time-to-event designs
	KindPseudoGeneral   Kind = "pseudo-general" // abstract
	KindPseudo          Kind = "pseudo"         // DLE-only pseudo models
	KindPseudoDual      Kind = "pseudo-dual"    // pseudo models with efficacy
	KindPseudoDualFlexi Kind = "pseudo-dual-flexi"
)

// Record is implemented by every concrete summary.
type Record interface {
	Kind() Kind
}

// New is the summarization factory: it dispatches a result object to the
// summarizer matching kind. Abstract kinds fail with ErrNotInstantiable;
// a result object of the wrong family fails with ErrNotImplementedFamily.
func New(kind Kind, result any, p Params) (Record, error) {
	switch kind {
	case KindGeneral, KindPseudoGeneral:
		return nil, fmt.Errorf("summary kind %q: %w", kind, trial.ErrNotInstantiable)
	case KindModel:
		res, ok := result.(*trial.ModelResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizeModel(res, p)
	case KindDual:
		res, ok := result.(*trial.DualResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizeDual(res, p)
	case KindDA:
		res, ok := result.(*trial.DAResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizeDA(res, p)
	case KindPseudo:
		res, ok := result.(*trial.PseudoResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizePseudo(res, p)
	case KindPseudoDual:
		res, ok := result.(*trial.PseudoDualResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizePseudoDual(res, p)
	case KindPseudoDualFlexi:
		res, ok := result.(*trial.PseudoDualFlexiResult)
		if !ok {
			return nil, familyErr(kind, result)
		}
		return SummarizePseudoDualFlexi(res, p)
	default:
		return nil, fmt.Errorf("unknown summary kind %q", kind)
	}
}

func familyErr(kind Kind, result any) error {
	return fmt.Errorf("summary kind %q cannot summarize %T: %w",
		kind, result, trial.ErrNotImplementedFamily)
}
