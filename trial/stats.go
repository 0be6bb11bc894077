package trial

import "fmt"

// StatKind tags the payload variant held by a Stat.
type StatKind string

const (
	StatScalar StatKind = "scalar"
	StatVector StatKind = "vector"
	StatTable  StatKind = "table"
)

// Stat is one open-ended additional statistic attached to a model-based
// result. No fixed schema is enforced beyond the variant tag: designs are
// free to record whatever per-batch diagnostics they compute.
type Stat struct {
	Kind   StatKind        `yaml:"kind"`
	Scalar float64         `yaml:"scalar,omitempty"`
	Vector []float64       `yaml:"vector,omitempty"`
	Table  map[string]Stat `yaml:"table,omitempty"`
}

// ScalarStat wraps a single numeric value.
func ScalarStat(v float64) Stat {
	return Stat{Kind: StatScalar, Scalar: v}
}

// VectorStat wraps a numeric sequence.
func VectorStat(v []float64) Stat {
	return Stat{Kind: StatVector, Vector: v}
}

// TableStat wraps a nested mapping of statistics.
func TableStat(t map[string]Stat) Stat {
	return Stat{Kind: StatTable, Table: t}
}

func (s Stat) validate(field string) error {
	switch s.Kind {
	case StatScalar, StatVector:
		return nil
	case StatTable:
		for key, nested := range s.Table {
			if err := nested.validate(field + "." + key); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown stat kind %q for %s", s.Kind, field)
	}
}

// AdditionalStats maps statistic names to open-ended payloads. An empty map
// is valid; nil is normalized to empty at construction.
type AdditionalStats map[string]Stat

func (as AdditionalStats) validate() error {
	for name, stat := range as {
		if err := stat.validate("additionalStats." + name); err != nil {
			return err
		}
	}
	return nil
}
