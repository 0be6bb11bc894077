package trial

import "fmt"

// PatientData is the per-run snapshot of everything observed on the
// patients of one simulated trial: dose administered, binary DLT outcome
// and (for dual-endpoint designs) a continuous biomarker reading per
// patient, plus cohort membership.
//
// The simulation engine produces one PatientData per run; this package only
// stores and validates it.
type PatientData struct {
	PatientIDs []int     `yaml:"patient_ids"`
	Cohorts    []int     `yaml:"cohorts"`
	Doses      []float64 `yaml:"doses"`
	DLTs       []bool    `yaml:"dlts"`
	Biomarkers []float64 `yaml:"biomarkers,omitempty"` // empty unless dual-endpoint
	Placebo    bool      `yaml:"placebo,omitempty"`
}

// NumPatients returns the number of patients enrolled in this run.
func (pd *PatientData) NumPatients() int {
	return len(pd.Doses)
}

// validate checks the per-patient vectors of one run against each other.
// Biomarkers may be absent entirely but never partially filled.
func (pd *PatientData) validate(run int) error {
	n := len(pd.Doses)
	field := func(name string) string {
		return fmt.Sprintf("runs[%d].%s", run, name)
	}
	if len(pd.PatientIDs) != n {
		return &ShapeError{Field: field("patientIDs"), Want: n, Got: len(pd.PatientIDs)}
	}
	if len(pd.Cohorts) != n {
		return &ShapeError{Field: field("cohorts"), Want: n, Got: len(pd.Cohorts)}
	}
	if len(pd.DLTs) != n {
		return &ShapeError{Field: field("dlts"), Want: n, Got: len(pd.DLTs)}
	}
	if len(pd.Biomarkers) != 0 && len(pd.Biomarkers) != n {
		return &ShapeError{Field: field("biomarkers"), Want: n, Got: len(pd.Biomarkers)}
	}
	return nil
}

// clone deep-copies the snapshot so the record never aliases producer buffers.
func (pd PatientData) clone() PatientData {
	return PatientData{
		PatientIDs: append([]int(nil), pd.PatientIDs...),
		Cohorts:    append([]int(nil), pd.Cohorts...),
		Doses:      append([]float64(nil), pd.Doses...),
		DLTs:       append([]bool(nil), pd.DLTs...),
		Biomarkers: append([]float64(nil), pd.Biomarkers...),
		Placebo:    pd.Placebo,
	}
}

// NumDLTs counts dose-limiting toxicities observed in this run.
func (pd *PatientData) NumDLTs() int {
	count := 0
	for _, tox := range pd.DLTs {
		if tox {
			count++
		}
	}
	return count
}
