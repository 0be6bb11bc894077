package trial

// RunSet is the fixed-length, ordered collection of per-run outputs one
// simulation batch produces: a patient-data snapshot and a final dose
// recommendation per run, plus the seed recorded before the batch started.
//
// Read-only after construction. The run count len(Runs) is the authoritative
// nsim every per-run field of every result family is checked against.
type RunSet struct {
	runs       []PatientData
	finalDoses []float64
	seed       Seed
}

// NewRunSet assembles and validates a RunSet. Fails with ShapeError when the
// run and final-dose sequences differ in length or any run's per-patient
// vectors are inconsistent, and with SeedError when seed is fractional.
func NewRunSet(runs []PatientData, finalDoses []float64, seed float64) (*RunSet, error) {
	if len(runs) != len(finalDoses) {
		return nil, &ShapeError{Field: "finalDoses", Want: len(runs), Got: len(finalDoses)}
	}
	for i := range runs {
		if err := runs[i].validate(i); err != nil {
			return nil, err
		}
	}
	s, err := NewSeed(seed)
	if err != nil {
		return nil, err
	}
	copied := make([]PatientData, len(runs))
	for i := range runs {
		copied[i] = runs[i].clone()
	}
	return &RunSet{
		runs:       copied,
		finalDoses: append([]float64(nil), finalDoses...),
		seed:       s,
	}, nil
}

// NumRuns returns nsim, the number of simulated trials in the batch.
func (rs *RunSet) NumRuns() int {
	return len(rs.runs)
}

// Run returns the patient-data snapshot of run i. The returned value is a
// read-only view into the run set; callers must not mutate its slices.
func (rs *RunSet) Run(i int) *PatientData {
	return &rs.runs[i]
}

// FinalDose returns the final dose recommendation of run i.
func (rs *RunSet) FinalDose(i int) float64 {
	return rs.finalDoses[i]
}

// FinalDoses returns a copy of the per-run final dose recommendations.
func (rs *RunSet) FinalDoses() []float64 {
	return append([]float64(nil), rs.finalDoses...)
}

// Seed returns the reproducibility marker recorded before the batch ran.
func (rs *RunSet) Seed() Seed {
	return rs.seed
}
