package trial

// Shared fixtures for result-construction tests: a three-run batch over a
// four-dose grid, with per-run fits and a two-rule stop report.

func testRuns() []PatientData {
	return []PatientData{
		{
			PatientIDs: []int{1, 2, 3},
			Cohorts:    []int{1, 1, 2},
			Doses:      []float64{1, 1, 3},
			DLTs:       []bool{false, false, true},
		},
		{
			PatientIDs: []int{1, 2},
			Cohorts:    []int{1, 1},
			Doses:      []float64{1, 3},
			DLTs:       []bool{false, false},
		},
		{
			PatientIDs: []int{1, 2, 3, 4},
			Cohorts:    []int{1, 1, 2, 2},
			Doses:      []float64{1, 3, 3, 5},
			DLTs:       []bool{false, false, true, true},
		},
	}
}

func testFinalDoses() []float64 {
	return []float64{3, 3, 1}
}

func testRunSet() *RunSet {
	rs, err := NewRunSet(testRuns(), testFinalDoses(), 42)
	if err != nil {
		panic(err)
	}
	return rs
}

func testFits() []DoseFit {
	return []DoseFit{
		{Middle: []float64{0.05, 0.15, 0.30, 0.50}, Lower: []float64{0.01, 0.05, 0.15, 0.30}, Upper: []float64{0.10, 0.30, 0.50, 0.70}},
		{Middle: []float64{0.04, 0.12, 0.25, 0.45}, Lower: []float64{0.01, 0.04, 0.12, 0.25}, Upper: []float64{0.09, 0.25, 0.45, 0.65}},
		{Middle: []float64{0.06, 0.18, 0.35, 0.55}, Lower: []float64{0.02, 0.06, 0.18, 0.35}, Upper: []float64{0.12, 0.35, 0.55, 0.75}},
	}
}

func testStopReport() [][]bool {
	return [][]bool{
		{true, false},
		{false, true},
		{true, true},
	}
}

func testStopReasons() [][]string {
	return [][]string{
		{"max patients reached"},
		{"target probability reached"},
		{"max patients reached", "target probability reached"},
	}
}

func testIntervals() []Interval {
	return []Interval{
		{Lower: 1, Upper: 4},
		{Lower: 2, Upper: 6},
		{Lower: 1, Upper: 5},
	}
}

func testRatios() []float64 {
	return []float64{4, 3, 5}
}

func testPseudoFits() []PointFit {
	return []PointFit{
		{Phi1: -2.1, Phi2: 0.9, Probs: []float64{0.05, 0.15, 0.30, 0.50}},
		{Phi1: -1.9, Phi2: 0.8, Probs: []float64{0.04, 0.12, 0.25, 0.45}},
		{Phi1: -2.3, Phi2: 1.0, Probs: []float64{0.06, 0.18, 0.35, 0.55}},
	}
}

func testPseudoInput() PseudoInput {
	return PseudoInput{
		Fits:                testPseudoFits(),
		TDDuringTrial:       []float64{2.5, 3.1, 2.2},
		TDDuringTrialAtGrid: []float64{1, 3, 1},
		TDEndOfTrial:        []float64{2.8, 3.4, 2.4},
		TDEndOfTrialAtGrid:  []float64{1, 3, 1},
		TDEOTCIs:            testIntervals(),
		TDEOTRatios:         testRatios(),
		FinalCIs:            testIntervals(),
		FinalRatios:         testRatios(),
		StopReasons:         testStopReasons(),
	}
}

func testPseudoDualInput() PseudoDualInput {
	return PseudoDualInput{
		PseudoInput:        testPseudoInput(),
		EffFits:            testPseudoFits(),
		GstarEstimates:     []float64{3.2, 3.8, 2.9},
		GstarAtGrid:        []float64{3, 3, 1},
		GstarCIs:           testIntervals(),
		GstarRatios:        testRatios(),
		OptimalDoses:       []float64{2.5, 3.1, 2.2},
		OptimalDosesAtGrid: []float64{1, 3, 1},
		Sigma2Estimates:    []float64{0.4, 0.5, 0.3},
	}
}
