// Package trial defines the immutable result records a dose-escalation
// trial simulator produces, one family per trial-design flavor.
//
// # Reading Guide
//
// Start with these three files to understand the record layering:
//   - runs.go: RunSet, the per-batch collection every family is rooted in
//   - result.go: Result, the common base wrapping one RunSet
//   - validate.go: the shared cross-field validity policy (nsim alignment,
//     matrix rectangularity, CI ordering, ratio consistency)
//
// # Architecture
//
// Families extend each other by embedding, never by re-declaring fields,
// and every constructor builds-and-validates its parent before attaching
// its own per-run sequences:
//
//	Result
//	├── ModelResult        (CRM-style model-based designs)
//	│   ├── DualResult     (dual-endpoint: toxicity + biomarker)
//	│   └── DAResult       (data augmentation / time-to-event)
//	└── PseudoResult       (two-parameter pseudo-model, DLE only)
//	    └── PseudoDualResult       (+ efficacy model)
//	        └── PseudoDualFlexiResult  (+ flexible-form efficacy)
//
// All records are read-only after construction and deep-copy every input
// sequence, so they never alias producer buffers. Slice accessors return
// copies; the indexed pointer accessors (Run, Fit, BiomarkerFit, EffFit)
// return read-only views.
// Summary derivation lives in the trial/summary sub-package.
package trial
