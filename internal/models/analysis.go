package models

// ParamStatus classifies a single extracted parameter against its reference
// range.
type ParamStatus string

const (
	StatusOK          ParamStatus = "ok"
	StatusPrediabetes ParamStatus = "prediabetes"
	StatusAbnormal    ParamStatus = "abnormal"
	StatusPositive    ParamStatus = "positive"
	StatusMissing     ParamStatus = "missing"
	StatusUnknown     ParamStatus = "unknown"
)

// ReportStatus is the aggregate outcome of a threshold evaluation.
type ReportStatus string

const (
	ReportPositive     ReportStatus = "Positive"
	ReportNegative     ReportStatus = "Negative"
	ReportInconclusive ReportStatus = "Inconclusive"
)

// Severity is derived from the count of abnormal threshold findings only;
// the classifier's binary prediction is reported alongside, never merged in.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
	SeverityUnknown  Severity = "Unknown"
)

// ThresholdDetail is the per-parameter evaluation result. Value is nil when
// no alias of the parameter was found in the report text.
type ThresholdDetail struct {
	Value  *float64    `json:"value"`
	Status ParamStatus `json:"status"`
}

// ThresholdResult is the full outcome of evaluating one report text against
// one disease's reference table.
type ThresholdResult struct {
	Status             ReportStatus               `json:"status"`
	Details            map[string]ThresholdDetail `json:"details"`
	Recommendation     string                     `json:"recommendation"`
	PossibleTreatments []string                   `json:"possible_treatments"`
	ReportTime         string                     `json:"report_time"`
}

// Medicine is one catalog entry: a drug name and an information link.
type Medicine struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// AnalysisResult is what the analyzer returns for one (text, disease) pair.
// For an unknown disease identifier every field carries its sentinel value
// and FinalDecision is "Diagnosis unavailable"; callers must check for that
// rather than expect an error.
type AnalysisResult struct {
	Disease           string                     `json:"disease"`
	Prediction        int                        `json:"prediction"`
	Severity          Severity                   `json:"severity"`
	MatchedParameters map[string]float64         `json:"matched_parameters"`
	ThresholdStatus   ReportStatus               `json:"threshold_status"`
	ThresholdDetails  map[string]ThresholdDetail `json:"threshold_details"`
	Recommendations   []string                   `json:"recommendations"`
	Medicines         []Medicine                 `json:"medicines"`
	FinalDecision     string                     `json:"final_decision"`
}

// SymptomOutcomeKind discriminates the disambiguator's result variants.
type SymptomOutcomeKind string

const (
	// OutcomeResolved means a single top-ranked disease was determined.
	OutcomeResolved SymptomOutcomeKind = "resolved"
	// OutcomeClarify means the top two candidates tied and the caller
	// should ask the user one of the suggested symptoms.
	OutcomeClarify SymptomOutcomeKind = "clarification_needed"
	// OutcomeNoMatch means no disease is linked to any corrected symptom.
	OutcomeNoMatch SymptomOutcomeKind = "no_match"
	// OutcomeUndetermined means the clarification round cap was exhausted
	// with the tie still standing.
	OutcomeUndetermined SymptomOutcomeKind = "undetermined"
)

// SymptomOutcome is the disambiguator result. Exactly one variant's fields
// are populated, selected by Kind.
type SymptomOutcome struct {
	Kind SymptomOutcomeKind `json:"kind"`

	// Resolved
	Disease    string       `json:"disease,omitempty"`
	Medicines  []Medicine   `json:"medicines,omitempty"`
	Severity   Severity     `json:"severity,omitempty"`
	AIAnalysis string       `json:"ai_analysis,omitempty"`
	Status     ReportStatus `json:"status,omitempty"`

	// Clarification needed
	SymptomOptions []string `json:"symptom_options,omitempty"`
	SymptomBase    string   `json:"symptom_base,omitempty"`
	Round          int      `json:"round,omitempty"`
}
