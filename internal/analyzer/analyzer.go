// Package analyzer orchestrates one report analysis: parameter matching,
// classifier prediction, threshold evaluation, severity and medicine
// resolution. An Analyzer is a pure function of its inputs plus the
// immutable registry, so one instance serves concurrent requests.
package analyzer

import (
	"context"
	"strings"

	"github.com/Anuj-165/SCAN2HEAL/internal/medicine"
	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/Anuj-165/SCAN2HEAL/internal/registry"
	"github.com/Anuj-165/SCAN2HEAL/internal/threshold"
	"go.uber.org/zap"
)

// DiagnosisUnavailable is the sentinel final decision for disease
// identifiers the registry does not know. By contract this is not an error;
// callers check the sentinel.
const DiagnosisUnavailable = "Diagnosis unavailable"

type Analyzer struct {
	registry *registry.Registry
	resolver *medicine.Resolver
	logger   *zap.Logger
}

func New(reg *registry.Registry, resolver *medicine.Resolver, logger *zap.Logger) *Analyzer {
	return &Analyzer{registry: reg, resolver: resolver, logger: logger}
}

// Analyze runs the full pipeline for one report text and disease identifier.
// The threshold evaluation re-scans the text independently of the parameter
// matcher; severity depends only on the threshold findings, and the
// classifier prediction is reported alongside rather than merged in.
func (a *Analyzer) Analyze(ctx context.Context, text, diseaseID string) models.AnalysisResult {
	diseaseID = strings.ToLower(strings.TrimSpace(diseaseID))

	entry, ok := a.registry.Get(diseaseID)
	if !ok {
		a.logger.Debug("Analysis requested for unknown disease", zap.String("disease", diseaseID))
		return models.AnalysisResult{
			Disease:           diseaseID,
			Severity:          models.SeverityUnknown,
			MatchedParameters: map[string]float64{},
			ThresholdStatus:   models.ReportInconclusive,
			ThresholdDetails:  map[string]models.ThresholdDetail{},
			Recommendations:   []string{},
			Medicines:         []models.Medicine{},
			FinalDecision:     DiagnosisUnavailable,
		}
	}

	matched := entry.Matcher.Match(text)
	prediction := entry.Classifier.Predict(matched)

	eval := threshold.Evaluate(text, diseaseID)
	severity := threshold.Severity(eval.Details)
	meds := a.resolver.Resolve(ctx, diseaseID)

	a.logger.Info("Report analyzed",
		zap.String("disease", diseaseID),
		zap.Int("prediction", prediction),
		zap.String("severity", string(severity)),
		zap.String("threshold_status", string(eval.Status)),
	)

	return models.AnalysisResult{
		Disease:           diseaseID,
		Prediction:        prediction,
		Severity:          severity,
		MatchedParameters: matched,
		ThresholdStatus:   eval.Status,
		ThresholdDetails:  eval.Details,
		Recommendations:   eval.PossibleTreatments,
		Medicines:         meds,
		FinalDecision:     eval.Recommendation,
	}
}
