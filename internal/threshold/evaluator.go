// Package threshold evaluates report text against the static clinical
// reference tables and derives the aggregate report status plus the
// per-disease recommendation.
package threshold

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Anuj-165/SCAN2HEAL/internal/disease"
	"github.com/Anuj-165/SCAN2HEAL/internal/models"
)

// Evaluate scans text for every configured parameter of the disease and
// classifies the values found. The scan is independent of the parameter
// matcher and uses the threshold table's own alias lists.
//
// Unknown disease identifiers are not an error: they evaluate to an
// Inconclusive result with the default recommendation, and callers treat
// that as a sentinel.
func Evaluate(text, diseaseID string) models.ThresholdResult {
	diseaseID = strings.ToLower(diseaseID)
	profile, known := disease.Get(diseaseID)

	details := make(map[string]models.ThresholdDetail)
	if known {
		for _, th := range profile.Thresholds {
			details[th.Name] = evaluateParam(text, th)
		}
	}

	result := models.ThresholdResult{
		Status:             aggregate(details),
		Details:            details,
		ReportTime:         time.Now().Format("2006-01-02 15:04"),
		Recommendation:     disease.DefaultRecommendation,
		PossibleTreatments: []string{},
	}

	if known && profile.Recommend != nil {
		result.Recommendation, result.PossibleTreatments = profile.Recommend(details)
	}

	return result
}

// evaluateParam tries each alias with a two-pass search: first a decimal
// number anywhere after the label, then one separated from the label by at
// least one non-numeric character. The first alias and pass that match win.
func evaluateParam(text string, th disease.ParamThreshold) models.ThresholdDetail {
	for _, alias := range th.Aliases {
		quoted := regexp.QuoteMeta(alias)
		m := regexp.MustCompile(`(?is)` + quoted + `.*?(-?\d+\.\d+)`).FindStringSubmatch(text)
		if m == nil {
			m = regexp.MustCompile(`(?i)` + quoted + `.*?[^\d\-.](-?\d+\.\d+)`).FindStringSubmatch(text)
		}
		if m == nil {
			continue
		}
		val, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return models.ThresholdDetail{Value: &val, Status: classify(val, th)}
	}
	return models.ThresholdDetail{Value: nil, Status: models.StatusMissing}
}

func classify(val float64, th disease.ParamThreshold) models.ParamStatus {
	if len(th.Ranges) > 0 {
		for _, band := range th.Ranges {
			if band.Low <= val && val <= band.High {
				return band.Name
			}
		}
		return models.StatusUnknown
	}

	if (th.Min != nil && val < *th.Min) || (th.Max != nil && val > *th.Max) {
		return models.StatusAbnormal
	}
	if th.Serology {
		return models.StatusPositive
	}
	return models.StatusOK
}

// aggregate derives the report-level status: Positive as soon as any
// parameter is abnormal or positive, Inconclusive when every parameter is
// missing, Negative otherwise.
func aggregate(details map[string]models.ThresholdDetail) models.ReportStatus {
	missing := 0
	for _, d := range details {
		switch d.Status {
		case models.StatusAbnormal, models.StatusPositive:
			return models.ReportPositive
		case models.StatusMissing:
			missing++
		}
	}
	if missing == len(details) {
		return models.ReportInconclusive
	}
	return models.ReportNegative
}

// Severity maps the count of abnormal findings to a label. The boundary is
// deliberately non-monotonic: zero abnormal parameters is Low, exactly two
// is Moderate, anything else (including one) is High.
func Severity(details map[string]models.ThresholdDetail) models.Severity {
	abnormal := 0
	for _, d := range details {
		if d.Status == models.StatusAbnormal {
			abnormal++
		}
	}
	switch abnormal {
	case 0:
		return models.SeverityLow
	case 2:
		return models.SeverityModerate
	default:
		return models.SeverityHigh
	}
}
