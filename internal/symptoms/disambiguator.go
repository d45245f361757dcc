// Package symptoms implements free-text symptom triage: fuzzy correction to
// canonical symptom names, disease ranking over the symptom graph, and the
// tie-breaking clarification dialogue.
package symptoms

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Anuj-165/SCAN2HEAL/internal/medicine"
	"github.com/Anuj-165/SCAN2HEAL/internal/models"
	"github.com/Anuj-165/SCAN2HEAL/internal/repository"
	"github.com/Anuj-165/SCAN2HEAL/internal/threshold"
	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// similarityCutoff is the minimum normalized levenshtein similarity for a
// token to be corrected to a canonical symptom; weaker tokens are dropped
// silently.
const similarityCutoff = 0.6

const maxClarifyOptions = 3

// Disambiguator turns a comma-delimited symptom list into a disease, a
// clarification request, or an explicit no-match.
type Disambiguator struct {
	graph     repository.SymptomGraphRepo
	resolver  *medicine.Resolver
	maxRounds int
	logger    *zap.Logger
}

func NewDisambiguator(graph repository.SymptomGraphRepo, resolver *medicine.Resolver, maxRounds int, logger *zap.Logger) *Disambiguator {
	if maxRounds <= 0 {
		maxRounds = 3
	}
	return &Disambiguator{graph: graph, resolver: resolver, maxRounds: maxRounds, logger: logger}
}

// Disambiguate starts a fresh triage for the raw symptom text.
func (d *Disambiguator) Disambiguate(ctx context.Context, rawSymptoms string) (models.SymptomOutcome, error) {
	return d.run(ctx, rawSymptoms, 1)
}

// Clarify appends an answered clarification symptom to the original list and
// re-runs the ranking. round is the value carried in the previous
// ClarificationNeeded outcome; when the cap is exhausted with the tie still
// standing the outcome is terminal Undetermined.
func (d *Disambiguator) Clarify(ctx context.Context, symptomBase, clarification string, round int) (models.SymptomOutcome, error) {
	combined := strings.TrimSpace(symptomBase)
	if c := strings.TrimSpace(clarification); c != "" {
		combined = combined + ", " + c
	}
	return d.run(ctx, combined, round+1)
}

func (d *Disambiguator) run(ctx context.Context, rawSymptoms string, round int) (models.SymptomOutcome, error) {
	corrected, err := d.correct(ctx, rawSymptoms)
	if err != nil {
		return models.SymptomOutcome{}, err
	}
	if len(corrected) == 0 {
		return models.SymptomOutcome{Kind: models.OutcomeNoMatch}, nil
	}

	matched, err := d.graph.DiseasesForSymptoms(ctx, corrected)
	if err != nil {
		return models.SymptomOutcome{}, err
	}
	if len(matched) == 0 {
		return models.SymptomOutcome{Kind: models.OutcomeNoMatch}, nil
	}

	ranked := rank(matched)

	if len(ranked) > 1 && len(matched[ranked[0]]) == len(matched[ranked[1]]) {
		if round >= d.maxRounds {
			d.logger.Info("Symptom clarification cap exhausted",
				zap.String("symptoms", rawSymptoms),
				zap.Int("rounds", round),
			)
			return models.SymptomOutcome{Kind: models.OutcomeUndetermined}, nil
		}

		options, err := d.clarifyOptions(ctx, ranked[0], ranked[1], corrected)
		if err != nil {
			return models.SymptomOutcome{}, err
		}
		if len(options) == 0 {
			// Nothing left to ask about; the tie cannot be broken.
			return models.SymptomOutcome{Kind: models.OutcomeUndetermined}, nil
		}
		return models.SymptomOutcome{
			Kind:           models.OutcomeClarify,
			SymptomOptions: options,
			SymptomBase:    rawSymptoms,
			Round:          round,
		}, nil
	}

	return d.resolve(ctx, ranked[0], rawSymptoms), nil
}

// correct fuzzy-matches each comma-separated token to its closest canonical
// symptom name. Tokens without a close enough match are dropped.
func (d *Disambiguator) correct(ctx context.Context, rawSymptoms string) ([]string, error) {
	all, err := d.graph.AllSymptoms(ctx)
	if err != nil {
		return nil, err
	}

	var corrected []string
	for _, token := range strings.Split(rawSymptoms, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if best, ok := closestSymptom(token, all); ok && !containsName(corrected, best) {
			corrected = append(corrected, best)
		}
	}
	return corrected, nil
}

func closestSymptom(token string, candidates []string) (string, bool) {
	bestScore := 0.0
	best := ""
	for _, candidate := range candidates {
		score := similarity(token, candidate)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore >= similarityCutoff
}

func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// rank orders diseases by descending matched-symptom count, name ascending
// as the deterministic tie order.
func rank(matched map[string][]string) []string {
	names := make([]string, 0, len(matched))
	for name := range matched {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := len(matched[names[i]]), len(matched[names[j]])
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

// clarifyOptions suggests up to 3 symptoms from the union of the two tied
// candidates' full symptom sets, excluding anything already provided.
func (d *Disambiguator) clarifyOptions(ctx context.Context, first, second string, provided []string) ([]string, error) {
	union := map[string]bool{}
	for _, diseaseName := range []string{first, second} {
		symptomSet, err := d.graph.SymptomsForDisease(ctx, diseaseName)
		if err != nil {
			return nil, err
		}
		for _, s := range symptomSet {
			union[s] = true
		}
	}
	for _, s := range provided {
		delete(union, s)
	}

	options := make([]string, 0, len(union))
	for s := range union {
		options = append(options, s)
	}
	sort.Strings(options)
	if len(options) > maxClarifyOptions {
		options = options[:maxClarifyOptions]
	}
	return options, nil
}

// resolve finalizes a determined disease: threshold evaluation over the
// symptom text, severity, medicines and the composed analysis summary.
func (d *Disambiguator) resolve(ctx context.Context, diseaseName, rawSymptoms string) models.SymptomOutcome {
	// The raw symptom list stands in for report text on this path; for
	// diseases outside the threshold tables this evaluates to the default
	// Inconclusive result, which is fine.
	eval := threshold.Evaluate(rawSymptoms, strings.ToLower(diseaseName))
	severity := threshold.Severity(eval.Details)
	meds := d.resolver.Resolve(ctx, diseaseName)

	return models.SymptomOutcome{
		Kind:       models.OutcomeResolved,
		Disease:    diseaseName,
		Medicines:  meds,
		Severity:   severity,
		Status:     eval.Status,
		AIAnalysis: buildAnalysisText(diseaseName, severity, eval.Recommendation, meds),
	}
}

func buildAnalysisText(diseaseName string, severity models.Severity, recommendation string, meds []models.Medicine) string {
	medicinesText := "No specific medicines recommended."
	if len(meds) > 0 {
		lines := make([]string, len(meds))
		for i, m := range meds {
			lines[i] = fmt.Sprintf("Take %s (More: %s)", m.Name, m.Link)
		}
		medicinesText = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(
		"%s\nAI suggests a match with %s.\n\n95%% Probability\n%s RISK\nRecommendation: %s\n\nSuggested Medicines:\n%s",
		diseaseName, diseaseName, strings.ToUpper(string(severity)), recommendation, medicinesText,
	)
}

func containsName(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
