// Package registry builds the process-wide model registry: every disease
// profile paired with its classifier, fitted once at startup. The registry
// is immutable after Build returns, so concurrent analyses need no locking;
// it is passed by handle into every request path instead of living in a
// package-level variable.
package registry

import (
	"fmt"
	"path/filepath"

	"github.com/Anuj-165/SCAN2HEAL/internal/classifier"
	"github.com/Anuj-165/SCAN2HEAL/internal/disease"
	"github.com/Anuj-165/SCAN2HEAL/internal/matcher"
	"go.uber.org/zap"
)

// Entry couples one disease profile with its fitted classifier and the
// matcher compiled over the classifier's column order.
type Entry struct {
	Profile    disease.Profile
	Classifier *classifier.Logistic
	Matcher    *matcher.Matcher
}

// Registry holds the five disease entries. Zero partial readiness: Build
// either fits and validates every entry or fails.
type Registry struct {
	entries map[string]Entry
}

// Build loads every bundled dataset from dataDir, fits the per-disease
// classifiers and validates each profile against its training columns.
// Any failure here is a fatal configuration error; the process must not
// serve analyses with a partially built registry.
func Build(dataDir string, logger *zap.Logger) (*Registry, error) {
	entries := make(map[string]Entry, len(disease.Names()))

	for _, name := range disease.Names() {
		profile, ok := disease.Get(name)
		if !ok {
			return nil, fmt.Errorf("no profile registered for disease %q", name)
		}

		path := filepath.Join(dataDir, profile.DatasetFile)
		ds, err := classifier.LoadDataset(path, profile.TargetColumn, profile.TargetLabels)
		if err != nil {
			return nil, fmt.Errorf("disease %s: %w", name, err)
		}

		if err := disease.Validate(profile, ds.Columns); err != nil {
			return nil, err
		}

		model, err := classifier.Fit(ds)
		if err != nil {
			return nil, fmt.Errorf("disease %s: fit failed: %w", name, err)
		}

		m, err := matcher.Compile(ds.Columns, profile)
		if err != nil {
			return nil, err
		}

		entries[name] = Entry{Profile: profile, Classifier: model, Matcher: m}
		logger.Info("Fitted disease classifier",
			zap.String("disease", name),
			zap.Int("rows", len(ds.X)),
			zap.Int("features", len(ds.Columns)),
		)
	}

	return &Registry{entries: entries}, nil
}

// Get returns the entry for a disease identifier, or false for unknown ones.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Diseases lists the registered disease identifiers in the fixed order.
func (r *Registry) Diseases() []string {
	return disease.Names()
}
