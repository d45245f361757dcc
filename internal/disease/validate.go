package disease

import (
	"fmt"
	"sort"
)

// Validate checks a profile against the feature columns its classifier was
// trained on. It enforces two invariants at registry build time:
//
//  1. The synonym table's key set equals the dataset's feature columns, so
//     the matcher always produces exactly the vector the classifier expects.
//  2. Named bands within one parameter do not overlap. Band order decides
//     ties today only by accident of the data; overlap would make the
//     classification depend on declaration order.
func Validate(p Profile, featureCols []string) error {
	if len(p.Synonyms) != len(featureCols) {
		return fmt.Errorf("disease %s: synonym table has %d parameters, dataset has %d feature columns",
			p.Name, len(p.Synonyms), len(featureCols))
	}
	for _, col := range featureCols {
		if _, ok := p.Synonyms[col]; !ok {
			return fmt.Errorf("disease %s: dataset column %q has no synonym entry", p.Name, col)
		}
	}

	for _, th := range p.Thresholds {
		if len(th.Aliases) == 0 {
			return fmt.Errorf("disease %s: parameter %q has no aliases", p.Name, th.Name)
		}
		if err := checkBands(p.Name, th); err != nil {
			return err
		}
	}
	return nil
}

func checkBands(disease string, th ParamThreshold) error {
	if len(th.Ranges) == 0 {
		return nil
	}
	bands := make([]Band, len(th.Ranges))
	copy(bands, th.Ranges)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Low < bands[j].Low })
	for i := range bands {
		if bands[i].Low > bands[i].High {
			return fmt.Errorf("disease %s: parameter %q band %q is inverted", disease, th.Name, bands[i].Name)
		}
		if i > 0 && bands[i].Low <= bands[i-1].High {
			return fmt.Errorf("disease %s: parameter %q bands %q and %q overlap",
				disease, th.Name, bands[i-1].Name, bands[i].Name)
		}
	}
	return nil
}
