// Package matcher extracts numeric clinical parameters from free-form report
// text using per-disease alias tables.
package matcher

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Anuj-165/SCAN2HEAL/internal/disease"
)

// Matcher holds the compiled alias patterns for one disease. The alias tables
// are static, so patterns are compiled once at registry build time instead of
// per analysis. A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	cols     []string
	patterns map[string][]*regexp.Regexp
}

// Compile builds a Matcher for the profile over the given column order. For
// columns without a synonym entry the column name itself is the only alias.
func Compile(cols []string, p disease.Profile) (*Matcher, error) {
	m := &Matcher{
		cols:     append([]string(nil), cols...),
		patterns: make(map[string][]*regexp.Regexp, len(cols)),
	}

	for _, col := range cols {
		aliases := p.Synonyms[col]
		if len(aliases) == 0 {
			aliases = []string{col}
		}
		for _, alias := range aliases {
			re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(alias) + `\s*[:\-]?\s*(\d+\.?\d*)`)
			if err != nil {
				return nil, fmt.Errorf("disease %s: alias %q for column %q: %w", p.Name, alias, col, err)
			}
			m.patterns[col] = append(m.patterns[col], re)
		}
	}

	return m, nil
}

// Match scans text for every expected parameter, in the compiled column
// order. Per parameter the aliases are tried in declared order; the first
// whose "<alias><optional separator><number>" pattern hits supplies the
// value. Parameters never found map to 0.
//
// The 0 default is a sentinel: a report that genuinely measures zero is not
// distinguishable from one that omits the parameter. The threshold
// evaluator's independent scan (which reports "missing" explicitly) is the
// source of truth for absence.
func (m *Matcher) Match(text string) map[string]float64 {
	matched := make(map[string]float64, len(m.cols))

	for _, col := range m.cols {
		matched[col] = 0
		for _, re := range m.patterns[col] {
			sub := re.FindStringSubmatch(text)
			if sub == nil {
				continue
			}
			if v, err := strconv.ParseFloat(sub[1], 64); err == nil {
				matched[col] = v
				break
			}
		}
	}

	return matched
}

// Columns returns the column order the matcher was compiled with.
func (m *Matcher) Columns() []string {
	cols := make([]string, len(m.cols))
	copy(cols, m.cols)
	return cols
}
