package caseforge

import (
	"fmt"
	"strings"
)

// Resolution is the outcome of matching a scenario against the library.
type Resolution struct {
	Domain string
	Spec   *FieldSpec
}

// Resolve matches a free text scenario against the library's keyword table
// and returns the first matching domain with its field lists. Matching is a
// case-insensitive substring check over the normalized scenario text.
// Returns ErrUnknownScenario when no domain matches: guessing a default
// field set would silently hand the caller a combination space unrelated to
// the scenario.
func (c *Config) Resolve(scenario string) (*Resolution, error) {
	normalized := strings.ToLower(strings.TrimSpace(scenario))
	normalized = strings.Join(strings.Fields(strings.ReplaceAll(normalized, "-", " ")), " ")
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty scenario", ErrUnknownScenario)
	}
	for _, domain := range c.Domains {
		for _, keyword := range domain.Keywords {
			if strings.Contains(normalized, keyword) {
				return &Resolution{
					Domain: domain.Name,
					Spec: &FieldSpec{
						TextFields:   domain.TextFields,
						BinaryFields: domain.BinaryFields,
					},
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
}
