package caseforge

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// DefaultPageSize bounds a page when the caller does not pick one.
const DefaultPageSize = 200

// Generator Options
type Options struct {
	// Scenario is the free text scenario name, e.g. "bluetooth pairing"
	Scenario string
	// Platform the steps are written for (web/mobile/api/desktop/automotive/generic)
	Platform string
	// TextFields / BinaryFields optionally spell out the field lists,
	// bypassing scenario resolution. The id prefix is then derived from
	// the scenario name instead of the domain.
	TextFields   []string
	BinaryFields []string
	// Page selects the 1-based page of the combination space (default 1)
	Page int
	// PageSize bounds how many combinations one call materializes
	// (default DefaultPageSize)
	PageSize int
	// MaxCases caps the pageable universe (0 = no cap)
	MaxCases int
	// Library to resolve scenarios against, DefaultConfig if nil
	Library *Config
}

// Generator resolves a scenario to a field spec once and renders pages of
// its combination space. It holds no mutable state, one instance may serve
// concurrent calls.
type Generator struct {
	Options *Options
	Domain  string
	Spec    *FieldSpec

	prefix string
	size   *big.Int
}

// CombinationResult is the final assembled response for one page.
type CombinationResult struct {
	Scenario          string             `json:"scenario"`
	Platform          string             `json:"platform"`
	Domain            string             `json:"domain"`
	TextFields        []string           `json:"text_fields"`
	BinaryFields      []string           `json:"binary_fields"`
	TotalCombinations *big.Int           `json:"total_combinations"`
	ReturnedCount     int                `json:"returned_count"`
	Page              int                `json:"page"`
	PageSize          int                `json:"page_size"`
	PagesTotal        *big.Int           `json:"pages_total"`
	Cases             []*CombinationCase `json:"cases"`
	CombinedMarkdown  string             `json:"combined_markdown"`
}

// New creates and returns a new generator instance from options
func New(opts *Options) (*Generator, error) {
	if strings.TrimSpace(opts.Scenario) == "" {
		// same class of failure as the resolver finding no match: caller
		// input that cannot name a combination space
		return nil, fmt.Errorf("%w: empty scenario", ErrUnknownScenario)
	}
	if opts.Platform == "" {
		opts.Platform = "web"
	}
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.PageSize == 0 {
		opts.PageSize = DefaultPageSize
	}
	library := opts.Library
	if library == nil {
		library = &DefaultConfig
	}

	g := &Generator{Options: opts}
	if len(opts.TextFields) > 0 || len(opts.BinaryFields) > 0 {
		g.Spec = &FieldSpec{TextFields: opts.TextFields, BinaryFields: opts.BinaryFields}
		g.Domain = IDPrefix(opts.Scenario)
		g.prefix = g.Domain
		gologger.Verbose().Msgf("using %v explicit fields for scenario %q", len(g.Spec.Fields()), opts.Scenario)
	} else {
		resolution, err := library.Resolve(opts.Scenario)
		if err != nil {
			return nil, err
		}
		g.Spec = resolution.Spec
		g.Domain = resolution.Domain
		g.prefix = strings.ToUpper(resolution.Domain)
		gologger.Verbose().Msgf("scenario %q resolved to domain %v", opts.Scenario, g.Domain)
	}
	// Size also validates the spec, so a generator never exists with a
	// malformed field set
	size, err := g.Spec.Size()
	if err != nil {
		return nil, err
	}
	g.size = size
	return g, nil
}

// TotalCombinations returns the full space size without enumerating it.
// The returned value is a copy, callers may mutate it freely.
func (g *Generator) TotalCombinations() *big.Int {
	return new(big.Int).Set(g.size)
}

// GenerateCombinations materializes the configured page of the combination
// space and assembles the full result.
func (g *Generator) GenerateCombinations(ctx context.Context) (*CombinationResult, error) {
	window, err := Enumerate(ctx, g.Spec, PageParams{
		Page:     g.Options.Page,
		PageSize: g.Options.PageSize,
		MaxCases: g.Options.MaxCases,
	})
	if err != nil {
		return nil, err
	}

	scenario := strings.TrimSpace(g.Options.Scenario)
	cases := make([]*CombinationCase, 0, len(window.Assignments))
	fragments := make([]string, 0, len(window.Assignments))
	for i, assignment := range window.Assignments {
		rendered, err := RenderCase(scenario, g.Options.Platform, g.prefix, i+1, g.Spec, assignment)
		if err != nil {
			return nil, err
		}
		cases = append(cases, rendered)
		fragments = append(fragments, rendered.Markdown)
	}

	return &CombinationResult{
		Scenario:          scenario,
		Platform:          g.Options.Platform,
		Domain:            g.Domain,
		TextFields:        g.Spec.TextFields,
		BinaryFields:      g.Spec.BinaryFields,
		TotalCombinations: window.TotalCombinations,
		ReturnedCount:     window.ReturnedCount(),
		Page:              window.Page,
		PageSize:          window.PageSize,
		PagesTotal:        window.PagesTotal,
		Cases:             cases,
		CombinedMarkdown:  strings.Join(fragments, "\n"),
	}, nil
}

// WriteMarkdown generates the configured page and writes all case fragments
// to the writer as one markdown document.
func (g *Generator) WriteMarkdown(ctx context.Context, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("caseforge", "writer destination cannot be nil")
	}
	result, err := g.GenerateCombinations(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(writer, result.CombinedMarkdown)
	return err
}
