package caseforge

import (
	"context"
	"fmt"
	"math/big"
)

// PageParams select one page of the combination space.
type PageParams struct {
	// Page is 1-based. Values below 1 are treated as 1; pages beyond the
	// last yield an empty window (lenient pagination, not an error).
	Page int
	// PageSize is the maximum number of combinations per page.
	PageSize int
	// MaxCases optionally caps the logical universe being paged over
	// (0 = no cap). The cap bounds which combinations are reachable, not
	// the reported total space size.
	MaxCases int
}

// PageWindow is one materialized slice of the combination space together
// with its pagination metadata.
type PageWindow struct {
	// TotalCombinations is the true size of the space, unaffected by MaxCases.
	TotalCombinations *big.Int
	// PagesTotal is computed over min(TotalCombinations, MaxCases), never
	// below 1.
	PagesTotal  *big.Int
	Page        int
	PageSize    int
	Assignments []Assignment
}

// ReturnedCount is the number of combinations materialized in this window.
func (w *PageWindow) ReturnedCount() int {
	return len(w.Assignments)
}

// Enumerate decodes the combinations of one page without ever materializing
// the full cross product: the page's index window is computed first and only
// its indices are decoded. The context is checked between indices so a
// cancelled request stops decoding early.
func Enumerate(ctx context.Context, spec *FieldSpec, params PageParams) (*PageWindow, error) {
	if params.PageSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPageSize, params.PageSize)
	}
	if params.MaxCases < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaxCases, params.MaxCases)
	}
	total, err := spec.Size()
	if err != nil {
		return nil, err
	}

	effective := new(big.Int).Set(total)
	if params.MaxCases > 0 {
		limit := big.NewInt(int64(params.MaxCases))
		if limit.Cmp(effective) < 0 {
			effective = limit
		}
	}

	pageSize := big.NewInt(int64(params.PageSize))
	// ceil(effective/pageSize), minimum 1 page even for an empty space
	pagesTotal := new(big.Int).Add(effective, new(big.Int).Sub(pageSize, big.NewInt(1)))
	pagesTotal.Quo(pagesTotal, pageSize)
	if pagesTotal.Sign() == 0 {
		pagesTotal.SetInt64(1)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	start := new(big.Int).Mul(big.NewInt(int64(page-1)), pageSize)
	end := new(big.Int).Add(start, pageSize)
	if end.Cmp(effective) > 0 {
		end.Set(effective)
	}

	window := &PageWindow{
		TotalCombinations: total,
		PagesTotal:        pagesTotal,
		Page:              page,
		PageSize:          params.PageSize,
	}
	// pages past the end stay empty instead of failing
	if start.Cmp(effective) >= 0 {
		return window, nil
	}

	index := new(big.Int).Set(start)
	for index.Cmp(end) < 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		assignment, err := spec.Decode(index)
		if err != nil {
			return nil, err
		}
		window.Assignments = append(window.Assignments, assignment)
		index.Add(index, big.NewInt(1))
	}
	return window, nil
}
