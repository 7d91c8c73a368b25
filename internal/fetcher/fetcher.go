// Package fetcher implements exhaustive retrieval for filtered queries.
// Result sizes are unknown up front, so retrieval walks fixed-size windows
// until a short page signals the end.
package fetcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/logger"
	"github.com/coinfolio/gallery/internal/store"
)

// DefaultBatchSize is the pagination window size
const DefaultBatchSize = 1000

// Fetcher retrieves every record matching an active filter via sequential
// bounded range requests.
type Fetcher struct {
	repo      store.Repository
	batchSize int
}

// New creates a Fetcher. A non-positive batchSize selects the default window.
func New(repo store.Repository, batchSize int) *Fetcher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Fetcher{repo: repo, batchSize: batchSize}
}

// Fetch returns the complete matching record set for filter, in sort order.
// ownedIDs is the identifier whitelist applied when the ownership filter is
// active; an empty whitelist short-circuits to an empty result. A country
// with no period selected is resolved to its period id-set in one prior
// query, and an empty resolved set likewise short-circuits rather than
// querying the whole catalog. Any page error aborts the fetch and discards
// pages already retrieved.
func (f *Fetcher) Fetch(ctx context.Context, filter domain.FilterState, ownedIDs []int64) ([]domain.CatalogRecord, error) {
	spec := store.PageSpec{
		Search: filter.Search,
		Sort:   filter.SortBy,
	}

	if filter.Owned == domain.OwnedOnly {
		if len(ownedIDs) == 0 {
			return []domain.CatalogRecord{}, nil
		}
		spec.CoinIDs = ownedIDs
	}

	switch {
	case filter.PeriodID != 0:
		spec.PeriodIDs = []int64{filter.PeriodID}
	case filter.CountryID != 0:
		periodIDs, err := f.repo.FetchPeriodIDsForCountry(ctx, filter.CountryID)
		if err != nil {
			return nil, err
		}
		if len(periodIDs) == 0 {
			return []domain.CatalogRecord{}, nil
		}
		spec.PeriodIDs = periodIDs
	}

	var all []domain.CatalogRecord
	offset := 0
	pages := 0
	for {
		page, err := f.repo.FetchPage(ctx, spec, offset, f.batchSize)
		if err != nil {
			return nil, err
		}
		pages++
		all = append(all, page...)

		// A short page is the last one. When the total is an exact multiple
		// of the window this costs one extra empty-page round trip, which is
		// the accepted trade-off for skipping a separate count query.
		if len(page) < f.batchSize {
			break
		}
		offset += f.batchSize
	}

	logger.DebugCtx(ctx, "filtered fetch complete",
		zap.Int("records", len(all)),
		zap.Int("pages", pages),
	)

	return all, nil
}
