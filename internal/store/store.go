package store

import (
	"context"

	"github.com/coinfolio/gallery/internal/domain"
)

// PageSpec describes one filtered catalog query. Zero-valued fields are
// inactive predicates. A nil whitelist slice means "no restriction"; an
// empty non-nil slice matches nothing and should be short-circuited by the
// caller before reaching the store.
type PageSpec struct {
	// Search is matched case-insensitively as a substring across
	// name, subject and catalog number (OR semantics)
	Search string
	// PeriodIDs restricts to any of the given periods
	PeriodIDs []int64
	// CoinIDs restricts to an identifier whitelist (ownership filter)
	CoinIDs []int64
	// Sort selects the order column and direction
	Sort domain.SortKey
}

// Repository executes catalog queries against the backing store. All result
// mapping is validated at this boundary; failures surface as
// domain.RepositoryError.
//
//go:generate mockgen -source=store.go -destination=../mocks/repository.go -package=mocks -mock_names=Repository=MockRepository
type Repository interface {
	// CountByCategory returns the exact number of catalog records in a category
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	// FetchPage executes one bounded filtered+sorted range query
	FetchPage(ctx context.Context, spec PageSpec, offset, limit int) ([]domain.CatalogRecord, error)
	// FetchRange returns a contiguous unfiltered run of one category,
	// ordered by identifier. Used only by the stratified sampler.
	FetchRange(ctx context.Context, categoryID int64, offset, limit int) ([]domain.CatalogRecord, error)
	// FetchOwnership returns the full ownership overlay in one request
	FetchOwnership(ctx context.Context) ([]domain.OwnershipRecord, error)
	// FetchCountryPeriodLinks returns the full country/period link table
	FetchCountryPeriodLinks(ctx context.Context) ([]domain.PeriodLink, error)
	// FetchPeriodIDsForCountry resolves a country to its period id-set
	FetchPeriodIDsForCountry(ctx context.Context, countryID int64) ([]int64, error)
	// FetchCountries returns all countries ordered by name
	FetchCountries(ctx context.Context) ([]domain.Country, error)
	// FetchCategories returns all categories ordered by name
	FetchCategories(ctx context.Context) ([]domain.Category, error)
	// FetchPeriodsForCountry returns a country's periods, newest start year first
	FetchPeriodsForCountry(ctx context.Context, countryID int64) ([]domain.Period, error)
}
