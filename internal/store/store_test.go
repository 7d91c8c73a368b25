package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/gallery/internal/domain"
)

// The tests below run against the seeded test catalog in db/pg_test_data.sql:
// 7 coins across 3 categories, 4 periods (one with a NULL start year), one
// coin with no period and two owned coins (one with only full-size images).

func testCountByCategory(t *testing.T, repo Repository) {
	ctx := context.Background()

	count, err := repo.CountByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	count, err = repo.CountByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByCategory(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func testFetchPageSorting(t *testing.T, repo Repository) {
	ctx := context.Background()

	// Default sort: year descending, NULL years last
	records, err := repo.FetchPage(ctx, PageSpec{Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, 1979, records[0].Year)
	// NULL year maps to 0 and sorts last
	assert.Equal(t, 0, records[len(records)-1].Year)

	// Price ascending, NULL prices first
	records, err = repo.FetchPage(ctx, PageSpec{Sort: domain.SortPriceAsc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Nil(t, records[0].Price)
	require.NotNil(t, records[len(records)-1].Price)
	assert.Equal(t, 300.00, *records[len(records)-1].Price)
}

func testFetchPagePagination(t *testing.T, repo Repository) {
	ctx := context.Background()
	spec := PageSpec{Sort: domain.SortYearDesc}

	first, err := repo.FetchPage(ctx, spec, 0, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := repo.FetchPage(ctx, spec, 3, 3)
	require.NoError(t, err)
	require.Len(t, second, 3)

	third, err := repo.FetchPage(ctx, spec, 6, 3)
	require.NoError(t, err)
	require.Len(t, third, 1)

	// Windows must not overlap: the coin id tie-break keeps ordering stable
	seen := make(map[int64]bool)
	for _, rec := range append(append(first, second...), third...) {
		assert.False(t, seen[rec.ID], "coin %d returned twice", rec.ID)
		seen[rec.ID] = true
	}
	assert.Len(t, seen, 7)
}

func testFetchPageSearch(t *testing.T, repo Repository) {
	ctx := context.Background()

	// Case-insensitive match on name
	records, err := repo.FetchPage(ctx, PageSpec{Search: "lire", Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Match on subject
	records, err = repo.FetchPage(ctx, PageSpec{Search: "eagle", Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(5), records[0].ID)

	// Match on catalog number
	records, err = repo.FetchPage(ctx, PageSpec{Search: "pn12", Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(6), records[0].ID)

	// No match
	records, err = repo.FetchPage(ctx, PageSpec{Search: "doubloon", Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func testFetchPageFilters(t *testing.T, repo Repository) {
	ctx := context.Background()

	// Period restriction
	records, err := repo.FetchPage(ctx, PageSpec{PeriodIDs: []int64{11}, Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, int64(11), rec.PeriodID)
	}

	// Coin id whitelist
	records, err = repo.FetchPage(ctx, PageSpec{CoinIDs: []int64{1, 4}, Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Combined: whitelist and period intersect
	records, err = repo.FetchPage(ctx, PageSpec{CoinIDs: []int64{1, 4}, PeriodIDs: []int64{11}, Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(4), records[0].ID)
}

func testFetchPageJoins(t *testing.T, repo Repository) {
	ctx := context.Background()

	records, err := repo.FetchPage(ctx, PageSpec{CoinIDs: []int64{4}, Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Republic", rec.PeriodName)
	assert.Equal(t, 1946, rec.PeriodStartYear)
	assert.Equal(t, "Lira", rec.DenominationName)
	assert.Equal(t, "FAO", rec.SeriesName)

	// A coin with no period keeps zero-valued reference fields
	records, err = repo.FetchPage(ctx, PageSpec{CoinIDs: []int64{7}, Sort: domain.SortYearDesc}, 0, 100)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(0), records[0].PeriodID)
	assert.Empty(t, records[0].PeriodName)
}

func testFetchRange(t *testing.T, repo Repository) {
	ctx := context.Background()

	// A contiguous run ordered by id
	records, err := repo.FetchRange(ctx, 1, 1, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)

	// Limit beyond the category end returns the remainder
	records, err = repo.FetchRange(ctx, 3, 0, 10)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// Empty category
	records, err = repo.FetchRange(ctx, 999, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func testFetchOwnership(t *testing.T, repo Repository) {
	ctx := context.Background()

	records, err := repo.FetchOwnership(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := make(map[int64]domain.OwnershipRecord)
	for _, rec := range records {
		byID[rec.CoinID] = rec
	}

	full := byID[1]
	assert.Equal(t, int64(10), full.PeriodID)
	assert.Equal(t, "https://img.test/1-obv-t.jpg", full.ObverseThumb)

	// Missing tiers come back as empty strings, not errors
	partial := byID[4]
	assert.Equal(t, int64(11), partial.PeriodID)
	assert.Equal(t, "https://img.test/4-obv.jpg", partial.ObverseFull)
	assert.Empty(t, partial.ObverseMedium)
	assert.Empty(t, partial.ObverseThumb)
}

func testFetchCountryPeriodLinks(t *testing.T, repo Repository) {
	ctx := context.Background()

	links, err := repo.FetchCountryPeriodLinks(ctx)
	require.NoError(t, err)
	assert.Len(t, links, 4)
}

func testFetchPeriodIDsForCountry(t *testing.T, repo Repository) {
	ctx := context.Background()

	ids, err := repo.FetchPeriodIDsForCountry(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11}, ids)

	// A country with no linked periods yields an empty set
	ids, err = repo.FetchPeriodIDsForCountry(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func testFetchCountries(t *testing.T, repo Repository) {
	ctx := context.Background()

	countries, err := repo.FetchCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "Atlantis", countries[0].Name)
	assert.Equal(t, "Italy", countries[2].Name)
}

func testFetchCategories(t *testing.T, repo Repository) {
	ctx := context.Background()

	categories, err := repo.FetchCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Circulation", categories[0].Name)
}

func testFetchPeriodsForCountry(t *testing.T, repo Repository) {
	ctx := context.Background()

	periods, err := repo.FetchPeriodsForCountry(ctx, 1)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	// Newest start year first
	assert.Equal(t, "Republic", periods[0].Name)
	assert.Equal(t, 1946, periods[0].StartYear)
	assert.Equal(t, "Kingdom", periods[1].Name)

	// NULL start years sort last and map to 0
	periods, err = repo.FetchPeriodsForCountry(ctx, 2)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "Empire", periods[0].Name)
	assert.Equal(t, 0, periods[1].StartYear)
}

// RunRepositoryTests runs the repository test suite against an implementation
func RunRepositoryTests(t *testing.T, initDB func(t *testing.T) Repository, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, repo Repository)
	}{
		{"CountByCategory", testCountByCategory},
		{"FetchPageSorting", testFetchPageSorting},
		{"FetchPagePagination", testFetchPagePagination},
		{"FetchPageSearch", testFetchPageSearch},
		{"FetchPageFilters", testFetchPageFilters},
		{"FetchPageJoins", testFetchPageJoins},
		{"FetchRange", testFetchRange},
		{"FetchOwnership", testFetchOwnership},
		{"FetchCountryPeriodLinks", testFetchCountryPeriodLinks},
		{"FetchPeriodIDsForCountry", testFetchPeriodIDsForCountry},
		{"FetchCountries", testFetchCountries},
		{"FetchCategories", testFetchCategories},
		{"FetchPeriodsForCountry", testFetchPeriodsForCountry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, repo)
		})
	}
}
