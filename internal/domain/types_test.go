package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinfolio/gallery/internal/domain"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.SortKey
	}{
		{name: "year desc", input: "year_desc", want: domain.SortYearDesc},
		{name: "year asc", input: "year_asc", want: domain.SortYearAsc},
		{name: "price desc", input: "price_desc", want: domain.SortPriceDesc},
		{name: "price asc", input: "price_asc", want: domain.SortPriceAsc},
		{name: "unknown falls back", input: "name_asc", want: domain.SortYearDesc},
		{name: "empty falls back", input: "", want: domain.SortYearDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseSortKey(tt.input))
		})
	}
}

func TestSortKeyCoerceForView(t *testing.T) {
	tests := []struct {
		name string
		key  domain.SortKey
		view domain.ViewMode
		want domain.SortKey
	}{
		{name: "price desc in table falls back", key: domain.SortPriceDesc, view: domain.ViewTable, want: domain.SortYearDesc},
		{name: "price asc in table falls back", key: domain.SortPriceAsc, view: domain.ViewTable, want: domain.SortYearDesc},
		{name: "year asc in table survives", key: domain.SortYearAsc, view: domain.ViewTable, want: domain.SortYearAsc},
		{name: "price desc in grid survives", key: domain.SortPriceDesc, view: domain.ViewGrid, want: domain.SortPriceDesc},
		{name: "price asc in list survives", key: domain.SortPriceAsc, view: domain.ViewList, want: domain.SortPriceAsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.CoerceForView(tt.view))
		})
	}
}

func TestFilterStateIsExplore(t *testing.T) {
	assert.True(t, domain.DefaultFilterState().IsExplore())

	tests := []struct {
		name   string
		mutate func(domain.FilterState) domain.FilterState
	}{
		{name: "search", mutate: func(f domain.FilterState) domain.FilterState { return f.WithSearch("lira") }},
		{name: "country", mutate: func(f domain.FilterState) domain.FilterState { return f.WithCountry(3) }},
		{name: "owned", mutate: func(f domain.FilterState) domain.FilterState { f.Owned = domain.OwnedOnly; return f }},
		{name: "period", mutate: func(f domain.FilterState) domain.FilterState { f.PeriodID = 7; return f }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.mutate(domain.DefaultFilterState())
			assert.False(t, f.IsExplore())
		})
	}
}

func TestFilterStateWithCountryResetsPeriod(t *testing.T) {
	f := domain.DefaultFilterState()
	f.PeriodID = 42

	f = f.WithCountry(5)
	assert.Equal(t, int64(5), f.CountryID)
	assert.Zero(t, f.PeriodID)
}

func TestFilterStateClearedKeepsSort(t *testing.T) {
	f := domain.FilterState{
		Search:    "mark",
		CountryID: 2,
		PeriodID:  12,
		Owned:     domain.OwnedOnly,
		SortBy:    domain.SortPriceAsc,
	}

	cleared := f.Cleared()
	assert.True(t, cleared.IsExplore())
	assert.Equal(t, domain.SortPriceAsc, cleared.SortBy)
}

func TestPriceValue(t *testing.T) {
	price := 12.5
	rec := domain.CatalogRecord{Price: &price}
	assert.Equal(t, 12.5, rec.PriceValue())

	assert.Zero(t, domain.CatalogRecord{}.PriceValue())
}
