// Package dto defines the response and request shapes of the browse API
package dto

import (
	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/grouping"
	"github.com/coinfolio/gallery/internal/virtualize"
)

// MetadataResponse carries the slow-moving reference data one payload:
// filter option lists plus the collection summary.
type MetadataResponse struct {
	Countries  []domain.Country  `json:"countries"`
	Categories []domain.Category `json:"categories"`
	OwnedCount int               `json:"owned_count"`
	// ValidCountryIDs lists the countries with at least one owned coin.
	// Present only when the owned-only filter is requested.
	ValidCountryIDs []int64 `json:"valid_country_ids,omitempty"`
}

// PeriodsResponse carries one country's period list, newest first
type PeriodsResponse struct {
	CountryID int64           `json:"country_id"`
	Periods   []domain.Period `json:"periods"`
}

// BrowseResponse carries one grouped browse result
type BrowseResponse struct {
	Mode       string                   `json:"mode"`
	Sort       domain.SortKey           `json:"sort"`
	View       domain.ViewMode          `json:"view"`
	Count      int                      `json:"count"`
	OwnedCount int                      `json:"owned_count"`
	Groups     []grouping.CategoryGroup `json:"groups"`
}

// LayoutRequest asks for the windowed render plan of a browse result.
// Filter fields select the record set; geometry fields describe the
// viewport; the expansion lists record toggles away from the defaults
// (categories collapsed, periods expanded).
type LayoutRequest struct {
	Search    string `json:"search"`
	CountryID int64  `json:"country_id"`
	PeriodID  int64  `json:"period_id"`
	Owned     string `json:"owned"`
	Sort      string `json:"sort"`
	View      string `json:"view"`

	Width          int `json:"width" binding:"required"`
	ScrollTop      int `json:"scroll_top"`
	ViewportHeight int `json:"viewport_height" binding:"required"`
	Overscan       int `json:"overscan"`

	ExpandedCategories []int64  `json:"expanded_categories"`
	CollapsedPeriods   []string `json:"collapsed_periods"`
}

// LayoutResponse carries the windowed render plan
type LayoutResponse struct {
	Mode        string                  `json:"mode"`
	Columns     int                     `json:"columns"`
	RowCount    int                     `json:"row_count"`
	TotalHeight int                     `json:"total_height"`
	Rows        []virtualize.VisibleRow `json:"rows"`
}
