// Package virtualize flattens the grouped hierarchy into a linear sequence
// of typed, height-estimated rows and computes the window of rows a scroll
// viewport needs to render. Table view is not windowed; it renders as
// static nested tables from the grouped structure directly.
package virtualize

import (
	"fmt"

	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/grouping"
)

// RowType tags one entry of the flattened render sequence
type RowType string

const (
	RowHeader    RowType = "header"    // category header
	RowSubHeader RowType = "subheader" // period sub-header
	RowContent   RowType = "row"       // chunk of up to `columns` records
)

// Estimated pixel heights per row type and view mode
const (
	HeaderHeight      = 94
	SubHeaderHeight   = 50
	ListContentHeight = 100
	GridContentHeight = 380
)

// DefaultOverscan is the number of extra rows kept rendered on each side of
// the viewport
const DefaultOverscan = 5

// Row is one typed unit of the flattened sequence. CategoryID is carried on
// every row so the surface can route background clicks to a category
// collapse toggle without hitting interactive child elements.
type Row struct {
	Type       RowType                  `json:"type"`
	CategoryID int64                    `json:"category_id"`
	PeriodID   int64                    `json:"period_id,omitempty"`
	Title      string                   `json:"title,omitempty"`
	Count      int                      `json:"count,omitempty"`
	OwnedCount int                      `json:"owned_count,omitempty"`
	Expanded   bool                     `json:"expanded,omitempty"`
	IsLast     bool                     `json:"is_last,omitempty"`
	Records    []domain.DecoratedRecord `json:"coins,omitempty"`
}

// ExpandState is the explicit expand/collapse input to a render pass.
// Categories default to collapsed, periods to expanded; both defaults are
// configurable. The maps record explicit toggles away from the default.
type ExpandState struct {
	CategoriesDefaultExpanded bool            `json:"categories_default_expanded"`
	PeriodsDefaultCollapsed   bool            `json:"periods_default_collapsed"`
	Categories                map[int64]bool  `json:"categories"`
	Periods                   map[string]bool `json:"periods"`
}

// NewExpandState returns the product-default state: categories collapsed,
// periods expanded.
func NewExpandState() *ExpandState {
	return &ExpandState{
		Categories: make(map[int64]bool),
		Periods:    make(map[string]bool),
	}
}

// PeriodKey builds the composite (category, period) toggle key
func PeriodKey(categoryID, periodID int64) string {
	return fmt.Sprintf("%d-%d", categoryID, periodID)
}

// CategoryExpanded reports whether a category's rows are visible
func (s *ExpandState) CategoryExpanded(categoryID int64) bool {
	if toggled, ok := s.Categories[categoryID]; ok {
		return toggled
	}
	return s.CategoriesDefaultExpanded
}

// PeriodExpanded reports whether a period's content rows are visible
func (s *ExpandState) PeriodExpanded(categoryID, periodID int64) bool {
	if collapsed, ok := s.Periods[PeriodKey(categoryID, periodID)]; ok {
		return !collapsed
	}
	return !s.PeriodsDefaultCollapsed
}

// ToggleCategory flips a category's expanded state. This is also the hook
// for background clicks landing inside an expanded category's row area.
func (s *ExpandState) ToggleCategory(categoryID int64) {
	if s.Categories == nil {
		s.Categories = make(map[int64]bool)
	}
	s.Categories[categoryID] = !s.CategoryExpanded(categoryID)
}

// TogglePeriod flips a period's expanded state
func (s *ExpandState) TogglePeriod(categoryID, periodID int64) {
	if s.Periods == nil {
		s.Periods = make(map[string]bool)
	}
	s.Periods[PeriodKey(categoryID, periodID)] = s.PeriodExpanded(categoryID, periodID)
}

// Columns computes how many records one content row holds for the viewport
// width and view mode. List view is always a single column.
func Columns(width int, view domain.ViewMode) int {
	if view == domain.ViewList {
		return 1
	}
	switch {
	case width < 650:
		return 1
	case width < 950:
		return 2
	case width < 1300:
		return 3
	default:
		return 4
	}
}

// Flatten produces the linear render sequence for the grouped hierarchy:
// one header per category, then per visible period one sub-header and, when
// the period is expanded, one content row per chunk of `columns` records.
// Collapsed categories contribute only their header.
func Flatten(groups []grouping.CategoryGroup, expand *ExpandState, columns int) []Row {
	if columns < 1 {
		columns = 1
	}

	var rows []Row
	for _, group := range groups {
		rows = append(rows, Row{
			Type:       RowHeader,
			CategoryID: group.ID,
			Title:      group.Name,
			Count:      group.Count,
			OwnedCount: group.OwnedCount,
			Expanded:   expand.CategoryExpanded(group.ID),
		})

		if !expand.CategoryExpanded(group.ID) {
			continue
		}

		for pIdx, period := range group.Periods {
			expanded := expand.PeriodExpanded(group.ID, period.ID)
			lastPeriod := pIdx == len(group.Periods)-1

			rows = append(rows, Row{
				Type:       RowSubHeader,
				CategoryID: group.ID,
				PeriodID:   period.ID,
				Title:      period.Name,
				Count:      len(period.Records),
				OwnedCount: period.OwnedCount,
				Expanded:   expanded,
				// A collapsed final period is the group's last visual element
				IsLast: lastPeriod && !expanded,
			})

			if !expanded {
				continue
			}

			for i := 0; i < len(period.Records); i += columns {
				end := min(i+columns, len(period.Records))
				rows = append(rows, Row{
					Type:       RowContent,
					CategoryID: group.ID,
					PeriodID:   period.ID,
					Records:    period.Records[i:end],
					IsLast:     lastPeriod && end == len(period.Records),
				})
			}
		}
	}

	return rows
}

// RowHeight returns the estimated pixel height for one row
func RowHeight(row Row, view domain.ViewMode) int {
	switch row.Type {
	case RowHeader:
		return HeaderHeight
	case RowSubHeader:
		return SubHeaderHeight
	default:
		if view == domain.ViewList {
			return ListContentHeight
		}
		return GridContentHeight
	}
}

// TotalHeight is the scrollable height: the sum of every row's estimate
func TotalHeight(rows []Row, view domain.ViewMode) int {
	total := 0
	for _, row := range rows {
		total += RowHeight(row, view)
	}
	return total
}

// VisibleRow is a flattened row positioned at its cumulative offset
type VisibleRow struct {
	Row
	Index  int `json:"index"`
	Start  int `json:"start"`
	Height int `json:"height"`
}

// Window returns the rows whose estimated extents intersect the scroll
// viewport, padded by `overscan` rows on each side. A non-positive
// viewportHeight yields an empty window.
func Window(rows []Row, view domain.ViewMode, scrollTop, viewportHeight, overscan int) []VisibleRow {
	if viewportHeight <= 0 || len(rows) == 0 {
		return nil
	}
	if overscan < 0 {
		overscan = DefaultOverscan
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	first, last := -1, -1
	offset := 0
	offsets := make([]int, len(rows))
	for i, row := range rows {
		offsets[i] = offset
		h := RowHeight(row, view)
		if offset+h > scrollTop && offset < scrollTop+viewportHeight {
			if first == -1 {
				first = i
			}
			last = i
		}
		offset += h
	}
	if first == -1 {
		return nil
	}

	first = max(first-overscan, 0)
	last = min(last+overscan, len(rows)-1)

	visible := make([]VisibleRow, 0, last-first+1)
	for i := first; i <= last; i++ {
		visible = append(visible, VisibleRow{
			Row:    rows[i],
			Index:  i,
			Start:  offsets[i],
			Height: RowHeight(rows[i], view),
		})
	}
	return visible
}
