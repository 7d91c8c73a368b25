package virtualize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/grouping"
	"github.com/coinfolio/gallery/internal/virtualize"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		name  string
		width int
		view  domain.ViewMode
		want  int
	}{
		{name: "narrow grid", width: 500, view: domain.ViewGrid, want: 1},
		{name: "just below two-column break", width: 649, view: domain.ViewGrid, want: 1},
		{name: "two columns", width: 650, view: domain.ViewGrid, want: 2},
		{name: "three columns", width: 950, view: domain.ViewGrid, want: 3},
		{name: "just below four-column break", width: 1299, view: domain.ViewGrid, want: 3},
		{name: "four columns", width: 1300, view: domain.ViewGrid, want: 4},
		{name: "wide stays four", width: 2560, view: domain.ViewGrid, want: 4},
		{name: "list is always one column", width: 1920, view: domain.ViewList, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, virtualize.Columns(tt.width, tt.view))
		})
	}
}

func makeGroups() []grouping.CategoryGroup {
	records := func(n int) []domain.DecoratedRecord {
		out := make([]domain.DecoratedRecord, n)
		for i := range out {
			out[i] = domain.DecoratedRecord{CatalogRecord: domain.CatalogRecord{ID: int64(i + 1)}}
		}
		return out
	}

	return []grouping.CategoryGroup{
		{
			ID:    1,
			Name:  "Circulation",
			Count: 7,
			Periods: []grouping.PeriodGroup{
				{ID: 10, Name: "Kingdom", Records: records(5)},
				{ID: 11, Name: "Republic", Records: records(2)},
			},
		},
		{
			ID:    2,
			Name:  "Commemorative",
			Count: 3,
			Periods: []grouping.PeriodGroup{
				{ID: 11, Name: "Republic", Records: records(3)},
			},
		},
	}
}

func TestFlattenCollapsedByDefault(t *testing.T) {
	// Categories start collapsed: only headers appear
	rows := virtualize.Flatten(makeGroups(), virtualize.NewExpandState(), 2)
	require.Len(t, rows, 2)
	assert.Equal(t, virtualize.RowHeader, rows[0].Type)
	assert.Equal(t, virtualize.RowHeader, rows[1].Type)
	assert.False(t, rows[0].Expanded)
}

func TestFlattenExpandedCategory(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)

	// Category 1 expanded with 2 columns:
	// header, Kingdom subheader, 3 chunks (5 records), Republic subheader,
	// 1 chunk, then category 2 header.
	rows := virtualize.Flatten(makeGroups(), expand, 2)
	require.Len(t, rows, 8)

	assert.Equal(t, virtualize.RowHeader, rows[0].Type)
	assert.True(t, rows[0].Expanded)
	assert.Equal(t, virtualize.RowSubHeader, rows[1].Type)
	assert.Equal(t, "Kingdom", rows[1].Title)
	assert.Equal(t, virtualize.RowContent, rows[2].Type)
	assert.Len(t, rows[2].Records, 2)
	// Short final chunk
	assert.Len(t, rows[4].Records, 1)
	assert.Equal(t, virtualize.RowSubHeader, rows[5].Type)
	assert.Equal(t, virtualize.RowContent, rows[6].Type)
	assert.Equal(t, virtualize.RowHeader, rows[7].Type)
}

func TestFlattenLastMarkers(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)

	rows := virtualize.Flatten(makeGroups(), expand, 2)

	// Only the final chunk of the final period carries the marker
	var lastContent []int
	for i, row := range rows {
		if row.Type == virtualize.RowContent && row.IsLast {
			lastContent = append(lastContent, i)
		}
	}
	require.Len(t, lastContent, 1)
	assert.Equal(t, 6, lastContent[0])

	// A collapsed final period becomes the last visual element itself
	expand.TogglePeriod(1, 11)
	rows = virtualize.Flatten(makeGroups(), expand, 2)
	var subheaders []virtualize.Row
	for _, row := range rows {
		if row.Type == virtualize.RowSubHeader {
			subheaders = append(subheaders, row)
		}
	}
	require.Len(t, subheaders, 2)
	assert.False(t, subheaders[0].IsLast)
	assert.True(t, subheaders[1].IsLast)
	assert.False(t, subheaders[1].Expanded)
}

func TestFlattenPeriodKeysAreScopedToCategory(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)
	expand.ToggleCategory(2)
	// Collapse Republic inside category 1 only; category 2's Republic stays
	// expanded even though the period id matches.
	expand.TogglePeriod(1, 11)

	rows := virtualize.Flatten(makeGroups(), expand, 10)

	var content []virtualize.Row
	for _, row := range rows {
		if row.Type == virtualize.RowContent && row.PeriodID == 11 {
			content = append(content, row)
		}
	}
	require.Len(t, content, 1)
	assert.Equal(t, int64(2), content[0].CategoryID)
}

func TestToggleRoundTrip(t *testing.T) {
	expand := virtualize.NewExpandState()

	assert.False(t, expand.CategoryExpanded(1))
	expand.ToggleCategory(1)
	assert.True(t, expand.CategoryExpanded(1))
	expand.ToggleCategory(1)
	assert.False(t, expand.CategoryExpanded(1))

	assert.True(t, expand.PeriodExpanded(1, 10))
	expand.TogglePeriod(1, 10)
	assert.False(t, expand.PeriodExpanded(1, 10))
	expand.TogglePeriod(1, 10)
	assert.True(t, expand.PeriodExpanded(1, 10))
}

func TestTotalHeight(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)

	rows := virtualize.Flatten(makeGroups(), expand, 2)
	// 2 headers + 2 subheaders + 4 content rows
	wantGrid := 2*virtualize.HeaderHeight + 2*virtualize.SubHeaderHeight + 4*virtualize.GridContentHeight
	assert.Equal(t, wantGrid, virtualize.TotalHeight(rows, domain.ViewGrid))

	wantList := 2*virtualize.HeaderHeight + 2*virtualize.SubHeaderHeight + 4*virtualize.ListContentHeight
	assert.Equal(t, wantList, virtualize.TotalHeight(rows, domain.ViewList))
}

func TestCollapseRemovesExactRowCount(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)

	before := len(virtualize.Flatten(makeGroups(), expand, 2))

	// Collapsing Kingdom removes its 3 content rows, nothing else
	expand.TogglePeriod(1, 10)
	after := len(virtualize.Flatten(makeGroups(), expand, 2))
	assert.Equal(t, before-3, after)
}

func TestWindowClipsToViewport(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)
	rows := virtualize.Flatten(makeGroups(), expand, 1)

	// Zero overscan resolves only intersecting rows: scroll position 0 with
	// a viewport the height of the first header plus one pixel reaches the
	// second row.
	visible := virtualize.Window(rows, domain.ViewGrid, 0, virtualize.HeaderHeight+1, 0)
	require.Len(t, visible, 2)
	assert.Equal(t, 0, visible[0].Index)
	assert.Equal(t, 0, visible[0].Start)
	assert.Equal(t, 1, visible[1].Index)
	assert.Equal(t, virtualize.HeaderHeight, visible[1].Start)
}

func TestWindowOverscanPadsBothSides(t *testing.T) {
	expand := virtualize.NewExpandState()
	expand.ToggleCategory(1)
	expand.ToggleCategory(2)
	rows := virtualize.Flatten(makeGroups(), expand, 1)
	require.Greater(t, len(rows), 6)

	// Aim the viewport at a middle row, then check the padding
	target := 5
	offset := 0
	for i := 0; i < target; i++ {
		offset += virtualize.RowHeight(rows[i], domain.ViewGrid)
	}

	visible := virtualize.Window(rows, domain.ViewGrid, offset, 10, 2)
	require.NotEmpty(t, visible)
	assert.Equal(t, target-2, visible[0].Index)
	assert.Equal(t, target+2, visible[len(visible)-1].Index)
}

func TestWindowEmptyInputs(t *testing.T) {
	assert.Nil(t, virtualize.Window(nil, domain.ViewGrid, 0, 500, 5))

	rows := virtualize.Flatten(makeGroups(), virtualize.NewExpandState(), 1)
	assert.Nil(t, virtualize.Window(rows, domain.ViewGrid, 0, 0, 5))

	// Scrolled past the end
	assert.Nil(t, virtualize.Window(rows, domain.ViewGrid, 100000, 500, 5))
}
