// Package grouping partitions a decorated record set into the two-level
// category/period hierarchy the browse surface renders, computing the
// per-group statistics that drive sort tie-breaks.
package grouping

import (
	"sort"

	"github.com/coinfolio/gallery/internal/domain"
)

// Synthetic bucket labels for records without a matching reference row
const (
	UncategorizedName = "Uncategorized"
	NoPeriodName      = "General Issues"
)

// Color is an ordered style token cycled from the fixed palette by category
// sort position
type Color struct {
	Background string `json:"bg"`
	Border     string `json:"border"`
	Text       string `json:"text"`
}

// Palette is the fixed category palette. The last entry doubles as the
// uncategorized bucket's token.
var Palette = []Color{
	{Background: "#fef3c7", Border: "#f59e0b", Text: "#92400e"},
	{Background: "#fee2e2", Border: "#ef4444", Text: "#991b1b"},
	{Background: "#dbeafe", Border: "#3b82f6", Text: "#1e40af"},
	{Background: "#d1fae5", Border: "#10b981", Text: "#065f46"},
	{Background: "#f3e8ff", Border: "#8b5cf6", Text: "#5b21b6"},
	{Background: "#f1f5f9", Border: "#94a3b8", Text: "#475569"},
}

// Stats holds per-period-group extremes used for bubble-up ordering.
// Records with an unknown year (0) are excluded from the year extremes, so
// an unknown year never becomes the reported min/max unless every record in
// the group is unknown. Unknown prices are likewise excluded.
type Stats struct {
	MinYear  int     `json:"min_year"`
	MaxYear  int     `json:"max_year"`
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
}

// PeriodGroup is one period sub-group within a category bucket
type PeriodGroup struct {
	ID         int64                    `json:"period_id"`
	Name       string                   `json:"period_name"`
	StartYear  int                      `json:"start_year"`
	Records    []domain.DecoratedRecord `json:"coins"`
	OwnedCount int                      `json:"owned_count"`
	Stats      Stats                    `json:"stats"`
}

// CategoryGroup is one category bucket with its ordered period sub-groups
type CategoryGroup struct {
	ID         int64                    `json:"type_id"`
	Name       string                   `json:"type_name"`
	Color      Color                    `json:"color"`
	Records    []domain.DecoratedRecord `json:"-"`
	Periods    []PeriodGroup            `json:"periods"`
	Count      int                      `json:"count"`
	OwnedCount int                      `json:"owned_count"`
}

// Build partitions records into category buckets and period sub-groups,
// ordering both levels for the given sort key and view mode. Every input
// record lands in exactly one category bucket and one period sub-bucket;
// empty buckets are dropped.
func Build(records []domain.DecoratedRecord, categories []domain.Category, sortBy domain.SortKey, view domain.ViewMode) []CategoryGroup {
	sortBy = sortBy.CoerceForView(view)

	byID := make(map[int64]*CategoryGroup, len(categories)+1)
	for i, cat := range categories {
		byID[cat.ID] = &CategoryGroup{
			ID:    cat.ID,
			Name:  cat.Name,
			Color: Palette[i%len(Palette)],
		}
	}

	var uncategorized *CategoryGroup
	for _, rec := range records {
		group, ok := byID[rec.CategoryID]
		if !ok {
			if uncategorized == nil {
				uncategorized = &CategoryGroup{
					ID:    0,
					Name:  UncategorizedName,
					Color: Palette[len(Palette)-1],
				}
			}
			group = uncategorized
		}
		group.Records = append(group.Records, rec)
		if rec.IsOwned {
			group.OwnedCount++
		}
	}

	groups := make([]CategoryGroup, 0, len(byID)+1)
	for _, group := range byID {
		if len(group.Records) > 0 {
			groups = append(groups, *group)
		}
	}
	if uncategorized != nil {
		groups = append(groups, *uncategorized)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Name < groups[j].Name
	})

	for i := range groups {
		groups[i].Count = len(groups[i].Records)
		groups[i].Periods = buildPeriods(groups[i].Records, sortBy, view)
	}

	return groups
}

// buildPeriods partitions one category's records by period, computes group
// stats and applies the period ordering policy for the view mode.
func buildPeriods(records []domain.DecoratedRecord, sortBy domain.SortKey, view domain.ViewMode) []PeriodGroup {
	byID := make(map[int64]*PeriodGroup)
	var order []int64

	for _, rec := range records {
		group, ok := byID[rec.PeriodID]
		if !ok {
			group = &PeriodGroup{
				ID:        rec.PeriodID,
				Name:      rec.PeriodName,
				StartYear: rec.PeriodStartYear,
			}
			if rec.PeriodID == 0 {
				group.Name = NoPeriodName
				group.StartYear = 0
			}
			byID[rec.PeriodID] = group
			order = append(order, rec.PeriodID)
		}
		group.Records = append(group.Records, rec)
		if rec.IsOwned {
			group.OwnedCount++
		}
	}

	groups := make([]PeriodGroup, 0, len(order))
	for _, id := range order {
		group := byID[id]
		group.Stats = computeStats(group.Records)
		groups = append(groups, *group)
	}

	sortPeriods(groups, sortBy, view)

	for i := range groups {
		sortRecords(groups[i].Records, sortBy)
	}

	return groups
}

func computeStats(records []domain.DecoratedRecord) Stats {
	var s Stats
	haveYear, havePrice := false, false

	for _, rec := range records {
		if rec.Year != 0 {
			if !haveYear || rec.Year < s.MinYear {
				s.MinYear = rec.Year
			}
			if !haveYear || rec.Year > s.MaxYear {
				s.MaxYear = rec.Year
			}
			haveYear = true
		}
		if rec.Price != nil {
			if !havePrice || *rec.Price < s.MinPrice {
				s.MinPrice = *rec.Price
			}
			if !havePrice || *rec.Price > s.MaxPrice {
				s.MaxPrice = *rec.Price
			}
			havePrice = true
		}
	}

	return s
}

// sortPeriods orders period groups. Table mode sorts strictly by the
// period's nominal start year. Grid and list modes "bubble up": the primary
// key is the group extreme matching the sort key, so the group containing
// any newest (or priciest) coin surfaces first. Ties break by start year
// descending.
func sortPeriods(groups []PeriodGroup, sortBy domain.SortKey, view domain.ViewMode) {
	if view == domain.ViewTable {
		asc := sortBy == domain.SortYearAsc
		sort.SliceStable(groups, func(i, j int) bool {
			if asc {
				return groups[i].StartYear < groups[j].StartYear
			}
			return groups[i].StartYear > groups[j].StartYear
		})
		return
	}

	key := func(g PeriodGroup) float64 {
		switch sortBy {
		case domain.SortYearAsc:
			return float64(g.Stats.MinYear)
		case domain.SortPriceDesc:
			return g.Stats.MaxPrice
		case domain.SortPriceAsc:
			return g.Stats.MinPrice
		default:
			return float64(g.Stats.MaxYear)
		}
	}
	asc := sortBy.Ascending()

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := key(groups[i]), key(groups[j])
		if a != b {
			if asc {
				return a < b
			}
			return a > b
		}
		return groups[i].StartYear > groups[j].StartYear
	})
}

// sortRecords orders records within a period consistently with the
// group-level key. Ties keep natural fetch order (stable sort, no secondary
// key).
func sortRecords(records []domain.DecoratedRecord, sortBy domain.SortKey) {
	key := func(r domain.DecoratedRecord) float64 {
		if sortBy.IsPrice() {
			return r.PriceValue()
		}
		return float64(r.Year)
	}
	asc := sortBy.Ascending()

	sort.SliceStable(records, func(i, j int) bool {
		if asc {
			return key(records[i]) < key(records[j])
		}
		return key(records[i]) > key(records[j])
	})
}
