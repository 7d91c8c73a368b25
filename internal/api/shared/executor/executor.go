// Package executor contains the business logic behind the REST handlers:
// it drives the browse pipeline and maps results and failures into the
// transport-neutral DTO and error shapes.
package executor

import (
	"context"
	"fmt"
	"sort"

	"github.com/coinfolio/gallery/internal/api/shared/dto"
	apierrors "github.com/coinfolio/gallery/internal/api/shared/errors"
	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/grouping"
	"github.com/coinfolio/gallery/internal/query"
	"github.com/coinfolio/gallery/internal/virtualize"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetMetadata returns filter option lists and the collection summary
	GetMetadata(ctx context.Context, owned domain.OwnedFilter) (*dto.MetadataResponse, error)

	// GetPeriods returns one country's periods, newest start year first
	GetPeriods(ctx context.Context, countryID int64) (*dto.PeriodsResponse, error)

	// Browse returns the grouped record set for a filter combination
	Browse(ctx context.Context, filter domain.FilterState, view domain.ViewMode) (*dto.BrowseResponse, error)

	// Layout returns the windowed render plan for a viewport over a browse
	// result
	Layout(ctx context.Context, req *dto.LayoutRequest) (*dto.LayoutResponse, error)
}

type executorImpl struct {
	orch *query.Orchestrator
}

// NewExecutor creates an Executor over the browse orchestrator
func NewExecutor(orch *query.Orchestrator) Executor {
	return &executorImpl{orch: orch}
}

func (e *executorImpl) GetMetadata(ctx context.Context, owned domain.OwnedFilter) (*dto.MetadataResponse, error) {
	meta, err := e.orch.Metadata(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load metadata: %v", err))
	}

	overlay, err := e.orch.Ownership(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load ownership: %v", err))
	}

	resp := &dto.MetadataResponse{
		Countries:  meta.Countries,
		Categories: meta.Categories,
		OwnedCount: overlay.Count,
	}

	if owned == domain.OwnedOnly {
		valid, err := e.orch.ValidCountryIDs(ctx, domain.FilterState{Owned: owned})
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to resolve owned countries: %v", err))
		}
		ids := make([]int64, 0, len(valid))
		for id := range valid {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		resp.ValidCountryIDs = ids
	}

	return resp, nil
}

func (e *executorImpl) GetPeriods(ctx context.Context, countryID int64) (*dto.PeriodsResponse, error) {
	periods, err := e.orch.PeriodsForCountry(ctx, countryID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load periods: %v", err))
	}
	return &dto.PeriodsResponse{CountryID: countryID, Periods: periods}, nil
}

func (e *executorImpl) Browse(ctx context.Context, filter domain.FilterState, view domain.ViewMode) (*dto.BrowseResponse, error) {
	records, mode, err := e.orch.Browse(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to browse catalog: %v", err))
	}

	meta, err := e.orch.Metadata(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to load metadata: %v", err))
	}

	sortBy := filter.SortBy.CoerceForView(view)
	groups := grouping.Build(records, meta.Categories, sortBy, view)

	owned := 0
	for _, rec := range records {
		if rec.IsOwned {
			owned++
		}
	}

	return &dto.BrowseResponse{
		Mode:       string(mode),
		Sort:       sortBy,
		View:       view,
		Count:      len(records),
		OwnedCount: owned,
		Groups:     groups,
	}, nil
}

func (e *executorImpl) Layout(ctx context.Context, req *dto.LayoutRequest) (*dto.LayoutResponse, error) {
	view := domain.ParseViewMode(req.View)
	if view == domain.ViewTable {
		return nil, apierrors.NewValidationError("table view renders statically and has no windowed layout")
	}

	filter := domain.FilterState{
		Search:    req.Search,
		CountryID: req.CountryID,
		PeriodID:  req.PeriodID,
		Owned:     domain.OwnedFilter(req.Owned),
		SortBy:    domain.ParseSortKey(req.Sort),
	}
	if filter.Owned == "" {
		filter.Owned = domain.OwnedAll
	}

	browse, err := e.Browse(ctx, filter, view)
	if err != nil {
		return nil, err
	}

	expand := virtualize.NewExpandState()
	for _, id := range req.ExpandedCategories {
		expand.Categories[id] = true
	}
	for _, key := range req.CollapsedPeriods {
		expand.Periods[key] = true
	}

	overscan := req.Overscan
	if overscan <= 0 {
		overscan = virtualize.DefaultOverscan
	}

	columns := virtualize.Columns(req.Width, view)
	rows := virtualize.Flatten(browse.Groups, expand, columns)
	window := virtualize.Window(rows, view, req.ScrollTop, req.ViewportHeight, overscan)

	return &dto.LayoutResponse{
		Mode:        browse.Mode,
		Columns:     columns,
		RowCount:    len(rows),
		TotalHeight: virtualize.TotalHeight(rows, view),
		Rows:        window,
	}, nil
}
