// Package query coordinates the browse pipeline: it decides between explore
// sampling and exhaustive filtered fetching, caches the slow-moving reference
// data and drives the reactive browse session.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/coinfolio/gallery/internal/adapter"
	"github.com/coinfolio/gallery/internal/config"
	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/fetcher"
	"github.com/coinfolio/gallery/internal/logger"
	"github.com/coinfolio/gallery/internal/ownership"
	"github.com/coinfolio/gallery/internal/sampler"
	"github.com/coinfolio/gallery/internal/store"
)

// BrowseMode tells the caller how a result set was produced
type BrowseMode string

const (
	ModeExplore  BrowseMode = "explore"
	ModeFiltered BrowseMode = "filtered"
)

// DefaultPeriodsTTL is the per-country period cache validity window
const DefaultPeriodsTTL = 30 * time.Minute

// Metadata is the slow-moving reference data loaded once per process:
// country and category lists plus the exact per-category totals the sampler
// needs. Category names and catalog sizes change on catalog imports, not
// while browsing, so this cache never expires.
type Metadata struct {
	Countries      []domain.Country
	Categories     []domain.Category
	CategoryCounts map[int64]int64
}

type periodsEntry struct {
	periods   []domain.Period
	fetchedAt time.Time
}

// Orchestrator wires the sampler, fetcher and ownership merger behind one
// browse entry point and owns the reference-data caches.
type Orchestrator struct {
	repo    store.Repository
	merger  *ownership.Merger
	sampler *sampler.Sampler
	fetcher *fetcher.Fetcher
	clock   adapter.Clock

	periodsTTL time.Duration

	metaMu sync.Mutex
	meta   *Metadata

	periodsMu sync.Mutex
	periods   map[int64]periodsEntry

	linksMu sync.Mutex
	links   []domain.PeriodLink
}

// NewOrchestrator assembles the browse pipeline from its parts
func NewOrchestrator(repo store.Repository, rand adapter.Rand, clock adapter.Clock, cfg config.BrowseConfig) *Orchestrator {
	if cfg.PeriodsTTL == 0 {
		cfg.PeriodsTTL = DefaultPeriodsTTL
	}
	return &Orchestrator{
		repo:       repo,
		merger:     ownership.NewMerger(repo, clock, cfg.OwnershipTTL),
		sampler:    sampler.New(repo, rand, cfg.ExploreDistribution, cfg.SamplerPoolSize),
		fetcher:    fetcher.New(repo, cfg.BatchSize),
		clock:      clock,
		periodsTTL: cfg.PeriodsTTL,
		periods:    make(map[int64]periodsEntry),
	}
}

// Metadata returns the reference-data snapshot, loading it on first use.
// Load failures are not cached; the next call retries.
func (o *Orchestrator) Metadata(ctx context.Context) (*Metadata, error) {
	o.metaMu.Lock()
	defer o.metaMu.Unlock()

	if o.meta != nil {
		return o.meta, nil
	}

	countries, err := o.repo.FetchCountries(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := o.repo.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(categories))
	for _, cat := range categories {
		total, err := o.repo.CountByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		counts[cat.ID] = total
	}

	o.meta = &Metadata{
		Countries:      countries,
		Categories:     categories,
		CategoryCounts: counts,
	}
	logger.InfoCtx(ctx, "reference metadata loaded",
		zap.Int("countries", len(countries)),
		zap.Int("categories", len(categories)),
	)

	return o.meta, nil
}

// Ownership returns the current ownership overlay via the cached merger
func (o *Orchestrator) Ownership(ctx context.Context) (*ownership.Overlay, error) {
	return o.merger.Load(ctx)
}

// InvalidateOwnership drops the overlay cache so the next browse re-fetches
func (o *Orchestrator) InvalidateOwnership() {
	o.merger.Invalidate()
}

// PeriodsForCountry returns a country's periods, newest first, from a
// per-country cache with a long validity window.
func (o *Orchestrator) PeriodsForCountry(ctx context.Context, countryID int64) ([]domain.Period, error) {
	o.periodsMu.Lock()
	defer o.periodsMu.Unlock()

	if entry, ok := o.periods[countryID]; ok && o.clock.Since(entry.fetchedAt) < o.periodsTTL {
		return entry.periods, nil
	}

	periods, err := o.repo.FetchPeriodsForCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	o.periods[countryID] = periodsEntry{periods: periods, fetchedAt: o.clock.Now()}
	return periods, nil
}

// ValidCountryIDs returns the countries worth offering under the owned-only
// filter: those linked to at least one period containing an owned coin. A nil
// map means no restriction (the filter is off or nothing narrows it).
func (o *Orchestrator) ValidCountryIDs(ctx context.Context, filter domain.FilterState) (map[int64]struct{}, error) {
	if filter.Owned != domain.OwnedOnly {
		return nil, nil
	}

	overlay, err := o.merger.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(overlay.OwnedPeriodIDs) == 0 {
		return map[int64]struct{}{}, nil
	}

	links, err := o.countryPeriodLinks(ctx)
	if err != nil {
		return nil, err
	}

	valid := make(map[int64]struct{})
	for _, link := range links {
		if _, ok := overlay.OwnedPeriodIDs[link.PeriodID]; ok {
			valid[link.CountryID] = struct{}{}
		}
	}
	return valid, nil
}

func (o *Orchestrator) countryPeriodLinks(ctx context.Context) ([]domain.PeriodLink, error) {
	o.linksMu.Lock()
	defer o.linksMu.Unlock()

	if o.links != nil {
		return o.links, nil
	}

	links, err := o.repo.FetchCountryPeriodLinks(ctx)
	if err != nil {
		return nil, err
	}
	o.links = links
	return links, nil
}

// CacheKey derives the identity of a browse result from every input that
// shapes it. Two browses with equal keys are interchangeable; a key change
// is what makes an in-flight result stale.
func CacheKey(filter domain.FilterState, debouncedSearch string) string {
	mode := ModeFiltered
	probe := filter.WithSearch(debouncedSearch)
	if probe.IsExplore() {
		mode = ModeExplore
	}
	return fmt.Sprintf("%s|%s|%d|%d|%s|%s",
		mode, debouncedSearch, filter.CountryID, filter.PeriodID, filter.Owned, filter.SortBy)
}

// Browse produces the decorated record set for the filter. Explore mode
// draws a stratified sample; any active filter triggers an exhaustive fetch.
// The ownership overlay is always merged so owned flags and images survive
// filter changes.
func (o *Orchestrator) Browse(ctx context.Context, filter domain.FilterState) ([]domain.DecoratedRecord, BrowseMode, error) {
	overlay, err := o.merger.Load(ctx)
	if err != nil {
		return nil, "", &PrereqError{Err: err}
	}

	if filter.IsExplore() {
		meta, err := o.Metadata(ctx)
		if err != nil {
			return nil, "", &PrereqError{Err: err}
		}
		records, err := o.sampler.Sample(ctx, meta.CategoryCounts)
		if err != nil {
			return nil, "", err
		}
		return ownership.Decorate(records, overlay), ModeExplore, nil
	}

	records, err := o.fetcher.Fetch(ctx, filter, overlay.CoinIDs())
	if err != nil {
		return nil, "", err
	}
	return ownership.Decorate(records, overlay), ModeFiltered, nil
}
