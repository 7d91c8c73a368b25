// Package ownership merges the personal ownership overlay into catalog
// records. The overlay is small relative to the catalog and is fetched in a
// single request, then cached for a short validity window.
package ownership

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/coinfolio/gallery/internal/adapter"
	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/logger"
	"github.com/coinfolio/gallery/internal/store"
)

// DefaultTTL is the overlay cache validity window
const DefaultTTL = 5 * time.Minute

// Overlay is one loaded snapshot of the ownership data: a lookup keyed by
// coin id, the owned count and the set of periods with at least one owned
// coin (used to restrict the country filter under owned-only).
type Overlay struct {
	ByID           map[int64]domain.OwnershipRecord
	Count          int
	OwnedPeriodIDs map[int64]struct{}
}

// CoinIDs returns the owned identifiers as a whitelist slice. Never nil, so
// an empty overlay yields an empty (match-nothing) whitelist.
func (o *Overlay) CoinIDs() []int64 {
	ids := make([]int64, 0, len(o.ByID))
	for id := range o.ByID {
		ids = append(ids, id)
	}
	return ids
}

// Merger loads the ownership overlay and decorates catalog records with
// ownership flags and resolved image tiers. The cached overlay is written
// only on fetch completion, so concurrent readers never observe a partial
// snapshot.
type Merger struct {
	repo  store.Repository
	clock adapter.Clock
	ttl   time.Duration

	mu        sync.Mutex
	cached    *Overlay
	fetchedAt time.Time
}

// NewMerger creates a Merger over the given repository. A zero ttl selects
// the default 5 minute window.
func NewMerger(repo store.Repository, clock adapter.Clock, ttl time.Duration) *Merger {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Merger{repo: repo, clock: clock, ttl: ttl}
}

// Load returns the current overlay, re-fetching when the cached snapshot has
// expired. A fetch failure is returned as-is and leaves any previous
// snapshot untouched (though an expired snapshot is never served).
func (m *Merger) Load(ctx context.Context) (*Overlay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached != nil && m.clock.Since(m.fetchedAt) < m.ttl {
		return m.cached, nil
	}

	records, err := m.repo.FetchOwnership(ctx)
	if err != nil {
		return nil, err
	}

	overlay := &Overlay{
		ByID:           make(map[int64]domain.OwnershipRecord, len(records)),
		Count:          len(records),
		OwnedPeriodIDs: make(map[int64]struct{}),
	}
	for _, rec := range records {
		overlay.ByID[rec.CoinID] = rec
		if rec.PeriodID != 0 {
			overlay.OwnedPeriodIDs[rec.PeriodID] = struct{}{}
		}
	}

	m.cached = overlay
	m.fetchedAt = m.clock.Now()
	logger.DebugCtx(ctx, "ownership overlay refreshed", zap.Int("owned", overlay.Count))

	return overlay, nil
}

// Invalidate drops the cached overlay so the next Load re-fetches
func (m *Merger) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = nil
}

// Decorate merges the overlay into catalog records. The input order is
// preserved and the inputs are not mutated.
func Decorate(records []domain.CatalogRecord, overlay *Overlay) []domain.DecoratedRecord {
	out := make([]domain.DecoratedRecord, len(records))
	for i, rec := range records {
		out[i] = decorate(rec, overlay)
	}
	return out
}

func decorate(rec domain.CatalogRecord, overlay *Overlay) domain.DecoratedRecord {
	owned, ok := overlay.ByID[rec.ID]
	if !ok {
		return domain.DecoratedRecord{CatalogRecord: rec}
	}

	return domain.DecoratedRecord{
		CatalogRecord: rec,
		IsOwned:       true,
		Images: domain.RecordImages{
			Obverse: resolveFace(owned.ObverseFull, owned.ObverseMedium, owned.ObverseThumb),
			Reverse: resolveFace(owned.ReverseFull, owned.ReverseMedium, owned.ReverseThumb),
		},
	}
}

// resolveFace fills missing tiers from the next larger one: medium falls
// back to full, thumb to medium then full. A face with any tier present
// never renders blank.
func resolveFace(full, medium, thumb string) domain.FaceImages {
	if medium == "" {
		medium = full
	}
	if thumb == "" {
		thumb = medium
	}
	return domain.FaceImages{Full: full, Medium: medium, Thumb: thumb}
}
