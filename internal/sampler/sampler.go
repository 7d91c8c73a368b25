// Package sampler implements explore mode: a randomized, category-balanced
// preview of the catalog produced without scanning full categories.
package sampler

import (
	"context"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/coinfolio/gallery/internal/adapter"
	"github.com/coinfolio/gallery/internal/config"
	"github.com/coinfolio/gallery/internal/domain"
	"github.com/coinfolio/gallery/internal/logger"
	"github.com/coinfolio/gallery/internal/store"
)

// DefaultPoolSize bounds concurrent per-category fetches
const DefaultPoolSize = 6

// Sampler draws a stratified random sample across catalog categories. Each
// stratum is a single contiguous range request at a uniformly random offset,
// so no category is ever scanned end to end.
type Sampler struct {
	repo         store.Repository
	rand         adapter.Rand
	distribution []config.Stratum
	poolSize     int
}

// New creates a Sampler with the given sampling distribution
func New(repo store.Repository, rand adapter.Rand, distribution []config.Stratum, poolSize int) *Sampler {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	return &Sampler{repo: repo, rand: rand, distribution: distribution, poolSize: poolSize}
}

// MaxSampleSize returns the upper bound on a sample: the sum of all targets
func (s *Sampler) MaxSampleSize() int {
	total := 0
	for _, stratum := range s.distribution {
		total += stratum.Target
	}
	return total
}

// Sample fetches every stratum concurrently, concatenates the results and
// applies an unbiased Fisher-Yates shuffle so the combined order is not
// striped by category. counts maps category id to its exact total. Any
// stratum failure aborts the whole sample: a partial result would be
// category-skewed.
func (s *Sampler) Sample(ctx context.Context, counts map[int64]int64) ([]domain.CatalogRecord, error) {
	results := make([][]domain.CatalogRecord, len(s.distribution))

	// Offsets are drawn up front on the caller goroutine; adapter.Rand is
	// not safe for concurrent use.
	offsets := make([]int, len(s.distribution))
	for i, stratum := range s.distribution {
		total := int(counts[stratum.CategoryID])
		if total > stratum.Target {
			offsets[i] = s.rand.IntN(total - stratum.Target + 1)
		}
	}

	pool := pond.NewPool(s.poolSize, pond.WithContext(ctx))
	group := pool.NewGroup()

	var mu sync.Mutex
	var firstErr error

	for i, stratum := range s.distribution {
		total := int(counts[stratum.CategoryID])
		if total == 0 {
			continue
		}

		offset := offsets[i]
		limit := stratum.Target
		if total <= stratum.Target {
			offset = 0
			limit = total
		}
		idx, categoryID := i, stratum.CategoryID

		group.Submit(func() {
			records, err := s.repo.FetchRange(ctx, categoryID, offset, limit)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			results[idx] = records
		})
	}

	group.Wait()
	pool.StopAndWait()

	if firstErr != nil {
		return nil, firstErr
	}

	var combined []domain.CatalogRecord
	for _, records := range results {
		combined = append(combined, records...)
	}

	s.rand.Shuffle(len(combined), func(i, j int) {
		combined[i], combined[j] = combined[j], combined[i]
	})

	logger.DebugCtx(ctx, "explore sample drawn",
		zap.Int("records", len(combined)),
		zap.Int("strata", len(s.distribution)),
	)

	return combined, nil
}
