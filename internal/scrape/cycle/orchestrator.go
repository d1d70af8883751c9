// Package cycle runs one scrape cycle end to end: extract from every source
// in parallel, normalize, upsert, summarize.
package cycle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"scholarship-feed/internal/scrape/model"
	"scholarship-feed/internal/scrape/normalize"
	"scholarship-feed/internal/scrape/source"
)

// Upserter persists a normalized batch. *store.Upserter satisfies it.
type Upserter interface {
	Upsert(ctx context.Context, batch []model.Listing) (inserted, updated int, err error)
}

type Orchestrator struct {
	providers []source.Provider
	norm      *normalize.Normalizer
	store     Upserter
	log       *zap.Logger
	now       func() time.Time
}

// New wires an orchestrator. A nil now uses time.Now.
func New(providers []source.Provider, norm *normalize.Normalizer, store Upserter, log *zap.Logger, now func() time.Time) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{providers: providers, norm: norm, store: store, log: log, now: now}
}

// SourceDefaults builds the normalizer's per-source defaults from providers.
func SourceDefaults(providers []source.Provider) map[model.SourceTag]normalize.SourceDefaults {
	out := make(map[model.SourceTag]normalize.SourceDefaults, len(providers))
	for _, p := range providers {
		out[p.Tag()] = normalize.SourceDefaults{
			Provider: p.FallbackProvider(),
			BaseURL:  p.BaseURL(),
		}
	}
	return out
}

// RunCycle never panics and never returns an error; failures are reported in
// the summary.
func (o *Orchestrator) RunCycle(ctx context.Context) model.CycleSummary {
	start := o.now()
	o.log.Info("Starting scrape cycle", zap.Int("sources", len(o.providers)))

	results, failed := o.extractAll(ctx)

	stats := model.CycleStats{
		Sources:         make(map[string]int, len(o.providers)),
		FallbackSources: []string{},
		FailedSources:   failed,
	}

	var batch []model.Listing
	for _, res := range results {
		stats.Sources[res.Source] = len(res.Listings)
		if res.Fallback {
			stats.FallbackSources = append(stats.FallbackSources, res.Source)
		}
		for _, raw := range res.Listings {
			l, err := o.norm.Normalize(raw, res.Tag)
			if err != nil {
				stats.Skipped++
				o.log.Warn("Dropping listing",
					zap.String("source", res.Source),
					zap.String("link", raw.Link),
					zap.Error(err),
				)
				continue
			}
			batch = append(batch, l)
		}
	}
	stats.Total = len(batch)

	if len(batch) == 0 {
		stats.Duration = o.now().Sub(start).String()
		err := eris.New("cycle: no listings extracted from any source")
		o.log.Error("Scrape cycle failed", zap.Error(err), zap.Strings("failedSources", failed))
		return o.failure(stats, err)
	}

	inserted, updated, err := o.store.Upsert(ctx, batch)
	stats.Inserted, stats.Updated = inserted, updated
	stats.Duration = o.now().Sub(start).String()
	if err != nil {
		err = eris.Wrap(err, "cycle: persist batch")
		o.log.Error("Scrape cycle failed", zap.Error(err), zap.Int("total", stats.Total))
		return o.failure(stats, err)
	}

	o.log.Info("Scrape cycle complete",
		zap.Int("total", stats.Total),
		zap.Int("inserted", stats.Inserted),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
		zap.String("duration", stats.Duration),
		zap.Strings("fallbackSources", stats.FallbackSources),
		zap.Strings("failedSources", stats.FailedSources),
	)
	return model.CycleSummary{
		Success:   true,
		Message:   fmt.Sprintf("Scraped %d listings from %d sources", stats.Total, len(stats.Sources)),
		Stats:     stats,
		Timestamp: o.now(),
	}
}

// extractAll runs every provider concurrently. Results come back in provider
// order; a provider that panics is left out and named in failed.
func (o *Orchestrator) extractAll(ctx context.Context) (results []source.Result, failed []string) {
	slots := make([]*source.Result, len(o.providers))

	var g errgroup.Group
	for i, p := range o.providers {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					o.log.Error("Source extractor panicked",
						zap.String("source", p.Name()),
						zap.Any("panic", r),
					)
				}
			}()
			res := source.Extract(ctx, p, o.log)
			slots[i] = &res
			return nil
		})
	}
	_ = g.Wait()

	failed = []string{}
	for i, res := range slots {
		if res == nil {
			failed = append(failed, o.providers[i].Name())
			continue
		}
		results = append(results, *res)
	}
	sort.Strings(failed)
	return results, failed
}

func (o *Orchestrator) failure(stats model.CycleStats, err error) model.CycleSummary {
	return model.CycleSummary{
		Success:   false,
		Message:   "Scrape cycle failed",
		Error:     err.Error(),
		Stats:     stats,
		Timestamp: o.now(),
	}
}
