package intel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrSyncInProgress is returned when a refresh is triggered while
	// another one is still in flight, from any surface.
	ErrSyncInProgress = errors.New("refresh: sync already in progress")

	// ErrNoProfile is returned when a refresh is triggered before any
	// profile has been analyzed.
	ErrNoProfile = errors.New("refresh: no profile available")
)

// RefreshStore is the subset of the local store the refresher needs.
type RefreshStore interface {
	// LatestProfile returns the stored profile, or nil if none exists.
	LatestProfile(ctx context.Context) (*Profile, error)
	// ReplaceCollections atomically replaces the leads and news
	// collections in a single transaction.
	ReplaceCollections(ctx context.Context, leads []Lead, news []NewsItem) error
}

// RefreshResult reports what a completed refresh wrote.
type RefreshResult struct {
	Leads int `json:"leads"`
	News  int `json:"news"`
}

// Refresher coordinates the combined lead + news sync. Lead and news
// discovery run concurrently; results are staged in memory and committed
// to the store only after both succeed, so a failed refresh never leaves
// a half-replaced store.
type Refresher struct {
	store RefreshStore
	intel Intelligence
	busy  atomic.Bool
}

// NewRefresher wires the orchestrator to its store and gateway.
func NewRefresher(store RefreshStore, intel Intelligence) *Refresher {
	return &Refresher{store: store, intel: intel}
}

// Busy reports whether a refresh is currently in flight.
func (r *Refresher) Busy() bool {
	return r.busy.Load()
}

// Refresh re-fetches leads and news and replaces both persisted
// collections. The busy guard lives here, not in any UI layer, so at
// most one refresh runs regardless of how it was triggered.
func (r *Refresher) Refresh(ctx context.Context) (*RefreshResult, error) {
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer r.busy.Store(false)

	profile, err := r.store.LatestProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh: load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	IncrRefreshes()
	start := time.Now()
	slog.Info("refresh started", slog.Int("keywords", len(profile.RankedKeywords)))

	var (
		leads []Lead
		news  []NewsItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = r.intel.FindLeads(gctx, profile)
		return err
	})
	g.Go(func() error {
		var err error
		news, err = r.intel.FetchNews(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		IncrRefreshFailures()
		slog.Warn("refresh failed", slog.Any("error", err))
		return nil, fmt.Errorf("refresh: %w", err)
	}

	if err := r.store.ReplaceCollections(ctx, leads, news); err != nil {
		IncrRefreshFailures()
		return nil, fmt.Errorf("refresh: commit: %w", err)
	}

	slog.Info("refresh completed",
		slog.Int("leads", len(leads)),
		slog.Int("news", len(news)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return &RefreshResult{Leads: len(leads), News: len(news)}, nil
}
