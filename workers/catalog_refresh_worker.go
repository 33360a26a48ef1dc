// workers/catalog_refresh_worker.go
package workers

import (
	"context"
	"log"
	"time"

	"social-connect-platform/services"

	"github.com/go-co-op/gocron/v2"
)

// CatalogRefreshWorker keeps the in-memory video catalog warm on a fixed
// interval so feeds keep a stable order and survive store blips.
type CatalogRefreshWorker struct {
	gateway  *services.StoreGateway
	cache    *services.CatalogCache
	interval time.Duration
	sched    gocron.Scheduler
}

func NewCatalogRefreshWorker(gateway *services.StoreGateway, cache *services.CatalogCache, interval time.Duration) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{
		gateway:  gateway,
		cache:    cache,
		interval: interval,
	}
}

// Start warms the cache once, then refreshes on the interval until Stop.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting catalog refresh worker…")

	w.refresh(ctx)

	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("❌ [Catalog] failed to create scheduler: %v", err)
		return
	}
	w.sched = sched

	_, _ = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			w.refresh(ctx)
		}),
	)
	sched.Start()
}

// Stop shuts the scheduler down.
func (w *CatalogRefreshWorker) Stop() {
	if w.sched != nil {
		if err := w.sched.Shutdown(); err != nil {
			log.Printf("⚠️ [Catalog] scheduler shutdown: %v", err)
		}
	}
	log.Println("⏹️ Catalog refresh worker stopped")
}

func (w *CatalogRefreshWorker) refresh(ctx context.Context) {
	videos, err := w.gateway.ListVideos(ctx, "")
	if err != nil {
		log.Printf("❌ [Catalog] refresh failed: %v", err)
		return
	}
	w.cache.Put(videos)
	log.Printf("✅ [Catalog] refreshed %d video(s)", len(videos))
}
