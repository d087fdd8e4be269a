package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"eduanalytics_backend/internals/configs"
	feedbackService "eduanalytics_backend/internals/features/feedback/service"
	"eduanalytics_backend/internals/features/optimization/service"
)

// StartViewRefreshScheduler merefresh materialized view analytics secara
// periodik di goroutine background. Interval via MATVIEW_REFRESH_MINUTES,
// default 60 menit.
func StartViewRefreshScheduler(db *gorm.DB) {
	interval := time.Duration(configs.GetEnvInt("MATVIEW_REFRESH_MINUTES", 60)) * time.Minute
	svc := service.NewOptimizationService(db)

	go func() {
		// pastikan view ada sebelum loop refresh
		if _, err := svc.CreateMaterializedViews(); err != nil {
			log.Printf("[ERROR] init materialized views: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			start := time.Now()
			refreshed, _ := svc.RefreshMaterializedViews()
			log.Printf("[INFO] ✅ refresh %d materialized views dalam %s", len(refreshed), time.Since(start))
			feedbackService.LogEvent(db, "info", "optimization", "materialized views direfresh", map[string]any{
				"refreshed":   refreshed,
				"duration_ms": time.Since(start).Milliseconds(),
			})
		}
	}()

	log.Printf("[INFO] View refresh scheduler aktif (interval %s)", interval)
}
