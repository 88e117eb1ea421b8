package utils

import (
	"context"
	"log"
	"sdf/cache"
	"sdf/database"
	"sdf/models"

	"github.com/robfig/cron/v3"
)

// InitializeAggregateScheduler starts the periodic pass that keeps each
// cause's raised total equal to the sum of its completed donations. Raised is
// updated transactionally on every completion, so this only has to repair
// drift (crashed requests, manual database edits).
func InitializeAggregateScheduler() *cron.Cron {
	log.Println("[AGGREGATE-SCHEDULER] Initializing cause aggregate scheduler...")

	c := cron.New()

	c.AddFunc("@every 15m", func() {
		ReconcileCauseTotals()
	})

	c.Start()
	log.Println("[AGGREGATE-SCHEDULER] Cause aggregate scheduler started - runs every 15 minutes")
	return c
}

// ReconcileCauseTotals recomputes raised for every cause and fixes mismatches.
func ReconcileCauseTotals() {
	db := database.Database.Db

	var causes []models.Cause
	if err := db.Where("is_deleted = false").Find(&causes).Error; err != nil {
		log.Printf("[AGGREGATE-SCHEDULER] Error fetching causes: %v", err)
		return
	}

	fixed := 0
	for _, cause := range causes {
		var total int64
		if err := db.Model(&models.Donation{}).
			Where("cause_id = ? AND status = ? AND is_deleted = false", cause.ID, models.DonationStatusCompleted).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error; err != nil {
			log.Printf("[AGGREGATE-SCHEDULER] Error summing donations for cause %d: %v", cause.ID, err)
			continue
		}

		if uint(total) != cause.Raised {
			if err := db.Model(&models.Cause{}).Where("id = ?", cause.ID).
				Update("raised", uint(total)).Error; err != nil {
				log.Printf("[AGGREGATE-SCHEDULER] Error updating cause %d: %v", cause.ID, err)
				continue
			}
			log.Printf("[AGGREGATE-SCHEDULER] Reconciled cause %d raised %d -> %d", cause.ID, cause.Raised, total)
			fixed++
		}
	}

	if fixed > 0 {
		cache.Store.Delete(context.Background(), cache.CausesKey)
	}
}
