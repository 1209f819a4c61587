package scheduler

import (
	"log"
	"time"

	"stock_insights_backend/services/ingest"

	"github.com/go-co-op/gocron"
)

// Scheduler manages scheduled jobs. Jobs are registered explicitly at
// startup; nothing registers itself process-wide.
type Scheduler struct {
	cron   *gocron.Scheduler
	engine *ingest.Engine
}

// NewScheduler creates a new scheduler instance
func NewScheduler(engine *ingest.Engine) *Scheduler {
	return &Scheduler{
		cron:   gocron.NewScheduler(time.UTC),
		engine: engine,
	}
}

// Start registers and starts all scheduled jobs
func (s *Scheduler) Start() {
	log.Println("Starting scheduler...")

	// Refresh price history for every tracked symbol daily at midnight
	s.cron.Every(1).Day().At("00:00").Do(s.refreshAllJob)

	s.cron.StartAsync()
	log.Println("Scheduler started successfully")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}

// Jobs returns the number of registered jobs
func (s *Scheduler) Jobs() int {
	return s.cron.Len()
}
