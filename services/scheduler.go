package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartFundingScheduler closes out fully funded packages in the background.
// Every minute, Active packages whose funding progress reached 100% move to
// "Funded" and stop appearing in the investor listing.
func (s *AdminService) StartFundingScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(s.closeOutFundedPackages),
	)
}

func (s *AdminService) closeOutFundedPackages() {
	packages, err := s.Store.Packages()
	if err != nil {
		log.Printf("[Scheduler] store error: %v", err)
		return
	}

	for _, p := range packages {
		if p.Status != "Active" || p.FundingProgress < 100 {
			continue
		}
		p.Status = "Funded"
		if err := s.Store.SavePackage(p); err != nil {
			log.Printf("[Scheduler] Failed to close out package %d: %v", p.ID, err)
		} else {
			log.Printf("✅ Funding complete, closed out package: %s", p.Title)
		}
	}
}
