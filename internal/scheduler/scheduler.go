package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"Smart-Fridge-Backend/pkg/expiry"

	"github.com/robfig/cron/v3"
)

const runTimeout = 5 * time.Minute

// Scheduler drives the background expiry scans: a rolling interval scan plus
// full checks at fixed wall-clock times.
type Scheduler struct {
	cron    *cron.Cron
	tracker expiry.TrackerService
}

func New(tracker expiry.TrackerService) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		tracker: tracker,
	}
}

// Start registers the jobs and launches the cron loop. intervalHours controls
// the rolling scan; dailyTimes are "HH:MM" entries for the full daily checks.
func (s *Scheduler) Start(intervalHours int, dailyTimes []string) error {
	if intervalHours <= 0 {
		intervalHours = 12
	}

	spec := fmt.Sprintf("@every %dh", intervalHours)
	if _, err := s.cron.AddFunc(spec, func() {
		s.run("interval scan")
	}); err != nil {
		return err
	}

	for _, t := range dailyTimes {
		parts := strings.Split(t, ":")
		if len(parts) != 2 {
			log.Printf("skipping malformed daily check time %q", t)
			continue
		}
		dailySpec := fmt.Sprintf("%s %s * * *", parts[1], parts[0])
		if _, err := s.cron.AddFunc(dailySpec, func() {
			s.run("daily check")
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	log.Printf("scheduler started: interval %dh, daily checks at %s", intervalHours, strings.Join(dailyTimes, ", "))
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) run(name string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s panicked: %v", name, r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := s.tracker.GenerateAlerts(ctx); err != nil {
		log.Printf("%s failed: %v", name, err)
	}
}
