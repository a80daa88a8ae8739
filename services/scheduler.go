// services/scheduler.go
package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler fires the reminder engine at a fixed interval. It is the only
// background actor in the process; running more than one instance requires
// external mutual exclusion.
type Scheduler struct {
	reminders *ReminderService
	clock     Clock
	interval  time.Duration
	cron      *cron.Cron
}

func NewScheduler(reminders *ReminderService, clock Clock, interval time.Duration) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		clock:     clock,
		interval:  interval,
	}
}

// Start runs one tick immediately, then schedules one tick per interval.
func (s *Scheduler) Start() error {
	s.cron = cron.New()

	s.RunTick()

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.RunTick); err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Dur("interval", s.interval).Msg("Reminder scheduler started")
	return nil
}

// Stop halts the schedule. A tick already in flight runs to completion.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunTick executes one reminder tick. A panicking tick is logged and dropped
// so the schedule keeps firing.
func (s *Scheduler) RunTick() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Reminder tick panicked")
		}
	}()

	now := s.clock.Now()
	first, followUp, expired := s.reminders.ProcessReminders(now)

	log.Info().
		Int("firstReminders", first).
		Int("followUps", followUp).
		Int("expired", expired).
		Msg("Reminder tick completed")
}
