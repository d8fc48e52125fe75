// Package reminder runs the background loop that nudges users about
// due revisions.
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/rushil/prepd/internal/mastery"
	"github.com/rushil/prepd/internal/revision"
	"github.com/rushil/prepd/internal/store"
)

// DefaultCheckHour is when the daily reminder fires, in local time.
const DefaultCheckHour = 8

// Notifier delivers a reminder to the user. The CLI ships a terminal
// notifier; tests substitute a recorder.
type Notifier interface {
	NotifyDueRevisions(userID string, items []revision.Item) error
}

// Service owns the gocron loop and the manual check path.
type Service struct {
	scheduler *gocron.Scheduler
	repo      store.MasteryRepo
	revisions *revision.Scheduler
	notifier  Notifier
}

func New(repo store.MasteryRepo, revisions *revision.Scheduler, notifier Notifier) *Service {
	return &Service{
		scheduler: gocron.NewScheduler(time.Local),
		repo:      repo,
		revisions: revisions,
		notifier:  notifier,
	}
}

// Start schedules the daily check and returns immediately.
func (s *Service) Start(userID string, hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("check hour %d out of range", hour)
	}
	_, err := s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", hour)).Do(func() {
		if err := s.Check(context.Background(), userID); err != nil {
			log.Printf("reminder check failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the background loop.
func (s *Service) Stop() {
	s.scheduler.Stop()
}

// Check looks up the user's due revisions and notifies when there are
// any. Also the path behind the manual `remind --now` check.
func (s *Service) Check(ctx context.Context, userID string) error {
	data, err := s.repo.ForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load mastery records: %w", err)
	}

	records := make([]*mastery.Record, len(data))
	for i, d := range data {
		records[i] = &mastery.Record{
			UserID:             d.UserID,
			Key:                mastery.TopicKey{Subject: d.Subject, Chapter: d.Chapter, Topic: d.Topic},
			Level:              mastery.Level(d.Level),
			Accuracy:           d.Accuracy,
			QuestionsAttempted: d.QuestionsAttempted,
			LastPracticed:      d.LastPracticed,
			LastReviewed:       d.LastReviewed,
			ReviewCount:        d.ReviewCount,
		}
	}

	due := s.revisions.DueToday(records)
	if len(due) == 0 {
		return nil
	}
	if err := s.notifier.NotifyDueRevisions(userID, due); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
