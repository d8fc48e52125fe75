package revision

import (
	"sort"
	"time"

	"github.com/rushil/prepd/internal/mastery"
)

// Item is one topic's place in the review queue.
type Item struct {
	Key    mastery.TopicKey
	Level  mastery.Level
	Topic  string
	UserID string

	Retention      float64
	MemoryStrength float64
	Urgency        Urgency
	DaysSince      float64
	IntervalDays   int
	NextReview     time.Time
}

// Scheduler builds review queues from mastery records.
type Scheduler struct {
	// Now is the injected clock; tests substitute a fixed time.
	Now func() time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{Now: time.Now}
}

// Schedule computes the full review queue, most urgent first. Topics
// below the attempt floor, and topics never practiced at all, are left
// out.
//
// Ties inside an urgency bucket break on ascending retention so the
// most-forgotten topic surfaces first, then on the topic key so the
// order is stable run to run.
func (s *Scheduler) Schedule(records []*mastery.Record) []Item {
	now := s.Now().UTC()
	items := make([]Item, 0, len(records))

	for _, rec := range records {
		item, ok := s.itemFor(rec, now)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Urgency != items[j].Urgency {
			return items[i].Urgency > items[j].Urgency
		}
		if items[i].Retention != items[j].Retention {
			return items[i].Retention < items[j].Retention
		}
		return items[i].Key.String() < items[j].Key.String()
	})
	return items
}

// DueToday filters the schedule down to items whose next review date
// is today or earlier.
func (s *Scheduler) DueToday(records []*mastery.Record) []Item {
	now := s.Now().UTC()
	endOfDay := now.Truncate(24 * time.Hour).Add(24 * time.Hour)

	all := s.Schedule(records)
	due := all[:0:0]
	for _, item := range all {
		if item.NextReview.Before(endOfDay) {
			due = append(due, item)
		}
	}
	return due
}

func (s *Scheduler) itemFor(rec *mastery.Record, now time.Time) (Item, bool) {
	if rec.QuestionsAttempted < MinAttemptsForScheduling {
		return Item{}, false
	}

	// Reviews anchor on the last explicit review; before the first one
	// the last practice session stands in.
	anchor := rec.LastReviewed
	if anchor == nil {
		anchor = rec.LastPracticed
	}
	if anchor == nil {
		return Item{}, false
	}

	days := now.Sub(*anchor).Hours() / 24
	if days < 0 {
		days = 0
	}

	strength := MemoryStrength(rec.Accuracy, rec.ReviewCount)
	retention := Retention(days, strength)
	interval := IntervalDays(rec.Accuracy, rec.QuestionsAttempted)

	return Item{
		Key:            rec.Key,
		Level:          rec.Level,
		Topic:          rec.Key.Topic,
		UserID:         rec.UserID,
		Retention:      retention,
		MemoryStrength: strength,
		Urgency:        ClassifyUrgency(retention, days),
		DaysSince:      days,
		IntervalDays:   interval,
		NextReview:     anchor.AddDate(0, 0, interval),
	}, true
}
