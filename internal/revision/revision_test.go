package revision

import (
	"math"
	"testing"
	"time"

	"github.com/rushil/prepd/internal/mastery"
)

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		attempts int
		want     int
	}{
		{"fresh topic", 90, 5, 1},
		{"first step", 90, 10, 3},
		{"third step", 90, 30, 15},
		{"capped", 90, 500, 60},
		{"shaky pulls back one", 70, 30, 7},
		{"weak pulls back two", 50, 30, 3},
		{"pullback floors at first rung", 50, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntervalDays(tt.accuracy, tt.attempts); got != tt.want {
				t.Errorf("IntervalDays(%v, %d) = %d, want %d", tt.accuracy, tt.attempts, got, tt.want)
			}
		})
	}
}

func TestRetention_Decays(t *testing.T) {
	strength := MemoryStrength(90, 3)
	if strength != 20 {
		t.Fatalf("strength = %v, want 20", strength)
	}

	prev := Retention(0, strength)
	if prev != 100 {
		t.Errorf("retention at day 0 = %v, want 100", prev)
	}
	for days := 1.0; days <= 90; days++ {
		r := Retention(days, strength)
		if r >= prev {
			t.Fatalf("retention did not decay at day %v: %v >= %v", days, r, prev)
		}
		if r < 0 || r > 100 {
			t.Fatalf("retention %v out of range at day %v", r, days)
		}
		prev = r
	}
}

func TestRetention_StrongerMemoryRetainsMore(t *testing.T) {
	weak := Retention(10, MemoryStrength(40, 0))
	strong := Retention(10, MemoryStrength(95, 5))
	if strong <= weak {
		t.Errorf("strong memory retained %v, weak %v", strong, weak)
	}
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name      string
		retention float64
		days      float64
		want      Urgency
	}{
		{"long overdue", 80, 40, UrgencyCritical},
		{"nearly forgotten", 13.5, 5, UrgencyCritical},
		{"half forgotten", 45, 5, UrgencyHigh},
		{"two weeks idle", 80, 16, UrgencyHigh},
		{"fading", 65, 5, UrgencyMedium},
		{"week idle", 90, 8, UrgencyMedium},
		{"fresh", 90, 2, UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyUrgency(tt.retention, tt.days); got != tt.want {
				t.Errorf("ClassifyUrgency(%v, %v) = %v, want %v", tt.retention, tt.days, got, tt.want)
			}
		})
	}
}

func TestScheduler_OverdueTopicIsCritical(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reviewed := now.AddDate(0, 0, -40)

	s := NewScheduler()
	s.Now = func() time.Time { return now }

	items := s.Schedule([]*mastery.Record{{
		UserID:             "u1",
		Key:                mastery.TopicKey{Subject: "Chemistry", Chapter: "Organic", Topic: "Alkenes"},
		Level:              mastery.LevelAdvanced,
		Accuracy:           90,
		QuestionsAttempted: 42,
		LastReviewed:       &reviewed,
		ReviewCount:        3,
	}})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	item := items[0]
	if item.Urgency != UrgencyCritical {
		t.Errorf("urgency = %v, want critical", item.Urgency)
	}
	if math.Abs(item.Retention-100*math.Exp(-2)) > 0.01 {
		t.Errorf("retention = %v, want ~13.53", item.Retention)
	}
}

func TestScheduler_SortsMostUrgentFirst(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Now = func() time.Time { return now }

	recent := now.AddDate(0, 0, -2)
	stale := now.AddDate(0, 0, -40)
	fading := now.AddDate(0, 0, -9)

	records := []*mastery.Record{
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "fresh"},
			Accuracy: 90, QuestionsAttempted: 20, LastReviewed: &recent, ReviewCount: 2},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "stale"},
			Accuracy: 90, QuestionsAttempted: 20, LastReviewed: &stale, ReviewCount: 2},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "fading"},
			Accuracy: 90, QuestionsAttempted: 20, LastReviewed: &fading, ReviewCount: 2},
	}

	items := s.Schedule(records)
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	got := []string{items[0].Topic, items[1].Topic, items[2].Topic}
	want := []string{"stale", "fading", "fresh"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].Urgency > items[i-1].Urgency {
			t.Errorf("urgency order broken at %d", i)
		}
	}
}

func TestScheduler_SkipsThinAndUnpracticedTopics(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Now = func() time.Time { return now }

	practiced := now.AddDate(0, 0, -5)
	records := []*mastery.Record{
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "thin"},
			Accuracy: 100, QuestionsAttempted: 4, LastReviewed: &practiced},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "never"},
			Accuracy: 80, QuestionsAttempted: 12},
	}

	if items := s.Schedule(records); len(items) != 0 {
		t.Errorf("items = %d, want 0", len(items))
	}
}

func TestScheduler_FallsBackToLastPracticed(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Now = func() time.Time { return now }

	practiced := now.AddDate(0, 0, -10)
	items := s.Schedule([]*mastery.Record{{
		UserID:             "u1",
		Key:                mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "unreviewed"},
		Accuracy:           80,
		QuestionsAttempted: 12,
		LastPracticed:      &practiced,
	}})
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if math.Abs(items[0].DaysSince-10) > 0.01 {
		t.Errorf("days since = %v, want 10", items[0].DaysSince)
	}
}

func TestScheduler_DueToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewScheduler()
	s.Now = func() time.Time { return now }

	// Interval for 80% accuracy at 12 attempts is 3 days (one rung up,
	// no pullback at 80): reviewed 5 days ago is overdue, yesterday is
	// not.
	overdue := now.AddDate(0, 0, -5)
	fresh := now.AddDate(0, 0, -1)
	records := []*mastery.Record{
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "overdue"},
			Accuracy: 80, QuestionsAttempted: 12, LastReviewed: &overdue},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "P", Chapter: "C", Topic: "fresh"},
			Accuracy: 80, QuestionsAttempted: 12, LastReviewed: &fresh},
	}

	due := s.DueToday(records)
	if len(due) != 1 {
		t.Fatalf("due = %d, want 1", len(due))
	}
	if due[0].Topic != "overdue" {
		t.Errorf("due topic = %s, want overdue", due[0].Topic)
	}
}
