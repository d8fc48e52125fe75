package mastery

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rushil/prepd/internal/store"
)

// Tracker is the stateful per-(user, topic) mastery service. It ingests
// answered questions, maintains the running accuracy, and applies the
// level transition rules.
type Tracker struct {
	cfg    Config
	repo   store.MasteryRepo
	events store.EventRepo
	locks  *keyMutex

	// Now is the injected clock; tests substitute a fixed time.
	Now func() time.Time
}

// NewTracker creates a tracker backed by the given repositories.
func NewTracker(cfg Config, repo store.MasteryRepo, events store.EventRepo) *Tracker {
	return &Tracker{
		cfg:    cfg,
		repo:   repo,
		events: events,
		locks:  newKeyMutex(),
		Now:    time.Now,
	}
}

// Result is the outcome of recording one answer.
type Result struct {
	Record      *Record
	LeveledUp   bool
	LeveledDown bool
	Message     string
}

// RecordAnswer updates the mastery record for one answered question and
// returns the transition outcome.
//
// Updates for the same (user, topic) are serialized with a per-key
// mutex; the accuracy reconstruction below is a read-modify-write that
// must not interleave. Cross-process writers are caught by the store's
// version check instead.
func (t *Tracker) RecordAnswer(ctx context.Context, userID string, key TopicKey, correct bool) (*Result, error) {
	lock := t.locks.get(userID + "\x00" + key.String())
	lock.Lock()
	defer lock.Unlock()

	rec, err := t.load(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = NewRecord(userID, key)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	// Accuracy is stored as a percentage, so the correct count is
	// reconstructed from it. The small rounding drift is a documented
	// approximation, not a bug to fix.
	correctSoFar := int(math.Round(rec.Accuracy / 100 * float64(rec.QuestionsAttempted)))
	if correct {
		correctSoFar++
	}
	attempts := rec.QuestionsAttempted + 1
	newAccuracy := float64(correctSoFar) / float64(attempts) * 100

	now := t.Now().UTC()
	if newAccuracy > rec.Accuracy {
		rec.StuckDays = 0
	} else if newAccuracy < t.cfg.WeakAccuracy && rec.LastPracticed != nil {
		rec.StuckDays += wholeDays(now.Sub(*rec.LastPracticed))
	}

	answeredAt := rec.Level
	rec.Accuracy = newAccuracy
	rec.QuestionsAttempted = attempts
	rec.LastPracticed = &now

	result := &Result{Record: rec}
	switch {
	case rec.ShouldLevelUp(t.cfg):
		t.transition(ctx, rec, rec.Level+1, "threshold-met")
		result.LeveledUp = true
		result.Message = fmt.Sprintf("Level up! %s is now %s.", key.Topic, rec.Level.DisplayName())
	case rec.ShouldLevelDown(t.cfg):
		t.transition(ctx, rec, rec.Level-1, "accuracy-floor")
		result.LeveledDown = true
		result.Message = fmt.Sprintf("%s dropped back to %s. Revisit the basics.", key.Topic, rec.Level.DisplayName())
	}

	if err := t.repo.Save(ctx, dataFromRecord(rec)); err != nil {
		return nil, fmt.Errorf("save mastery record: %w", err)
	}
	rec.Version++

	if t.events != nil {
		_ = t.events.AppendAnswer(ctx, store.AnswerEventData{
			UserID:  userID,
			Subject: key.Subject,
			Chapter: key.Chapter,
			Topic:   key.Topic,
			Correct: correct,
			Level:   int(answeredAt),
		})
	}

	return result, nil
}

// transition moves the record to a new level. Attempts and accuracy
// restart from zero at the new level.
func (t *Tracker) transition(ctx context.Context, rec *Record, to Level, trigger string) {
	from := rec.Level
	accuracy := rec.Accuracy

	rec.Level = to
	rec.Accuracy = 0
	rec.QuestionsAttempted = 0
	rec.StuckDays = 0

	if t.events != nil {
		_ = t.events.AppendMastery(ctx, store.MasteryEventData{
			UserID:    rec.UserID,
			Subject:   rec.Key.Subject,
			Chapter:   rec.Key.Chapter,
			Topic:     rec.Key.Topic,
			FromLevel: int(from),
			ToLevel:   int(to),
			Trigger:   trigger,
			Accuracy:  accuracy,
		})
	}
}

// MarkReviewed records a completed revision session for a topic.
func (t *Tracker) MarkReviewed(ctx context.Context, userID string, key TopicKey) (*Record, error) {
	lock := t.locks.get(userID + "\x00" + key.String())
	lock.Lock()
	defer lock.Unlock()

	rec, err := t.load(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("no mastery record for %s", key)
	}

	now := t.Now().UTC()
	rec.LastReviewed = &now
	rec.ReviewCount++

	if err := t.repo.Save(ctx, dataFromRecord(rec)); err != nil {
		return nil, fmt.Errorf("save mastery record: %w", err)
	}
	rec.Version++
	return rec, nil
}

// ForUser returns all of a user's mastery records.
func (t *Tracker) ForUser(ctx context.Context, userID string) ([]*Record, error) {
	data, err := t.repo.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}
	records := make([]*Record, len(data))
	for i, d := range data {
		records[i] = recordFromData(d)
	}
	return records, nil
}

func (t *Tracker) load(ctx context.Context, userID string, key TopicKey) (*Record, error) {
	data, err := t.repo.Load(ctx, userID, key.Subject, key.Chapter, key.Topic)
	if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return recordFromData(data), nil
}

func wholeDays(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

func recordFromData(d *store.MasteryRecordData) *Record {
	return &Record{
		UserID:             d.UserID,
		Key:                TopicKey{Subject: d.Subject, Chapter: d.Chapter, Topic: d.Topic},
		Level:              Level(d.Level),
		Accuracy:           d.Accuracy,
		QuestionsAttempted: d.QuestionsAttempted,
		LastPracticed:      d.LastPracticed,
		StuckDays:          d.StuckDays,
		LastReviewed:       d.LastReviewed,
		ReviewCount:        d.ReviewCount,
		Version:            d.Version,
	}
}

func dataFromRecord(r *Record) *store.MasteryRecordData {
	return &store.MasteryRecordData{
		UserID:             r.UserID,
		Subject:            r.Key.Subject,
		Chapter:            r.Key.Chapter,
		Topic:              r.Key.Topic,
		Level:              int(r.Level),
		Accuracy:           r.Accuracy,
		QuestionsAttempted: r.QuestionsAttempted,
		LastPracticed:      r.LastPracticed,
		StuckDays:          r.StuckDays,
		LastReviewed:       r.LastReviewed,
		ReviewCount:        r.ReviewCount,
		Version:            r.Version,
	}
}
