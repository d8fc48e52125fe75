package store

import (
	"context"
	"errors"
	"time"
)

// ErrVersionConflict is returned by MasteryRepo.Save when the record was
// modified by another writer since it was loaded. The caller decides
// whether to reload and retry; the store never retries silently.
var ErrVersionConflict = errors.New("mastery record version conflict")

// MasteryRecordData is the persisted shape of a topic mastery record.
// Domain packages convert to and from their own types.
type MasteryRecordData struct {
	UserID             string
	Subject            string
	Chapter            string
	Topic              string
	Level              int
	Accuracy           float64 // running percentage [0,100]
	QuestionsAttempted int     // attempts since last level change
	LastPracticed      *time.Time
	StuckDays          int
	LastReviewed       *time.Time
	ReviewCount        int
	Version            int64
}

// MasteryRepo manages canonical topic mastery records.
type MasteryRepo interface {
	// Load returns the record for the key, or nil if none exists yet.
	// A missing record is not an error: the tracker initializes fresh.
	Load(ctx context.Context, userID, subject, chapter, topic string) (*MasteryRecordData, error)

	// Save upserts the record, guarded by the version token. Returns
	// ErrVersionConflict if another writer won the race.
	Save(ctx context.Context, rec *MasteryRecordData) error

	// ForUser returns all records for a user.
	ForUser(ctx context.Context, userID string) ([]*MasteryRecordData, error)

	// DeleteForUser removes all records for a user.
	DeleteForUser(ctx context.Context, userID string) error
}

// EnergyLogData is one day's study summary.
type EnergyLogData struct {
	Date               time.Time
	StudyHours         float64
	QuestionsAttempted int
	Accuracy           float64
	LateNightStudy     bool
}

// EnergyRepo manages daily energy logs.
type EnergyRepo interface {
	// Append records a day's log. Re-logging the same day replaces
	// that day's entry; there is at most one log per user per day.
	Append(ctx context.Context, userID string, log *EnergyLogData) error

	// Recent returns logs from the last `days` days, oldest first.
	Recent(ctx context.Context, userID string, days int, now time.Time) ([]*EnergyLogData, error)
}

// TopicData is one syllabus entry.
type TopicData struct {
	Subject   string
	Chapter   string
	Name      string
	Weightage int
}

// TopicRepo manages the syllabus topic catalog.
type TopicRepo interface {
	// Upsert inserts or updates a topic. Reports whether a new row
	// was created.
	Upsert(ctx context.Context, t *TopicData) (bool, error)

	// All returns the full catalog ordered by subject, chapter, name.
	All(ctx context.Context) ([]*TopicData, error)
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	UserID  string
	Subject string
	Chapter string
	Topic   string
	Correct bool
	Level   int
}

// MasteryEventData captures a level transition.
type MasteryEventData struct {
	UserID    string
	Subject   string
	Chapter   string
	Topic     string
	FromLevel int
	ToLevel   int
	Trigger   string
	Accuracy  float64
}

// PointsEventData captures a points award.
type PointsEventData struct {
	UserID       string
	Points       int
	StreakLength int
	Reason       string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendMastery(ctx context.Context, data MasteryEventData) error
	AppendPoints(ctx context.Context, data PointsEventData) error

	// CurrentStreak returns the length of the user's trailing run of
	// correct answers.
	CurrentStreak(ctx context.Context, userID string) (int, error)

	// TotalPoints returns the sum of all points awarded to the user.
	TotalPoints(ctx context.Context, userID string) (int, error)
}

// PlanSnapshotData is a stored weekly plan blob.
type PlanSnapshotData struct {
	UserID      string
	PlanID      string
	GeneratedAt time.Time
	Data        map[string]any
}

// PlanRepo stores generated weekly plans. Plans are replaced wholesale
// on regeneration, never patched.
type PlanRepo interface {
	// Save stores a newly generated plan.
	Save(ctx context.Context, snap *PlanSnapshotData) error

	// Latest returns the most recent plan for the user, or nil.
	Latest(ctx context.Context, userID string) (*PlanSnapshotData, error)

	// Prune deletes all but the N most recent plans for the user.
	Prune(ctx context.Context, userID string, keep int) error
}
