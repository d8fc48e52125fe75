package mastery

import (
	"fmt"
	"time"
)

// TopicKey identifies one topic within the syllabus hierarchy.
type TopicKey struct {
	Subject string
	Chapter string
	Topic   string
}

func (k TopicKey) String() string {
	return k.Subject + "/" + k.Chapter + "/" + k.Topic
}

// Record holds all mastery state for a single (user, topic) pair.
// Created on the first answered question; mutated exactly once per
// answer; never deleted.
type Record struct {
	UserID string
	Key    TopicKey

	Level              Level
	Accuracy           float64 // running percentage [0,100] at the current level
	QuestionsAttempted int     // attempts since the last level change
	LastPracticed      *time.Time
	StuckDays          int

	// Review bookkeeping for the revision scheduler.
	LastReviewed *time.Time
	ReviewCount  int

	// Version is the store's optimistic concurrency token.
	Version int64
}

// NewRecord returns a fresh Foundation-level record for a topic.
func NewRecord(userID string, key TopicKey) *Record {
	return &Record{
		UserID: userID,
		Key:    key,
		Level:  LevelFoundation,
	}
}

// Validate fails fast on malformed state rather than clamping, since
// clamping would mask upstream bugs.
func (r *Record) Validate() error {
	if r.Accuracy < 0 || r.Accuracy > 100 {
		return &InvalidInputError{Field: "accuracy", Value: r.Accuracy}
	}
	if r.QuestionsAttempted < 0 {
		return &InvalidInputError{Field: "questionsAttempted", Value: float64(r.QuestionsAttempted)}
	}
	if r.StuckDays < 0 {
		return &InvalidInputError{Field: "stuckDays", Value: float64(r.StuckDays)}
	}
	if r.ReviewCount < 0 {
		return &InvalidInputError{Field: "reviewCount", Value: float64(r.ReviewCount)}
	}
	if r.Level < LevelFoundation || r.Level > LevelMastered {
		return &InvalidInputError{Field: "level", Value: float64(r.Level)}
	}
	return nil
}

// InvalidInputError reports a field outside its documented domain.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}
