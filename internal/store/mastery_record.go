package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Load(ctx context.Context, userID, subject, chapter, topic string) (*MasteryRecordData, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.Subject(subject),
			masteryrecord.Chapter(chapter),
			masteryrecord.Topic(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return entRecordToData(rec), nil
}

func (r *masteryRepo) Save(ctx context.Context, rec *MasteryRecordData) error {
	if rec.Version == 0 {
		// First save for this key: plain create. The unique index
		// rejects a concurrent create of the same key.
		builder := r.client.MasteryRecord.Create().
			SetUserID(rec.UserID).
			SetSubject(rec.Subject).
			SetChapter(rec.Chapter).
			SetTopic(rec.Topic).
			SetLevel(rec.Level).
			SetAccuracy(rec.Accuracy).
			SetQuestionsAttempted(rec.QuestionsAttempted).
			SetStuckDays(rec.StuckDays).
			SetReviewCount(rec.ReviewCount).
			SetVersion(1)
		if rec.LastPracticed != nil {
			builder = builder.SetLastPracticed(*rec.LastPracticed)
		}
		if rec.LastReviewed != nil {
			builder = builder.SetLastReviewed(*rec.LastReviewed)
		}
		_, err := builder.Save(ctx)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrVersionConflict
			}
			return fmt.Errorf("create mastery record: %w", err)
		}
		rec.Version = 1
		return nil
	}

	builder := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.UserID(rec.UserID),
			masteryrecord.Subject(rec.Subject),
			masteryrecord.Chapter(rec.Chapter),
			masteryrecord.Topic(rec.Topic),
			masteryrecord.Version(rec.Version),
		).
		SetLevel(rec.Level).
		SetAccuracy(rec.Accuracy).
		SetQuestionsAttempted(rec.QuestionsAttempted).
		SetStuckDays(rec.StuckDays).
		SetReviewCount(rec.ReviewCount).
		SetVersion(rec.Version + 1)
	if rec.LastPracticed != nil {
		builder = builder.SetLastPracticed(*rec.LastPracticed)
	}
	if rec.LastReviewed != nil {
		builder = builder.SetLastReviewed(*rec.LastReviewed)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	if n == 0 {
		return ErrVersionConflict
	}
	rec.Version++
	return nil
}

func (r *masteryRepo) ForUser(ctx context.Context, userID string) ([]*MasteryRecordData, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID)).
		Order(
			ent.Asc(masteryrecord.FieldSubject),
			ent.Asc(masteryrecord.FieldChapter),
			ent.Asc(masteryrecord.FieldTopic),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	result := make([]*MasteryRecordData, len(recs))
	for i, rec := range recs {
		result[i] = entRecordToData(rec)
	}
	return result, nil
}

func (r *masteryRepo) DeleteForUser(ctx context.Context, userID string) error {
	_, err := r.client.MasteryRecord.Delete().
		Where(masteryrecord.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete mastery records: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is the unique-index rejection
// of a duplicate (user, subject, chapter, topic) create. Other
// constraint failures keep their own error.
func isUniqueViolation(err error) bool {
	return ent.IsConstraintError(err) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func entRecordToData(rec *ent.MasteryRecord) *MasteryRecordData {
	return &MasteryRecordData{
		UserID:             rec.UserID,
		Subject:            rec.Subject,
		Chapter:            rec.Chapter,
		Topic:              rec.Topic,
		Level:              rec.Level,
		Accuracy:           rec.Accuracy,
		QuestionsAttempted: rec.QuestionsAttempted,
		LastPracticed:      rec.LastPracticed,
		StuckDays:          rec.StuckDays,
		LastReviewed:       rec.LastReviewed,
		ReviewCount:        rec.ReviewCount,
		Version:            rec.Version,
	}
}
