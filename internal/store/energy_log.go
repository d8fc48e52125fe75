package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/energylog"
)

// energyRepo implements EnergyRepo using the ent client.
type energyRepo struct {
	client *ent.Client
}

func (r *energyRepo) Append(ctx context.Context, userID string, log *EnergyLogData) error {
	day := log.Date.UTC().Truncate(24 * time.Hour)

	// One log per user per day: re-logging replaces the day's entry.
	n, err := r.client.EnergyLog.Update().
		Where(
			energylog.UserID(userID),
			energylog.Date(day),
		).
		SetStudyHours(log.StudyHours).
		SetQuestionsAttempted(log.QuestionsAttempted).
		SetAccuracy(log.Accuracy).
		SetLateNightStudy(log.LateNightStudy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update energy log: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.EnergyLog.Create().
		SetUserID(userID).
		SetDate(day).
		SetStudyHours(log.StudyHours).
		SetQuestionsAttempted(log.QuestionsAttempted).
		SetAccuracy(log.Accuracy).
		SetLateNightStudy(log.LateNightStudy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create energy log: %w", err)
	}
	return nil
}

func (r *energyRepo) Recent(ctx context.Context, userID string, days int, now time.Time) ([]*EnergyLogData, error) {
	since := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	logs, err := r.client.EnergyLog.Query().
		Where(
			energylog.UserID(userID),
			energylog.DateGTE(since),
		).
		Order(ent.Asc(energylog.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query energy logs: %w", err)
	}

	result := make([]*EnergyLogData, len(logs))
	for i, l := range logs {
		result[i] = &EnergyLogData{
			Date:               l.Date,
			StudyHours:         l.StudyHours,
			QuestionsAttempted: l.QuestionsAttempted,
			Accuracy:           l.Accuracy,
			LateNightStudy:     l.LateNightStudy,
		}
	}
	return result, nil
}
