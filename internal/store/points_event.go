package store

import (
	"context"
	"fmt"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/pointsevent"
)

func (r *eventRepo) AppendPoints(ctx context.Context, data PointsEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PointsEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetPoints(data.Points).
		SetStreakLength(data.StreakLength).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save points event: %w", err)
	}
	return nil
}

func (r *eventRepo) TotalPoints(ctx context.Context, userID string) (int, error) {
	var total []struct {
		Sum int `json:"sum"`
	}
	err := r.client.PointsEvent.Query().
		Where(pointsevent.UserID(userID)).
		Aggregate(ent.Sum(pointsevent.FieldPoints)).
		Scan(ctx, &total)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	if len(total) == 0 {
		return 0, nil
	}
	return total[0].Sum, nil
}
