package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSubject(data.Subject).
		SetChapter(data.Chapter).
		SetTopic(data.Topic).
		SetFromLevel(data.FromLevel).
		SetToLevel(data.ToLevel).
		SetTrigger(data.Trigger).
		SetAccuracy(data.Accuracy).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
