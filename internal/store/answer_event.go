package store

import (
	"context"
	"fmt"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSubject(data.Subject).
		SetChapter(data.Chapter).
		SetTopic(data.Topic).
		SetCorrect(data.Correct).
		SetLevel(data.Level).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// CurrentStreak walks answer events newest-first and counts the trailing
// run of correct answers. The scan is capped; a streak that long has
// already earned every milestone we award.
func (r *eventRepo) CurrentStreak(ctx context.Context, userID string) (int, error) {
	const scanLimit = 500

	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(scanLimit).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query answer events: %w", err)
	}

	streak := 0
	for _, e := range events {
		if !e.Correct {
			break
		}
		streak++
	}
	return streak, nil
}
