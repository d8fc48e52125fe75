package store

import (
	"context"
	"fmt"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/topic"
)

// topicRepo implements TopicRepo using the ent client.
type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Upsert(ctx context.Context, t *TopicData) (bool, error) {
	n, err := r.client.Topic.Update().
		Where(
			topic.Subject(t.Subject),
			topic.Chapter(t.Chapter),
			topic.Name(t.Name),
		).
		SetWeightage(t.Weightage).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("update topic: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	_, err = r.client.Topic.Create().
		SetSubject(t.Subject).
		SetChapter(t.Chapter).
		SetName(t.Name).
		SetWeightage(t.Weightage).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("create topic: %w", err)
	}
	return true, nil
}

func (r *topicRepo) All(ctx context.Context) ([]*TopicData, error) {
	topics, err := r.client.Topic.Query().
		Order(
			ent.Asc(topic.FieldSubject),
			ent.Asc(topic.FieldChapter),
			ent.Asc(topic.FieldName),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}

	result := make([]*TopicData, len(topics))
	for i, t := range topics {
		result[i] = &TopicData{
			Subject:   t.Subject,
			Chapter:   t.Chapter,
			Name:      t.Name,
			Weightage: t.Weightage,
		}
	}
	return result, nil
}
