package store

import (
	"context"
	"fmt"

	"github.com/rushil/prepd/ent"
	"github.com/rushil/prepd/ent/plansnapshot"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, snap *PlanSnapshotData) error {
	_, err := r.client.PlanSnapshot.Create().
		SetUserID(snap.UserID).
		SetPlanID(snap.PlanID).
		SetGeneratedAt(snap.GeneratedAt).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan snapshot: %w", err)
	}
	return nil
}

func (r *planRepo) Latest(ctx context.Context, userID string) (*PlanSnapshotData, error) {
	s, err := r.client.PlanSnapshot.Query().
		Where(plansnapshot.UserID(userID)).
		Order(ent.Desc(plansnapshot.FieldGeneratedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest plan: %w", err)
	}
	return &PlanSnapshotData{
		UserID:      s.UserID,
		PlanID:      s.PlanID,
		GeneratedAt: s.GeneratedAt,
		Data:        s.Data,
	}, nil
}

func (r *planRepo) Prune(ctx context.Context, userID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent plan.
	snapshots, err := r.client.PlanSnapshot.Query().
		Where(plansnapshot.UserID(userID)).
		Order(ent.Desc(plansnapshot.FieldGeneratedAt)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query plans for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep plans exist
	}

	threshold := snapshots[0].GeneratedAt
	_, err = r.client.PlanSnapshot.Delete().
		Where(
			plansnapshot.UserID(userID),
			plansnapshot.GeneratedAtLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune plans: %w", err)
	}
	return nil
}
