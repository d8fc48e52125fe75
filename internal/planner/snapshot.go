package planner

import (
	"encoding/json"
	"fmt"

	"github.com/rushil/prepd/internal/store"
)

// Snapshot converts a plan into its stored blob form.
func Snapshot(plan *WeeklyPlan) (*store.PlanSnapshotData, error) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	return &store.PlanSnapshotData{
		UserID:      plan.UserID,
		PlanID:      plan.ID,
		GeneratedAt: plan.GeneratedAt,
		Data:        data,
	}, nil
}

// FromSnapshot decodes a stored blob back into a plan.
func FromSnapshot(snap *store.PlanSnapshotData) (*WeeklyPlan, error) {
	raw, err := json.Marshal(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", snap.PlanID, err)
	}
	var plan WeeklyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", snap.PlanID, err)
	}
	return &plan, nil
}
