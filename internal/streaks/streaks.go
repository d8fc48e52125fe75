// Package streaks tracks consecutive correct answers and awards points
// for sustained practice.
package streaks

import (
	"context"
	"fmt"

	"github.com/rushil/prepd/internal/store"
)

// PointsPerCorrect is the base award for each correct answer.
const PointsPerCorrect = 10

// NextStreakThreshold returns the next streak milestone above the
// current streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, award every 5.
	return ((current / 5) + 1) * 5
}

// StreakBonus returns the bonus points for hitting a streak milestone,
// or 0 when the length is not a milestone. Longer streaks pay more.
func StreakBonus(length int) int {
	if length < 5 || length%5 != 0 {
		return 0
	}
	return length * 2
}

// Award is the outcome of recording one answer.
type Award struct {
	Points       int
	Streak       int
	MilestoneHit bool
	Reason       string
}

// Service manages streak state and point awards.
type Service struct {
	events store.EventRepo
}

func NewService(events store.EventRepo) *Service {
	return &Service{events: events}
}

// RecordAnswer awards points for an answer. A correct answer earns the
// base points plus a bonus when it completes a streak milestone; a
// wrong answer breaks the streak and earns nothing.
func (s *Service) RecordAnswer(ctx context.Context, userID string, correct bool) (*Award, error) {
	if !correct {
		return &Award{}, nil
	}

	streak, err := s.events.CurrentStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}

	award := &Award{
		Points: PointsPerCorrect,
		Streak: streak,
		Reason: "correct answer",
	}
	if bonus := StreakBonus(streak); bonus > 0 {
		award.Points += bonus
		award.MilestoneHit = true
		award.Reason = fmt.Sprintf("%d correct in a row!", streak)
	}

	err = s.events.AppendPoints(ctx, store.PointsEventData{
		UserID:       userID,
		Points:       award.Points,
		StreakLength: streak,
		Reason:       award.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("award points: %w", err)
	}
	return award, nil
}

// Summary is the user's lifetime points and current streak.
type Summary struct {
	TotalPoints   int
	CurrentStreak int
	NextMilestone int
}

// Summarize reports the user's current standing.
func (s *Service) Summarize(ctx context.Context, userID string) (*Summary, error) {
	total, err := s.events.TotalPoints(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	streak, err := s.events.CurrentStreak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	return &Summary{
		TotalPoints:   total,
		CurrentStreak: streak,
		NextMilestone: NextStreakThreshold(streak),
	}, nil
}
