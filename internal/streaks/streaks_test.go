package streaks

import (
	"context"
	"testing"

	"github.com/rushil/prepd/internal/store"
)

type mockEventRepo struct {
	streak int
	total  int
	points []store.PointsEventData
}

func (m *mockEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error   { return nil }
func (m *mockEventRepo) AppendMastery(context.Context, store.MasteryEventData) error { return nil }

func (m *mockEventRepo) AppendPoints(_ context.Context, data store.PointsEventData) error {
	m.points = append(m.points, data)
	m.total += data.Points
	return nil
}

func (m *mockEventRepo) CurrentStreak(context.Context, string) (int, error) { return m.streak, nil }
func (m *mockEventRepo) TotalPoints(context.Context, string) (int, error)   { return m.total, nil }

func TestNextStreakThreshold(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{4, 5},
		{5, 10},
		{12, 15},
		{20, 25},
		{23, 25},
		{25, 30},
		{99, 100},
	}
	for _, tt := range tests {
		if got := NextStreakThreshold(tt.current); got != tt.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestStreakBonus(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{3, 0},
		{5, 10},
		{7, 0},
		{10, 20},
		{25, 50},
	}
	for _, tt := range tests {
		if got := StreakBonus(tt.length); got != tt.want {
			t.Errorf("StreakBonus(%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestRecordAnswer_WrongEarnsNothing(t *testing.T) {
	repo := &mockEventRepo{streak: 3}
	svc := NewService(repo)

	award, err := svc.RecordAnswer(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if award.Points != 0 {
		t.Errorf("points = %d, want 0", award.Points)
	}
	if len(repo.points) != 0 {
		t.Errorf("points events = %d, want 0", len(repo.points))
	}
}

func TestRecordAnswer_BasePoints(t *testing.T) {
	repo := &mockEventRepo{streak: 3}
	svc := NewService(repo)

	award, err := svc.RecordAnswer(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if award.Points != PointsPerCorrect {
		t.Errorf("points = %d, want %d", award.Points, PointsPerCorrect)
	}
	if award.MilestoneHit {
		t.Error("milestone reported at streak 3")
	}
}

func TestRecordAnswer_MilestoneBonus(t *testing.T) {
	repo := &mockEventRepo{streak: 10}
	svc := NewService(repo)

	award, err := svc.RecordAnswer(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if !award.MilestoneHit {
		t.Fatal("expected milestone at streak 10")
	}
	if award.Points != PointsPerCorrect+20 {
		t.Errorf("points = %d, want %d", award.Points, PointsPerCorrect+20)
	}
	if len(repo.points) != 1 || repo.points[0].StreakLength != 10 {
		t.Errorf("points event = %+v", repo.points)
	}
}

func TestSummarize(t *testing.T) {
	repo := &mockEventRepo{streak: 12, total: 340}
	svc := NewService(repo)

	sum, err := svc.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.TotalPoints != 340 || sum.CurrentStreak != 12 || sum.NextMilestone != 15 {
		t.Errorf("summary = %+v", sum)
	}
}
