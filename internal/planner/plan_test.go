package planner

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rushil/prepd/internal/mastery"
)

// json.Marshal sorts map keys, so the output is comparable.
func marshalStable(v any) (string, error) {
	b, err := json.Marshal(v)
	return string(b), err
}

func TestAllocationFor(t *testing.T) {
	tests := []struct {
		days int
		want Allocation
	}{
		{90, Allocation{60, 25, 15}},
		{61, Allocation{60, 25, 15}},
		{60, Allocation{45, 35, 20}},
		{31, Allocation{45, 35, 20}},
		{30, Allocation{30, 45, 25}},
		{15, Allocation{30, 45, 25}},
		{14, Allocation{15, 50, 35}},
		{1, Allocation{15, 50, 35}},
	}
	for _, tt := range tests {
		if got := AllocationFor(tt.days); got != tt.want {
			t.Errorf("AllocationFor(%d) = %+v, want %+v", tt.days, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Category
	}{
		{0, CategoryWeak},
		{59.9, CategoryWeak},
		{60, CategoryMedium},
		{84.9, CategoryMedium},
		{85, CategoryStrong},
		{100, CategoryStrong},
	}
	for _, tt := range tests {
		if got := Categorize(tt.accuracy); got != tt.want {
			t.Errorf("Categorize(%v) = %v, want %v", tt.accuracy, got, tt.want)
		}
	}
}

func TestApportion_SumsExactly(t *testing.T) {
	tests := []struct {
		total   int
		weights []float64
	}{
		{100, []float64{1, 1, 1}},
		{240, []float64{60, 25, 15}},
		{90, []float64{45, 35, 20}},
		{7, []float64{3, 3, 3}},
		{10, []float64{0, 0, 0}},
		{5, []float64{0.1, 99.9}},
	}
	for _, tt := range tests {
		shares := apportion(tt.total, tt.weights)
		sum := 0
		for _, s := range shares {
			if s < 0 {
				t.Errorf("apportion(%d, %v) gave negative share %v", tt.total, tt.weights, shares)
			}
			sum += s
		}
		if sum != tt.total {
			t.Errorf("apportion(%d, %v) = %v, sums to %d", tt.total, tt.weights, shares, sum)
		}
	}
}

func testRecords(now time.Time) []*mastery.Record {
	old := now.AddDate(0, 0, -20)
	recent := now.AddDate(0, 0, -2)
	return []*mastery.Record{
		{UserID: "u1", Key: mastery.TopicKey{Subject: "Physics", Chapter: "Mechanics", Topic: "Friction"},
			Accuracy: 45, QuestionsAttempted: 20, LastPracticed: &old},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "Physics", Chapter: "Mechanics", Topic: "Work"},
			Accuracy: 55, QuestionsAttempted: 30, LastPracticed: &recent},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "Maths", Chapter: "Algebra", Topic: "Quadratics"},
			Accuracy: 72, QuestionsAttempted: 40, LastPracticed: &recent},
		{UserID: "u1", Key: mastery.TopicKey{Subject: "Maths", Chapter: "Algebra", Topic: "Series"},
			Accuracy: 92, QuestionsAttempted: 60, LastPracticed: &recent},
	}
}

func newTestBuilder(now time.Time) *Builder {
	b := NewBuilder()
	b.Now = func() time.Time { return now }
	return b
}

func TestBuild_WeekShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	plan, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, 45)}, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if plan.ID == "" {
		t.Error("plan has no ID")
	}
	if len(plan.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(plan.Days))
	}
	if plan.Allocation != (Allocation{45, 35, 20}) {
		t.Errorf("allocation = %+v", plan.Allocation)
	}

	for i, day := range plan.Days {
		if day.Rest {
			t.Fatalf("unexpected rest on day %d", i)
		}
		if len(day.Sessions) != 3 {
			t.Fatalf("day %d sessions = %d, want 3", i, len(day.Sessions))
		}
		total := 0
		for _, s := range day.Sessions {
			total += s.Minutes
		}
		if total != 240 {
			t.Errorf("day %d minutes = %d, want 240", i, total)
		}
		if day.Sessions[0].Kind != KindStudy || day.Sessions[0].Slot != SlotMorning {
			t.Errorf("day %d morning = %s/%s", i, day.Sessions[0].Slot, day.Sessions[0].Kind)
		}
		if day.Sessions[1].Kind != KindRevision || day.Sessions[1].Slot != SlotAfternoon {
			t.Errorf("day %d afternoon = %s/%s", i, day.Sessions[1].Slot, day.Sessions[1].Kind)
		}
		if day.Sessions[2].Kind != KindMock || day.Sessions[2].Slot != SlotEvening {
			t.Errorf("day %d evening = %s/%s", i, day.Sessions[2].Slot, day.Sessions[2].Kind)
		}
	}
}

func TestBuild_WeakTopicsGetStudyTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	plan, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, 45)}, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	study := plan.Days[0].Sessions[0]
	if len(study.Topics) != 2 {
		t.Fatalf("study topics = %d, want 2", len(study.Topics))
	}
	// Friction: priority (100-45)+20 = 75; Work: (100-55)+2 = 47.
	if study.Topics[0].Key.Topic != "Friction" {
		t.Errorf("top study topic = %s, want Friction", study.Topics[0].Key.Topic)
	}
	if study.Topics[0].Minutes <= study.Topics[1].Minutes {
		t.Errorf("higher priority got %d minutes, lower got %d",
			study.Topics[0].Minutes, study.Topics[1].Minutes)
	}

	revise := plan.Days[0].Sessions[1]
	if len(revise.Topics) != 1 || revise.Topics[0].Key.Topic != "Quadratics" {
		t.Errorf("revision topics = %+v, want only Quadratics", revise.Topics)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)
	settings := Settings{DailyHours: 3, ExamDate: now.AddDate(0, 0, 20)}

	p1, err := b.Build("u1", settings, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	p2, err := b.Build("u1", settings, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if p1.ID != p2.ID {
		t.Errorf("same inputs produced different IDs: %s vs %s", p1.ID, p2.ID)
	}
	s1, err := Snapshot(p1)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	s2, err := Snapshot(p2)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	j1, _ := marshalStable(s1.Data)
	j2, _ := marshalStable(s2.Data)
	if j1 != j2 {
		t.Error("same inputs produced different schedules")
	}

	// A different clock or user must not reuse the ID.
	b2 := newTestBuilder(now.Add(24 * time.Hour))
	p3, err := b2.Build("u1", settings, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p3.ID == p1.ID {
		t.Error("different clock reused the plan ID")
	}
	p4, err := b.Build("u2", settings, testRecords(now), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if p4.ID == p1.ID {
		t.Error("different user reused the plan ID")
	}
}

func TestBuild_RestDay(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	plan, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, 45)}, testRecords(now), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !plan.Days[6].Rest {
		t.Error("expected day 7 to be a rest day")
	}
	if len(plan.Days[6].Sessions) != 0 {
		t.Errorf("rest day has %d sessions", len(plan.Days[6].Sessions))
	}
	for i := 0; i < 6; i++ {
		if plan.Days[i].Rest {
			t.Errorf("unexpected rest on day %d", i)
		}
	}
}

func TestBuild_NoRestInFinalSprint(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	plan, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, 5)}, testRecords(now), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, day := range plan.Days {
		if day.Rest {
			t.Errorf("rest day %d scheduled with the exam %d days out", i, plan.DaysToExam)
		}
	}
}

func TestBuild_RejectsBadInputs(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	if _, err := b.Build("u1", Settings{DailyHours: 0, ExamDate: now.AddDate(0, 0, 30)}, nil, false); err == nil {
		t.Error("accepted zero daily hours")
	}
	if _, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, -1)}, nil, false); err == nil {
		t.Error("accepted a past exam date")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := newTestBuilder(now)

	plan, err := b.Build("u1", Settings{DailyHours: 4, ExamDate: now.AddDate(0, 0, 45)}, testRecords(now), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	snap, err := Snapshot(plan)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.PlanID != plan.ID || snap.UserID != "u1" {
		t.Errorf("snapshot header = %s/%s", snap.UserID, snap.PlanID)
	}

	back, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("from snapshot: %v", err)
	}
	if back.ID != plan.ID || len(back.Days) != 7 || back.DaysToExam != plan.DaysToExam {
		t.Errorf("round trip lost data: %+v", back)
	}
	if !back.Days[6].Rest {
		t.Error("round trip lost the rest day")
	}
}
