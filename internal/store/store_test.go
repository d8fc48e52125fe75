package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMasteryRepo_LoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()

	rec, err := repo.Load(context.Background(), "u1", "Physics", "Optics", "Refraction")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record for missing key")
	}
}

func TestMasteryRepo_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &MasteryRecordData{
		UserID:             "u1",
		Subject:            "Physics",
		Chapter:            "Optics",
		Topic:              "Refraction",
		Level:              2,
		Accuracy:           74.5,
		QuestionsAttempted: 12,
		LastPracticed:      &now,
	}

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.Version != 1 {
		t.Errorf("version after create = %d, want 1", rec.Version)
	}

	got, err := repo.Load(ctx, "u1", "Physics", "Optics", "Refraction")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected record after save")
	}
	if got.Level != 2 || got.Accuracy != 74.5 || got.QuestionsAttempted != 12 {
		t.Errorf("loaded record = %+v", got)
	}
	if got.LastPracticed == nil || !got.LastPracticed.Equal(now) {
		t.Errorf("last practiced = %v, want %v", got.LastPracticed, now)
	}
}

func TestMasteryRepo_VersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec := &MasteryRecordData{
		UserID: "u1", Subject: "Maths", Chapter: "Algebra", Topic: "Quadratics",
		Level: 1,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Simulate two loads of the same record.
	a, _ := repo.Load(ctx, "u1", "Maths", "Algebra", "Quadratics")
	b, _ := repo.Load(ctx, "u1", "Maths", "Algebra", "Quadratics")

	a.QuestionsAttempted = 1
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("first save: %v", err)
	}

	b.QuestionsAttempted = 99
	err := repo.Save(ctx, b)
	if err != ErrVersionConflict {
		t.Errorf("second save err = %v, want ErrVersionConflict", err)
	}
}

func TestMasteryRepo_DuplicateCreateIsConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec := &MasteryRecordData{
		UserID: "u1", Subject: "Maths", Chapter: "Algebra", Topic: "Quadratics",
		Level: 1,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second Version==0 save of the same key hits the unique index.
	dup := &MasteryRecordData{
		UserID: "u1", Subject: "Maths", Chapter: "Algebra", Topic: "Quadratics",
		Level: 1,
	}
	if err := repo.Save(ctx, dup); err != ErrVersionConflict {
		t.Errorf("duplicate create err = %v, want ErrVersionConflict", err)
	}
}

func TestMasteryRepo_CreateValidationIsNotConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	// Level 9 fails the schema's Range(1,4) validator. That must
	// surface as its own error, not as a version conflict.
	rec := &MasteryRecordData{
		UserID: "u1", Subject: "Maths", Chapter: "Algebra", Topic: "Quadratics",
		Level: 9,
	}
	err := repo.Save(ctx, rec)
	if err == nil {
		t.Fatal("out-of-range level accepted")
	}
	if err == ErrVersionConflict {
		t.Error("validation failure reported as version conflict")
	}
}

func TestEnergyRepo_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EnergyRepo()
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		log := &EnergyLogData{
			Date:               now.AddDate(0, 0, -i),
			StudyHours:         2,
			QuestionsAttempted: 40,
			Accuracy:           70,
		}
		if err := repo.Append(ctx, "u1", log); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	logs, err := repo.Recent(ctx, "u1", 7, now)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(logs) != 7 {
		t.Fatalf("recent count = %d, want 7", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if !logs[i-1].Date.Before(logs[i].Date) {
			t.Errorf("logs not in ascending date order at %d", i)
		}
	}
}

func TestEnergyRepo_SameDayReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.EnergyRepo()
	ctx := context.Background()

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	if err := repo.Append(ctx, "u1", &EnergyLogData{Date: day, StudyHours: 1, Accuracy: 50}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	// Same day, later wall-clock time.
	if err := repo.Append(ctx, "u1", &EnergyLogData{Date: day.Add(10 * time.Hour), StudyHours: 4, Accuracy: 80}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	logs, err := repo.Recent(ctx, "u1", 1, day)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("log count = %d, want 1", len(logs))
	}
	if logs[0].StudyHours != 4 {
		t.Errorf("study hours = %f, want 4 (replaced)", logs[0].StudyHours)
	}
}

func TestTopicRepo_Upsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.TopicRepo()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, &TopicData{Subject: "Physics", Chapter: "Optics", Name: "Refraction", Weightage: 3})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if !created {
		t.Error("expected created=true on first upsert")
	}

	created, err = repo.Upsert(ctx, &TopicData{Subject: "Physics", Chapter: "Optics", Name: "Refraction", Weightage: 5})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("expected created=false on second upsert")
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("topic count = %d, want 1", len(all))
	}
	if all[0].Weightage != 5 {
		t.Errorf("weightage = %d, want 5 (updated)", all[0].Weightage)
	}
}

func TestEventRepo_CurrentStreak(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []bool{true, true, false, true, true, true}
	for _, correct := range answers {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
			Correct: correct, Level: 1,
		})
		if err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	streak, err := repo.CurrentStreak(ctx, "u1")
	if err != nil {
		t.Fatalf("current streak: %v", err)
	}
	if streak != 3 {
		t.Errorf("streak = %d, want 3", streak)
	}
}

func TestEventRepo_TotalPoints(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	total, err := repo.TotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("total points (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("empty total = %d, want 0", total)
	}

	for _, p := range []int{10, 10, 50} {
		err := repo.AppendPoints(ctx, PointsEventData{UserID: "u1", Points: p, Reason: "correct answer"})
		if err != nil {
			t.Fatalf("append points: %v", err)
		}
	}

	total, err = repo.TotalPoints(ctx, "u1")
	if err != nil {
		t.Fatalf("total points: %v", err)
	}
	if total != 70 {
		t.Errorf("total = %d, want 70", total)
	}
}

func TestPlanRepo_SaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	latest, err := repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil plan when none exist")
	}

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &PlanSnapshotData{
			UserID:      "u1",
			PlanID:      string(rune('a' + i)),
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
			Data:        map[string]any{"n": i},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	latest, err = repo.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.PlanID != "g" {
		t.Errorf("latest plan id = %q, want g", latest.PlanID)
	}

	if err := repo.Prune(ctx, "u1", 3); err != nil {
		t.Fatalf("prune: %v", err)
	}
	count, err := s.Client().PlanSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("remaining plans = %d, want 3", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
