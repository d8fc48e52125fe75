package mastery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rushil/prepd/internal/store"
)

// mockMasteryRepo implements store.MasteryRepo on a map.
type mockMasteryRepo struct {
	mu      sync.Mutex
	records map[string]*store.MasteryRecordData
}

func newMockMasteryRepo() *mockMasteryRepo {
	return &mockMasteryRepo{records: make(map[string]*store.MasteryRecordData)}
}

func repoKey(userID, subject, chapter, topic string) string {
	return userID + "/" + subject + "/" + chapter + "/" + topic
}

func (m *mockMasteryRepo) Load(_ context.Context, userID, subject, chapter, topic string) (*store.MasteryRecordData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[repoKey(userID, subject, chapter, topic)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockMasteryRepo) Save(_ context.Context, rec *store.MasteryRecordData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := repoKey(rec.UserID, rec.Subject, rec.Chapter, rec.Topic)
	existing, ok := m.records[key]
	if ok && existing.Version != rec.Version {
		return store.ErrVersionConflict
	}
	cp := *rec
	cp.Version++
	m.records[key] = &cp
	rec.Version++
	return nil
}

func (m *mockMasteryRepo) ForUser(_ context.Context, userID string) ([]*store.MasteryRecordData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.MasteryRecordData
	for _, rec := range m.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockMasteryRepo) DeleteForUser(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, rec := range m.records {
		if rec.UserID == userID {
			delete(m.records, k)
		}
	}
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	mu       sync.Mutex
	answers  []store.AnswerEventData
	mastery  []store.MasteryEventData
	points   []store.PointsEventData
	streak   int
	totalPts int
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, data)
	return nil
}

func (m *mockEventRepo) AppendMastery(_ context.Context, data store.MasteryEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mastery = append(m.mastery, data)
	return nil
}

func (m *mockEventRepo) AppendPoints(_ context.Context, data store.PointsEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = append(m.points, data)
	return nil
}

func (m *mockEventRepo) CurrentStreak(_ context.Context, _ string) (int, error) {
	return m.streak, nil
}

func (m *mockEventRepo) TotalPoints(_ context.Context, _ string) (int, error) {
	return m.totalPts, nil
}

func testKey() TopicKey {
	return TopicKey{Subject: "Physics", Chapter: "Optics", Topic: "Refraction"}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestTracker(repo store.MasteryRepo, events store.EventRepo) *Tracker {
	tr := NewTracker(DefaultConfig(), repo, events)
	tr.Now = fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	return tr
}

func TestRecordAnswer_InitializesFresh(t *testing.T) {
	repo := newMockMasteryRepo()
	tracker := newTestTracker(repo, nil)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	rec := res.Record
	if rec.Level != LevelFoundation {
		t.Errorf("level = %d, want 1", rec.Level)
	}
	if rec.QuestionsAttempted != 1 {
		t.Errorf("attempts = %d, want 1", rec.QuestionsAttempted)
	}
	if rec.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", rec.Accuracy)
	}
	if rec.LastPracticed == nil {
		t.Error("last practiced not set")
	}
}

func TestRecordAnswer_AccuracyReconstruction(t *testing.T) {
	// Accuracy 82 over 16 attempts, one more correct answer:
	// (round(0.82*16)+1)/17*100 = 14/17*100 ~ 82.35, no level-up
	// because the level-3 bar needs 40 attempts.
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 2, Accuracy: 82, QuestionsAttempted: 16, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	rec := res.Record
	if rec.QuestionsAttempted != 17 {
		t.Errorf("attempts = %d, want 17", rec.QuestionsAttempted)
	}
	if rec.Accuracy < 82.3 || rec.Accuracy > 82.4 {
		t.Errorf("accuracy = %v, want ~82.35", rec.Accuracy)
	}
	if res.LeveledUp {
		t.Error("unexpected level-up below the attempt threshold")
	}
}

func TestRecordAnswer_LevelUpResetsCounters(t *testing.T) {
	repo := newMockMasteryRepo()
	events := &mockEventRepo{}
	// One correct answer away from the level-2 bar (70% / 25 attempts).
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 1, Accuracy: 70, QuestionsAttempted: 24, Version: 1,
	}
	tracker := newTestTracker(repo, events)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if !res.LeveledUp {
		t.Fatal("expected level-up")
	}
	rec := res.Record
	if rec.Level != LevelIntermediate {
		t.Errorf("level = %d, want 2", rec.Level)
	}
	if rec.QuestionsAttempted != 0 || rec.Accuracy != 0 {
		t.Errorf("counters not reset: attempts=%d accuracy=%v", rec.QuestionsAttempted, rec.Accuracy)
	}
	if res.Message == "" {
		t.Error("expected a user-facing message on level-up")
	}
	if len(events.mastery) != 1 {
		t.Fatalf("mastery events = %d, want 1", len(events.mastery))
	}
	if events.mastery[0].FromLevel != 1 || events.mastery[0].ToLevel != 2 {
		t.Errorf("mastery event = %+v", events.mastery[0])
	}
}

func TestRecordAnswer_NeverSkipsTwoLevels(t *testing.T) {
	// Raw numbers qualify for level 3, but a single update moves at
	// most one level.
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 1, Accuracy: 95, QuestionsAttempted: 80, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if res.Record.Level != LevelIntermediate {
		t.Errorf("level = %d, want 2 (single step)", res.Record.Level)
	}
}

func TestRecordAnswer_LevelDown(t *testing.T) {
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 3, Accuracy: 55, QuestionsAttempted: 11, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), false)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if !res.LeveledDown {
		t.Fatal("expected level-down")
	}
	if res.Record.Level != LevelIntermediate {
		t.Errorf("level = %d, want 2", res.Record.Level)
	}
}

func TestRecordAnswer_LevelDownQuorum(t *testing.T) {
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 3, Accuracy: 40, QuestionsAttempted: 8, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), false)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if res.LeveledDown {
		t.Error("level-down fired below the attempt quorum")
	}
}

func TestRecordAnswer_StuckDays(t *testing.T) {
	lastPracticed := time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 1, Accuracy: 40, QuestionsAttempted: 10,
		LastPracticed: &lastPracticed, Version: 1,
	}
	tracker := newTestTracker(repo, nil) // clock fixed at 2026-03-01

	// Wrong answer: no improvement, accuracy still weak, 9 days idle.
	res, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), false)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if res.Record.StuckDays != 9 {
		t.Errorf("stuck days = %d, want 9", res.Record.StuckDays)
	}

	// Correct answer improves accuracy and resets the counter.
	res, err = tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if res.Record.StuckDays != 0 {
		t.Errorf("stuck days = %d, want 0 after improvement", res.Record.StuckDays)
	}
}

func TestRecordAnswer_RejectsMalformedRecord(t *testing.T) {
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 1, Accuracy: 140, QuestionsAttempted: 5, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	_, err := tracker.RecordAnswer(context.Background(), "u1", testKey(), true)
	if err == nil {
		t.Fatal("expected InvalidInputError for accuracy outside [0,100]")
	}
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("err type = %T, want *InvalidInputError", err)
	}
}

func TestRecordAnswer_ConcurrentSameKeySerializes(t *testing.T) {
	repo := newMockMasteryRepo()
	tracker := newTestTracker(repo, nil)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tracker.RecordAnswer(ctx, "u1", testKey(), true); err != nil {
				t.Errorf("record answer: %v", err)
			}
		}()
	}
	wg.Wait()

	data, err := repo.Load(ctx, "u1", "Physics", "Optics", "Refraction")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// 50 correct answers level up at attempt 25 and leave 25 attempts
	// at level 2. A lost update would leave fewer.
	if data.Level != int(LevelIntermediate) {
		t.Errorf("level = %d, want 2", data.Level)
	}
	if data.QuestionsAttempted != 25 {
		t.Errorf("attempts = %d, want 25", data.QuestionsAttempted)
	}
}

func TestMarkReviewed(t *testing.T) {
	repo := newMockMasteryRepo()
	repo.records[repoKey("u1", "Physics", "Optics", "Refraction")] = &store.MasteryRecordData{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 2, Accuracy: 80, QuestionsAttempted: 30, Version: 1,
	}
	tracker := newTestTracker(repo, nil)

	rec, err := tracker.MarkReviewed(context.Background(), "u1", testKey())
	if err != nil {
		t.Fatalf("mark reviewed: %v", err)
	}
	if rec.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", rec.ReviewCount)
	}
	if rec.LastReviewed == nil {
		t.Error("last reviewed not set")
	}
}

func TestMarkReviewed_UnknownTopic(t *testing.T) {
	tracker := newTestTracker(newMockMasteryRepo(), nil)
	_, err := tracker.MarkReviewed(context.Background(), "u1", testKey())
	if err == nil {
		t.Fatal("expected error for unknown topic")
	}
}
