package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/rushil/prepd/internal/revision"
	"github.com/rushil/prepd/internal/store"
)

type mockMasteryRepo struct {
	records []*store.MasteryRecordData
}

func (m *mockMasteryRepo) Load(context.Context, string, string, string, string) (*store.MasteryRecordData, error) {
	return nil, nil
}

func (m *mockMasteryRepo) Save(context.Context, *store.MasteryRecordData) error { return nil }

func (m *mockMasteryRepo) ForUser(context.Context, string) ([]*store.MasteryRecordData, error) {
	return m.records, nil
}

func (m *mockMasteryRepo) DeleteForUser(context.Context, string) error { return nil }

type recordingNotifier struct {
	calls []struct {
		userID string
		items  []revision.Item
	}
}

func (n *recordingNotifier) NotifyDueRevisions(userID string, items []revision.Item) error {
	n.calls = append(n.calls, struct {
		userID string
		items  []revision.Item
	}{userID, items})
	return nil
}

func TestCheck_NotifiesWhenDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -20)

	sched := revision.NewScheduler()
	sched.Now = func() time.Time { return now }

	repo := &mockMasteryRepo{records: []*store.MasteryRecordData{{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 2, Accuracy: 80, QuestionsAttempted: 15, LastReviewed: &overdue,
	}}}

	notifier := &recordingNotifier{}
	svc := New(repo, sched, notifier)

	if err := svc.Check(context.Background(), "u1"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("notifier calls = %d, want 1", len(notifier.calls))
	}
	call := notifier.calls[0]
	if call.userID != "u1" || len(call.items) != 1 || call.items[0].Topic != "Refraction" {
		t.Errorf("call = %+v", call)
	}
}

func TestCheck_SilentWhenNothingDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	fresh := now.Add(-2 * time.Hour)

	sched := revision.NewScheduler()
	sched.Now = func() time.Time { return now }

	repo := &mockMasteryRepo{records: []*store.MasteryRecordData{{
		UserID: "u1", Subject: "Physics", Chapter: "Optics", Topic: "Refraction",
		Level: 2, Accuracy: 80, QuestionsAttempted: 15, LastReviewed: &fresh,
	}}}

	notifier := &recordingNotifier{}
	svc := New(repo, sched, notifier)

	if err := svc.Check(context.Background(), "u1"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("notifier calls = %d, want 0", len(notifier.calls))
	}
}

func TestStart_RejectsBadHour(t *testing.T) {
	svc := New(&mockMasteryRepo{}, revision.NewScheduler(), &recordingNotifier{})
	if err := svc.Start("u1", 24); err == nil {
		t.Error("accepted hour 24")
	}
	if err := svc.Start("u1", -1); err == nil {
		t.Error("accepted hour -1")
	}
}
