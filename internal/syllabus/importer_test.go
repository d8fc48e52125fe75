package syllabus

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rushil/prepd/internal/store"
)

type mockTopicRepo struct {
	topics map[string]*store.TopicData
}

func newMockTopicRepo() *mockTopicRepo {
	return &mockTopicRepo{topics: make(map[string]*store.TopicData)}
}

func (m *mockTopicRepo) Upsert(_ context.Context, t *store.TopicData) (bool, error) {
	key := t.Subject + "/" + t.Chapter + "/" + t.Name
	_, exists := m.topics[key]
	m.topics[key] = t
	return !exists, nil
}

func (m *mockTopicRepo) All(context.Context) ([]*store.TopicData, error) {
	out := make([]*store.TopicData, 0, len(m.topics))
	for _, t := range m.topics {
		out = append(out, t)
	}
	return out, nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "syllabus.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImport_CSV(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Subject,Chapter,Topic,Weightage",
		"Physics,Mechanics,Friction,8",
		"Physics,Mechanics,Work and Energy,10",
		"Chemistry,Organic,Alkenes,6",
	}, "\n"))

	repo := newMockTopicRepo()
	result, err := Import(context.Background(), repo, DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.TotalProcessed != 3 || result.Created != 3 {
		t.Errorf("result = %+v, want 3 processed, 3 created", result)
	}
	if len(repo.topics) != 3 {
		t.Fatalf("topics = %d, want 3", len(repo.topics))
	}
	got := repo.topics["Physics/Mechanics/Friction"]
	if got == nil || got.Weightage != 8 {
		t.Errorf("Friction = %+v", got)
	}
}

func TestImport_ReimportUpdates(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Subject,Chapter,Topic,Weightage",
		"Physics,Mechanics,Friction,8",
	}, "\n"))

	repo := newMockTopicRepo()
	if _, err := Import(context.Background(), repo, DefaultImportConfig(path)); err != nil {
		t.Fatalf("first import: %v", err)
	}
	result, err := Import(context.Background(), repo, DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if result.Created != 0 || result.Updated != 1 {
		t.Errorf("result = %+v, want 0 created, 1 updated", result)
	}
}

func TestImport_SkipsBadRows(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Subject,Chapter,Topic,Weightage",
		",Mechanics,Friction,8",
		"Physics,Mechanics,,8",
		"Physics,Mechanics,Friction,nonsense",
		"Physics,Mechanics,Friction,8",
	}, "\n"))

	repo := newMockTopicRepo()
	result, err := Import(context.Background(), repo, DefaultImportConfig(path))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.Skipped != 3 || result.Created != 1 {
		t.Errorf("result = %+v, want 3 skipped, 1 created", result)
	}
	if len(result.Errors) != 3 {
		t.Errorf("errors = %v", result.Errors)
	}
}

func TestImport_DefaultWeightage(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Subject,Chapter,Topic,Weightage",
		"Maths,Algebra,Quadratics,",
	}, "\n"))

	repo := newMockTopicRepo()
	if _, err := Import(context.Background(), repo, DefaultImportConfig(path)); err != nil {
		t.Fatalf("import: %v", err)
	}
	got := repo.topics["Maths/Algebra/Quadratics"]
	if got == nil || got.Weightage != defaultWeightage {
		t.Errorf("topic = %+v, want default weightage", got)
	}
}

func TestImport_UnsupportedExtension(t *testing.T) {
	if _, err := Import(context.Background(), newMockTopicRepo(), DefaultImportConfig("syllabus.txt")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		col  string
		want int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"", -1},
		{"7", -1},
	}
	for _, tt := range tests {
		if got := columnToIndex(tt.col); got != tt.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", tt.col, got, tt.want)
		}
	}
}
