package mastery

import "testing"

func TestClassifyLevel_Table(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		accuracy float64
		attempts int
		want     Level
	}{
		{"zero", 0, 0, LevelFoundation},
		{"high accuracy few attempts", 95, 10, LevelFoundation},
		{"intermediate exact", 70, 25, LevelIntermediate},
		{"intermediate just under accuracy", 69.9, 25, LevelFoundation},
		{"intermediate just under attempts", 70, 24, LevelFoundation},
		{"advanced exact", 85, 40, LevelAdvanced},
		{"mastered exact", 90, 60, LevelMastered},
		{"mastered high", 100, 200, LevelMastered},
		{"advanced accuracy mastered attempts", 85, 80, LevelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLevel(cfg, tt.accuracy, tt.attempts)
			if got != tt.want {
				t.Errorf("ClassifyLevel(%v, %d) = %d, want %d", tt.accuracy, tt.attempts, got, tt.want)
			}
		})
	}
}

func TestClassifyLevel_MonotonicInAccuracy(t *testing.T) {
	cfg := DefaultConfig()
	for attempts := 0; attempts <= 100; attempts += 5 {
		prev := LevelFoundation
		for acc := 0.0; acc <= 100; acc += 0.5 {
			got := ClassifyLevel(cfg, acc, attempts)
			if got < prev {
				t.Fatalf("level decreased from %d to %d at accuracy=%v attempts=%d", prev, got, acc, attempts)
			}
			if got < LevelFoundation || got > LevelMastered {
				t.Fatalf("level %d out of range at accuracy=%v attempts=%d", got, acc, attempts)
			}
			prev = got
		}
	}
}

func TestClassifyLevel_MonotonicInAttempts(t *testing.T) {
	cfg := DefaultConfig()
	for acc := 0.0; acc <= 100; acc += 2.5 {
		prev := LevelFoundation
		for attempts := 0; attempts <= 120; attempts++ {
			got := ClassifyLevel(cfg, acc, attempts)
			if got < prev {
				t.Fatalf("level decreased from %d to %d at accuracy=%v attempts=%d", prev, got, acc, attempts)
			}
			prev = got
		}
	}
}

func TestShouldLevelUp_ChecksOnlyNextLevel(t *testing.T) {
	cfg := DefaultConfig()

	// Qualifies for level 3 on raw numbers, but sits at level 1:
	// only the level-2 bar is checked, so it levels up exactly once.
	rec := &Record{Level: LevelFoundation, Accuracy: 88, QuestionsAttempted: 50}
	if !rec.ShouldLevelUp(cfg) {
		t.Fatal("expected level-up to be available")
	}
}

func TestShouldLevelUp_QuorumSuppresses(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{Level: LevelFoundation, Accuracy: 100, QuestionsAttempted: 4}
	if rec.ShouldLevelUp(cfg) {
		t.Error("expected no level-up below the attempt quorum")
	}
}

func TestShouldLevelUp_AtMastered(t *testing.T) {
	cfg := DefaultConfig()
	rec := &Record{Level: LevelMastered, Accuracy: 100, QuestionsAttempted: 100}
	if rec.ShouldLevelUp(cfg) {
		t.Error("mastered records cannot level up further")
	}
}

func TestShouldLevelDown(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"advanced below floor", Record{Level: LevelAdvanced, Accuracy: 59, QuestionsAttempted: 10}, true},
		{"advanced at floor", Record{Level: LevelAdvanced, Accuracy: 60, QuestionsAttempted: 10}, false},
		{"advanced below floor under quorum", Record{Level: LevelAdvanced, Accuracy: 40, QuestionsAttempted: 9}, false},
		{"intermediate below floor", Record{Level: LevelIntermediate, Accuracy: 49, QuestionsAttempted: 12}, true},
		{"foundation never drops", Record{Level: LevelFoundation, Accuracy: 0, QuestionsAttempted: 50}, false},
		{"mastered never drops", Record{Level: LevelMastered, Accuracy: 10, QuestionsAttempted: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.ShouldLevelDown(cfg); got != tt.want {
				t.Errorf("ShouldLevelDown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStuck(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		rec  Record
		want bool
	}{
		{"weak and stuck", Record{Accuracy: 50, StuckDays: 7}, true},
		{"weak not long enough", Record{Accuracy: 50, StuckDays: 6}, false},
		{"strong never stuck", Record{Accuracy: 80, StuckDays: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.IsStuck(cfg); got != tt.want {
				t.Errorf("IsStuck() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordValidate(t *testing.T) {
	good := Record{Level: LevelIntermediate, Accuracy: 50}
	if err := good.Validate(); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	bad := []Record{
		{Level: LevelFoundation, Accuracy: -1},
		{Level: LevelFoundation, Accuracy: 100.5},
		{Level: LevelFoundation, QuestionsAttempted: -1},
		{Level: LevelFoundation, StuckDays: -3},
		{Level: 0},
		{Level: 5},
	}
	for i, rec := range bad {
		if err := rec.Validate(); err == nil {
			t.Errorf("bad record %d accepted", i)
		}
	}
}
