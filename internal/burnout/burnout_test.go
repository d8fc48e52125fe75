package burnout

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func steadyWeek() []DayLog {
	logs := make([]DayLog, 7)
	for i := range logs {
		logs[i] = DayLog{
			Date:               day(i),
			StudyHours:         4,
			QuestionsAttempted: 40,
			Accuracy:           80,
		}
	}
	return logs
}

func TestEnergyScore_NoLogs(t *testing.T) {
	score, signals := EnergyScore(nil)
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	if len(signals) != 0 {
		t.Errorf("signals = %d, want 0", len(signals))
	}
}

func TestEnergyScore_SteadyWeek(t *testing.T) {
	score, signals := EnergyScore(steadyWeek())
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	if len(signals) != 0 {
		t.Errorf("signals = %v, want none", signals)
	}
}

func TestEnergyScore_AccuracyDrop(t *testing.T) {
	logs := steadyWeek()
	// Last three days slump from the 80% baseline.
	for i := 4; i < 7; i++ {
		logs[i].Accuracy = 50
	}
	// 7-day avg = (4*80+3*50)/7 ~ 67.1, 3-day avg = 50, drop ~ 17.1.
	score, signals := EnergyScore(logs)
	if score != 85 {
		t.Errorf("score = %v, want 85", score)
	}
	if len(signals) != 1 || signals[0].Name != "accuracy-drop" {
		t.Fatalf("signals = %v", signals)
	}
	if signals[0].Severity != SeverityMedium {
		t.Errorf("severity = %v, want medium", signals[0].Severity)
	}
}

func TestEnergyScore_SevereAccuracyDrop(t *testing.T) {
	logs := steadyWeek()
	for i := 4; i < 7; i++ {
		logs[i].Accuracy = 20
	}
	// Drop ~ 34: both the medium and the high penalty apply.
	score, signals := EnergyScore(logs)
	if score != 60 {
		t.Errorf("score = %v, want 60", score)
	}
	if len(signals) != 1 || signals[0].Severity != SeverityHigh {
		t.Fatalf("signals = %v", signals)
	}
}

func TestEnergyScore_StudyTimeCollapse(t *testing.T) {
	logs := steadyWeek()
	for i := 4; i < 7; i++ {
		logs[i].StudyHours = 1
	}
	score, signals := EnergyScore(logs)
	if score != 80 {
		t.Errorf("score = %v, want 80", score)
	}
	if len(signals) != 1 || signals[0].Name != "study-time-drop" {
		t.Fatalf("signals = %v", signals)
	}
}

func TestEnergyScore_ThreeLateNightsNoPenalty(t *testing.T) {
	logs := steadyWeek()
	for i := 0; i < 3; i++ {
		logs[i].LateNightStudy = true
	}
	score, signals := EnergyScore(logs)
	if score != 100 {
		t.Errorf("score = %v, want 100 with only three late nights", score)
	}
	if len(signals) != 0 {
		t.Errorf("signals = %v, want none", signals)
	}
}

func TestEnergyScore_FourLateNights(t *testing.T) {
	logs := steadyWeek()
	for i := 0; i < 4; i++ {
		logs[i].LateNightStudy = true
	}
	score, signals := EnergyScore(logs)
	if score != 85 {
		t.Errorf("score = %v, want 85", score)
	}
	if len(signals) != 1 || signals[0].Name != "late-nights" {
		t.Fatalf("signals = %v", signals)
	}
}

func TestEnergyScore_LowVolume(t *testing.T) {
	logs := steadyWeek()
	for i := range logs {
		logs[i].QuestionsAttempted = 10
	}
	score, signals := EnergyScore(logs)
	if score != 90 {
		t.Errorf("score = %v, want 90", score)
	}
	if len(signals) != 1 || signals[0].Severity != SeverityLow {
		t.Fatalf("signals = %v", signals)
	}
}

func TestEnergyScore_StaysInRange(t *testing.T) {
	// Every signal firing at once must still clamp to [0,100].
	logs := make([]DayLog, 7)
	for i := range logs {
		logs[i] = DayLog{
			Date:               day(i),
			StudyHours:         4,
			QuestionsAttempted: 5,
			Accuracy:           80,
			LateNightStudy:     true,
		}
	}
	for i := 4; i < 7; i++ {
		logs[i].Accuracy = 10
		logs[i].StudyHours = 0.5
	}
	score, _ := EnergyScore(logs)
	if score < 0 || score > 100 {
		t.Errorf("score = %v, out of range", score)
	}
}

func TestShouldSuggestRest(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		signals []Signal
		want    bool
	}{
		{"low score", 25, nil, true},
		{"healthy", 90, nil, false},
		{"two high signals", 60, []Signal{{Severity: SeverityHigh}, {Severity: SeverityHigh}}, true},
		{"one high signal", 60, []Signal{{Severity: SeverityHigh}}, false},
		{"mediums do not count", 60, []Signal{{Severity: SeverityMedium}, {Severity: SeverityMedium}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSuggestRest(tt.score, tt.signals); got != tt.want {
				t.Errorf("ShouldSuggestRest(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
