// Package burnout watches recent study logs for signs of fatigue and
// decides when to suggest a rest day.
package burnout

import "time"

// DayLog is one day's aggregated study activity.
type DayLog struct {
	Date               time.Time
	StudyHours         float64
	QuestionsAttempted int
	Accuracy           float64
	LateNightStudy     bool
}

// Severity ranks how strongly a signal argues for rest.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Signal is one detected fatigue indicator.
type Signal struct {
	Name     string
	Severity Severity
	Detail   string
}

const (
	fullScore = 100

	restScoreThreshold  = 30
	restHighSignalCount = 2

	accuracyDropMedium = 15
	accuracyDropHigh   = 25

	studyTimeDropRatio = 0.70
	lateNightDaysMin   = 4
	lowVolumeFloor     = 20
)

// EnergyScore grades the last week of logs on a 0 to 100 scale, 100
// being fully rested. Logs are expected oldest first; with no logs at
// all there is nothing to penalize and the score stays at 100.
func EnergyScore(logs []DayLog) (float64, []Signal) {
	score := float64(fullScore)
	var signals []Signal

	if len(logs) == 0 {
		return score, nil
	}

	last3 := tail(logs, 3)
	last7 := tail(logs, 7)

	// Falling accuracy is the strongest fatigue tell: compare the
	// 3-day average against the 7-day baseline.
	acc3 := avg(last3, func(d DayLog) float64 { return d.Accuracy })
	acc7 := avg(last7, func(d DayLog) float64 { return d.Accuracy })
	if drop := acc7 - acc3; drop >= accuracyDropMedium {
		score -= 15
		sev := SeverityMedium
		if drop >= accuracyDropHigh {
			score -= 25
			sev = SeverityHigh
		}
		signals = append(signals, Signal{
			Name:     "accuracy-drop",
			Severity: sev,
			Detail:   "accuracy fell sharply against the weekly baseline",
		})
	}

	// Study time collapsing relative to the weekly pace.
	hours3 := avg(last3, func(d DayLog) float64 { return d.StudyHours })
	hours7 := avg(last7, func(d DayLog) float64 { return d.StudyHours })
	if hours7 > 0 && hours3 <= hours7*studyTimeDropRatio {
		score -= 20
		signals = append(signals, Signal{
			Name:     "study-time-drop",
			Severity: SeverityHigh,
			Detail:   "daily study time dropped well below the weekly pace",
		})
	}

	lateNights := 0
	for _, d := range last7 {
		if d.LateNightStudy {
			lateNights++
		}
	}
	if lateNights >= lateNightDaysMin {
		score -= 15
		signals = append(signals, Signal{
			Name:     "late-nights",
			Severity: SeverityHigh,
			Detail:   "four or more late-night sessions this week",
		})
	}

	if avg(last7, func(d DayLog) float64 { return float64(d.QuestionsAttempted) }) < lowVolumeFloor {
		score -= 10
		signals = append(signals, Signal{
			Name:     "low-volume",
			Severity: SeverityLow,
			Detail:   "question volume is running low",
		})
	}

	if score < 0 {
		score = 0
	}
	if score > fullScore {
		score = fullScore
	}
	return score, signals
}

// ShouldSuggestRest recommends a rest day when the score has bottomed
// out or several strong signals fire together.
func ShouldSuggestRest(score float64, signals []Signal) bool {
	if score < restScoreThreshold {
		return true
	}
	high := 0
	for _, s := range signals {
		if s.Severity == SeverityHigh {
			high++
		}
	}
	return high >= restHighSignalCount
}

func tail(logs []DayLog, n int) []DayLog {
	if len(logs) <= n {
		return logs
	}
	return logs[len(logs)-n:]
}

func avg(logs []DayLog, f func(DayLog) float64) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum float64
	for _, d := range logs {
		sum += f(d)
	}
	return sum / float64(len(logs))
}
