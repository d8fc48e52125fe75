package mastery

// Level is the discrete 1-4 classification of a learner's proficiency
// on one topic.
type Level int

const (
	LevelFoundation   Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
	LevelMastered     Level = 4
)

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelFoundation:
		return "Foundation"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}

// Threshold is the entry bar for one level: both conditions must hold
// on the attempts accumulated at the level below.
type Threshold struct {
	MinAccuracy float64
	MinAttempts int
}

// Config carries the threshold tables as an explicit value so tests can
// substitute alternates deterministically. Never ambient global state.
type Config struct {
	// Thresholds indexed by target level (2..4). Level 1 is the floor.
	Thresholds map[Level]Threshold

	// LevelUpQuorum suppresses level-up checks below this attempt
	// count to avoid noise from tiny samples.
	LevelUpQuorum int

	// LevelDownQuorum suppresses level-down checks below this count.
	LevelDownQuorum int

	// DownFloors maps a level to the accuracy floor below which the
	// record drops one level. Levels absent from the map never regress.
	DownFloors map[Level]float64

	// WeakAccuracy and StuckDaysMin together define a stuck topic.
	WeakAccuracy float64
	StuckDaysMin int
}

// DefaultConfig returns the canonical threshold tables.
func DefaultConfig() Config {
	return Config{
		Thresholds: map[Level]Threshold{
			LevelIntermediate: {MinAccuracy: 70, MinAttempts: 25},
			LevelAdvanced:     {MinAccuracy: 85, MinAttempts: 40},
			LevelMastered:     {MinAccuracy: 90, MinAttempts: 60},
		},
		LevelUpQuorum:   5,
		LevelDownQuorum: 10,
		DownFloors: map[Level]float64{
			LevelAdvanced:     60,
			LevelIntermediate: 50,
		},
		WeakAccuracy: 60,
		StuckDaysMin: 7,
	}
}

// ClassifyLevel maps an accuracy/attempts pair to the highest level
// whose thresholds it meets. Evaluated highest level first, first
// match wins.
func ClassifyLevel(cfg Config, accuracy float64, attempts int) Level {
	for _, l := range []Level{LevelMastered, LevelAdvanced, LevelIntermediate} {
		thr := cfg.Thresholds[l]
		if accuracy >= thr.MinAccuracy && attempts >= thr.MinAttempts {
			return l
		}
	}
	return LevelFoundation
}

// ShouldLevelUp reports whether the record qualifies for the next
// level. Only the immediately next level is checked: a record never
// skips two levels in one transition.
func (r *Record) ShouldLevelUp(cfg Config) bool {
	if r.Level >= LevelMastered {
		return false
	}
	if r.QuestionsAttempted < cfg.LevelUpQuorum {
		return false
	}
	thr := cfg.Thresholds[r.Level+1]
	return r.Accuracy >= thr.MinAccuracy && r.QuestionsAttempted >= thr.MinAttempts
}

// ShouldLevelDown reports whether the record has fallen below its
// level's floor and should drop one level.
func (r *Record) ShouldLevelDown(cfg Config) bool {
	if r.QuestionsAttempted < cfg.LevelDownQuorum {
		return false
	}
	floor, ok := cfg.DownFloors[r.Level]
	if !ok {
		return false
	}
	return r.Accuracy < floor
}

// IsStuck flags a topic for intervention: weak accuracy with no
// improvement for a week. Does not itself change level.
func (r *Record) IsStuck(cfg Config) bool {
	return r.Accuracy < cfg.WeakAccuracy && r.StuckDays >= cfg.StuckDaysMin
}
