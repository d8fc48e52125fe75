package revision

// BaseIntervals is the review ladder in days. A topic climbs one rung
// for every ten questions attempted at its current level.
var BaseIntervals = []int{1, 3, 7, 15, 30, 60}

// MinAttemptsForScheduling gates brand-new topics out of the review
// queue until there is enough signal to schedule them.
const MinAttemptsForScheduling = 5

const (
	attemptsPerStep = 10

	pullbackAccuracy  = 75
	pullbackAccuracy2 = 60
)

// IntervalDays returns the review interval for a topic given its
// running accuracy and attempt count. Shaky accuracy pulls the
// interval back down the ladder so weak topics come around sooner.
func IntervalDays(accuracy float64, questionsAttempted int) int {
	idx := questionsAttempted / attemptsPerStep
	if idx >= len(BaseIntervals) {
		idx = len(BaseIntervals) - 1
	}

	switch {
	case accuracy < pullbackAccuracy2:
		idx -= 2
	case accuracy < pullbackAccuracy:
		idx--
	}
	if idx < 0 {
		idx = 0
	}
	return BaseIntervals[idx]
}
