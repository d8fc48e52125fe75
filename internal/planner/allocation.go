package planner

// Allocation splits a study day between new learning, revision, and
// mock tests, in percent. The mix shifts toward revision and mocks as
// the exam closes in.
type Allocation struct {
	StudyPct    int
	RevisionPct int
	MockPct     int
}

// AllocationFor returns the phase mix for the given runway to the exam.
func AllocationFor(daysToExam int) Allocation {
	switch {
	case daysToExam > 60:
		return Allocation{StudyPct: 60, RevisionPct: 25, MockPct: 15}
	case daysToExam > 30:
		return Allocation{StudyPct: 45, RevisionPct: 35, MockPct: 20}
	case daysToExam > 14:
		return Allocation{StudyPct: 30, RevisionPct: 45, MockPct: 25}
	default:
		return Allocation{StudyPct: 15, RevisionPct: 50, MockPct: 35}
	}
}

// Category buckets a topic by its running accuracy.
type Category int

const (
	CategoryWeak Category = iota
	CategoryMedium
	CategoryStrong
)

func (c Category) String() string {
	switch c {
	case CategoryWeak:
		return "weak"
	case CategoryMedium:
		return "medium"
	default:
		return "strong"
	}
}

const (
	weakAccuracyCeiling   = 60
	mediumAccuracyCeiling = 85
)

// Categorize maps accuracy onto the weak/medium/strong buckets.
func Categorize(accuracy float64) Category {
	switch {
	case accuracy < weakAccuracyCeiling:
		return CategoryWeak
	case accuracy < mediumAccuracyCeiling:
		return CategoryMedium
	default:
		return CategoryStrong
	}
}

// apportion splits total into len(weights) integer shares proportional
// to the weights, using the largest-remainder method so the shares
// always sum exactly to total.
func apportion(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return shares
	}

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		// Degenerate weights fall back to an even split.
		for i := range weights {
			shares[i] = total / len(weights)
		}
		for i := 0; i < total%len(weights); i++ {
			shares[i]++
		}
		return shares
	}

	type frac struct {
		idx int
		rem float64
	}
	assigned := 0
	fracs := make([]frac, len(weights))
	for i, w := range weights {
		exact := float64(total) * w / sum
		shares[i] = int(exact)
		assigned += shares[i]
		fracs[i] = frac{idx: i, rem: exact - float64(shares[i])}
	}

	// Hand out the leftover units to the largest remainders; ties go
	// to the earlier index so the result is stable.
	for assigned < total {
		best := 0
		for i := 1; i < len(fracs); i++ {
			if fracs[i].rem > fracs[best].rem {
				best = i
			}
		}
		shares[fracs[best].idx]++
		fracs[best].rem = -1
		assigned++
	}
	return shares
}
