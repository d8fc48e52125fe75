package revision

import "math"

// Urgency buckets a topic by how overdue its review is.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

func (u Urgency) String() string {
	switch u {
	case UrgencyCritical:
		return "critical"
	case UrgencyHigh:
		return "high"
	case UrgencyMedium:
		return "medium"
	default:
		return "low"
	}
}

// MemoryStrength estimates how durable a topic's memory trace is, in
// days. Higher accuracy and repeated reviews both slow forgetting.
func MemoryStrength(accuracy float64, reviewCount int) float64 {
	return 5 + (accuracy/100)*10 + float64(reviewCount)*2
}

// Retention is the Ebbinghaus forgetting curve: the estimated percent
// of the material still retained after daysSinceReview days.
func Retention(daysSinceReview float64, strength float64) float64 {
	if daysSinceReview <= 0 {
		return 100
	}
	return 100 * math.Exp(-daysSinceReview/strength)
}

// ClassifyUrgency maps retention and elapsed days onto an urgency
// bucket. The first rule that matches wins.
func ClassifyUrgency(retention float64, daysSinceReview float64) Urgency {
	switch {
	case retention < 30 || daysSinceReview > 30:
		return UrgencyCritical
	case retention < 50 || daysSinceReview > 15:
		return UrgencyHigh
	case retention < 70 || daysSinceReview > 7:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
