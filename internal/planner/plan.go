// Package planner turns mastery records and exam settings into a
// concrete seven-day study plan.
package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rushil/prepd/internal/mastery"
)

// Session kinds, mapped onto fixed slots of the day: new material in
// the morning, revision in the afternoon, mocks in the evening.
const (
	KindStudy    = "study"
	KindRevision = "revision"
	KindMock     = "mock"

	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// Settings are the user's planning inputs.
type Settings struct {
	DailyHours float64
	ExamDate   time.Time
}

// TopicSlice is one topic's share of a session.
type TopicSlice struct {
	Key      mastery.TopicKey `json:"key"`
	Category string           `json:"category"`
	Priority float64          `json:"priority"`
	Minutes  int              `json:"minutes"`
}

// Session is one block of the day.
type Session struct {
	Slot    string       `json:"slot"`
	Kind    string       `json:"kind"`
	Minutes int          `json:"minutes"`
	Topics  []TopicSlice `json:"topics,omitempty"`
}

// DailyPlan is one day of the week.
type DailyPlan struct {
	Date     time.Time `json:"date"`
	Rest     bool      `json:"rest"`
	Sessions []Session `json:"sessions,omitempty"`
}

// WeeklyPlan is the full seven-day schedule.
type WeeklyPlan struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	ExamDate    time.Time      `json:"examDate"`
	DaysToExam  int            `json:"daysToExam"`
	Allocation  Allocation     `json:"allocation"`
	Days        []DailyPlan    `json:"days"`
	TopicTotals map[string]int `json:"topicTotals"`
}

// Builder assembles weekly plans.
type Builder struct {
	// Now is the injected clock; tests substitute a fixed time.
	Now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{Now: time.Now}
}

const maxPracticeGapDays = 30

// planNamespace scopes the name-based plan IDs below.
var planNamespace = uuid.MustParse("c7a1f2d4-6b3e-4e8a-9d05-2f84c1b7a9e3")

// planID derives the plan's identity from its inputs, so regenerating
// with the same settings and clock yields the same ID.
func planID(userID string, settings Settings, now time.Time, restSuggested bool) string {
	seed := fmt.Sprintf("%s|%d|%s|%.2f|%t",
		userID, now.Unix(), settings.ExamDate.UTC().Format("2006-01-02"),
		settings.DailyHours, restSuggested)
	return uuid.NewSHA1(planNamespace, []byte(seed)).String()
}

// priority ranks a topic for time allocation. Weaker accuracy and a
// longer gap since practice both raise it; the gap term saturates so a
// long-abandoned topic cannot drown out everything else.
func (b *Builder) priority(rec *mastery.Record, now time.Time) float64 {
	gap := float64(maxPracticeGapDays)
	if rec.LastPracticed != nil {
		gap = now.Sub(*rec.LastPracticed).Hours() / 24
		if gap < 0 {
			gap = 0
		}
		gap = math.Min(gap, maxPracticeGapDays)
	}
	return (100 - rec.Accuracy) + gap
}

// Build produces the plan for the seven days starting today. Given the
// same inputs and clock it returns the same plan, ID included.
func (b *Builder) Build(userID string, settings Settings, records []*mastery.Record, restSuggested bool) (*WeeklyPlan, error) {
	if settings.DailyHours <= 0 || settings.DailyHours > 16 {
		return nil, fmt.Errorf("daily hours %v outside the plannable range", settings.DailyHours)
	}
	now := b.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	daysToExam := int(math.Ceil(settings.ExamDate.UTC().Sub(today).Hours() / 24))
	if daysToExam <= 0 {
		return nil, fmt.Errorf("exam date %s is not in the future", settings.ExamDate.Format("2006-01-02"))
	}

	alloc := AllocationFor(daysToExam)
	dailyMinutes := int(math.Round(settings.DailyHours * 60))
	blockMinutes := apportion(dailyMinutes, []float64{
		float64(alloc.StudyPct), float64(alloc.RevisionPct), float64(alloc.MockPct),
	})

	studyTopics := b.rankTopics(records, now, CategoryWeak)
	reviseTopics := b.rankTopics(records, now, CategoryMedium)

	// A suggested rest lands on the last day of the week, but never
	// inside the final sprint before the exam.
	restDay := -1
	if restSuggested && daysToExam > 7 {
		restDay = 6
	}

	plan := &WeeklyPlan{
		ID:          planID(userID, settings, now, restSuggested),
		UserID:      userID,
		GeneratedAt: now,
		ExamDate:    settings.ExamDate,
		DaysToExam:  daysToExam,
		Allocation:  alloc,
		Days:        make([]DailyPlan, 7),
		TopicTotals: make(map[string]int),
	}

	for i := 0; i < 7; i++ {
		day := DailyPlan{Date: today.AddDate(0, 0, i)}
		if i == restDay {
			day.Rest = true
			plan.Days[i] = day
			continue
		}

		study := Session{Slot: SlotMorning, Kind: KindStudy, Minutes: blockMinutes[0]}
		study.Topics = sliceTopics(studyTopics, blockMinutes[0], now, b)

		revise := Session{Slot: SlotAfternoon, Kind: KindRevision, Minutes: blockMinutes[1]}
		revise.Topics = sliceTopics(reviseTopics, blockMinutes[1], now, b)

		mock := Session{Slot: SlotEvening, Kind: KindMock, Minutes: blockMinutes[2]}

		day.Sessions = []Session{study, revise, mock}
		plan.Days[i] = day

		for _, s := range day.Sessions {
			for _, t := range s.Topics {
				plan.TopicTotals[t.Key.String()] += t.Minutes
			}
		}
	}

	return plan, nil
}

// rankTopics filters records to one category and orders them by
// descending priority, tie-broken by key for a stable plan.
func (b *Builder) rankTopics(records []*mastery.Record, now time.Time, cat Category) []*mastery.Record {
	var out []*mastery.Record
	for _, rec := range records {
		if Categorize(rec.Accuracy) == cat {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := b.priority(out[i], now), b.priority(out[j], now)
		if pi != pj {
			return pi > pj
		}
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}

// maxTopicsPerSession keeps single sessions from fragmenting into
// slivers too short to be useful.
const maxTopicsPerSession = 4

func sliceTopics(ranked []*mastery.Record, minutes int, now time.Time, b *Builder) []TopicSlice {
	if len(ranked) == 0 || minutes <= 0 {
		return nil
	}
	picked := ranked
	if len(picked) > maxTopicsPerSession {
		picked = picked[:maxTopicsPerSession]
	}

	weights := make([]float64, len(picked))
	for i, rec := range picked {
		weights[i] = b.priority(rec, now)
	}
	shares := apportion(minutes, weights)

	slices := make([]TopicSlice, len(picked))
	for i, rec := range picked {
		slices[i] = TopicSlice{
			Key:      rec.Key,
			Category: Categorize(rec.Accuracy).String(),
			Priority: weights[i],
			Minutes:  shares[i],
		}
	}
	return slices
}
