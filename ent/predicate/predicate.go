// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// EnergyLog is the predicate function for energylog builders.
type EnergyLog func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// PlanSnapshot is the predicate function for plansnapshot builders.
type PlanSnapshot func(*sql.Selector)

// PointsEvent is the predicate function for pointsevent builders.
type PointsEvent func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
