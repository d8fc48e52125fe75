// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "level", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id_subject_chapter_topic",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4], AnswerEventsColumns[5], AnswerEventsColumns[6]},
			},
		},
	}
	// EnergyLogsColumns holds the columns for the "energy_logs" table.
	EnergyLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "study_hours", Type: field.TypeFloat64},
		{Name: "questions_attempted", Type: field.TypeInt},
		{Name: "accuracy", Type: field.TypeFloat64},
		{Name: "late_night_study", Type: field.TypeBool, Default: false},
	}
	// EnergyLogsTable holds the schema information for the "energy_logs" table.
	EnergyLogsTable = &schema.Table{
		Name:       "energy_logs",
		Columns:    EnergyLogsColumns,
		PrimaryKey: []*schema.Column{EnergyLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "energylog_user_id_date",
				Unique:  true,
				Columns: []*schema.Column{EnergyLogsColumns[1], EnergyLogsColumns[2]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "from_level", Type: field.TypeInt},
		{Name: "to_level", Type: field.TypeInt},
		{Name: "trigger", Type: field.TypeString},
		{Name: "accuracy", Type: field.TypeFloat64},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_user_id_subject_chapter_topic",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3], MasteryEventsColumns[4], MasteryEventsColumns[5], MasteryEventsColumns[6]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "questions_attempted", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced", Type: field.TypeTime, Nullable: true},
		{Name: "stuck_days", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt64, Default: 0},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_subject_chapter_topic",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2], MasteryRecordsColumns[3], MasteryRecordsColumns[4]},
			},
			{
				Name:    "masteryrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// PlanSnapshotsColumns holds the columns for the "plan_snapshots" table.
	PlanSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// PlanSnapshotsTable holds the schema information for the "plan_snapshots" table.
	PlanSnapshotsTable = &schema.Table{
		Name:       "plan_snapshots",
		Columns:    PlanSnapshotsColumns,
		PrimaryKey: []*schema.Column{PlanSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plansnapshot_user_id_generated_at",
				Unique:  false,
				Columns: []*schema.Column{PlanSnapshotsColumns[1], PlanSnapshotsColumns[3]},
			},
		},
	}
	// PointsEventsColumns holds the columns for the "points_events" table.
	PointsEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "streak_length", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
	}
	// PointsEventsTable holds the schema information for the "points_events" table.
	PointsEventsTable = &schema.Table{
		Name:       "points_events",
		Columns:    PointsEventsColumns,
		PrimaryKey: []*schema.Column{PointsEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointsevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[1]},
			},
			{
				Name:    "pointsevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[2]},
			},
			{
				Name:    "pointsevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PointsEventsColumns[3]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "weightage", Type: field.TypeInt, Default: 1},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_subject_chapter_name",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[1], TopicsColumns[2], TopicsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		EnergyLogsTable,
		MasteryEventsTable,
		MasteryRecordsTable,
		PlanSnapshotsTable,
		PointsEventsTable,
		TopicsTable,
	}
)

func init() {
}
