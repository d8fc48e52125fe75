// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rushil/prepd/ent/answerevent"
	"github.com/rushil/prepd/ent/energylog"
	"github.com/rushil/prepd/ent/masteryevent"
	"github.com/rushil/prepd/ent/masteryrecord"
	"github.com/rushil/prepd/ent/plansnapshot"
	"github.com/rushil/prepd/ent/pointsevent"
	"github.com/rushil/prepd/ent/schema"
	"github.com/rushil/prepd/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[1].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescChapter is the schema descriptor for chapter field.
	answereventDescChapter := answereventFields[2].Descriptor()
	// answerevent.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	answerevent.ChapterValidator = answereventDescChapter.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[3].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescLevel is the schema descriptor for level field.
	answereventDescLevel := answereventFields[5].Descriptor()
	// answerevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	answerevent.LevelValidator = answereventDescLevel.Validators[0].(func(int) error)
	energylogFields := schema.EnergyLog{}.Fields()
	_ = energylogFields
	// energylogDescUserID is the schema descriptor for user_id field.
	energylogDescUserID := energylogFields[0].Descriptor()
	// energylog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	energylog.UserIDValidator = energylogDescUserID.Validators[0].(func(string) error)
	// energylogDescStudyHours is the schema descriptor for study_hours field.
	energylogDescStudyHours := energylogFields[2].Descriptor()
	// energylog.StudyHoursValidator is a validator for the "study_hours" field. It is called by the builders before save.
	energylog.StudyHoursValidator = energylogDescStudyHours.Validators[0].(func(float64) error)
	// energylogDescQuestionsAttempted is the schema descriptor for questions_attempted field.
	energylogDescQuestionsAttempted := energylogFields[3].Descriptor()
	// energylog.QuestionsAttemptedValidator is a validator for the "questions_attempted" field. It is called by the builders before save.
	energylog.QuestionsAttemptedValidator = energylogDescQuestionsAttempted.Validators[0].(func(int) error)
	// energylogDescAccuracy is the schema descriptor for accuracy field.
	energylogDescAccuracy := energylogFields[4].Descriptor()
	// energylog.AccuracyValidator is a validator for the "accuracy" field. It is called by the builders before save.
	energylog.AccuracyValidator = energylogDescAccuracy.Validators[0].(func(float64) error)
	// energylogDescLateNightStudy is the schema descriptor for late_night_study field.
	energylogDescLateNightStudy := energylogFields[5].Descriptor()
	// energylog.DefaultLateNightStudy holds the default value on creation for the late_night_study field.
	energylog.DefaultLateNightStudy = energylogDescLateNightStudy.Default.(bool)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescUserID is the schema descriptor for user_id field.
	masteryeventDescUserID := masteryeventFields[0].Descriptor()
	// masteryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryevent.UserIDValidator = masteryeventDescUserID.Validators[0].(func(string) error)
	// masteryeventDescSubject is the schema descriptor for subject field.
	masteryeventDescSubject := masteryeventFields[1].Descriptor()
	// masteryevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	masteryevent.SubjectValidator = masteryeventDescSubject.Validators[0].(func(string) error)
	// masteryeventDescChapter is the schema descriptor for chapter field.
	masteryeventDescChapter := masteryeventFields[2].Descriptor()
	// masteryevent.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	masteryevent.ChapterValidator = masteryeventDescChapter.Validators[0].(func(string) error)
	// masteryeventDescTopic is the schema descriptor for topic field.
	masteryeventDescTopic := masteryeventFields[3].Descriptor()
	// masteryevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	masteryevent.TopicValidator = masteryeventDescTopic.Validators[0].(func(string) error)
	// masteryeventDescFromLevel is the schema descriptor for from_level field.
	masteryeventDescFromLevel := masteryeventFields[4].Descriptor()
	// masteryevent.FromLevelValidator is a validator for the "from_level" field. It is called by the builders before save.
	masteryevent.FromLevelValidator = masteryeventDescFromLevel.Validators[0].(func(int) error)
	// masteryeventDescToLevel is the schema descriptor for to_level field.
	masteryeventDescToLevel := masteryeventFields[5].Descriptor()
	// masteryevent.ToLevelValidator is a validator for the "to_level" field. It is called by the builders before save.
	masteryevent.ToLevelValidator = masteryeventDescToLevel.Validators[0].(func(int) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[6].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescSubject is the schema descriptor for subject field.
	masteryrecordDescSubject := masteryrecordFields[1].Descriptor()
	// masteryrecord.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	masteryrecord.SubjectValidator = masteryrecordDescSubject.Validators[0].(func(string) error)
	// masteryrecordDescChapter is the schema descriptor for chapter field.
	masteryrecordDescChapter := masteryrecordFields[2].Descriptor()
	// masteryrecord.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	masteryrecord.ChapterValidator = masteryrecordDescChapter.Validators[0].(func(string) error)
	// masteryrecordDescTopic is the schema descriptor for topic field.
	masteryrecordDescTopic := masteryrecordFields[3].Descriptor()
	// masteryrecord.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	masteryrecord.TopicValidator = masteryrecordDescTopic.Validators[0].(func(string) error)
	// masteryrecordDescLevel is the schema descriptor for level field.
	masteryrecordDescLevel := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultLevel holds the default value on creation for the level field.
	masteryrecord.DefaultLevel = masteryrecordDescLevel.Default.(int)
	// masteryrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	masteryrecord.LevelValidator = masteryrecordDescLevel.Validators[0].(func(int) error)
	// masteryrecordDescAccuracy is the schema descriptor for accuracy field.
	masteryrecordDescAccuracy := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultAccuracy holds the default value on creation for the accuracy field.
	masteryrecord.DefaultAccuracy = masteryrecordDescAccuracy.Default.(float64)
	// masteryrecordDescQuestionsAttempted is the schema descriptor for questions_attempted field.
	masteryrecordDescQuestionsAttempted := masteryrecordFields[6].Descriptor()
	// masteryrecord.DefaultQuestionsAttempted holds the default value on creation for the questions_attempted field.
	masteryrecord.DefaultQuestionsAttempted = masteryrecordDescQuestionsAttempted.Default.(int)
	// masteryrecord.QuestionsAttemptedValidator is a validator for the "questions_attempted" field. It is called by the builders before save.
	masteryrecord.QuestionsAttemptedValidator = masteryrecordDescQuestionsAttempted.Validators[0].(func(int) error)
	// masteryrecordDescStuckDays is the schema descriptor for stuck_days field.
	masteryrecordDescStuckDays := masteryrecordFields[8].Descriptor()
	// masteryrecord.DefaultStuckDays holds the default value on creation for the stuck_days field.
	masteryrecord.DefaultStuckDays = masteryrecordDescStuckDays.Default.(int)
	// masteryrecord.StuckDaysValidator is a validator for the "stuck_days" field. It is called by the builders before save.
	masteryrecord.StuckDaysValidator = masteryrecordDescStuckDays.Validators[0].(func(int) error)
	// masteryrecordDescReviewCount is the schema descriptor for review_count field.
	masteryrecordDescReviewCount := masteryrecordFields[10].Descriptor()
	// masteryrecord.DefaultReviewCount holds the default value on creation for the review_count field.
	masteryrecord.DefaultReviewCount = masteryrecordDescReviewCount.Default.(int)
	// masteryrecord.ReviewCountValidator is a validator for the "review_count" field. It is called by the builders before save.
	masteryrecord.ReviewCountValidator = masteryrecordDescReviewCount.Validators[0].(func(int) error)
	// masteryrecordDescVersion is the schema descriptor for version field.
	masteryrecordDescVersion := masteryrecordFields[11].Descriptor()
	// masteryrecord.DefaultVersion holds the default value on creation for the version field.
	masteryrecord.DefaultVersion = masteryrecordDescVersion.Default.(int64)
	plansnapshotFields := schema.PlanSnapshot{}.Fields()
	_ = plansnapshotFields
	// plansnapshotDescUserID is the schema descriptor for user_id field.
	plansnapshotDescUserID := plansnapshotFields[0].Descriptor()
	// plansnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	plansnapshot.UserIDValidator = plansnapshotDescUserID.Validators[0].(func(string) error)
	pointseventMixin := schema.PointsEvent{}.Mixin()
	pointseventMixinFields0 := pointseventMixin[0].Fields()
	_ = pointseventMixinFields0
	pointseventFields := schema.PointsEvent{}.Fields()
	_ = pointseventFields
	// pointseventDescTimestamp is the schema descriptor for timestamp field.
	pointseventDescTimestamp := pointseventMixinFields0[1].Descriptor()
	// pointsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointsevent.DefaultTimestamp = pointseventDescTimestamp.Default.(func() time.Time)
	// pointseventDescUserID is the schema descriptor for user_id field.
	pointseventDescUserID := pointseventFields[0].Descriptor()
	// pointsevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pointsevent.UserIDValidator = pointseventDescUserID.Validators[0].(func(string) error)
	// pointseventDescPoints is the schema descriptor for points field.
	pointseventDescPoints := pointseventFields[1].Descriptor()
	// pointsevent.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	pointsevent.PointsValidator = pointseventDescPoints.Validators[0].(func(int) error)
	// pointseventDescStreakLength is the schema descriptor for streak_length field.
	pointseventDescStreakLength := pointseventFields[2].Descriptor()
	// pointsevent.StreakLengthValidator is a validator for the "streak_length" field. It is called by the builders before save.
	pointsevent.StreakLengthValidator = pointseventDescStreakLength.Validators[0].(func(int) error)
	// pointseventDescReason is the schema descriptor for reason field.
	pointseventDescReason := pointseventFields[3].Descriptor()
	// pointsevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	pointsevent.ReasonValidator = pointseventDescReason.Validators[0].(func(string) error)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescSubject is the schema descriptor for subject field.
	topicDescSubject := topicFields[0].Descriptor()
	// topic.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	topic.SubjectValidator = topicDescSubject.Validators[0].(func(string) error)
	// topicDescChapter is the schema descriptor for chapter field.
	topicDescChapter := topicFields[1].Descriptor()
	// topic.ChapterValidator is a validator for the "chapter" field. It is called by the builders before save.
	topic.ChapterValidator = topicDescChapter.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescWeightage is the schema descriptor for weightage field.
	topicDescWeightage := topicFields[3].Descriptor()
	// topic.DefaultWeightage holds the default value on creation for the weightage field.
	topic.DefaultWeightage = topicDescWeightage.Default.(int)
	// topic.WeightageValidator is a validator for the "weightage" field. It is called by the builders before save.
	topic.WeightageValidator = topicDescWeightage.Validators[0].(func(int) error)
}
