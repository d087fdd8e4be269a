package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// FeedbackModel: dokumen feedback semi-structured. Tags disimpan sebagai
// text[] supaya bisa di-unnest untuk agregasi popular tags.
type FeedbackModel struct {
	FeedbackID        uuid.UUID      `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FeedbackStudentID *uuid.UUID     `gorm:"column:feedback_student_id;type:uuid;index:idx_feedback_student" json:"student_id"`
	FeedbackCourseID  *uuid.UUID     `gorm:"column:feedback_course_id;type:uuid;index:idx_feedback_course" json:"course_id"`
	FeedbackType      string         `gorm:"column:feedback_type;type:varchar(50);not null;index:idx_feedback_type" json:"feedback_type"`
	FeedbackText      string         `gorm:"column:feedback_text;type:text;not null" json:"feedback_text"`
	FeedbackRating    *int           `gorm:"column:feedback_rating" json:"rating"`
	FeedbackSentiment *string        `gorm:"column:feedback_sentiment;type:varchar(20);index:idx_feedback_sentiment" json:"sentiment"`
	FeedbackTags      pq.StringArray `gorm:"column:feedback_tags;type:text[]" json:"tags"`
	FeedbackCreatedAt time.Time      `gorm:"column:feedback_created_at;autoCreateTime;index:idx_feedback_created" json:"created_at"`
}

func (FeedbackModel) TableName() string { return "feedback" }

// SurveyResponseModel: jawaban survey disimpan mentah sebagai JSONB,
// skemanya bebas per survey.
type SurveyResponseModel struct {
	SurveyResponseID          uuid.UUID      `gorm:"column:survey_response_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SurveyResponseSurveyName    string         `gorm:"column:survey_response_survey_name;type:varchar(150);not null;index:idx_survey_name" json:"survey_name"`
	SurveyResponseStudentID     *uuid.UUID     `gorm:"column:survey_response_student_id;type:uuid" json:"student_id"`
	SurveyResponseAnswers       datatypes.JSON `gorm:"column:survey_response_answers;type:jsonb" json:"answers"`
	SurveyResponseCompletionPct *float64       `gorm:"column:survey_response_completion_pct" json:"completion_pct"`
	SurveyResponseTimeSpentSec  *int           `gorm:"column:survey_response_time_spent_sec" json:"time_spent_seconds"`
	SurveyResponseSubmittedAt   time.Time      `gorm:"column:survey_response_submitted_at;autoCreateTime" json:"submitted_at"`
}

func (SurveyResponseModel) TableName() string { return "survey_responses" }

// SystemLogModel: event log aplikasi (audit & debugging), payload JSONB.
type SystemLogModel struct {
	SystemLogID        uuid.UUID      `gorm:"column:system_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SystemLogLevel     string         `gorm:"column:system_log_level;type:varchar(20);not null;index:idx_system_log_level" json:"level"`
	SystemLogSource    string         `gorm:"column:system_log_source;type:varchar(100);not null" json:"source"`
	SystemLogMessage   string         `gorm:"column:system_log_message;type:text;not null" json:"message"`
	SystemLogDetails   datatypes.JSON `gorm:"column:system_log_details;type:jsonb" json:"details"`
	SystemLogCreatedAt time.Time      `gorm:"column:system_log_created_at;autoCreateTime;index:idx_system_log_created" json:"created_at"`
}

func (SystemLogModel) TableName() string { return "system_logs" }
