package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"eduanalytics_backend/internals/features/feedback/model"
)

type CreateFeedbackRequest struct {
	StudentID *uuid.UUID `json:"student_id"`
	CourseID  *uuid.UUID `json:"course_id"`
	Type      string     `json:"feedback_type" validate:"required,max=50"`
	Text      string     `json:"feedback_text" validate:"required"`
	Rating    *int       `json:"rating" validate:"omitempty,min=1,max=5"`
	Sentiment *string    `json:"sentiment" validate:"omitempty,oneof=positive neutral negative"`
	Tags      []string   `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r CreateFeedbackRequest) ToModel() model.FeedbackModel {
	return model.FeedbackModel{
		FeedbackStudentID: r.StudentID,
		FeedbackCourseID:  r.CourseID,
		FeedbackType:      r.Type,
		FeedbackText:      r.Text,
		FeedbackRating:    r.Rating,
		FeedbackSentiment: r.Sentiment,
		FeedbackTags:      pq.StringArray(r.Tags),
	}
}

type BulkFeedbackRequest struct {
	Items []CreateFeedbackRequest `json:"items" validate:"required,min=1,max=500,dive"`
}

type FeedbackResponse struct {
	ID        uuid.UUID  `json:"id"`
	StudentID *uuid.UUID `json:"student_id"`
	CourseID  *uuid.UUID `json:"course_id"`
	Type      string     `json:"feedback_type"`
	Text      string     `json:"feedback_text"`
	Rating    *int       `json:"rating"`
	Sentiment *string    `json:"sentiment"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromFeedbackModel(m model.FeedbackModel) FeedbackResponse {
	tags := []string(m.FeedbackTags)
	if tags == nil {
		tags = []string{}
	}
	return FeedbackResponse{
		ID:        m.FeedbackID,
		StudentID: m.FeedbackStudentID,
		CourseID:  m.FeedbackCourseID,
		Type:      m.FeedbackType,
		Text:      m.FeedbackText,
		Rating:    m.FeedbackRating,
		Sentiment: m.FeedbackSentiment,
		Tags:      tags,
		CreatedAt: m.FeedbackCreatedAt,
	}
}

// SentimentBucket: hasil group-by sentiment; sentiment null masuk
// bucket "unknown".
type SentimentBucket struct {
	Sentiment string  `json:"sentiment"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

type FeedbackTrendPoint struct {
	Bucket    string  `json:"date"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type PopularTag struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

type CreateSurveyResponseRequest struct {
	SurveyName       string         `json:"survey_name" validate:"required,max=150"`
	StudentID        *uuid.UUID     `json:"student_id"`
	Answers          map[string]any `json:"answers" validate:"required"`
	CompletionPct    *float64       `json:"completion_pct" validate:"omitempty,min=0,max=100"`
	TimeSpentSeconds *int           `json:"time_spent_seconds" validate:"omitempty,min=0"`
}
