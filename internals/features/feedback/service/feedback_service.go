package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	analyticsService "eduanalytics_backend/internals/features/analytics/service"
	"eduanalytics_backend/internals/features/feedback/dto"
	"eduanalytics_backend/internals/features/feedback/model"
)

const (
	defaultTagLimit = 20
	maxTagLimit     = 100
)

// ListFilter: predikat opsional untuk listing feedback.
type ListFilter struct {
	StudentID    *string
	CourseID     *string
	FeedbackType *string
	Sentiment    *string
	RatingMin    *int
	RatingMax    *int
}

type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

func (s *FeedbackService) filtered(f ListFilter) *gorm.DB {
	q := s.DB.Model(&model.FeedbackModel{})
	if f.StudentID != nil {
		q = q.Where("feedback_student_id = ?", *f.StudentID)
	}
	if f.CourseID != nil {
		q = q.Where("feedback_course_id = ?", *f.CourseID)
	}
	if f.FeedbackType != nil {
		q = q.Where("feedback_type = ?", *f.FeedbackType)
	}
	if f.Sentiment != nil {
		q = q.Where("feedback_sentiment = ?", *f.Sentiment)
	}
	if f.RatingMin != nil {
		q = q.Where("feedback_rating >= ?", *f.RatingMin)
	}
	if f.RatingMax != nil {
		q = q.Where("feedback_rating <= ?", *f.RatingMax)
	}
	return q
}

func (s *FeedbackService) List(f ListFilter, page, size int) ([]model.FeedbackModel, int64, error) {
	var total int64
	if err := s.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.FeedbackModel
	err := s.filtered(f).
		Order("feedback_created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}

func (s *FeedbackService) GetByID(id uuid.UUID) (model.FeedbackModel, error) {
	var m model.FeedbackModel
	err := s.DB.Where("feedback_id = ?", id).First(&m).Error
	return m, err
}

func (s *FeedbackService) Create(m *model.FeedbackModel) error {
	return s.DB.Create(m).Error
}

// BulkCreate menyimpan batch dalam satu transaksi, all-or-nothing.
func (s *FeedbackService) BulkCreate(items []model.FeedbackModel) error {
	if len(items) == 0 {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(items, 100).Error
	})
}

// SentimentSummary: group by sentiment, null masuk bucket "unknown".
func (s *FeedbackService) SentimentSummary(f ListFilter) ([]dto.SentimentBucket, error) {
	rows := []dto.SentimentBucket{}
	err := s.filtered(f).
		Select(`COALESCE(feedback_sentiment, 'unknown') AS sentiment,
			COUNT(*) AS count,
			COALESCE(AVG(feedback_rating), 0) AS avg_rating`).
		Group("COALESCE(feedback_sentiment, 'unknown')").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// Trends: volume & rata-rata rating per bucket kalender, ascending.
func (s *FeedbackService) Trends(p analyticsService.Period, f ListFilter) ([]dto.FeedbackTrendPoint, error) {
	rows := []dto.FeedbackTrendPoint{}
	err := s.filtered(f).
		Select(analyticsService.BucketExpr(p, "feedback_created_at") + ` AS bucket,
			COUNT(*) AS count,
			COALESCE(AVG(feedback_rating), 0) AS avg_rating`).
		Group("bucket").
		Order("bucket ASC").
		Scan(&rows).Error
	return rows, err
}

// RatingDistribution: jumlah feedback per nilai rating (1..5), rating
// null tidak dihitung.
func (s *FeedbackService) RatingDistribution(f ListFilter) ([]dto.RatingBucket, error) {
	rows := []dto.RatingBucket{}
	err := s.filtered(f).
		Select("feedback_rating AS rating, COUNT(*) AS count").
		Where("feedback_rating IS NOT NULL").
		Group("feedback_rating").
		Order("feedback_rating ASC").
		Scan(&rows).Error
	return rows, err
}

// PopularTags: unnest text[] lalu hitung frekuensi per tag.
func (s *FeedbackService) PopularTags(limit int) ([]dto.PopularTag, error) {
	if limit <= 0 {
		limit = defaultTagLimit
	}
	if limit > maxTagLimit {
		limit = maxTagLimit
	}

	rows := []dto.PopularTag{}
	err := s.DB.Raw(`
		SELECT tag, COUNT(*) AS count
		FROM feedback, unnest(feedback_tags) AS tag
		GROUP BY tag
		ORDER BY count DESC, tag ASC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (s *FeedbackService) CreateSurveyResponse(m *model.SurveyResponseModel) error {
	return s.DB.Create(m).Error
}

func (s *FeedbackService) ListSurveyResponses(surveyName string, page, size int) ([]model.SurveyResponseModel, int64, error) {
	q := s.DB.Model(&model.SurveyResponseModel{})
	if surveyName != "" {
		q = q.Where("survey_response_survey_name = ?", surveyName)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.SurveyResponseModel
	err := q.Order("survey_response_submitted_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&rows).Error
	return rows, total, err
}
