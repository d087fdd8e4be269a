package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	analyticsService "eduanalytics_backend/internals/features/analytics/service"
	"eduanalytics_backend/internals/features/feedback/dto"
	"eduanalytics_backend/internals/features/feedback/model"
	"eduanalytics_backend/internals/features/feedback/service"
	helper "eduanalytics_backend/internals/helpers"
)

type FeedbackController struct {
	Service *service.FeedbackService
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{Service: service.NewFeedbackService(db)}
}

func listFilterFromQuery(c *fiber.Ctx) service.ListFilter {
	var f service.ListFilter
	if v := c.Query("student_id"); v != "" {
		f.StudentID = &v
	}
	if v := c.Query("course_id"); v != "" {
		f.CourseID = &v
	}
	if v := c.Query("feedback_type"); v != "" {
		f.FeedbackType = &v
	}
	if v := c.Query("sentiment"); v != "" {
		f.Sentiment = &v
	}
	if v := c.QueryInt("rating_min", -1); v >= 0 {
		f.RatingMin = &v
	}
	if v := c.QueryInt("rating_max", -1); v >= 0 {
		f.RatingMax = &v
	}
	return f
}

// GET /api/v1/feedback
func (ctl *FeedbackController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Service.List(listFilterFromQuery(c), paging.Page, paging.Size)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}

	out := make([]dto.FeedbackResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromFeedbackModel(r))
	}
	return helper.JsonList(c, "Feedback berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.Size))
}

// GET /api/v1/feedback/:id
func (ctl *FeedbackController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID feedback tidak valid")
	}
	m, err := ctl.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helper.JsonOK(c, "Feedback berhasil diambil", dto.FromFeedbackModel(m))
}

// POST /api/v1/feedback
func (ctl *FeedbackController) Create(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(&m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan feedback")
	}
	return helper.JsonCreated(c, "Feedback berhasil disimpan", dto.FromFeedbackModel(m))
}

// POST /api/v1/feedback/bulk
func (ctl *FeedbackController) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	items := make([]model.FeedbackModel, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, it.ToModel())
	}
	if err := ctl.Service.BulkCreate(items); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan batch feedback")
	}
	return helper.JsonCreated(c, "Batch feedback berhasil disimpan", fiber.Map{
		"inserted": len(items),
	})
}

// GET /api/v1/feedback/sentiment
func (ctl *FeedbackController) SentimentSummary(c *fiber.Ctx) error {
	rows, err := ctl.Service.SentimentSummary(listFilterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sentiment summary")
	}
	return helper.JsonOK(c, "Sentiment summary berhasil diambil", rows)
}

// GET /api/v1/feedback/trends?period=weekly
func (ctl *FeedbackController) Trends(c *fiber.Ctx) error {
	p := analyticsService.ParsePeriod(c.Query("period"))
	rows, err := ctl.Service.Trends(p, listFilterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung feedback trends")
	}
	return helper.JsonOK(c, "Feedback trends berhasil diambil", fiber.Map{
		"period": string(p),
		"trends": rows,
	})
}

// GET /api/v1/feedback/ratings
func (ctl *FeedbackController) RatingDistribution(c *fiber.Ctx) error {
	rows, err := ctl.Service.RatingDistribution(listFilterFromQuery(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung distribusi rating")
	}
	return helper.JsonOK(c, "Distribusi rating berhasil diambil", rows)
}

// GET /api/v1/feedback/tags?limit=20
func (ctl *FeedbackController) PopularTags(c *fiber.Ctx) error {
	rows, err := ctl.Service.PopularTags(c.QueryInt("limit", 0))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung popular tags")
	}
	return helper.JsonOK(c, "Popular tags berhasil diambil", rows)
}

// POST /api/v1/feedback/surveys
func (ctl *FeedbackController) CreateSurveyResponse(c *fiber.Ctx) error {
	var req dto.CreateSurveyResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	raw, err := sonic.Marshal(req.Answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answers tidak bisa diserialisasi")
	}

	m := model.SurveyResponseModel{
		SurveyResponseSurveyName:    req.SurveyName,
		SurveyResponseStudentID:     req.StudentID,
		SurveyResponseAnswers:       datatypes.JSON(raw),
		SurveyResponseCompletionPct: req.CompletionPct,
		SurveyResponseTimeSpentSec:  req.TimeSpentSeconds,
	}
	if err := ctl.Service.CreateSurveyResponse(&m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan survey response")
	}
	return helper.JsonCreated(c, "Survey response berhasil disimpan", m)
}

// GET /api/v1/feedback/surveys?survey_name=...
func (ctl *FeedbackController) ListSurveyResponses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Service.ListSurveyResponses(c.Query("survey_name"), paging.Page, paging.Size)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil survey responses")
	}
	return helper.JsonList(c, "Survey responses berhasil diambil", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.Size))
}
