package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/feedback/controller"
)

func FeedbackRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewFeedbackController(db)

	feedback := api.Group("/feedback")
	feedback.Get("/", ctl.List)
	feedback.Post("/", ctl.Create)
	feedback.Post("/bulk-import", ctl.BulkCreate)
	feedback.Get("/analytics/sentiment", ctl.SentimentSummary)
	feedback.Get("/analytics/trends", ctl.Trends)
	feedback.Get("/analytics/ratings", ctl.RatingDistribution)
	feedback.Get("/tags/popular", ctl.PopularTags)
	feedback.Get("/surveys", ctl.ListSurveyResponses)
	feedback.Post("/surveys", ctl.CreateSurveyResponse)
	// :id paling akhir biar tidak menangkap path statis di atas
	feedback.Get("/:id", ctl.GetByID)
}
