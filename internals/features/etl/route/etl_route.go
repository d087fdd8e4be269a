package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/etl/controller"
	"eduanalytics_backend/internals/middlewares"
)

func ETLRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewETLController(db)

	etl := api.Group("/etl")
	etl.Post("/upload", middlewares.UploadRateLimiter(), ctl.Upload)
	etl.Post("/process", ctl.Process)
	etl.Get("/status/:id", ctl.Status)
	etl.Get("/jobs", ctl.Jobs)
	etl.Post("/jobs/:id/cancel", ctl.Cancel)
	etl.Post("/validate-data", middlewares.UploadRateLimiter(), ctl.Validate)
	etl.Get("/data-sources", ctl.DataSources)
	etl.Get("/validation-rules", ctl.ValidationRules)
}
