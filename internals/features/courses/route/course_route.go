package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Post("/", ctrl.Create)
	courses.Get("/:id", ctrl.GetByID)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
	courses.Get("/:id/enrollments", ctrl.Enrollments)
	courses.Get("/:id/performance", ctrl.Performance)
	courses.Get("/:id/prerequisites", ctrl.Prerequisites)
	courses.Get("/:id/statistics", ctrl.Statistics)
}
