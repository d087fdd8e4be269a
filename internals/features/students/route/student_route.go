package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.List)
	students.Post("/", ctrl.Create)
	students.Get("/:id", ctrl.GetByID)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
	students.Get("/:id/performance", ctrl.Performance)
	students.Get("/:id/courses", ctrl.Courses)
	students.Get("/:id/statistics", ctrl.Statistics)
}
