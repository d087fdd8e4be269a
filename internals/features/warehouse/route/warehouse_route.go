package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/warehouse/controller"
)

func WarehouseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewWarehouseController(db)

	wh := api.Group("/warehouse")
	wh.Post("/time-dimension", ctl.GenerateTimeRange)
	wh.Get("/schools", ctl.ListSchools)
	wh.Post("/schools", ctl.CreateSchool)
	wh.Get("/departments", ctl.ListDepartments)
	wh.Post("/departments", ctl.CreateDepartment)
	wh.Get("/instructors", ctl.ListInstructors)
	wh.Post("/instructors", ctl.CreateInstructor)
}
