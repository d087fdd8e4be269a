package database

import (
	"log"

	etlModel "eduanalytics_backend/internals/features/etl/model"
	feedbackModel "eduanalytics_backend/internals/features/feedback/model"
	whModel "eduanalytics_backend/internals/features/warehouse/model"
)

// AutoMigrate menjalankan migrasi skema untuk semua model.
// Urutan: dimensi dulu, baru fact dan tabel dokumen.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&whModel.SchoolModel{},
		&whModel.DepartmentModel{},
		&whModel.InstructorModel{},
		&whModel.StudentModel{},
		&whModel.CourseModel{},
		&whModel.TimeModel{},
		&whModel.PerformanceFactModel{},
		&whModel.EnrollmentFactModel{},
		&whModel.AttendanceFactModel{},
		&feedbackModel.FeedbackModel{},
		&feedbackModel.SurveyResponseModel{},
		&feedbackModel.SystemLogModel{},
		&etlModel.ETLJobLogModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi skema: %v", err)
	}
	log.Println("✅ Migrasi skema selesai.")
}
