package model

import (
	"time"

	"github.com/google/uuid"
)

type CourseLevel string

const (
	CourseLevelUndergraduate CourseLevel = "undergraduate"
	CourseLevelGraduate      CourseLevel = "graduate"
	CourseLevelDoctorate     CourseLevel = "doctorate"
)

type CourseModel struct {
	CourseID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseCode string    `gorm:"type:varchar(20);not null;uniqueIndex;column:course_code"        json:"course_code"`

	CourseName        string  `gorm:"type:varchar(200);not null;column:course_name" json:"course_name"`
	CourseDescription *string `gorm:"type:text;column:course_description"           json:"course_description,omitempty"`

	CourseCredits      int         `gorm:"not null;column:course_credits"                    json:"course_credits"`
	CourseLevel        CourseLevel `gorm:"type:varchar(20);not null;index;column:course_level" json:"course_level"`
	CourseDepartmentID uuid.UUID   `gorm:"type:uuid;not null;index;column:course_department_id" json:"course_department_id"`

	// Daftar course_code pemicu, dipisah koma. Bukan relasi ternormalisasi;
	// lookup selalu via string match.
	CoursePrerequisites *string `gorm:"type:text;column:course_prerequisites" json:"course_prerequisites,omitempty"`

	CourseIsActive  bool       `gorm:"not null;default:true;column:course_is_active"                    json:"course_is_active"`
	CourseCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt *time.Time `gorm:"type:timestamptz;column:course_updated_at"                        json:"course_updated_at,omitempty"`
}

func (CourseModel) TableName() string { return "dim_course" }
