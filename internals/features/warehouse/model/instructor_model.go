package model

import (
	"time"

	"github.com/google/uuid"
)

type InstructorModel struct {
	InstructorID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:instructor_id" json:"instructor_id"`
	InstructorNumber string    `gorm:"type:varchar(20);not null;uniqueIndex;column:instructor_number"      json:"instructor_number"`

	InstructorFirstName string  `gorm:"type:varchar(100);not null;column:instructor_first_name" json:"instructor_first_name"`
	InstructorLastName  string  `gorm:"type:varchar(100);not null;column:instructor_last_name"  json:"instructor_last_name"`
	InstructorEmail     string  `gorm:"type:varchar(255);not null;uniqueIndex;column:instructor_email" json:"instructor_email"`
	InstructorTitle     *string `gorm:"type:varchar(50);column:instructor_title"                json:"instructor_title,omitempty"`

	InstructorDepartmentID uuid.UUID `gorm:"type:uuid;not null;index;column:instructor_department_id" json:"instructor_department_id"`
	InstructorHireDate     time.Time `gorm:"type:date;not null;column:instructor_hire_date"           json:"instructor_hire_date"`

	InstructorIsActive  bool       `gorm:"not null;default:true;column:instructor_is_active"                    json:"instructor_is_active"`
	InstructorCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:instructor_created_at" json:"instructor_created_at"`
	InstructorUpdatedAt *time.Time `gorm:"type:timestamptz;column:instructor_updated_at"                        json:"instructor_updated_at,omitempty"`
}

func (InstructorModel) TableName() string { return "dim_instructor" }
