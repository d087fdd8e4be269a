package model

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentCode string    `gorm:"type:varchar(10);not null;uniqueIndex;column:department_code"        json:"department_code"`
	DepartmentName string    `gorm:"type:varchar(200);not null;column:department_name"                   json:"department_name"`

	DepartmentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:department_school_id" json:"department_school_id"`
	DepartmentBudget   *float64  `gorm:"column:department_budget"                             json:"department_budget,omitempty"`

	DepartmentIsActive  bool       `gorm:"not null;default:true;column:department_is_active"                    json:"department_is_active"`
	DepartmentCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt *time.Time `gorm:"type:timestamptz;column:department_updated_at"                        json:"department_updated_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "dim_department" }

type SchoolModel struct {
	SchoolID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolCode     string    `gorm:"type:varchar(10);not null;uniqueIndex;column:school_code"        json:"school_code"`
	SchoolName     string    `gorm:"type:varchar(200);not null;column:school_name"                   json:"school_name"`
	SchoolDeanName *string   `gorm:"type:varchar(200);column:school_dean_name"                       json:"school_dean_name,omitempty"`

	SchoolIsActive  bool       `gorm:"not null;default:true;column:school_is_active"                    json:"school_is_active"`
	SchoolCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"type:timestamptz;column:school_updated_at"                        json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "dim_school" }
