package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusDropped   StudentStatus = "dropped"
	StudentStatusSuspended StudentStatus = "suspended"
)

type StudentModel struct {
	// PK & business key
	StudentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentNumber string    `gorm:"type:varchar(20);not null;uniqueIndex;column:student_number"      json:"student_number"`

	// Identitas
	StudentFirstName string  `gorm:"type:varchar(100);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string  `gorm:"type:varchar(100);not null;column:student_last_name"  json:"student_last_name"`
	StudentEmail     string  `gorm:"type:varchar(255);not null;uniqueIndex;column:student_email" json:"student_email"`
	StudentGender    string  `gorm:"type:varchar(10);not null;column:student_gender"      json:"student_gender"`
	StudentEthnicity *string `gorm:"type:varchar(50);column:student_ethnicity"            json:"student_ethnicity,omitempty"`

	// Akademik
	StudentDateOfBirth    time.Time     `gorm:"type:date;not null;column:student_date_of_birth"      json:"student_date_of_birth"`
	StudentEnrollmentDate time.Time     `gorm:"type:date;not null;index;column:student_enrollment_date" json:"student_enrollment_date"`
	StudentGraduationDate *time.Time    `gorm:"type:date;column:student_graduation_date"             json:"student_graduation_date,omitempty"`
	StudentStatus         StudentStatus `gorm:"type:varchar(20);not null;index;column:student_status" json:"student_status"`
	StudentMajor          *string       `gorm:"type:varchar(100);index;column:student_major"          json:"student_major,omitempty"`
	StudentMinor          *string       `gorm:"type:varchar(100);column:student_minor"                json:"student_minor,omitempty"`

	// Derived (cached dari fact rows, di-refresh oleh ETL)
	StudentGPA              *float64 `gorm:"column:student_gpa"                                json:"student_gpa,omitempty"`
	StudentCreditsCompleted int      `gorm:"not null;default:0;column:student_credits_completed" json:"student_credits_completed"`

	// Audit
	StudentCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"type:timestamptz;column:student_updated_at"                        json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "dim_student" }
