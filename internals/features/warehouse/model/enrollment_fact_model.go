package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentFactModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_student_time;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCourseID  uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_course_time;column:enrollment_course_id"   json:"enrollment_course_id"`
	EnrollmentTimeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollment_student_time;index:idx_enrollment_course_time;column:enrollment_time_id" json:"enrollment_time_id"`

	EnrollmentDate             time.Time  `gorm:"type:date;not null;index;column:enrollment_date" json:"enrollment_date"`
	EnrollmentDropDate         *time.Time `gorm:"type:date;column:enrollment_drop_date"           json:"enrollment_drop_date,omitempty"`
	EnrollmentIsDropped        bool       `gorm:"not null;default:false;column:enrollment_is_dropped"   json:"enrollment_is_dropped"`
	EnrollmentIsCompleted      bool       `gorm:"not null;default:false;column:enrollment_is_completed" json:"enrollment_is_completed"`
	EnrollmentWaitlistPosition *int       `gorm:"column:enrollment_waitlist_position"             json:"enrollment_waitlist_position,omitempty"`

	EnrollmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:enrollment_created_at" json:"enrollment_created_at"`
}

func (EnrollmentFactModel) TableName() string { return "enrollment_fact" }

type AttendanceFactModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceCourseID  uuid.UUID `gorm:"type:uuid;not null;index:idx_attendance_course_date;column:attendance_course_id"   json:"attendance_course_id"`
	AttendanceTimeID    uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_time_id"                                json:"attendance_time_id"`

	AttendanceClassDate   time.Time `gorm:"type:date;not null;index:idx_attendance_student_date;index:idx_attendance_course_date;column:attendance_class_date" json:"attendance_class_date"`
	AttendanceIsPresent   bool      `gorm:"not null;column:attendance_is_present"            json:"attendance_is_present"`
	AttendanceIsLate      bool      `gorm:"not null;default:false;column:attendance_is_late" json:"attendance_is_late"`
	AttendanceMinutesLate int       `gorm:"not null;default:0;column:attendance_minutes_late" json:"attendance_minutes_late"`

	AttendanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_created_at" json:"attendance_created_at"`
}

func (AttendanceFactModel) TableName() string { return "attendance_fact" }
