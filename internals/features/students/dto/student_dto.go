package dto

import (
	"time"

	"github.com/google/uuid"

	whModel "eduanalytics_backend/internals/features/warehouse/model"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

type CreateStudentRequest struct {
	StudentNumber  string     `json:"student_number"  validate:"required,max=20"`
	FirstName      string     `json:"first_name"      validate:"required,max=100"`
	LastName       string     `json:"last_name"       validate:"required,max=100"`
	Email          string     `json:"email"           validate:"required,email,max=255"`
	DateOfBirth    time.Time  `json:"date_of_birth"   validate:"required"`
	Gender         string     `json:"gender"          validate:"required,oneof=male female other"`
	Ethnicity      *string    `json:"ethnicity"       validate:"omitempty,max=50"`
	EnrollmentDate time.Time  `json:"enrollment_date" validate:"required"`
	Status         *string    `json:"status"          validate:"omitempty,oneof=active graduated dropped suspended"`
	Major          *string    `json:"major"           validate:"omitempty,max=100"`
	Minor          *string    `json:"minor"           validate:"omitempty,max=100"`
	GraduationDate *time.Time `json:"graduation_date" validate:"omitempty"`
}

func (r CreateStudentRequest) ToModel() whModel.StudentModel {
	status := whModel.StudentStatusActive
	if r.Status != nil {
		status = whModel.StudentStatus(*r.Status)
	}
	return whModel.StudentModel{
		StudentNumber:         r.StudentNumber,
		StudentFirstName:      r.FirstName,
		StudentLastName:       r.LastName,
		StudentEmail:          r.Email,
		StudentDateOfBirth:    r.DateOfBirth,
		StudentGender:         r.Gender,
		StudentEthnicity:      r.Ethnicity,
		StudentEnrollmentDate: r.EnrollmentDate,
		StudentGraduationDate: r.GraduationDate,
		StudentStatus:         status,
		StudentMajor:          r.Major,
		StudentMinor:          r.Minor,
	}
}

// UpdateStudentRequest: partial update, hanya field non-nil yang dimutasi.
type UpdateStudentRequest struct {
	FirstName      *string    `json:"first_name"      validate:"omitempty,max=100"`
	LastName       *string    `json:"last_name"       validate:"omitempty,max=100"`
	Email          *string    `json:"email"           validate:"omitempty,email,max=255"`
	Major          *string    `json:"major"           validate:"omitempty,max=100"`
	Minor          *string    `json:"minor"           validate:"omitempty,max=100"`
	Status         *string    `json:"status"          validate:"omitempty,oneof=active graduated dropped suspended"`
	GraduationDate *time.Time `json:"graduation_date" validate:"omitempty"`
}

// Updates membangun map kolom→nilai untuk GORM Updates.
func (r UpdateStudentRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.FirstName != nil {
		u["student_first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		u["student_last_name"] = *r.LastName
	}
	if r.Email != nil {
		u["student_email"] = *r.Email
	}
	if r.Major != nil {
		u["student_major"] = *r.Major
	}
	if r.Minor != nil {
		u["student_minor"] = *r.Minor
	}
	if r.Status != nil {
		u["student_status"] = *r.Status
	}
	if r.GraduationDate != nil {
		u["student_graduation_date"] = *r.GraduationDate
	}
	if len(u) > 0 {
		u["student_updated_at"] = time.Now()
	}
	return u
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID  `json:"student_id"`
	StudentNumber    string     `json:"student_number"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	DateOfBirth      time.Time  `json:"date_of_birth"`
	Gender           string     `json:"gender"`
	Ethnicity        *string    `json:"ethnicity,omitempty"`
	EnrollmentDate   time.Time  `json:"enrollment_date"`
	GraduationDate   *time.Time `json:"graduation_date,omitempty"`
	Status           string     `json:"status"`
	Major            *string    `json:"major,omitempty"`
	Minor            *string    `json:"minor,omitempty"`
	GPA              *float64   `json:"gpa,omitempty"`
	CreditsCompleted int        `json:"credits_completed"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func FromStudentModel(m whModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentNumber:    m.StudentNumber,
		FirstName:        m.StudentFirstName,
		LastName:         m.StudentLastName,
		Email:            m.StudentEmail,
		DateOfBirth:      m.StudentDateOfBirth,
		Gender:           m.StudentGender,
		Ethnicity:        m.StudentEthnicity,
		EnrollmentDate:   m.StudentEnrollmentDate,
		GraduationDate:   m.StudentGraduationDate,
		Status:           string(m.StudentStatus),
		Major:            m.StudentMajor,
		Minor:            m.StudentMinor,
		GPA:              m.StudentGPA,
		CreditsCompleted: m.StudentCreditsCompleted,
		CreatedAt:        m.StudentCreatedAt,
		UpdatedAt:        m.StudentUpdatedAt,
	}
}

func FromStudentModels(ms []whModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
