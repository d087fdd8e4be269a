package dto

import (
	"time"

	"github.com/google/uuid"

	whModel "eduanalytics_backend/internals/features/warehouse/model"
)

type CreateCourseRequest struct {
	CourseCode    string    `json:"course_code"    validate:"required,max=20"`
	CourseName    string    `json:"course_name"    validate:"required,max=200"`
	Description   *string   `json:"course_description" validate:"omitempty"`
	Credits       int       `json:"credits"        validate:"required,min=1,max=6"`
	Level         string    `json:"level"          validate:"required,oneof=undergraduate graduate doctorate"`
	DepartmentID  uuid.UUID `json:"department_id"  validate:"required"`
	Prerequisites *string   `json:"prerequisites"  validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() whModel.CourseModel {
	return whModel.CourseModel{
		CourseCode:          r.CourseCode,
		CourseName:          r.CourseName,
		CourseDescription:   r.Description,
		CourseCredits:       r.Credits,
		CourseLevel:         whModel.CourseLevel(r.Level),
		CourseDepartmentID:  r.DepartmentID,
		CoursePrerequisites: r.Prerequisites,
		CourseIsActive:      true,
	}
}

type UpdateCourseRequest struct {
	CourseName    *string `json:"course_name"        validate:"omitempty,max=200"`
	Description   *string `json:"course_description" validate:"omitempty"`
	Credits       *int    `json:"credits"            validate:"omitempty,min=1,max=6"`
	Prerequisites *string `json:"prerequisites"      validate:"omitempty"`
	IsActive      *bool   `json:"is_active"          validate:"omitempty"`
}

func (r UpdateCourseRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.CourseName != nil {
		u["course_name"] = *r.CourseName
	}
	if r.Description != nil {
		u["course_description"] = *r.Description
	}
	if r.Credits != nil {
		u["course_credits"] = *r.Credits
	}
	if r.Prerequisites != nil {
		u["course_prerequisites"] = *r.Prerequisites
	}
	if r.IsActive != nil {
		u["course_is_active"] = *r.IsActive
	}
	if len(u) > 0 {
		u["course_updated_at"] = time.Now()
	}
	return u
}

type CourseResponse struct {
	CourseID      uuid.UUID  `json:"course_id"`
	CourseCode    string     `json:"course_code"`
	CourseName    string     `json:"course_name"`
	Description   *string    `json:"course_description,omitempty"`
	Credits       int        `json:"credits"`
	Level         string     `json:"level"`
	DepartmentID  uuid.UUID  `json:"department_id"`
	Prerequisites *string    `json:"prerequisites,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func FromCourseModel(m whModel.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:      m.CourseID,
		CourseCode:    m.CourseCode,
		CourseName:    m.CourseName,
		Description:   m.CourseDescription,
		Credits:       m.CourseCredits,
		Level:         string(m.CourseLevel),
		DepartmentID:  m.CourseDepartmentID,
		Prerequisites: m.CoursePrerequisites,
		IsActive:      m.CourseIsActive,
		CreatedAt:     m.CourseCreatedAt,
		UpdatedAt:     m.CourseUpdatedAt,
	}
}

func FromCourseModels(ms []whModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCourseModel(m))
	}
	return out
}
