package dto

import (
	"time"

	"github.com/google/uuid"

	"eduanalytics_backend/internals/features/warehouse/model"
)

type GenerateTimeRangeRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type CreateSchoolRequest struct {
	Code     string  `json:"school_code" validate:"required,max=10"`
	Name     string  `json:"school_name" validate:"required,max=200"`
	DeanName *string `json:"school_dean_name" validate:"omitempty,max=200"`
}

func (r CreateSchoolRequest) ToModel() model.SchoolModel {
	return model.SchoolModel{
		SchoolCode:     r.Code,
		SchoolName:     r.Name,
		SchoolDeanName: r.DeanName,
		SchoolIsActive: true,
	}
}

type CreateDepartmentRequest struct {
	Code     string    `json:"department_code" validate:"required,max=10"`
	Name     string    `json:"department_name" validate:"required,max=200"`
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Budget   *float64  `json:"department_budget" validate:"omitempty,min=0"`
}

func (r CreateDepartmentRequest) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		DepartmentCode:     r.Code,
		DepartmentName:     r.Name,
		DepartmentSchoolID: r.SchoolID,
		DepartmentBudget:   r.Budget,
		DepartmentIsActive: true,
	}
}

type CreateInstructorRequest struct {
	Number       string    `json:"instructor_number" validate:"required,max=20"`
	FirstName    string    `json:"first_name" validate:"required,max=100"`
	LastName     string    `json:"last_name" validate:"required,max=100"`
	Email        string    `json:"email" validate:"required,email,max=255"`
	Title        *string   `json:"title" validate:"omitempty,max=50"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	HireDate     string    `json:"hire_date" validate:"required,datetime=2006-01-02"`
}

func (r CreateInstructorRequest) ToModel() (model.InstructorModel, error) {
	hired, err := time.Parse("2006-01-02", r.HireDate)
	if err != nil {
		return model.InstructorModel{}, err
	}
	return model.InstructorModel{
		InstructorNumber:       r.Number,
		InstructorFirstName:    r.FirstName,
		InstructorLastName:     r.LastName,
		InstructorEmail:        r.Email,
		InstructorTitle:        r.Title,
		InstructorDepartmentID: r.DepartmentID,
		InstructorHireDate:     hired,
		InstructorIsActive:     true,
	}, nil
}
