package dto

import (
	"time"

	"github.com/buraks/classtrack/internal/app/models"
)

// APIResponse is the standard success envelope
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in the standard envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// RegisterCourseResponse carries the id assigned to a newly registered course
type RegisterCourseResponse struct {
	ID models.CourseID `json:"id" example:"1"`
}

// EnrollStudentResponse carries the id assigned to a newly enrolled student
type EnrollStudentResponse struct {
	ID models.StudentID `json:"id" example:"1"`
}

// AverageGradeResponse carries a fixed-point average grade with one decimal
// digit encoded as an integer, e.g. 34 means 3.4.
type AverageGradeResponse struct {
	Average int64 `json:"average" example:"34"`
}

// StudentCountResponse carries a roster size
type StudentCountResponse struct {
	Count int `json:"count" example:"12"`
}

// RosterResponse carries a roster snapshot; entry order is unspecified
type RosterResponse struct {
	Students []models.Student `json:"students"`
	Count    int              `json:"count" example:"12"`
}

// RewardResponse carries a teacher's computed salary
type RewardResponse struct {
	TeacherID models.TeacherID `json:"teacherId" example:"1"`
	Salary    int64            `json:"salary" example:"125"`
}

// SalaryPerBlockResponse carries the current payroll rate
type SalaryPerBlockResponse struct {
	SalaryPerBlock int64 `json:"salaryPerBlock" example:"100"`
}
