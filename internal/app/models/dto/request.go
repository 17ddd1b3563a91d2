package dto

import "github.com/buraks/classtrack/internal/app/models"

// RegisterCourseRequest represents a request to register a new course
type RegisterCourseRequest struct {
	Name       string             `json:"name" binding:"required" example:"Mathematics 101"`
	TeacherIDs []models.TeacherID `json:"teacherIds" binding:"required" example:"1,2"`
}

// EnrollStudentRequest represents a request to enroll a new student.
// CourseID carries no binding rule: enrollment accepts any course id and
// the service decides what to do with it.
type EnrollStudentRequest struct {
	Name     string          `json:"name" binding:"required" example:"Ayse Yilmaz"`
	Grade    uint8           `json:"grade" example:"4"`
	CourseID models.CourseID `json:"courseId" example:"1"`
}

// MoveStudentsRequest represents a batch request to move students to a course
type MoveStudentsRequest struct {
	Names      []string        `json:"names" binding:"required" example:"Ayse Yilmaz,Mehmet Kaya"`
	ToCourseID models.CourseID `json:"toCourseId" example:"2"`
}

// ChangeSalaryRequest represents a request to change the payroll rate
type ChangeSalaryRequest struct {
	SalaryPerBlock int64 `json:"salaryPerBlock" example:"100"`
}
