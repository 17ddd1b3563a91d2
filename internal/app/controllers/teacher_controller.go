package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/models/dto"
	"github.com/buraks/classtrack/internal/app/services"
)

// TeacherController handles teacher roster queries and rewards. Teachers have
// no record of their own, so every endpoint accepts any id and reports empty
// rosters for teachers never referenced by a course.
type TeacherController struct {
	registryService *services.RegistryService
	payrollService  *services.PayrollService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(registryService *services.RegistryService, payrollService *services.PayrollService) *TeacherController {
	return &TeacherController{
		registryService: registryService,
		payrollService:  payrollService,
	}
}

// GetTeacherStudentCount retrieves a teacher's roster size
// @Summary Get teacher student count
// @Description Returns the number of students currently in the teacher's roster, 0 for an unknown teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentCountResponse} "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Router /teachers/{id}/student-count [get]
func (c *TeacherController) GetTeacherStudentCount(ctx *gin.Context) {
	id, ok := parseTeacherID(ctx)
	if !ok {
		return
	}

	count := c.registryService.TeacherStudentCount(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.StudentCountResponse{Count: count}))
}

// GetTeacherAverageGrade retrieves a teacher's roster average grade
// @Summary Get teacher average grade
// @Description Returns the average grade of the teacher's roster as a fixed-point integer with one decimal digit, 0 for an empty roster
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.AverageGradeResponse} "Average grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Router /teachers/{id}/average-grade [get]
func (c *TeacherController) GetTeacherAverageGrade(ctx *gin.Context) {
	id, ok := parseTeacherID(ctx)
	if !ok {
		return
	}

	avg := c.registryService.TeacherAverageGrade(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AverageGradeResponse{Average: avg}))
}

// GetTeacherRoster retrieves a teacher's roster snapshot
// @Summary Get teacher roster
// @Description Retrieves the students currently in the teacher's roster; entry order is unspecified
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse} "Roster retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Router /teachers/{id}/roster [get]
func (c *TeacherController) GetTeacherRoster(ctx *gin.Context) {
	id, ok := parseTeacherID(ctx)
	if !ok {
		return
	}

	students := c.registryService.TeacherRoster(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RosterResponse{
		Students: students,
		Count:    len(students),
	}))
}

// RewardTeacher computes a teacher's salary
// @Summary Reward a teacher
// @Description Computes the teacher's salary from the current roster size and payroll rate
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=dto.RewardResponse} "Salary computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Router /teachers/{id}/reward [post]
func (c *TeacherController) RewardTeacher(ctx *gin.Context) {
	id, ok := parseTeacherID(ctx)
	if !ok {
		return
	}

	salary := c.payrollService.RewardTeacher(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RewardResponse{
		TeacherID: id,
		Salary:    salary,
	}))
}

// parseTeacherID reads the :id path parameter, writing the error response
// itself when the value is not a number.
func parseTeacherID(ctx *gin.Context) (models.TeacherID, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return models.TeacherID(id), true
}
