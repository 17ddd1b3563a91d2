package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buraks/classtrack/internal/app/models/dto"
	"github.com/buraks/classtrack/internal/app/services"
	"github.com/buraks/classtrack/internal/middleware"
)

// StudentController handles enrollment, lookup and moves
type StudentController struct {
	registryService *services.RegistryService
	moveService     *services.MoveService
}

// NewStudentController creates a new StudentController
func NewStudentController(registryService *services.RegistryService, moveService *services.MoveService) *StudentController {
	return &StudentController{
		registryService: registryService,
		moveService:     moveService,
	}
}

// EnrollStudent handles student enrollment
// @Summary Enroll a new student
// @Description Enrolls a student into a course and into the roster of every teacher assigned to it
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.EnrollStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollStudentResponse} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student name already registered"
// @Router /students [post]
func (c *StudentController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.registryService.Enroll(ctx, req.Name, req.Grade, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.EnrollStudentResponse{ID: id}))
}

// GetStudentByName retrieves a student by its unique name
// @Summary Get student by name
// @Description Retrieves the canonical student record for a name
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{name} [get]
func (c *StudentController) GetStudentByName(ctx *gin.Context) {
	student, err := c.registryService.StudentByName(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// MoveStudents handles a batch student move
// @Summary Move students to a course
// @Description Moves each named student to the destination course; unknown names and students already in the destination are skipped silently
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.MoveStudentsRequest true "Move batch"
// @Success 200 {object} dto.APIResponse "Batch applied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Destination course not found"
// @Router /students/move [post]
func (c *StudentController) MoveStudents(ctx *gin.Context) {
	var req dto.MoveStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid move data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.moveService.MoveStudents(ctx, req.Names, req.ToCourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil))
}
