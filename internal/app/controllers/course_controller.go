package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/models/dto"
	"github.com/buraks/classtrack/internal/app/services"
	"github.com/buraks/classtrack/internal/middleware"
)

// xlsxContentType is the MIME type for Office Open XML workbooks
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CourseController handles course-related operations
type CourseController struct {
	registryService *services.RegistryService
	exportService   *services.ExportService
}

// NewCourseController creates a new CourseController
func NewCourseController(registryService *services.RegistryService, exportService *services.ExportService) *CourseController {
	return &CourseController{
		registryService: registryService,
		exportService:   exportService,
	}
}

// RegisterCourse handles course registration
// @Summary Register a new course
// @Description Registers a course with its immutable teacher set and returns the assigned id
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.RegisterCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterCourseResponse} "Course registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses [post]
func (c *CourseController) RegisterCourse(ctx *gin.Context) {
	var req dto.RegisterCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.registryService.RegisterCourse(ctx, req.Name, req.TeacherIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.RegisterCourseResponse{ID: id}))
}

// GetAllCourses retrieves all registered courses
// @Summary Get all courses
// @Description Retrieves a list of all registered courses ordered by id
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.registryService.Courses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific registered course by its ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.registryService.Course(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCourseAverageGrade retrieves a course's average grade
// @Summary Get course average grade
// @Description Returns the average grade as a fixed-point integer with one decimal digit (34 means 3.4), 0 for an empty course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.AverageGradeResponse} "Average grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /courses/{id}/average-grade [get]
func (c *CourseController) GetCourseAverageGrade(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	avg := c.registryService.CourseAverageGrade(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AverageGradeResponse{Average: avg}))
}

// GetCourseRoster retrieves a course's roster snapshot
// @Summary Get course roster
// @Description Retrieves the students currently enrolled in the course; entry order is unspecified
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.RosterResponse} "Roster retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /courses/{id}/roster [get]
func (c *CourseController) GetCourseRoster(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	students := c.registryService.CourseRoster(ctx, id)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RosterResponse{
		Students: students,
		Count:    len(students),
	}))
}

// ExportCourseRoster downloads a course's roster as an xlsx workbook
// @Summary Export course roster
// @Description Streams the course roster as an Excel workbook with one row per student
// @Tags courses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Course ID"
// @Success 200 {file} file "Roster workbook"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/roster/export [get]
func (c *CourseController) ExportCourseRoster(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	workbook, err := c.exportService.CourseRosterWorkbook(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer workbook.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="course_%d_roster.xlsx"`, id))
	ctx.Header("Content-Type", xlsxContentType)
	if err := workbook.Write(ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}

// parseCourseID reads the :id path parameter, writing the error response
// itself when the value is not a number.
func parseCourseID(ctx *gin.Context) (models.CourseID, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("Course ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return models.CourseID(id), true
}
