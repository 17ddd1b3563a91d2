package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buraks/classtrack/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	payrollController *controllers.PayrollController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.RegisterCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/average-grade", courseController.GetCourseAverageGrade)
		courses.GET("/:id/roster", courseController.GetCourseRoster)
		courses.GET("/:id/roster/export", courseController.ExportCourseRoster)
	}

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.EnrollStudent)
		students.POST("/move", studentController.MoveStudents)
		students.GET("/:name", studentController.GetStudentByName)
	}

	// Teacher routes
	teachers := v1.Group("/teachers")
	{
		teachers.GET("/:id/student-count", teacherController.GetTeacherStudentCount)
		teachers.GET("/:id/average-grade", teacherController.GetTeacherAverageGrade)
		teachers.GET("/:id/roster", teacherController.GetTeacherRoster)
		teachers.POST("/:id/reward", teacherController.RewardTeacher)
	}

	// Payroll routes
	payroll := v1.Group("/payroll")
	{
		payroll.PUT("/salary-per-block", payrollController.ChangeSalaryPerBlock)
		payroll.GET("/salary-per-block", payrollController.GetSalaryPerBlock)
	}

	// Liveness probe
	v1.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
