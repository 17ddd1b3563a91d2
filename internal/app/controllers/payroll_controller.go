package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buraks/classtrack/internal/app/models/dto"
	"github.com/buraks/classtrack/internal/app/services"
	"github.com/buraks/classtrack/internal/middleware"
)

// PayrollController handles payroll rate operations
type PayrollController struct {
	payrollService *services.PayrollService
}

// NewPayrollController creates a new PayrollController
func NewPayrollController(payrollService *services.PayrollService) *PayrollController {
	return &PayrollController{payrollService: payrollService}
}

// ChangeSalaryPerBlock updates the payroll rate
// @Summary Change salary per block
// @Description Updates the salary paid per full block of students; zero is rejected
// @Tags payroll
// @Accept json
// @Produce json
// @Param request body dto.ChangeSalaryRequest true "New payroll rate"
// @Success 200 {object} dto.APIResponse{data=dto.SalaryPerBlockResponse} "Rate updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /payroll/salary-per-block [put]
func (c *PayrollController) ChangeSalaryPerBlock(ctx *gin.Context) {
	var req dto.ChangeSalaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payroll data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.payrollService.ChangeSalaryPerBlock(ctx, req.SalaryPerBlock); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SalaryPerBlockResponse{
		SalaryPerBlock: req.SalaryPerBlock,
	}))
}

// GetSalaryPerBlock retrieves the current payroll rate
// @Summary Get salary per block
// @Description Returns the salary currently paid per full block of students
// @Tags payroll
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SalaryPerBlockResponse} "Rate retrieved successfully"
// @Router /payroll/salary-per-block [get]
func (c *PayrollController) GetSalaryPerBlock(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SalaryPerBlockResponse{
		SalaryPerBlock: c.payrollService.SalaryPerBlock(ctx),
	}))
}
