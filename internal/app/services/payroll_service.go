package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

// blockSize is the number of students that makes up one full salary block.
const blockSize = 4

// PayrollService computes teacher rewards from roster sizes and manages the
// salary rate.
type PayrollService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewPayrollService creates a new payroll service instance
func NewPayrollService(st *store.Store, logger zerolog.Logger) *PayrollService {
	return &PayrollService{
		store:  st,
		logger: logger,
	}
}

// RewardTeacher computes the teacher's salary from the current roster size:
// blocks = count*100/blockSize, salary = blocks * (salaryPerBlock/100), with
// truncating integer division throughout. An unknown teacher earns 0.
func (s *PayrollService) RewardTeacher(ctx context.Context, teacherID models.TeacherID) int64 {
	var salary int64
	s.store.View(func(st *store.State) {
		var count int64
		if r, ok := st.TeacherRosters[teacherID]; ok {
			count = int64(r.Count())
		}
		blocks := count * 100 / blockSize
		salary = blocks * (st.SalaryPerBlock / 100)
	})

	s.logger.Info().
		Int64("teacherId", int64(teacherID)).
		Int64("salary", salary).
		Msg("Teacher rewarded")
	return salary
}

// ChangeSalaryPerBlock updates the payroll rate. Zero is rejected.
func (s *PayrollService) ChangeSalaryPerBlock(ctx context.Context, newSalary int64) error {
	if newSalary == 0 {
		return apperrors.ErrZeroSalaryPerBlock
	}
	return s.store.Update(func(st *store.State) error {
		st.SalaryPerBlock = newSalary
		return nil
	})
}

// SalaryPerBlock returns the current payroll rate
func (s *PayrollService) SalaryPerBlock(ctx context.Context) int64 {
	var salary int64
	s.store.View(func(st *store.State) {
		salary = st.SalaryPerBlock
	})
	return salary
}
