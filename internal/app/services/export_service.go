package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

// rosterSheetName is the single sheet holding the exported roster
const rosterSheetName = "Roster"

// ExportService renders course rosters as Excel workbooks
type ExportService struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewExportService creates a new export service instance
func NewExportService(st *store.Store, logger zerolog.Logger) *ExportService {
	return &ExportService{
		store:  st,
		logger: logger,
	}
}

// CourseRosterWorkbook builds an xlsx workbook with one header row and one
// row per enrolled student. Roster order is unspecified, so rows are sorted
// by student id to keep repeated exports stable. Unlike enrollment, export
// requires a registered course.
func (s *ExportService) CourseRosterWorkbook(ctx context.Context, courseID models.CourseID) (*excelize.File, error) {
	var (
		course   *models.Course
		students []models.Student
	)
	s.store.View(func(st *store.State) {
		if c, ok := st.Courses[courseID]; ok {
			cc := *c
			course = &cc
		}
		if r, ok := st.CourseRosters[courseID]; ok {
			students = r.Snapshot()
		}
	})
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", rosterSheetName); err != nil {
		return nil, err
	}

	headers := []string{"Student ID", "Name", "Grade", "Course ID"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(rosterSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for row, student := range students {
		values := []interface{}{
			int64(student.ID),
			student.Name,
			int(student.Grade),
			int64(student.CourseID),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(rosterSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	s.logger.Debug().
		Int64("courseId", int64(courseID)).
		Int("students", len(students)).
		Msg("Roster workbook built")
	return f, nil
}
