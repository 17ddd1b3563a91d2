package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/buraks/classtrack/internal/app/events"
	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

// MoveService relocates students between courses, diffing the source and
// destination teacher sets so that teachers common to both courses never
// observe roster churn for the moved student.
type MoveService struct {
	store  *store.Store
	bus    *events.Bus
	logger zerolog.Logger
}

// NewMoveService creates a new move service instance
func NewMoveService(st *store.Store, bus *events.Bus, logger zerolog.Logger) *MoveService {
	return &MoveService{
		store:  st,
		bus:    bus,
		logger: logger,
	}
}

// MoveStudents moves each named student to the destination course, which must
// be registered. Names that do not resolve to a student and students already
// in the destination course are skipped silently; a batch with only no-ops is
// still a success. The whole batch commits or rolls back as one transaction,
// and notifications for the moved students fire only after the commit.
func (s *MoveService) MoveStudents(ctx context.Context, names []string, toCourseID models.CourseID) error {
	if len(names) == 0 {
		return apperrors.ErrEmptyMoveBatch
	}

	var moved []events.StudentChanged
	err := s.store.Update(func(st *store.State) error {
		dest, ok := st.Courses[toCourseID]
		if !ok {
			return apperrors.ErrCourseNotFound
		}

		for _, name := range names {
			student, ok := st.StudentsByName[name]
			if !ok || student.ID == 0 || student.CourseID == toCourseID {
				continue
			}
			if err := relocate(st, student, dest); err != nil {
				return err
			}
			moved = append(moved, events.StudentChanged{
				StudentID: student.ID,
				Name:      student.Name,
				CourseID:  student.CourseID,
				Grade:     student.Grade,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, evt := range moved {
		s.bus.Publish(evt)
	}
	s.logger.Info().
		Int("requested", len(names)).
		Int("moved", len(moved)).
		Int64("toCourseId", int64(toCourseID)).
		Msg("Students moved")
	return nil
}

// relocate moves one student record. The canonical record's course id is
// rewritten before any copy is appended so the destination course roster and
// every newly-gaining teacher roster hold the updated record. Teachers in
// both teacher sets keep their existing copy untouched.
func relocate(st *store.State, student *models.Student, dest *models.Course) error {
	source := st.Courses[student.CourseID]

	if err := st.CourseRoster(student.CourseID).Remove(student.ID); err != nil {
		return err
	}

	var sourceTeachers []models.TeacherID
	if source != nil {
		sourceTeachers = source.TeacherIDs
	}

	student.CourseID = dest.ID
	st.CourseRoster(dest.ID).Append(*student)

	for _, teacherID := range sourceTeachers {
		if dest.HasTeacher(teacherID) {
			continue
		}
		if err := st.TeacherRoster(teacherID).Remove(student.ID); err != nil {
			return err
		}
	}
	for _, teacherID := range dest.TeacherIDs {
		if containsTeacher(sourceTeachers, teacherID) {
			continue
		}
		st.TeacherRoster(teacherID).Append(*student)
	}
	return nil
}

func containsTeacher(ids []models.TeacherID, id models.TeacherID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}
