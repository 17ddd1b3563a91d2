package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buraks/classtrack/internal/app/events"
	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

// RegistryService handles course registration, enrollment and roster queries
type RegistryService struct {
	store  *store.Store
	bus    *events.Bus
	logger zerolog.Logger
}

// NewRegistryService creates a new registry service instance
func NewRegistryService(st *store.Store, bus *events.Bus, logger zerolog.Logger) *RegistryService {
	return &RegistryService{
		store:  st,
		bus:    bus,
		logger: logger,
	}
}

// RegisterCourse creates a course with the given teacher set and returns its
// dense id. Duplicate teacher ids in the input collapse to set membership.
// Teacher ids are not validated; a teacher exists by being referenced.
func (s *RegistryService) RegisterCourse(ctx context.Context, name string, teacherIDs []models.TeacherID) (models.CourseID, error) {
	if strings.TrimSpace(name) == "" {
		return 0, apperrors.ErrCourseNameEmpty
	}
	teachers := dedupTeachers(teacherIDs)
	if len(teachers) == 0 {
		return 0, apperrors.ErrTeacherSetEmpty
	}

	var id models.CourseID
	err := s.store.Update(func(st *store.State) error {
		id = st.NextCourseID
		st.NextCourseID++
		st.Courses[id] = &models.Course{
			ID:         id,
			Name:       name,
			TeacherIDs: teachers,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("courseId", int64(id)).
		Str("name", name).
		Int("teachers", len(teachers)).
		Msg("Course registered")
	return id, nil
}

// Enroll registers a new student and fans the record out to the course roster
// and to the roster of every teacher assigned to the course. The course id is
// deliberately not validated: enrolling into an unregistered course creates
// empty-course bookkeeping, whereas MoveStudents rejects unknown destinations.
func (s *RegistryService) Enroll(ctx context.Context, name string, grade uint8, courseID models.CourseID) (models.StudentID, error) {
	if strings.TrimSpace(name) == "" {
		return 0, apperrors.ErrStudentNameEmpty
	}

	var student models.Student
	err := s.store.Update(func(st *store.State) error {
		if existing, ok := st.StudentsByName[name]; ok && existing.ID != 0 {
			return apperrors.ErrStudentAlreadyExists
		}

		id := st.NextStudentID
		st.NextStudentID++
		student = models.Student{
			ID:       id,
			Name:     name,
			Grade:    grade,
			CourseID: courseID,
		}

		record := student
		st.StudentsByName[name] = &record
		st.CourseRoster(courseID).Append(student)

		if course, ok := st.Courses[courseID]; ok {
			for _, teacherID := range course.TeacherIDs {
				st.TeacherRoster(teacherID).Append(student)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.bus.Publish(events.StudentChanged{
		StudentID: student.ID,
		Name:      student.Name,
		CourseID:  student.CourseID,
		Grade:     student.Grade,
	})
	s.logger.Info().
		Int64("studentId", int64(student.ID)).
		Str("name", name).
		Int64("courseId", int64(courseID)).
		Msg("Student enrolled")
	return student.ID, nil
}

// Course retrieves a registered course by id
func (s *RegistryService) Course(ctx context.Context, id models.CourseID) (*models.Course, error) {
	var course *models.Course
	s.store.View(func(st *store.State) {
		if c, ok := st.Courses[id]; ok {
			cc := *c
			course = &cc
		}
	})
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// Courses retrieves all registered courses ordered by id
func (s *RegistryService) Courses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	s.store.View(func(st *store.State) {
		courses = make([]*models.Course, 0, len(st.Courses))
		for _, c := range st.Courses {
			cc := *c
			courses = append(courses, &cc)
		}
	})
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

// StudentByName retrieves a student record by its unique name
func (s *RegistryService) StudentByName(ctx context.Context, name string) (*models.Student, error) {
	var student *models.Student
	s.store.View(func(st *store.State) {
		if rec, ok := st.StudentsByName[name]; ok && rec.ID != 0 {
			sc := *rec
			student = &sc
		}
	})
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// CourseRoster returns a snapshot of the course's roster; order is
// unspecified. An unknown course yields an empty roster, not an error.
func (s *RegistryService) CourseRoster(ctx context.Context, id models.CourseID) []models.Student {
	var students []models.Student
	s.store.View(func(st *store.State) {
		if r, ok := st.CourseRosters[id]; ok {
			students = r.Snapshot()
		}
	})
	if students == nil {
		students = []models.Student{}
	}
	return students
}

// TeacherRoster returns a snapshot of the teacher's roster; order is
// unspecified. An unknown teacher yields an empty roster, not an error.
func (s *RegistryService) TeacherRoster(ctx context.Context, id models.TeacherID) []models.Student {
	var students []models.Student
	s.store.View(func(st *store.State) {
		if r, ok := st.TeacherRosters[id]; ok {
			students = r.Snapshot()
		}
	})
	if students == nil {
		students = []models.Student{}
	}
	return students
}

// CourseAverageGrade returns the course roster's average grade as a
// fixed-point integer with one decimal digit (34 means 3.4), truncated, or 0
// for an empty or unknown course.
func (s *RegistryService) CourseAverageGrade(ctx context.Context, id models.CourseID) int64 {
	var avg int64
	s.store.View(func(st *store.State) {
		if r, ok := st.CourseRosters[id]; ok {
			avg = averageGradeTenths(r.Snapshot())
		}
	})
	return avg
}

// TeacherStudentCount returns the size of the teacher's roster, 0 for an
// unknown teacher.
func (s *RegistryService) TeacherStudentCount(ctx context.Context, id models.TeacherID) int {
	var count int
	s.store.View(func(st *store.State) {
		if r, ok := st.TeacherRosters[id]; ok {
			count = r.Count()
		}
	})
	return count
}

// TeacherAverageGrade returns the teacher roster's average grade in the same
// fixed-point encoding as CourseAverageGrade.
func (s *RegistryService) TeacherAverageGrade(ctx context.Context, id models.TeacherID) int64 {
	var avg int64
	s.store.View(func(st *store.State) {
		if r, ok := st.TeacherRosters[id]; ok {
			avg = averageGradeTenths(r.Snapshot())
		}
	})
	return avg
}

// averageGradeTenths computes sum(grades)*10/count with truncating integer
// division, 0 for an empty roster.
func averageGradeTenths(students []models.Student) int64 {
	if len(students) == 0 {
		return 0
	}
	var sum int64
	for _, s := range students {
		sum += int64(s.Grade)
	}
	return sum * 10 / int64(len(students))
}

// dedupTeachers collapses the input to set membership, preserving first-seen
// order.
func dedupTeachers(ids []models.TeacherID) []models.TeacherID {
	seen := make(map[models.TeacherID]struct{}, len(ids))
	out := make([]models.TeacherID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
