package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buraks/classtrack/internal/app/events"
	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/store"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

type testEnv struct {
	store    *store.Store
	bus      *events.Bus
	registry *RegistryService
	move     *MoveService
	payroll  *PayrollService
	received *[]events.StudentChanged
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.New(100)
	bus := events.NewBus(zerolog.Nop())
	received := &[]events.StudentChanged{}
	bus.Subscribe(func(evt events.StudentChanged) error {
		*received = append(*received, evt)
		return nil
	})
	return &testEnv{
		store:    st,
		bus:      bus,
		registry: NewRegistryService(st, bus, zerolog.Nop()),
		move:     NewMoveService(st, bus, zerolog.Nop()),
		payroll:  NewPayrollService(st, zerolog.Nop()),
		received: received,
	}
}

func TestRegisterCourseValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.registry.RegisterCourse(ctx, "", []models.TeacherID{1})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	_, err = env.registry.RegisterCourse(ctx, "Math", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestRegisterCourseAssignsDenseIDs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	second, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{2})
	require.NoError(t, err)

	assert.Equal(t, models.CourseID(1), first)
	assert.Equal(t, models.CourseID(2), second)
}

func TestRegisterCourseDeduplicatesTeachers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{3, 1, 3, 1, 2})
	require.NoError(t, err)

	course, err := env.registry.Course(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []models.TeacherID{3, 1, 2}, course.TeacherIDs)
}

func TestCourseNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.registry.Course(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEnrollValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.registry.Enroll(context.Background(), "", 4, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestEnrollDuplicateNameLeavesStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)

	first, err := env.registry.Enroll(ctx, "ayse", 4, courseID)
	require.NoError(t, err)
	require.Equal(t, models.StudentID(1), first)

	_, err = env.registry.Enroll(ctx, "ayse", 5, courseID)
	require.ErrorIs(t, err, apperrors.ErrAlreadyExists)

	// rosters and id allocation are untouched by the failed enrollment
	assert.Len(t, env.registry.CourseRoster(ctx, courseID), 1)
	assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, 1))
	student, err := env.registry.StudentByName(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, uint8(4), student.Grade)

	next, err := env.registry.Enroll(ctx, "mehmet", 3, courseID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentID(2), next, "failed enrollment must not consume an id")
}

func TestEnrollFanOut(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1, 2, 3})
	require.NoError(t, err)

	_, err = env.registry.Enroll(ctx, "ayse", 4, courseID)
	require.NoError(t, err)

	assert.Len(t, env.registry.CourseRoster(ctx, courseID), 1)
	for _, teacherID := range []models.TeacherID{1, 2, 3} {
		assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, teacherID), "teacher %d", teacherID)
	}
	// no other teacher roster gained the student
	assert.Equal(t, 0, env.registry.TeacherStudentCount(ctx, 4))
}

func TestEnrollIntoUnregisteredCourse(t *testing.T) {
	// Enroll does not validate the course id; the student lands in the
	// roster of a course that was never registered and no teacher sees it.
	env := newTestEnv(t)
	ctx := context.Background()

	id, err := env.registry.Enroll(ctx, "ayse", 4, 99)
	require.NoError(t, err)
	assert.Equal(t, models.StudentID(1), id)

	student, err := env.registry.StudentByName(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, models.CourseID(99), student.CourseID)
	assert.Len(t, env.registry.CourseRoster(ctx, 99), 1)
	assert.Equal(t, int64(40), env.registry.CourseAverageGrade(ctx, 99))
}

func TestEnrollEmitsNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)

	id, err := env.registry.Enroll(ctx, "ayse", 4, courseID)
	require.NoError(t, err)

	require.Len(t, *env.received, 1)
	assert.Equal(t, events.StudentChanged{
		StudentID: id,
		Name:      "ayse",
		CourseID:  courseID,
		Grade:     4,
	}, (*env.received)[0])
}

func TestCourseAverageGradeTruncates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)

	_, err = env.registry.Enroll(ctx, "a", 3, courseID)
	require.NoError(t, err)
	_, err = env.registry.Enroll(ctx, "b", 4, courseID)
	require.NoError(t, err)

	// (3+4)*10/2 = 35, i.e. 3.5
	assert.Equal(t, int64(35), env.registry.CourseAverageGrade(ctx, courseID))

	_, err = env.registry.Enroll(ctx, "c", 5, courseID)
	require.NoError(t, err)
	// (3+4+5)*10/3 = 40, i.e. 4.0
	assert.Equal(t, int64(40), env.registry.CourseAverageGrade(ctx, courseID))
}

func TestCourseAverageGradeTruncatesNotRounds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)

	for _, s := range []struct {
		name  string
		grade uint8
	}{{"a", 3}, {"b", 3}, {"c", 4}} {
		_, err = env.registry.Enroll(ctx, s.name, s.grade, courseID)
		require.NoError(t, err)
	}

	// (3+3+4)*10/3 = 33, truncated from 3.33
	assert.Equal(t, int64(33), env.registry.CourseAverageGrade(ctx, courseID))
	assert.Equal(t, int64(33), env.registry.TeacherAverageGrade(ctx, 1))
}

func TestQueriesOnEmptyIDsReturnZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	assert.Equal(t, int64(0), env.registry.CourseAverageGrade(ctx, 123))
	assert.Equal(t, int64(0), env.registry.TeacherAverageGrade(ctx, 123))
	assert.Equal(t, 0, env.registry.TeacherStudentCount(ctx, 123))
	assert.Empty(t, env.registry.CourseRoster(ctx, 123))
	assert.Empty(t, env.registry.TeacherRoster(ctx, 123))
}

func TestCoursesOrderedByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, name := range []string{"Math", "Physics", "Chemistry"} {
		_, err := env.registry.RegisterCourse(ctx, name, []models.TeacherID{1})
		require.NoError(t, err)
	}

	courses, err := env.registry.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	for i, course := range courses {
		assert.Equal(t, models.CourseID(i+1), course.ID)
	}
}
