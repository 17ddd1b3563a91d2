package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buraks/classtrack/internal/app/events"
	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

func TestMoveValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.move.MoveStudents(ctx, nil, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	err = env.move.MoveStudents(ctx, []string{"ayse"}, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMoveWithOverlappingTeacherSets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// source course teachers {1,2}, destination teachers {2,3}
	fromID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1, 2})
	require.NoError(t, err)
	toID, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{2, 3})
	require.NoError(t, err)

	studentID, err := env.registry.Enroll(ctx, "ayse", 4, fromID)
	require.NoError(t, err)

	commonBefore := env.registry.TeacherRoster(ctx, 2)

	require.NoError(t, env.move.MoveStudents(ctx, []string{"ayse"}, toID))

	// course rosters: source lost the student, destination gained it
	assert.Empty(t, env.registry.CourseRoster(ctx, fromID))
	dest := env.registry.CourseRoster(ctx, toID)
	require.Len(t, dest, 1)
	assert.Equal(t, studentID, dest[0].ID)
	assert.Equal(t, toID, dest[0].CourseID, "destination roster copy must carry the new course id")

	// teacher only in the source set lost the student
	assert.Equal(t, 0, env.registry.TeacherStudentCount(ctx, 1))
	// teacher only in the destination set gained the updated record
	gained := env.registry.TeacherRoster(ctx, 3)
	require.Len(t, gained, 1)
	assert.Equal(t, toID, gained[0].CourseID)
	// teacher in both sets observed no churn at all
	assert.Equal(t, commonBefore, env.registry.TeacherRoster(ctx, 2))

	// canonical record follows the move
	student, err := env.registry.StudentByName(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, toID, student.CourseID)
}

func TestMoveNoopWhenAlreadyInDestination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	courseID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	_, err = env.registry.Enroll(ctx, "ayse", 4, courseID)
	require.NoError(t, err)
	enrollEvents := len(*env.received)

	require.NoError(t, env.move.MoveStudents(ctx, []string{"ayse"}, courseID))

	assert.Len(t, env.registry.CourseRoster(ctx, courseID), 1)
	assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, 1))
	assert.Len(t, *env.received, enrollEvents, "a no-op move must not emit a notification")
}

func TestMoveSkipsUnknownNames(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fromID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	toID, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{2})
	require.NoError(t, err)
	_, err = env.registry.Enroll(ctx, "ayse", 4, fromID)
	require.NoError(t, err)

	// unknown names do not abort the batch; the known student still moves
	require.NoError(t, env.move.MoveStudents(ctx, []string{"ghost", "ayse", "phantom"}, toID))

	assert.Empty(t, env.registry.CourseRoster(ctx, fromID))
	assert.Len(t, env.registry.CourseRoster(ctx, toID), 1)
}

func TestMoveBatchMovesEachStudentIndependently(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fromID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	toID, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{1, 2})
	require.NoError(t, err)

	for _, name := range []string{"a", "b", "c"} {
		_, err = env.registry.Enroll(ctx, name, 3, fromID)
		require.NoError(t, err)
	}

	require.NoError(t, env.move.MoveStudents(ctx, []string{"a", "c"}, toID))

	assert.Len(t, env.registry.CourseRoster(ctx, fromID), 1)
	assert.Len(t, env.registry.CourseRoster(ctx, toID), 2)
	// teacher 1 teaches both courses and keeps all three students
	assert.Equal(t, 3, env.registry.TeacherStudentCount(ctx, 1))
	assert.Equal(t, 2, env.registry.TeacherStudentCount(ctx, 2))
}

func TestMoveEmitsNotificationPerMovedStudent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fromID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	toID, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{2})
	require.NoError(t, err)
	aID, err := env.registry.Enroll(ctx, "a", 3, fromID)
	require.NoError(t, err)
	bID, err := env.registry.Enroll(ctx, "b", 5, fromID)
	require.NoError(t, err)
	*env.received = nil

	require.NoError(t, env.move.MoveStudents(ctx, []string{"a", "b", "ghost"}, toID))

	require.Len(t, *env.received, 2)
	assert.Equal(t, events.StudentChanged{StudentID: aID, Name: "a", CourseID: toID, Grade: 3}, (*env.received)[0])
	assert.Equal(t, events.StudentChanged{StudentID: bID, Name: "b", CourseID: toID, Grade: 5}, (*env.received)[1])
}

func TestMoveOutOfUnregisteredCourse(t *testing.T) {
	// A student enrolled into a course that was never registered can still be
	// moved; there is no source teacher set, so every destination teacher
	// gains the student.
	env := newTestEnv(t)
	ctx := context.Background()
	toID, err := env.registry.RegisterCourse(ctx, "Physics", []models.TeacherID{1, 2})
	require.NoError(t, err)
	_, err = env.registry.Enroll(ctx, "ayse", 4, 77)
	require.NoError(t, err)

	require.NoError(t, env.move.MoveStudents(ctx, []string{"ayse"}, toID))

	assert.Empty(t, env.registry.CourseRoster(ctx, 77))
	assert.Len(t, env.registry.CourseRoster(ctx, toID), 1)
	assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, 1))
	assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, 2))
}

func TestMoveFailedBatchLeavesStateUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	fromID, err := env.registry.RegisterCourse(ctx, "Math", []models.TeacherID{1})
	require.NoError(t, err)
	_, err = env.registry.Enroll(ctx, "ayse", 4, fromID)
	require.NoError(t, err)
	*env.received = nil

	require.ErrorIs(t, env.move.MoveStudents(ctx, []string{"ayse"}, 42), apperrors.ErrNotFound)

	assert.Len(t, env.registry.CourseRoster(ctx, fromID), 1)
	assert.Equal(t, 1, env.registry.TeacherStudentCount(ctx, 1))
	assert.Empty(t, *env.received)
	student, err := env.registry.StudentByName(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, fromID, student.CourseID)
}
