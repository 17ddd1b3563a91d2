// Package seed creates a small set of default courses and students so a
// fresh instance has data to query. It is config-gated and skipped entirely
// when the store already holds courses.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/buraks/classtrack/internal/app/models"
	"github.com/buraks/classtrack/internal/app/services"
	"github.com/buraks/classtrack/internal/pkg/apperrors"
)

// CreateDefaultData registers two courses with overlapping teacher sets and a
// handful of students. Individual failures are collected, not fatal.
func CreateDefaultData(ctx context.Context, registry *services.RegistryService, lgr zerolog.Logger) error {
	courses, err := registry.Courses(ctx)
	if err != nil {
		return err
	}
	if len(courses) > 0 {
		lgr.Info().Int("courses", len(courses)).Msg("Registry already populated, skipping seed")
		return nil
	}

	lgr.Info().Msg("Creating default data (courses/students)...")
	var finalErr error

	mathID, err := registry.RegisterCourse(ctx, "Mathematics 101", []models.TeacherID{1, 2})
	if err != nil {
		lgr.Error().Err(err).Msg("Error registering mathematics course")
		finalErr = errors.Join(finalErr, err)
	}
	physicsID, err := registry.RegisterCourse(ctx, "Physics 101", []models.TeacherID{2, 3})
	if err != nil {
		lgr.Error().Err(err).Msg("Error registering physics course")
		finalErr = errors.Join(finalErr, err)
	}

	students := []struct {
		name     string
		grade    uint8
		courseID models.CourseID
	}{
		{"Ayse Yilmaz", 5, mathID},
		{"Mehmet Kaya", 4, mathID},
		{"Elif Demir", 3, mathID},
		{"Can Aydin", 4, physicsID},
		{"Zeynep Arslan", 5, physicsID},
	}
	for _, s := range students {
		if s.courseID == 0 {
			continue
		}
		if _, err := registry.Enroll(ctx, s.name, s.grade, s.courseID); err != nil && !errors.Is(err, apperrors.ErrAlreadyExists) {
			lgr.Error().Err(err).Str("name", s.name).Msg("Error enrolling seed student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete")
	return finalErr
}
