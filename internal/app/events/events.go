// Package events carries the registry's change notifications. The sink is
// fire-and-forget: a failing subscriber is logged and never fails the
// operation that produced the event.
package events

import "github.com/buraks/classtrack/internal/app/models"

// StudentChanged is emitted after every successful enrollment and after every
// per-student move, carrying the student's committed state.
type StudentChanged struct {
	StudentID models.StudentID `json:"studentId"`
	Name      string           `json:"name"`
	CourseID  models.CourseID  `json:"courseId"`
	Grade     uint8            `json:"grade"`
}

// Handler consumes a StudentChanged notification.
type Handler func(evt StudentChanged) error
