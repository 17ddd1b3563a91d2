// Package store holds the registry's in-memory entity store: canonical course
// and student records, one roster per course and per teacher, and the payroll
// rate. Mutations are applied through copy-then-commit transactions so no
// reader ever observes a partially applied operation.
package store

import (
	"sync"

	"github.com/buraks/classtrack/internal/app/models"
)

// State is one consistent snapshot of the registry. Services mutate it only
// inside Store.Update; inside View it must be treated as read-only.
type State struct {
	Courses        map[models.CourseID]*models.Course
	StudentsByName map[string]*models.Student
	CourseRosters  map[models.CourseID]*Roster[models.StudentID, models.Student]
	TeacherRosters map[models.TeacherID]*Roster[models.StudentID, models.Student]

	NextCourseID  models.CourseID
	NextStudentID models.StudentID

	SalaryPerBlock int64
}

// studentIdentity keys roster entries by the student's dense id.
func studentIdentity(s models.Student) models.StudentID {
	return s.ID
}

func newState(salaryPerBlock int64) *State {
	return &State{
		Courses:        make(map[models.CourseID]*models.Course),
		StudentsByName: make(map[string]*models.Student),
		CourseRosters:  make(map[models.CourseID]*Roster[models.StudentID, models.Student]),
		TeacherRosters: make(map[models.TeacherID]*Roster[models.StudentID, models.Student]),
		NextCourseID:   1,
		NextStudentID:  1,
		SalaryPerBlock: salaryPerBlock,
	}
}

// CourseRoster returns the roster for the given course, creating an empty one
// on first use. Enrollment deliberately accepts unregistered course ids, so a
// roster may exist for a course that was never registered.
func (st *State) CourseRoster(id models.CourseID) *Roster[models.StudentID, models.Student] {
	r, ok := st.CourseRosters[id]
	if !ok {
		r = NewRoster(studentIdentity)
		st.CourseRosters[id] = r
	}
	return r
}

// TeacherRoster returns the roster for the given teacher, creating an empty
// one on first use. Teachers exist implicitly by first reference.
func (st *State) TeacherRoster(id models.TeacherID) *Roster[models.StudentID, models.Student] {
	r, ok := st.TeacherRosters[id]
	if !ok {
		r = NewRoster(studentIdentity)
		st.TeacherRosters[id] = r
	}
	return r
}

func (st *State) clone() *State {
	next := &State{
		Courses:        make(map[models.CourseID]*models.Course, len(st.Courses)),
		StudentsByName: make(map[string]*models.Student, len(st.StudentsByName)),
		CourseRosters:  make(map[models.CourseID]*Roster[models.StudentID, models.Student], len(st.CourseRosters)),
		TeacherRosters: make(map[models.TeacherID]*Roster[models.StudentID, models.Student], len(st.TeacherRosters)),
		NextCourseID:   st.NextCourseID,
		NextStudentID:  st.NextStudentID,
		SalaryPerBlock: st.SalaryPerBlock,
	}
	for id, c := range st.Courses {
		cc := *c
		cc.TeacherIDs = make([]models.TeacherID, len(c.TeacherIDs))
		copy(cc.TeacherIDs, c.TeacherIDs)
		next.Courses[id] = &cc
	}
	for name, s := range st.StudentsByName {
		sc := *s
		next.StudentsByName[name] = &sc
	}
	for id, r := range st.CourseRosters {
		next.CourseRosters[id] = r.Clone()
	}
	for id, r := range st.TeacherRosters {
		next.TeacherRosters[id] = r.Clone()
	}
	return next
}

// Store serializes access to the registry state: one writer at a time,
// readers against an immutable snapshot.
type Store struct {
	mu    sync.RWMutex
	state *State
}

// New returns an empty store with the given initial payroll rate.
func New(salaryPerBlock int64) *Store {
	return &Store{state: newState(salaryPerBlock)}
}

// Update runs fn against a deep copy of the current state and commits the
// copy with a pointer swap only when fn returns nil. On error the copy is
// discarded and the store is left exactly as it was, which gives every
// logical operation all-or-nothing semantics.
func (s *Store) Update(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// View runs fn against the current state under a read lock. fn must not
// mutate the state.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}
