package models

// Identifier types for registry entities. Identifiers are dense integers
// assigned from 1; 0 is the "not found" sentinel throughout the API.
type (
	// CourseID identifies a registered course.
	CourseID int64
	// StudentID identifies an enrolled student.
	StudentID int64
	// TeacherID identifies a teacher. Teachers have no record of their own;
	// the id exists only as a key for rosters and course teacher sets.
	TeacherID int64
)
