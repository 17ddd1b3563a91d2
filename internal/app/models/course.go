package models

// Course represents a registered course. The teacher set is fixed at
// registration time; no operation mutates it afterwards. TeacherIDs is
// deduplicated on registration, so it can be treated as a set.
type Course struct {
	ID         CourseID    `json:"id"`
	Name       string      `json:"name"`
	TeacherIDs []TeacherID `json:"teacherIds"`
}

// HasTeacher reports whether the course assigns the given teacher.
func (c *Course) HasTeacher(id TeacherID) bool {
	for _, t := range c.TeacherIDs {
		if t == id {
			return true
		}
	}
	return false
}
