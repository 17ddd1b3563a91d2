package models

// Student is the canonical student record. Name is the globally unique lookup
// key; CourseID always names the course whose roster currently holds the
// record. Rosters store copies of this struct, not references.
type Student struct {
	ID       StudentID `json:"id" example:"1"`
	Name     string    `json:"name" example:"Ayse Yilmaz"`
	Grade    uint8     `json:"grade" example:"4"`
	CourseID CourseID  `json:"courseId" example:"1"`
}
