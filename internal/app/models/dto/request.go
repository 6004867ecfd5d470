package dto

// SectionRequest describes a section to schedule under a course
type SectionRequest struct {
	SectionNo string `json:"sectionNo" binding:"required,code" example:"CS101-A"`
	DayOfWeek string `json:"dayOfWeek" binding:"required" example:"Monday"`
	TimeOfDay string `json:"timeOfDay" binding:"required" example:"9:00 AM"`
	Room      string `json:"room" binding:"required" example:"Room 101"`
	Capacity  int    `json:"capacity" binding:"required,min=1" example:"30"`
}

// CreateCourseRequest represents the request to add a course to the catalog
type CreateCourseRequest struct {
	CourseNo      string   `json:"courseNo" binding:"required,code" example:"CS201"`
	Name          string   `json:"name" binding:"required,nonblank" example:"Object-Oriented Programming"`
	Credits       int      `json:"credits" binding:"required,min=1" example:"4"`
	Prerequisites []string `json:"prerequisites" binding:"omitempty,dive,code" example:"CS101"`
}

// AddPrerequisiteRequest links an existing course as a prerequisite
type AddPrerequisiteRequest struct {
	CourseNo string `json:"courseNo" binding:"required,code" example:"CS101"`
}

// CreateStudentRequest represents the request to register a student
type CreateStudentRequest struct {
	Name   string `json:"name" binding:"required,nonblank" example:"Alice Johnson"`
	SSN    string `json:"ssn" binding:"required,code" example:"S001"`
	Major  string `json:"major" binding:"required" example:"Computer Science"`
	Degree string `json:"degree" binding:"required" example:"BSc"`
}

// UpdateStudentRequest changes a student's major and/or degree
type UpdateStudentRequest struct {
	Major  string `json:"major" binding:"omitempty,min=1" example:"Mathematics"`
	Degree string `json:"degree" binding:"omitempty,min=1" example:"MSc"`
}

// CreateProfessorRequest represents the request to register a professor
type CreateProfessorRequest struct {
	Name       string `json:"name" binding:"required,nonblank" example:"Dr. Smith"`
	SSN        string `json:"ssn" binding:"required,code" example:"P001"`
	Title      string `json:"title" binding:"required" example:"Professor"`
	Department string `json:"department" binding:"required" example:"Computer Science"`
}

// UpdateProfessorRequest changes a professor's title and/or department
type UpdateProfessorRequest struct {
	Title      string `json:"title" binding:"omitempty,min=1" example:"Associate Professor"`
	Department string `json:"department" binding:"omitempty,min=1" example:"Mathematics"`
}

// AssignProfessorRequest assigns a professor to a section
type AssignProfessorRequest struct {
	SSN string `json:"ssn" binding:"required,code" example:"P001"`
}

// EnrollRequest enrolls a student in a section
type EnrollRequest struct {
	SSN string `json:"ssn" binding:"required,code" example:"S001"`
}

// PostGradeRequest records a numeric grade between 0 and 10
type PostGradeRequest struct {
	Grade *float64 `json:"grade" binding:"required,gte=0,lte=10" example:"8.5"`
}
