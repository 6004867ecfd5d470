package dto

// CourseResponse represents a catalog course
type CourseResponse struct {
	CourseNo      string   `json:"courseNo" example:"CS201"`
	Name          string   `json:"name" example:"Object-Oriented Programming"`
	Credits       int      `json:"credits" example:"4"`
	Prerequisites []string `json:"prerequisites" example:"CS101"`
	Sections      []string `json:"sections" example:"CS201-A"`
}

// SectionResponse represents a scheduled section and its roster
type SectionResponse struct {
	SectionNo     string   `json:"sectionNo" example:"CS101-A"`
	CourseNo      string   `json:"courseNo,omitempty" example:"CS101"`
	CourseName    string   `json:"courseName,omitempty" example:"Functional Programming"`
	DayOfWeek     string   `json:"dayOfWeek" example:"Monday"`
	TimeOfDay     string   `json:"timeOfDay" example:"9:00 AM"`
	Room          string   `json:"room" example:"Room 101"`
	Capacity      int      `json:"capacity" example:"30"`
	Enrolled      int      `json:"enrolled" example:"12"`
	SeatsLeft     int      `json:"seatsLeft" example:"18"`
	ProfessorSSN  string   `json:"professorSsn,omitempty" example:"P001"`
	ProfessorName string   `json:"professorName,omitempty" example:"Dr. Smith"`
	Students      []string `json:"students" example:"S001"`
}

// EnrollmentResponse is the payload of an enrollment reply
type EnrollmentResponse struct {
	SectionNo string `json:"sectionNo" example:"CS101-A"`
	SSN       string `json:"ssn" example:"S001"`
	Enrolled  int    `json:"enrolled" example:"13"`
	Capacity  int    `json:"capacity" example:"30"`
}

// EnrollmentOutcome is the service-level result of an enrollment attempt
type EnrollmentOutcome struct {
	Success bool
	Message string
	Section *EnrollmentResponse
}
