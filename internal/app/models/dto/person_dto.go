package dto

// StudentResponse represents a student profile
type StudentResponse struct {
	Name     string   `json:"name" example:"Alice Johnson"`
	SSN      string   `json:"ssn" example:"S001"`
	Major    string   `json:"major" example:"Computer Science"`
	Degree   string   `json:"degree" example:"BSc"`
	Sections []string `json:"sections" example:"CS101-A"`
}

// ProfessorResponse represents a professor profile
type ProfessorResponse struct {
	Name       string   `json:"name" example:"Dr. Smith"`
	SSN        string   `json:"ssn" example:"P001"`
	Title      string   `json:"title" example:"Professor"`
	Department string   `json:"department" example:"Computer Science"`
	Sections   []string `json:"sections" example:"CS101-A"`
}

// TranscriptEntryResponse is one graded course
type TranscriptEntryResponse struct {
	CourseNo   string `json:"courseNo" example:"CS101"`
	CourseName string `json:"courseName" example:"Functional Programming"`
	SectionNo  string `json:"sectionNo" example:"CS101-A"`
	Credits    int    `json:"credits" example:"4"`
	Grade      string `json:"grade" example:"8.5"`
}

// TranscriptResponse is a student's transcript with the credit-weighted average
type TranscriptResponse struct {
	SSN          string                    `json:"ssn" example:"S001"`
	Name         string                    `json:"name" example:"Alice Johnson"`
	Entries      []TranscriptEntryResponse `json:"entries"`
	TotalCredits int                       `json:"totalCredits" example:"4"`
	GPA          *float64                  `json:"gpa" example:"8.5"`
}
