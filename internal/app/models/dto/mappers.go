package dto

import (
	"sort"

	"github.com/yigit/registrar/internal/domain"
)

// FromCourse converts a domain course to a CourseResponse
func FromCourse(course *domain.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}

	resp := CourseResponse{
		CourseNo:      course.CourseNo(),
		Name:          course.CourseName(),
		Credits:       course.Credits(),
		Prerequisites: make([]string, 0),
		Sections:      make([]string, 0),
	}
	for _, p := range course.Prerequisites() {
		resp.Prerequisites = append(resp.Prerequisites, p.CourseNo())
	}
	for _, s := range course.Sections() {
		resp.Sections = append(resp.Sections, s.SectionNo())
	}
	return resp
}

// FromSection converts a domain section to a SectionResponse
func FromSection(section *domain.Section) SectionResponse {
	if section == nil {
		return SectionResponse{}
	}

	resp := SectionResponse{
		SectionNo: section.SectionNo(),
		DayOfWeek: section.DayOfWeek(),
		TimeOfDay: section.TimeOfDay(),
		Room:      section.Room(),
		Capacity:  section.Capacity(),
		Enrolled:  section.EnrolledCount(),
		SeatsLeft: section.Capacity() - section.EnrolledCount(),
		Students:  make([]string, 0),
	}
	if c := section.Course(); c != nil {
		resp.CourseNo = c.CourseNo()
		resp.CourseName = c.CourseName()
	}
	if p := section.Professor(); p != nil {
		resp.ProfessorSSN = p.SSN()
		resp.ProfessorName = p.Name()
	}
	for _, st := range section.Students() {
		resp.Students = append(resp.Students, st.SSN())
	}
	return resp
}

// FromStudent converts a domain student to a StudentResponse
func FromStudent(student *domain.Student) StudentResponse {
	if student == nil {
		return StudentResponse{}
	}

	resp := StudentResponse{
		Name:     student.Name(),
		SSN:      student.SSN(),
		Major:    student.Major(),
		Degree:   student.Degree(),
		Sections: make([]string, 0),
	}
	for _, s := range student.Sections() {
		resp.Sections = append(resp.Sections, s.SectionNo())
	}
	return resp
}

// FromProfessor converts a domain professor to a ProfessorResponse
func FromProfessor(professor *domain.Professor) ProfessorResponse {
	if professor == nil {
		return ProfessorResponse{}
	}

	resp := ProfessorResponse{
		Name:       professor.Name(),
		SSN:        professor.SSN(),
		Title:      professor.Title(),
		Department: professor.Department(),
		Sections:   make([]string, 0),
	}
	for _, s := range professor.Sections() {
		resp.Sections = append(resp.Sections, s.SectionNo())
	}
	return resp
}

// FromTranscript builds a TranscriptResponse for student. Entries are sorted
// by course number. GPA is left nil when no grade is recorded or a grade is
// not numeric.
func FromTranscript(student *domain.Student) TranscriptResponse {
	if student == nil {
		return TranscriptResponse{}
	}

	resp := TranscriptResponse{
		SSN:     student.SSN(),
		Name:    student.Name(),
		Entries: make([]TranscriptEntryResponse, 0),
	}

	transcript := student.Transcript()
	for courseNo, e := range transcript.Entries() {
		entry := TranscriptEntryResponse{
			CourseNo: courseNo,
			Grade:    e.Grade(),
		}
		if sec := e.Section(); sec != nil {
			entry.SectionNo = sec.SectionNo()
			if c := sec.Course(); c != nil {
				entry.CourseName = c.CourseName()
				entry.Credits = c.Credits()
			}
		}
		resp.Entries = append(resp.Entries, entry)
	}
	sort.Slice(resp.Entries, func(i, j int) bool {
		return resp.Entries[i].CourseNo < resp.Entries[j].CourseNo
	})

	if gpa, err := transcript.CreditWeightedAverage(); err == nil && gpa.Credits > 0 {
		avg := gpa.Average
		resp.GPA = &avg
		resp.TotalCredits = gpa.Credits
	}
	return resp
}
