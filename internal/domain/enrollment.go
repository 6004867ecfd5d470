package domain

// Withdraw removes student from section and section from student in one
// step. It reports whether either side changed.
func Withdraw(student *Student, section *Section) bool {
	if student == nil || section == nil {
		return false
	}
	fromRoster := section.RemoveStudent(student)
	fromStudent := student.DropSection(section)
	return fromRoster || fromStudent
}

// WithdrawFromAll withdraws student from every section they attend and
// returns those sections.
func WithdrawFromAll(student *Student) []*Section {
	sections := student.Sections()
	for _, section := range sections {
		Withdraw(student, section)
	}
	return sections
}

// CancelSection empties the roster, releases the instructor and detaches the
// section from its course. It returns the students that were withdrawn.
func CancelSection(section *Section) []*Student {
	students := section.Students()
	for _, st := range students {
		Withdraw(st, section)
	}
	if prof := section.Professor(); prof != nil {
		prof.releaseSection(section)
		section.SetProfessor(nil)
	}
	if course := section.Course(); course != nil {
		course.RemoveSection(section)
	}
	return students
}
