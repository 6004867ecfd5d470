// Package domain holds the in-memory course registration model: courses,
// sections, students, professors and transcripts, plus the enrollment and
// grading rules that tie them together.
package domain

import (
	"fmt"

	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Course is a catalog entry. It owns the sections scheduled for it and keeps
// an ordered list of prerequisite courses.
type Course struct {
	courseNo      string
	courseName    string
	credits       int
	prerequisites []*Course
	sections      []*Section
}

// NewCourse validates the catalog fields and returns an empty course.
func NewCourse(courseNo, courseName string, credits int) (*Course, error) {
	if courseNo == "" || courseName == "" {
		return nil, apperrors.InvalidArgument("course number and course name cannot be empty")
	}
	if credits <= 0 {
		return nil, apperrors.InvalidArgument("credits must be positive")
	}

	return &Course{
		courseNo:   courseNo,
		courseName: courseName,
		credits:    credits,
	}, nil
}

// CourseNo returns the catalog code.
func (c *Course) CourseNo() string { return c.courseNo }

// CourseName returns the course title.
func (c *Course) CourseName() string { return c.courseName }

// Credits returns the credit weight.
func (c *Course) Credits() int { return c.credits }

// ScheduleSection creates a section of this course and links it both ways.
func (c *Course) ScheduleSection(sectionNo, dayOfWeek, timeOfDay, room string, capacity int) (*Section, error) {
	if capacity <= 0 {
		return nil, apperrors.InvalidArgument("seating capacity must be positive")
	}

	section, err := NewSection(sectionNo, dayOfWeek, timeOfDay, room, capacity)
	if err != nil {
		return nil, err
	}
	section.SetCourse(c)
	c.sections = append(c.sections, section)
	return section, nil
}

// AddPrerequisite links prereq as a prerequisite of c. Linking the same
// course twice is a no-op. A link that would make c reachable from itself
// is rejected with ErrCyclicPrerequisite.
func (c *Course) AddPrerequisite(prereq *Course) error {
	if prereq == nil {
		return apperrors.InvalidArgument("prerequisite course is required")
	}
	if c.hasDirectPrerequisite(prereq) {
		return nil
	}
	if prereq == c || prereq.DependsOn(c) {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrCyclicPrerequisite, c.courseNo, prereq.courseNo)
	}

	c.prerequisites = append(c.prerequisites, prereq)
	return nil
}

// RemovePrerequisite unlinks prereq and reports whether it was linked.
func (c *Course) RemovePrerequisite(prereq *Course) bool {
	for i, p := range c.prerequisites {
		if p == prereq {
			c.prerequisites = append(c.prerequisites[:i], c.prerequisites[i+1:]...)
			return true
		}
	}
	return false
}

// HasPrerequisites reports whether any prerequisite is linked.
func (c *Course) HasPrerequisites() bool {
	return len(c.prerequisites) > 0
}

// Prerequisites returns a copy of the prerequisite list in insertion order.
func (c *Course) Prerequisites() []*Course {
	out := make([]*Course, len(c.prerequisites))
	copy(out, c.prerequisites)
	return out
}

// DependsOn reports whether other is a direct or transitive prerequisite of c.
func (c *Course) DependsOn(other *Course) bool {
	seen := make(map[*Course]bool)
	stack := append([]*Course(nil), c.prerequisites...)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if next == other {
			return true
		}
		if seen[next] {
			continue
		}
		seen[next] = true
		stack = append(stack, next.prerequisites...)
	}
	return false
}

// Sections returns a copy of the sections scheduled for this course.
func (c *Course) Sections() []*Section {
	out := make([]*Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// RemoveSection detaches section from the course's offering list.
func (c *Course) RemoveSection(section *Section) bool {
	for i, s := range c.sections {
		if s == section {
			c.sections = append(c.sections[:i], c.sections[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Course) hasDirectPrerequisite(prereq *Course) bool {
	for _, p := range c.prerequisites {
		if p == prereq {
			return true
		}
	}
	return false
}

func (c *Course) String() string {
	return fmt.Sprintf("%s - %s (%d credits)", c.courseNo, c.courseName, c.credits)
}
