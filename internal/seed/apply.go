package seed

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/domain"
)

// Apply registers the catalog into repos under the registry write lock.
// Entries are applied in passes (courses, prerequisite links, sections,
// professors, students) so a course may name prerequisites declared later
// in the file. A failing entry is skipped and the rest still load; all
// failures come back joined.
func Apply(repos *repositories.Repositories, catalog *Catalog, lgr zerolog.Logger) error {
	var finalErr error
	join := func(err error) {
		finalErr = errors.Join(finalErr, err)
	}

	_ = repos.Update(func(r *repositories.Repositories) error {
		courses := make(map[int]*domain.Course, len(catalog.Courses))
		for i, spec := range catalog.Courses {
			course, err := domain.NewCourse(spec.CourseNo, spec.Name, spec.Credits)
			if err != nil {
				join(fmt.Errorf("course %q: %w", spec.CourseNo, err))
				continue
			}
			if err := r.CourseRepository.Create(course); err != nil {
				join(fmt.Errorf("course %q: %w", spec.CourseNo, err))
				continue
			}
			courses[i] = course
		}

		for i, spec := range catalog.Courses {
			course, ok := courses[i]
			if !ok {
				continue
			}
			for _, code := range spec.Prerequisites {
				prereq, err := r.CourseRepository.GetByCourseNo(code)
				if err == nil {
					err = course.AddPrerequisite(prereq)
				}
				if err != nil {
					join(fmt.Errorf("course %q prerequisite %q: %w", spec.CourseNo, code, err))
				}
			}
		}

		for i, spec := range catalog.Courses {
			course, ok := courses[i]
			if !ok {
				continue
			}
			for _, s := range spec.Sections {
				if r.SectionRepository.Exists(s.SectionNo) {
					join(fmt.Errorf("section %q: already scheduled", s.SectionNo))
					continue
				}
				section, err := course.ScheduleSection(s.SectionNo, s.DayOfWeek, s.TimeOfDay, s.Room, s.Capacity)
				if err != nil {
					join(fmt.Errorf("section %q: %w", s.SectionNo, err))
					continue
				}
				if err := r.SectionRepository.Create(section); err != nil {
					course.RemoveSection(section)
					join(fmt.Errorf("section %q: %w", s.SectionNo, err))
				}
			}
		}

		for _, spec := range catalog.Professors {
			professor, err := domain.NewProfessor(spec.Name, spec.SSN, spec.Title, spec.Department)
			if err == nil {
				err = r.ProfessorRepository.Create(professor)
			}
			if err != nil {
				join(fmt.Errorf("professor %q: %w", spec.SSN, err))
				continue
			}
			for _, sectionNo := range spec.Teaches {
				section, err := r.SectionRepository.GetBySectionNo(sectionNo)
				if err != nil {
					join(fmt.Errorf("professor %q teaches %q: %w", spec.SSN, sectionNo, err))
					continue
				}
				professor.AgreeToTeach(section)
			}
		}

		for _, spec := range catalog.Students {
			student, err := domain.NewStudent(spec.Name, spec.SSN, spec.Major, spec.Degree)
			if err == nil {
				err = r.StudentRepository.Create(student)
			}
			if err != nil {
				join(fmt.Errorf("student %q: %w", spec.SSN, err))
			}
		}

		lgr.Info().
			Int("courses", r.CourseRepository.Count()).
			Int("sections", r.SectionRepository.Count()).
			Int("professors", r.ProfessorRepository.Count()).
			Int("students", r.StudentRepository.Count()).
			Msg("Catalog applied")
		return nil
	})

	return finalErr
}
