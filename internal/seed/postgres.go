package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/dberrors"
)

// LoadPostgres reads the catalog tables in one read-only transaction.
// Rows come back in insertion order.
func LoadPostgres(ctx context.Context, database *db.PostgresDB) (*Catalog, error) {
	catalog := &Catalog{}
	err := database.ReadOnly(ctx, func(ctx context.Context, tx pgx.Tx) error {
		courseIdx, err := loadCourses(ctx, tx, catalog)
		if err != nil {
			return err
		}
		if err := loadPrerequisites(ctx, tx, catalog, courseIdx); err != nil {
			return err
		}
		if err := loadSections(ctx, tx, catalog, courseIdx); err != nil {
			return err
		}
		if err := loadProfessors(ctx, tx, catalog); err != nil {
			return err
		}
		return loadStudents(ctx, tx, catalog)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from postgres: %w", dberrors.Translate(err))
	}
	return catalog, nil
}

func loadCourses(ctx context.Context, tx pgx.Tx, catalog *Catalog) (map[string]int, error) {
	rows, err := tx.Query(ctx, `SELECT course_no, name, credits FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	idx := make(map[string]int)
	for rows.Next() {
		var c CourseSpec
		if err := rows.Scan(&c.CourseNo, &c.Name, &c.Credits); err != nil {
			return nil, err
		}
		idx[c.CourseNo] = len(catalog.Courses)
		catalog.Courses = append(catalog.Courses, c)
	}
	return idx, rows.Err()
}

func loadPrerequisites(ctx context.Context, tx pgx.Tx, catalog *Catalog, idx map[string]int) error {
	rows, err := tx.Query(ctx, `SELECT course_no, prerequisite_no FROM course_prerequisites ORDER BY position`)
	if err != nil {
		return fmt.Errorf("query prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseNo, prereqNo string
		if err := rows.Scan(&courseNo, &prereqNo); err != nil {
			return err
		}
		if i, ok := idx[courseNo]; ok {
			catalog.Courses[i].Prerequisites = append(catalog.Courses[i].Prerequisites, prereqNo)
		}
	}
	return rows.Err()
}

func loadSections(ctx context.Context, tx pgx.Tx, catalog *Catalog, idx map[string]int) error {
	rows, err := tx.Query(ctx, `
		SELECT section_no, course_no, day_of_week, time_of_day, room, capacity
		FROM sections
		ORDER BY position`)
	if err != nil {
		return fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s SectionSpec
		var courseNo string
		if err := rows.Scan(&s.SectionNo, &courseNo, &s.DayOfWeek, &s.TimeOfDay, &s.Room, &s.Capacity); err != nil {
			return err
		}
		if i, ok := idx[courseNo]; ok {
			catalog.Courses[i].Sections = append(catalog.Courses[i].Sections, s)
		}
	}
	return rows.Err()
}

func loadProfessors(ctx context.Context, tx pgx.Tx, catalog *Catalog) error {
	rows, err := tx.Query(ctx, `SELECT ssn, name, title, department FROM professors ORDER BY position`)
	if err != nil {
		return fmt.Errorf("query professors: %w", err)
	}
	idx := make(map[string]int)
	for rows.Next() {
		var p ProfessorSpec
		if err := rows.Scan(&p.SSN, &p.Name, &p.Title, &p.Department); err != nil {
			rows.Close()
			return err
		}
		idx[p.SSN] = len(catalog.Professors)
		catalog.Professors = append(catalog.Professors, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = tx.Query(ctx, `
		SELECT si.section_no, si.professor_ssn
		FROM section_instructors si
		JOIN sections s ON s.section_no = si.section_no
		ORDER BY s.position`)
	if err != nil {
		return fmt.Errorf("query section instructors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sectionNo, ssn string
		if err := rows.Scan(&sectionNo, &ssn); err != nil {
			return err
		}
		if i, ok := idx[ssn]; ok {
			catalog.Professors[i].Teaches = append(catalog.Professors[i].Teaches, sectionNo)
		}
	}
	return rows.Err()
}

func loadStudents(ctx context.Context, tx pgx.Tx, catalog *Catalog) error {
	rows, err := tx.Query(ctx, `SELECT ssn, name, major, degree FROM students ORDER BY position`)
	if err != nil {
		return fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s StudentSpec
		if err := rows.Scan(&s.SSN, &s.Name, &s.Major, &s.Degree); err != nil {
			return err
		}
		catalog.Students = append(catalog.Students, s)
	}
	return rows.Err()
}

// StorePostgres upserts the catalog into the catalog tables in one
// transaction. Existing rows are updated in place; nothing is deleted.
func StorePostgres(ctx context.Context, database *db.PostgresDB, catalog *Catalog) error {
	return database.WithTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, c := range catalog.Courses {
			batch.Queue(`
				INSERT INTO courses (course_no, name, credits) VALUES ($1, $2, $3)
				ON CONFLICT (course_no) DO UPDATE SET name = EXCLUDED.name, credits = EXCLUDED.credits`,
				c.CourseNo, c.Name, c.Credits)
		}
		for _, c := range catalog.Courses {
			for _, p := range c.Prerequisites {
				batch.Queue(`
					INSERT INTO course_prerequisites (course_no, prerequisite_no) VALUES ($1, $2)
					ON CONFLICT DO NOTHING`,
					c.CourseNo, p)
			}
			for _, s := range c.Sections {
				batch.Queue(`
					INSERT INTO sections (section_no, course_no, day_of_week, time_of_day, room, capacity)
					VALUES ($1, $2, $3, $4, $5, $6)
					ON CONFLICT (section_no) DO UPDATE SET
						course_no = EXCLUDED.course_no,
						day_of_week = EXCLUDED.day_of_week,
						time_of_day = EXCLUDED.time_of_day,
						room = EXCLUDED.room,
						capacity = EXCLUDED.capacity`,
					s.SectionNo, c.CourseNo, s.DayOfWeek, s.TimeOfDay, s.Room, s.Capacity)
			}
		}
		for _, p := range catalog.Professors {
			batch.Queue(`
				INSERT INTO professors (ssn, name, title, department) VALUES ($1, $2, $3, $4)
				ON CONFLICT (ssn) DO UPDATE SET name = EXCLUDED.name, title = EXCLUDED.title, department = EXCLUDED.department`,
				p.SSN, p.Name, p.Title, p.Department)
			for _, sectionNo := range p.Teaches {
				batch.Queue(`
					INSERT INTO section_instructors (section_no, professor_ssn) VALUES ($1, $2)
					ON CONFLICT (section_no) DO UPDATE SET professor_ssn = EXCLUDED.professor_ssn`,
					sectionNo, p.SSN)
			}
		}
		for _, s := range catalog.Students {
			batch.Queue(`
				INSERT INTO students (ssn, name, major, degree) VALUES ($1, $2, $3, $4)
				ON CONFLICT (ssn) DO UPDATE SET name = EXCLUDED.name, major = EXCLUDED.major, degree = EXCLUDED.degree`,
				s.SSN, s.Name, s.Major, s.Degree)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("store catalog: %w", dberrors.Translate(err))
		}
		return nil
	})
}
