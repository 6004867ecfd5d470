// Package seed loads the registry's starting catalog from the built-in
// default, a YAML file or PostgreSQL.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the serialized form of a registry.
type Catalog struct {
	Courses    []CourseSpec    `yaml:"courses"`
	Professors []ProfessorSpec `yaml:"professors,omitempty"`
	Students   []StudentSpec   `yaml:"students,omitempty"`
}

// CourseSpec describes a course, its prerequisite codes and its sections.
type CourseSpec struct {
	CourseNo      string        `yaml:"courseNo"`
	Name          string        `yaml:"name"`
	Credits       int           `yaml:"credits"`
	Prerequisites []string      `yaml:"prerequisites,omitempty"`
	Sections      []SectionSpec `yaml:"sections,omitempty"`
}

// SectionSpec describes one scheduled section.
type SectionSpec struct {
	SectionNo string `yaml:"sectionNo"`
	DayOfWeek string `yaml:"dayOfWeek"`
	TimeOfDay string `yaml:"timeOfDay"`
	Room      string `yaml:"room"`
	Capacity  int    `yaml:"capacity"`
}

// ProfessorSpec describes a professor and the section numbers they teach.
type ProfessorSpec struct {
	Name       string   `yaml:"name"`
	SSN        string   `yaml:"ssn"`
	Title      string   `yaml:"title"`
	Department string   `yaml:"department"`
	Teaches    []string `yaml:"teaches,omitempty"`
}

// StudentSpec describes a student profile.
type StudentSpec struct {
	Name   string `yaml:"name"`
	SSN    string `yaml:"ssn"`
	Major  string `yaml:"major"`
	Degree string `yaml:"degree"`
}

// Summary counts the entities in a catalog.
type Summary struct {
	Courses       int `yaml:"courses" json:"courses"`
	Sections      int `yaml:"sections" json:"sections"`
	Prerequisites int `yaml:"prerequisites" json:"prerequisites"`
	Professors    int `yaml:"professors" json:"professors"`
	Students      int `yaml:"students" json:"students"`
}

// Parse decodes a YAML catalog. Unknown keys are rejected so typos do not
// silently drop data.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in sample catalog: CS101 and CS201 (which
// requires CS101), three sections and one professor teaching all of them.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded default catalog is invalid: %v", err))
	}
	return c
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Summary counts what the catalog declares.
func (c *Catalog) Summary() Summary {
	s := Summary{
		Courses:    len(c.Courses),
		Professors: len(c.Professors),
		Students:   len(c.Students),
	}
	for _, course := range c.Courses {
		s.Sections += len(course.Sections)
		s.Prerequisites += len(course.Prerequisites)
	}
	return s
}
