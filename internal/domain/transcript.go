package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TranscriptEntry pairs the section a grade was earned in with the grade.
// Entries are only written through Section.PostGrade.
type TranscriptEntry struct {
	section *Section
	grade   string
}

func (e TranscriptEntry) Section() *Section { return e.section }
func (e TranscriptEntry) Grade() string { return e.grade }

// Transcript maps a course number to the latest grade earned for it. Posting
// a second grade for the same course replaces the first.
type Transcript struct {
	entries map[string]*TranscriptEntry
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{entries: make(map[string]*TranscriptEntry)}
}

// AddEntry upserts the grade under the section's course. Sections without a
// course are ignored.
func (t *Transcript) AddEntry(section *Section, grade string) {
	if section == nil || section.Course() == nil {
		return
	}
	t.entries[section.Course().CourseNo()] = &TranscriptEntry{section: section, grade: grade}
}

// Grade looks up the grade recorded for courseNo.
func (t *Transcript) Grade(courseNo string) (string, bool) {
	e, ok := t.entries[courseNo]
	if !ok {
		return "", false
	}
	return e.grade, true
}

// Entries returns a copy of the course -> entry mapping. The entries are
// values, so changing them does not touch the transcript.
func (t *Transcript) Entries() map[string]TranscriptEntry {
	out := make(map[string]TranscriptEntry, len(t.entries))
	for k, v := range t.entries {
		out[k] = *v
	}
	return out
}

// Len returns the number of graded courses.
func (t *Transcript) Len() int { return len(t.entries) }

// GPA is a credit-weighted grade average.
type GPA struct {
	Average float64
	Credits int
}

// CreditWeightedAverage averages the numeric grades weighted by course
// credits. Entries whose section lost its course count with zero credits.
func (t *Transcript) CreditWeightedAverage() (GPA, error) {
	var points float64
	var credits int
	for courseNo, e := range t.entries {
		value, err := strconv.ParseFloat(strings.TrimSpace(e.grade), 64)
		if err != nil {
			return GPA{}, fmt.Errorf("grade for %s: %w", courseNo, err)
		}
		weight := 0
		if e.section != nil && e.section.Course() != nil {
			weight = e.section.Course().Credits()
		}
		points += value * float64(weight)
		credits += weight
	}
	if credits == 0 {
		return GPA{}, nil
	}
	return GPA{Average: points / float64(credits), Credits: credits}, nil
}
