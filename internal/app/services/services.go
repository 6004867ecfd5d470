// Package services implements the registrar use cases on top of the
// in-memory registry.
//
// Services defined in this package:
//   - CatalogService: courses, prerequisites and section scheduling
//   - StudentService: student profiles
//   - ProfessorService: professor profiles and teaching assignments
//   - EnrollmentService: enrollment, drops, grades and transcripts
//   - ReportService: dashboard counts, course statistics and rosters
//
// Every operation runs inside Repositories.Update or Repositories.View and
// returns DTO snapshots, so domain objects never leave the registry lock.
// Events are published after the lock is released.
package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/domain"
	"github.com/yigit/registrar/internal/events"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// publish delivers evts in order. Broker failures are logged and never
// reach the caller since the registry change has already happened.
func publish(ctx context.Context, publisher events.Publisher, lgr zerolog.Logger, evts ...events.Event) {
	for _, e := range evts {
		if err := publisher.Publish(ctx, e); err != nil {
			lgr.Warn().Err(err).
				Str("eventType", string(e.Type)).
				Str("sectionNo", e.SectionNo).
				Msg("Failed to publish event")
		}
	}
}

// cancellationEvents describes a cancelled section: one drop per withdrawn
// student followed by the cancellation itself.
func cancellationEvents(section *domain.Section, withdrawn []*domain.Student) []events.Event {
	courseNo := courseNoOf(section)
	out := make([]events.Event, 0, len(withdrawn)+1)
	for _, st := range withdrawn {
		out = append(out, events.New(events.SectionDropped, section.SectionNo(), courseNo, st.SSN()))
	}
	return append(out, events.New(events.SectionCancelled, section.SectionNo(), courseNo, ""))
}

func courseNoOf(section *domain.Section) string {
	if c := section.Course(); c != nil {
		return c.CourseNo()
	}
	return ""
}

// FormatGrade renders a numeric grade the way transcripts store it: the
// shortest decimal form, always with a fractional part ("8.0", "7.25").
func FormatGrade(grade float64) string {
	s := strconv.FormatFloat(grade, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func validateGrade(grade float64) error {
	if math.IsNaN(grade) || grade < 0 || grade > 10 {
		return apperrors.InvalidArgument("grade must be between 0 and 10")
	}
	return nil
}
