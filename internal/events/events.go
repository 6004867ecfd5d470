// Package events publishes registry changes (enrollments, drops, grades and
// cancelled sections) for downstream consumers.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type names an event kind. It doubles as the AMQP message type.
type Type string

const (
	SectionEnrolled  Type = "section.enrolled"
	SectionDropped   Type = "section.dropped"
	GradePosted      Type = "grade.posted"
	SectionCancelled Type = "section.cancelled"
)

// Event is the JSON body published for every registry change.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	SectionNo  string    `json:"sectionNo"`
	CourseNo   string    `json:"courseNo,omitempty"`
	SSN        string    `json:"ssn,omitempty"`
	Grade      string    `json:"grade,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// New stamps an event with a fresh id and the current time.
func New(t Type, sectionNo, courseNo, ssn string) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		SectionNo:  sectionNo,
		CourseNo:   courseNo,
		SSN:        ssn,
		OccurredAt: time.Now().UTC(),
	}
}

// WithGrade returns a copy of e carrying grade.
func (e Event) WithGrade(grade string) Event {
	e.Grade = grade
	return e
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error { return nil }

// WithTimeout bounds every Publish call on p by timeout.
func WithTimeout(p Publisher, timeout time.Duration) Publisher {
	if timeout <= 0 {
		return p
	}
	return &timeoutPublisher{Publisher: p, timeout: timeout}
}

type timeoutPublisher struct {
	Publisher
	timeout time.Duration
}

func (p *timeoutPublisher) Publish(ctx context.Context, event Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.Publisher.Publish(ctx, event)
}

// Fanout publishes every event to each of its publishers in turn.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
