package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled:
		return true
	}
	return false
}

// DeriveStatus computes the lifecycle status of an event at now.
// CANCELLED is absorbing: once set it is returned unchanged.
func DeriveStatus(now, start, end time.Time, current EventStatus) EventStatus {
	if current == EventStatusCancelled {
		return EventStatusCancelled
	}
	switch {
	case now.Before(start):
		return EventStatusUpcoming
	case now.After(end):
		return EventStatusCompleted
	default:
		return EventStatusOngoing
	}
}

type EventType string

const (
	EventTypeWorkshop EventType = "WORKSHOP"
	EventTypeSeminar  EventType = "SEMINAR"
	EventTypeSocial   EventType = "SOCIAL"
	EventTypeSports   EventType = "SPORTS"
	EventTypeMeeting  EventType = "MEETING"
	EventTypeOther    EventType = "OTHER"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWorkshop, EventTypeSeminar, EventTypeSocial,
		EventTypeSports, EventTypeMeeting, EventTypeOther:
		return true
	}
	return false
}

type Event struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Slug                 string      `json:"slug"`
	Description          string      `json:"description"`
	Location             string      `json:"location"`
	EventType            EventType   `json:"event_type"`
	CategoryID           *string     `json:"category_id"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              time.Time   `json:"end_date"`
	RegistrationDeadline *time.Time  `json:"registration_deadline"`
	MaxAttendees         *int        `json:"max_attendees"`
	Status               EventStatus `json:"status"`
	RequiresRegistration bool        `json:"requires_registration"`
	CreatedBy            string      `json:"created_by"`
	RegistrationCount    int         `json:"registration_count"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

type CreateEventInput struct {
	Title                string
	Description          string
	Location             string
	EventType            EventType
	CategoryID           *string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline *time.Time
	MaxAttendees         *int
}

// UpdateEventInput is a partial patch; nil fields are left untouched. The
// optional fields are removed only through their Clear flags.
type UpdateEventInput struct {
	Title                *string
	Description          *string
	Location             *string
	EventType            *EventType
	CategoryID           *string
	StartDate            *time.Time
	EndDate              *time.Time
	RegistrationDeadline *time.Time
	MaxAttendees         *int

	ClearCategory             bool
	ClearRegistrationDeadline bool
	ClearMaxAttendees         bool
}

type EventFilter struct {
	Status     EventStatus
	EventType  EventType
	CategoryID string
	Search     string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

func (f EventFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EventPage struct {
	Events     []*Event `json:"events"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}

// EventSummary is the minimal event view joined into forms.
type EventSummary struct {
	ID                   string      `json:"id"`
	Title                string      `json:"title"`
	Slug                 string      `json:"slug"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              time.Time   `json:"end_date"`
	RegistrationDeadline *time.Time  `json:"registration_deadline"`
	MaxAttendees         *int        `json:"max_attendees"`
	Status               EventStatus `json:"status"`
}

// StatusChange is a stored event whose derived status moved.
type StatusChange struct {
	EventID string
	From    EventStatus
	To      EventStatus
}

func (e *Event) Summary() *EventSummary {
	return &EventSummary{
		ID:                   e.ID,
		Title:                e.Title,
		Slug:                 e.Slug,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		RegistrationDeadline: e.RegistrationDeadline,
		MaxAttendees:         e.MaxAttendees,
		Status:               e.Status,
	}
}
