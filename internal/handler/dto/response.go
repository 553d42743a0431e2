package dto

import (
	"encoding/json"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Message: msg}
}

type EventResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Slug                 string  `json:"slug"`
	Description          string  `json:"description"`
	Location             string  `json:"location"`
	EventType            string  `json:"eventType"`
	CategoryID           *string `json:"categoryId"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	RegistrationDeadline *string `json:"registrationDeadline"`
	MaxAttendees         *int    `json:"maxAttendees"`
	Status               string  `json:"status"`
	RequiresRegistration bool    `json:"requiresRegistration"`
	RegistrationCount    int     `json:"registrationCount"`
	CreatedBy            string  `json:"createdBy"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

type EventSummaryResponse struct {
	ID                   string  `json:"id"`
	Title                string  `json:"title"`
	Slug                 string  `json:"slug"`
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	RegistrationDeadline *string `json:"registrationDeadline"`
	Status               string  `json:"status"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type RegistrationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type FieldResponse struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	FieldType   string          `json:"fieldType"`
	Placeholder string          `json:"placeholder"`
	Required    bool            `json:"required"`
	Options     []string        `json:"options"`
	Order       int             `json:"order"`
	Validation  json.RawMessage `json:"validation,omitempty"`
}

type FormResponse struct {
	ID               string                `json:"id"`
	EventID          string                `json:"eventId"`
	RequiresApproval bool                  `json:"requiresApproval"`
	Fields           []FieldResponse       `json:"fields"`
	Event            *EventSummaryResponse `json:"event,omitempty"`
	CreatedAt        string                `json:"createdAt"`
	UpdatedAt        string                `json:"updatedAt"`
}

type SubmissionResponse struct {
	ID                 string           `json:"id"`
	FormID             string           `json:"formId"`
	EventID            string           `json:"eventId"`
	UserID             string           `json:"userId"`
	Responses          domain.Responses `json:"responses"`
	Status             string           `json:"status"`
	ApprovedBy         *string          `json:"approvedBy"`
	ApprovedAt         *string          `json:"approvedAt"`
	RejectionReason    *string          `json:"rejectionReason"`
	Attended           *bool            `json:"attended"`
	AttendanceMarkedBy *string          `json:"attendanceMarkedBy"`
	AttendanceMarkedAt *string          `json:"attendanceMarkedAt"`
	CreatedAt          string           `json:"createdAt"`
	UpdatedAt          string           `json:"updatedAt"`
}

type AttendanceStatsResponse struct {
	EventID          string  `json:"eventId"`
	TotalSubmissions int     `json:"totalSubmissions"`
	Approved         int     `json:"approved"`
	Attended         int     `json:"attended"`
	Absent           int     `json:"absent"`
	AttendanceRate   float64 `json:"attendanceRate"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PopularEventResponse struct {
	EventID       string `json:"eventId"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Registrations int    `json:"registrations"`
	Submissions   int    `json:"submissions"`
}

type OverviewResponse struct {
	TotalEvents           int                    `json:"totalEvents"`
	EventsByStatus        []StatusCountResponse  `json:"eventsByStatus"`
	TotalRegistrations    int                    `json:"totalRegistrations"`
	RegistrationsByStatus []StatusCountResponse  `json:"registrationsByStatus"`
	TotalSubmissions      int                    `json:"totalSubmissions"`
	SubmissionsByStatus   []StatusCountResponse  `json:"submissionsByStatus"`
	PopularEvents         []PopularEventResponse `json:"popularEvents"`
	RecentEvents          []EventResponse        `json:"recentEvents"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegramChatId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Slug:                 e.Slug,
		Description:          e.Description,
		Location:             e.Location,
		EventType:            string(e.EventType),
		CategoryID:           e.CategoryID,
		StartDate:            e.StartDate.Format(time.RFC3339),
		EndDate:              e.EndDate.Format(time.RFC3339),
		RegistrationDeadline: formatTime(e.RegistrationDeadline),
		MaxAttendees:         e.MaxAttendees,
		Status:               string(e.Status),
		RequiresRegistration: e.RequiresRegistration,
		RegistrationCount:    e.RegistrationCount,
		CreatedBy:            e.CreatedBy,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToPaginationResponse(p *domain.EventPage) PaginationResponse {
	return PaginationResponse{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponses(regs []*domain.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, ToRegistrationResponse(r))
	}
	return resp
}

func ToFormResponse(f *domain.RegistrationForm) FormResponse {
	fields := make([]FieldResponse, 0, len(f.Fields))
	for _, field := range f.Fields {
		options := field.Options
		if options == nil {
			options = []string{}
		}
		fields = append(fields, FieldResponse{
			ID:          field.ID,
			Label:       field.Label,
			FieldType:   string(field.FieldType),
			Placeholder: field.Placeholder,
			Required:    field.Required,
			Options:     options,
			Order:       field.Order,
			Validation:  field.Validation,
		})
	}

	resp := FormResponse{
		ID:               f.ID,
		EventID:          f.EventID,
		RequiresApproval: f.RequiresApproval,
		Fields:           fields,
		CreatedAt:        f.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        f.UpdatedAt.Format(time.RFC3339),
	}
	if f.Event != nil {
		resp.Event = &EventSummaryResponse{
			ID:                   f.Event.ID,
			Title:                f.Event.Title,
			Slug:                 f.Event.Slug,
			StartDate:            f.Event.StartDate.Format(time.RFC3339),
			EndDate:              f.Event.EndDate.Format(time.RFC3339),
			RegistrationDeadline: formatTime(f.Event.RegistrationDeadline),
			Status:               string(f.Event.Status),
		}
	}
	return resp
}

func ToSubmissionResponse(s *domain.Submission) SubmissionResponse {
	responses := s.Responses
	if responses == nil {
		responses = domain.Responses{}
	}
	return SubmissionResponse{
		ID:                 s.ID,
		FormID:             s.FormID,
		EventID:            s.EventID,
		UserID:             s.UserID,
		Responses:          responses,
		Status:             string(s.Status),
		ApprovedBy:         s.ApprovedBy,
		ApprovedAt:         formatTime(s.ApprovedAt),
		RejectionReason:    s.RejectionReason,
		Attended:           s.Attended,
		AttendanceMarkedBy: s.AttendanceBy,
		AttendanceMarkedAt: formatTime(s.AttendanceAt),
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          s.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSubmissionResponses(subs []*domain.Submission) []SubmissionResponse {
	resp := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		resp = append(resp, ToSubmissionResponse(s))
	}
	return resp
}

func ToAttendanceStatsResponse(s *domain.AttendanceStats) AttendanceStatsResponse {
	return AttendanceStatsResponse{
		EventID:          s.EventID,
		TotalSubmissions: s.TotalSubmissions,
		Approved:         s.Approved,
		Attended:         s.Attended,
		Absent:           s.Absent,
		AttendanceRate:   s.AttendanceRate,
	}
}

func toStatusCounts(counts []domain.StatusCount) []StatusCountResponse {
	resp := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		resp = append(resp, StatusCountResponse{Status: c.Status, Count: c.Count})
	}
	return resp
}

func ToOverviewResponse(o *domain.Overview) OverviewResponse {
	popular := make([]PopularEventResponse, 0, len(o.PopularEvents))
	for _, p := range o.PopularEvents {
		popular = append(popular, PopularEventResponse{
			EventID:       p.EventID,
			Title:         p.Title,
			Slug:          p.Slug,
			Registrations: p.Registrations,
			Submissions:   p.Submissions,
		})
	}

	return OverviewResponse{
		TotalEvents:           o.TotalEvents,
		EventsByStatus:        toStatusCounts(o.EventsByStatus),
		TotalRegistrations:    o.TotalRegistrations,
		RegistrationsByStatus: toStatusCounts(o.RegistrationsByStatus),
		TotalSubmissions:      o.TotalSubmissions,
		SubmissionsByStatus:   toStatusCounts(o.SubmissionsByStatus),
		PopularEvents:         popular,
		RecentEvents:          ToEventResponses(o.RecentEvents),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, ToUserResponse(u))
	}
	return resp
}
