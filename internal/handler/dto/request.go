package dto

import (
	"encoding/json"

	"github.com/stpnv0/EventHub/internal/domain"
)

type CreateEventRequest struct {
	Title                string  `json:"title" binding:"required"`
	Description          string  `json:"description" binding:"required"`
	Location             string  `json:"location" binding:"required"`
	EventType            string  `json:"eventType" binding:"required"`
	CategoryID           *string `json:"categoryId"`
	StartDate            string  `json:"startDate" binding:"required"`
	EndDate              string  `json:"endDate" binding:"required"`
	RegistrationDeadline *string `json:"registrationDeadline"`
	MaxAttendees         *int    `json:"maxAttendees"`
}

// UpdateEventRequest is a partial update; absent fields keep their values.
type UpdateEventRequest struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	Location             *string `json:"location"`
	EventType            *string `json:"eventType"`
	CategoryID           *string `json:"categoryId"`
	StartDate            *string `json:"startDate"`
	EndDate              *string `json:"endDate"`
	RegistrationDeadline *string `json:"registrationDeadline"`
	MaxAttendees         *int    `json:"maxAttendees"`
	// Clear перечисляет необязательные поля, которые нужно обнулить.
	Clear []string `json:"clear"`
}

type SimpleRegisterRequest struct {
	EventID string `json:"eventId" binding:"required,uuid"`
}

type RegistrationAttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

type FieldRequest struct {
	Label       string          `json:"label"`
	FieldType   string          `json:"fieldType"`
	Placeholder string          `json:"placeholder"`
	Required    bool            `json:"required"`
	Options     []string        `json:"options"`
	Validation  json.RawMessage `json:"validation"`
}

type UpsertFormRequest struct {
	RequiresApproval bool           `json:"requiresApproval"`
	Fields           []FieldRequest `json:"fields"`
}

type SubmitFormRequest struct {
	FormID    string           `json:"formId" binding:"required,uuid"`
	Responses domain.Responses `json:"responses"`
}

type UpdateSubmissionStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

type BulkApproveRequest struct {
	SubmissionIDs []string `json:"submissionIds"`
}

type SubmissionAttendanceRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegramChatId"`
}
