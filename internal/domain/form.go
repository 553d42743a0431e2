package domain

import (
	"encoding/json"
	"time"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
)

type RegistrationForm struct {
	ID               string              `json:"id"`
	EventID          string              `json:"event_id"`
	RequiresApproval bool                `json:"requires_approval"`
	Fields           []RegistrationField `json:"fields"`
	Event            *EventSummary       `json:"event,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type RegistrationField struct {
	ID          string          `json:"id"`
	FormID      string          `json:"form_id"`
	Label       string          `json:"label"`
	FieldType   FieldType       `json:"field_type"`
	Placeholder string          `json:"placeholder"`
	Required    bool            `json:"required"`
	Options     []string        `json:"options"`
	Order       int             `json:"order"`
	Validation  json.RawMessage `json:"validation,omitempty"`
}

type FieldInput struct {
	Label       string
	FieldType   FieldType
	Placeholder string
	Required    bool
	Options     []string
	Validation  json.RawMessage
}

type UpsertFormInput struct {
	EventID          string
	RequiresApproval bool
	Fields           []FieldInput
}
