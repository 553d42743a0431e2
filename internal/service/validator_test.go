package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidators_Validate(t *testing.T) {
	choices := []string{"backend", "frontend", "devops"}

	tests := []struct {
		name    string
		field   domain.RegistrationField
		value   domain.ResponseValue
		wantErr bool
	}{
		{"text ok", domain.RegistrationField{FieldType: domain.FieldTypeText}, domain.StringValue("hello"), false},
		{"text wrong kind", domain.RegistrationField{FieldType: domain.FieldTypeText}, domain.NumberValue(1), true},
		{
			"text too short",
			domain.RegistrationField{FieldType: domain.FieldTypeTextarea, Validation: json.RawMessage(`{"minLength":5}`)},
			domain.StringValue("abc"), true,
		},
		{
			"text length counts runes",
			domain.RegistrationField{FieldType: domain.FieldTypeText, Validation: json.RawMessage(`{"maxLength":6}`)},
			domain.StringValue("Привет"), false,
		},
		{
			"text pattern",
			domain.RegistrationField{FieldType: domain.FieldTypeText, Validation: json.RawMessage(`{"pattern":"^[A-Z]{2}[0-9]{4}$"}`)},
			domain.StringValue("ab1234"), true,
		},
		{"email ok", domain.RegistrationField{FieldType: domain.FieldTypeEmail}, domain.StringValue("alice@example.com"), false},
		{"email with name", domain.RegistrationField{FieldType: domain.FieldTypeEmail}, domain.StringValue("Alice <alice@example.com>"), true},
		{"email invalid", domain.RegistrationField{FieldType: domain.FieldTypeEmail}, domain.StringValue("alice@"), true},
		{"phone ok", domain.RegistrationField{FieldType: domain.FieldTypePhone}, domain.StringValue("+7 (701) 123-45-67"), false},
		{"phone letters", domain.RegistrationField{FieldType: domain.FieldTypePhone}, domain.StringValue("call me"), true},
		{"number ok", domain.RegistrationField{FieldType: domain.FieldTypeNumber}, domain.NumberValue(3), false},
		{"number from string", domain.RegistrationField{FieldType: domain.FieldTypeNumber}, domain.StringValue(" 42 "), false},
		{"number not numeric", domain.RegistrationField{FieldType: domain.FieldTypeNumber}, domain.StringValue("forty"), true},
		{
			"number above max",
			domain.RegistrationField{FieldType: domain.FieldTypeNumber, Validation: json.RawMessage(`{"min":1,"max":10}`)},
			domain.NumberValue(11), true,
		},
		{"date ok", domain.RegistrationField{FieldType: domain.FieldTypeDate}, domain.StringValue("2025-03-01"), false},
		{"date rfc3339", domain.RegistrationField{FieldType: domain.FieldTypeDate}, domain.StringValue("2025-03-01T10:00:00Z"), false},
		{"date invalid", domain.RegistrationField{FieldType: domain.FieldTypeDate}, domain.StringValue("01.03.2025"), true},
		{"select ok", domain.RegistrationField{FieldType: domain.FieldTypeSelect, Options: choices}, domain.StringValue("devops"), false},
		{"select unknown", domain.RegistrationField{FieldType: domain.FieldTypeSelect, Options: choices}, domain.StringValue("qa"), true},
		{"radio list", domain.RegistrationField{FieldType: domain.FieldTypeRadio, Options: choices}, domain.ListValue("backend"), true},
		{"checkbox list ok", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox, Options: choices}, domain.ListValue("backend", "devops"), false},
		{"checkbox list unknown", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox, Options: choices}, domain.ListValue("backend", "qa"), true},
		{"checkbox single bool", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox}, domain.BoolValue(true), false},
		{"checkbox number", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox}, domain.NumberValue(1), true},
		{"checkbox without options rejects text", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox}, domain.StringValue("yes"), true},
		{"checkbox without options rejects list", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox}, domain.ListValue("yes"), true},
		{"checkbox group single option", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox, Options: choices}, domain.StringValue("backend"), false},
		{"checkbox group rejects bool", domain.RegistrationField{FieldType: domain.FieldTypeCheckbox, Options: choices}, domain.BoolValue(true), true},
		{
			"stored pattern that does not compile fails closed",
			domain.RegistrationField{FieldType: domain.FieldTypeText, Validation: json.RawMessage(`{"pattern":"("}`)},
			domain.StringValue("anything"), true,
		},
		{
			"stored length of wrong type fails closed",
			domain.RegistrationField{FieldType: domain.FieldTypeText, Validation: json.RawMessage(`{"maxLength":"3"}`)},
			domain.StringValue("ab"), true,
		},
		{
			"unknown descriptor keys ignored",
			domain.RegistrationField{FieldType: domain.FieldTypeText, Validation: json.RawMessage(`{"hint":"x","maxLength":3}`)},
			domain.StringValue("abc"), false,
		},
	}

	v := DefaultValidators()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.field.Label = "Field"
			err := v.Validate(tt.field, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidators_Register(t *testing.T) {
	v := NewValidators()
	assert.False(t, v.Supports(domain.FieldTypeText))

	v.Register(domain.FieldTypeText, func(domain.RegistrationField, domain.ResponseValue) error {
		return errors.New("always wrong")
	})

	assert.True(t, v.Supports(domain.FieldTypeText))
	err := v.Validate(domain.RegistrationField{Label: "Name", FieldType: domain.FieldTypeText}, domain.StringValue("x"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Name: always wrong")
}

func TestAnswered(t *testing.T) {
	checkbox := domain.RegistrationField{FieldType: domain.FieldTypeCheckbox}
	text := domain.RegistrationField{FieldType: domain.FieldTypeText}

	assert.False(t, answered(checkbox, domain.BoolValue(false)))
	assert.True(t, answered(checkbox, domain.BoolValue(true)))
	assert.False(t, answered(text, domain.StringValue(" ")))
	assert.True(t, answered(text, domain.StringValue("x")))
}

func TestParseFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"empty", ``, ""},
		{"null", `null`, ""},
		{"full", `{"minLength":1,"maxLength":5,"pattern":"^[a-z]+$","min":0,"max":9}`, ""},
		{"length as string", `{"maxLength":"3"}`, "maxLength must be a number"},
		{"pattern as number", `{"pattern":5}`, "pattern must be a string"},
		{"bad pattern", `{"pattern":"("}`, "pattern is not a valid regular expression"},
		{"negative length", `{"minLength":-1}`, "minLength must not be negative"},
		{"inverted lengths", `{"minLength":5,"maxLength":2}`, "minLength must not exceed maxLength"},
		{"array", `[1]`, "must be a JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldRules(json.RawMessage(tt.raw))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseFieldRules_CompilesPattern(t *testing.T) {
	r, err := ParseFieldRules(json.RawMessage(`{"pattern":"^[A-Z]{2}$"}`))

	assert.NoError(t, err)
	if assert.NotNil(t, r.pattern) {
		assert.True(t, r.pattern.MatchString("AB"))
	}
}
