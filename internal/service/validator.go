package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/stpnv0/EventHub/internal/domain"
)

// FieldValidator checks one non-empty answer against its field definition.
type FieldValidator func(field domain.RegistrationField, value domain.ResponseValue) error

// FieldRules is the subset of a field's validation descriptor understood by
// the built-in validators. Unknown keys are ignored.
type FieldRules struct {
	MinLength *int     `json:"minLength"`
	MaxLength *int     `json:"maxLength"`
	Pattern   string   `json:"pattern"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`

	pattern *regexp.Regexp
}

// ParseFieldRules decodes a validation descriptor. Known keys must have the
// right JSON type, bounds must be consistent and the pattern must compile.
func ParseFieldRules(raw json.RawMessage) (FieldRules, error) {
	var r FieldRules
	if len(raw) == 0 || string(raw) == "null" {
		return r, nil
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return r, fmt.Errorf("%s must be a %s", typeErr.Field, jsonKind(typeErr.Field))
		}
		return r, errors.New("must be a JSON object")
	}

	switch {
	case r.MinLength != nil && *r.MinLength < 0:
		return r, errors.New("minLength must not be negative")
	case r.MaxLength != nil && *r.MaxLength < 0:
		return r, errors.New("maxLength must not be negative")
	case r.MinLength != nil && r.MaxLength != nil && *r.MinLength > *r.MaxLength:
		return r, errors.New("minLength must not exceed maxLength")
	case r.Min != nil && r.Max != nil && *r.Min > *r.Max:
		return r, errors.New("min must not exceed max")
	}

	if r.Pattern != "" {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return r, fmt.Errorf("pattern is not a valid regular expression: %w", err)
		}
		r.pattern = re
	}
	return r, nil
}

func jsonKind(key string) string {
	if key == "pattern" {
		return "string"
	}
	return "number"
}

// errBrokenRules fails an answer closed when a stored descriptor no longer
// parses; forms are checked on save, so this only hits rows written around
// that check.
var errBrokenRules = errors.New("field has an invalid validation rule")

func rulesOf(field domain.RegistrationField) (FieldRules, error) {
	r, err := ParseFieldRules(field.Validation)
	if err != nil {
		return FieldRules{}, errBrokenRules
	}
	return r, nil
}

// Validators is a registry of answer validators keyed by field type.
type Validators struct {
	byType map[domain.FieldType]FieldValidator
}

func NewValidators() *Validators {
	return &Validators{byType: make(map[domain.FieldType]FieldValidator)}
}

// DefaultValidators covers every built-in field type.
func DefaultValidators() *Validators {
	v := NewValidators()
	v.Register(domain.FieldTypeText, validateText)
	v.Register(domain.FieldTypeTextarea, validateText)
	v.Register(domain.FieldTypeEmail, validateEmail)
	v.Register(domain.FieldTypePhone, validatePhone)
	v.Register(domain.FieldTypeNumber, validateNumber)
	v.Register(domain.FieldTypeDate, validateDate)
	v.Register(domain.FieldTypeSelect, validateSingleChoice)
	v.Register(domain.FieldTypeRadio, validateSingleChoice)
	v.Register(domain.FieldTypeCheckbox, validateCheckbox)
	return v
}

func (v *Validators) Register(t domain.FieldType, fn FieldValidator) {
	v.byType[t] = fn
}

func (v *Validators) Supports(t domain.FieldType) bool {
	_, ok := v.byType[t]
	return ok
}

func (v *Validators) Validate(field domain.RegistrationField, value domain.ResponseValue) error {
	fn, ok := v.byType[field.FieldType]
	if !ok {
		return nil
	}
	if err := fn(field, value); err != nil {
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, field.Label, err.Error())
	}
	return nil
}

// answered reports whether value satisfies a required field. An unticked
// single checkbox counts as missing.
func answered(field domain.RegistrationField, value domain.ResponseValue) bool {
	if value.Empty() {
		return false
	}
	if field.FieldType == domain.FieldTypeCheckbox && value.Kind == domain.ValueBool {
		return value.Bool
	}
	return true
}

func validateText(field domain.RegistrationField, value domain.ResponseValue) error {
	if value.Kind != domain.ValueString {
		return fmt.Errorf("expected text")
	}
	r, err := rulesOf(field)
	if err != nil {
		return err
	}
	n := utf8.RuneCountInString(value.String)
	if r.MinLength != nil && n < *r.MinLength {
		return fmt.Errorf("must be at least %d characters", *r.MinLength)
	}
	if r.MaxLength != nil && n > *r.MaxLength {
		return fmt.Errorf("must be at most %d characters", *r.MaxLength)
	}
	if r.pattern != nil && !r.pattern.MatchString(value.String) {
		return fmt.Errorf("has an invalid format")
	}
	return nil
}

func validateEmail(_ domain.RegistrationField, value domain.ResponseValue) error {
	if value.Kind != domain.ValueString {
		return fmt.Errorf("expected an email address")
	}
	addr, err := mail.ParseAddress(value.String)
	if err != nil || addr.Address != strings.TrimSpace(value.String) {
		return fmt.Errorf("is not a valid email address")
	}
	return nil
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,19}$`)

func validatePhone(_ domain.RegistrationField, value domain.ResponseValue) error {
	if value.Kind != domain.ValueString || !phonePattern.MatchString(strings.TrimSpace(value.String)) {
		return fmt.Errorf("is not a valid phone number")
	}
	return nil
}

func validateNumber(field domain.RegistrationField, value domain.ResponseValue) error {
	n := value.Number
	switch value.Kind {
	case domain.ValueNumber:
	case domain.ValueString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value.String), 64)
		if err != nil {
			return fmt.Errorf("expected a number")
		}
		n = parsed
	default:
		return fmt.Errorf("expected a number")
	}

	r, err := rulesOf(field)
	if err != nil {
		return err
	}
	if r.Min != nil && n < *r.Min {
		return fmt.Errorf("must be at least %v", *r.Min)
	}
	if r.Max != nil && n > *r.Max {
		return fmt.Errorf("must be at most %v", *r.Max)
	}
	return nil
}

func validateDate(_ domain.RegistrationField, value domain.ResponseValue) error {
	if value.Kind != domain.ValueString {
		return fmt.Errorf("expected a date")
	}
	s := strings.TrimSpace(value.String)
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return fmt.Errorf("expected a date in YYYY-MM-DD format")
}

func validateSingleChoice(field domain.RegistrationField, value domain.ResponseValue) error {
	if value.Kind != domain.ValueString {
		return fmt.Errorf("expected one of the options")
	}
	if !slices.Contains(field.Options, value.String) {
		return fmt.Errorf("%q is not one of the options", value.String)
	}
	return nil
}

// validateCheckbox accepts a bool for a single checkbox without options and a
// string or list of options for a checkbox group.
func validateCheckbox(field domain.RegistrationField, value domain.ResponseValue) error {
	if len(field.Options) == 0 {
		if value.Kind != domain.ValueBool {
			return fmt.Errorf("expected true or false")
		}
		return nil
	}

	switch value.Kind {
	case domain.ValueString:
		return validateSingleChoice(field, value)
	case domain.ValueList:
		for _, item := range value.List {
			if !slices.Contains(field.Options, item) {
				return fmt.Errorf("%q is not one of the options", item)
			}
		}
		return nil
	}
	return fmt.Errorf("expected a list of options")
}
