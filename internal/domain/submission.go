package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "PENDING"
	SubmissionStatusApproved   SubmissionStatus = "APPROVED"
	SubmissionStatusRejected   SubmissionStatus = "REJECTED"
	SubmissionStatusWaitlisted SubmissionStatus = "WAITLISTED"
)

// Decision reports whether s is a valid admin decision out of PENDING.
func (s SubmissionStatus) Decision() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected || s == SubmissionStatusWaitlisted
}

func (s SubmissionStatus) Valid() bool {
	return s == SubmissionStatusPending || s.Decision()
}

type ValueKind string

const (
	ValueString ValueKind = "string"
	ValueNumber ValueKind = "number"
	ValueBool   ValueKind = "bool"
	ValueList   ValueKind = "list"
)

// ResponseValue is one answer in a submission.
type ResponseValue struct {
	Kind   ValueKind
	String string
	Number float64
	Bool   bool
	List   []string
}

func StringValue(s string) ResponseValue  { return ResponseValue{Kind: ValueString, String: s} }
func NumberValue(n float64) ResponseValue { return ResponseValue{Kind: ValueNumber, Number: n} }
func BoolValue(b bool) ResponseValue      { return ResponseValue{Kind: ValueBool, Bool: b} }
func ListValue(l ...string) ResponseValue { return ResponseValue{Kind: ValueList, List: l} }

// Empty reports whether the value counts as not answered.
func (v ResponseValue) Empty() bool {
	switch v.Kind {
	case ValueString:
		return strings.TrimSpace(v.String) == ""
	case ValueList:
		return len(v.List) == 0
	case ValueNumber, ValueBool:
		return false
	}
	return true
}

func (v ResponseValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueString:
		return json.Marshal(v.String)
	case ValueNumber:
		return json.Marshal(v.Number)
	case ValueBool:
		return json.Marshal(v.Bool)
	case ValueList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	}
	return []byte("null"), nil
}

func (v *ResponseValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ResponseValue{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '[':
		var l []string
		if err := json.Unmarshal(data, &l); err != nil {
			return fmt.Errorf("list answers must contain strings: %w", err)
		}
		*v = ListValue(l...)
	case '{':
		return fmt.Errorf("unsupported answer value %s", data)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = NumberValue(n)
	}
	return nil
}

// Responses maps field id to answer.
type Responses map[string]ResponseValue

type Submission struct {
	ID              string           `json:"id"`
	FormID          string           `json:"form_id"`
	EventID         string           `json:"event_id"`
	UserID          string           `json:"user_id"`
	Responses       Responses        `json:"responses"`
	Status          SubmissionStatus `json:"status"`
	ApprovedBy      *string          `json:"approved_by"`
	ApprovedAt      *time.Time       `json:"approved_at"`
	RejectionReason *string          `json:"rejection_reason"`
	Attended        *bool            `json:"attended"`
	AttendanceBy    *string          `json:"attendance_marked_by"`
	AttendanceAt    *time.Time       `json:"attendance_marked_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// StatusUpdate is the stored effect of an admin decision.
type StatusUpdate struct {
	Status          SubmissionStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
}

type AttendanceStats struct {
	EventID          string  `json:"event_id"`
	TotalSubmissions int     `json:"total_submissions"`
	Approved         int     `json:"approved"`
	Attended         int     `json:"attended"`
	Absent           int     `json:"absent"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

// AttendanceRate returns attended/approved as a percentage rounded to two
// decimals, or 0 when nothing is approved.
func AttendanceRate(attended, approved int) float64 {
	if approved == 0 {
		return 0
	}
	return math.Round(float64(attended)/float64(approved)*10000) / 100
}
