package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses_UnmarshalJSON(t *testing.T) {
	var r Responses
	err := json.Unmarshal([]byte(`{
		"name": "Alice",
		"age": 21,
		"agree": true,
		"topics": ["go", "sql"],
		"skipped": null
	}`), &r)
	require.NoError(t, err)

	assert.Equal(t, StringValue("Alice"), r["name"])
	assert.Equal(t, NumberValue(21), r["age"])
	assert.Equal(t, BoolValue(true), r["agree"])
	assert.Equal(t, ListValue("go", "sql"), r["topics"])
	assert.True(t, r["skipped"].Empty())
}

func TestResponses_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var r Responses
	err := json.Unmarshal([]byte(`{"address": {"city": "Almaty"}}`), &r)

	assert.Error(t, err)
}

func TestResponses_UnmarshalJSON_RejectsMixedLists(t *testing.T) {
	var r Responses
	err := json.Unmarshal([]byte(`{"topics": ["go", 1]}`), &r)

	assert.Error(t, err)
}

func TestResponseValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Responses{
		"a": StringValue("x"),
		"b": NumberValue(1.5),
		"c": BoolValue(false),
		"d": ListValue(),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"a":"x","b":1.5,"c":false,"d":[]}`, string(data))
}

func TestResponseValue_Empty(t *testing.T) {
	assert.True(t, StringValue("   ").Empty())
	assert.True(t, ListValue().Empty())
	assert.True(t, ResponseValue{}.Empty())
	assert.False(t, StringValue("x").Empty())
	assert.False(t, NumberValue(0).Empty())
	assert.False(t, BoolValue(false).Empty())
}

func TestSubmissionStatus_Decision(t *testing.T) {
	assert.True(t, SubmissionStatusApproved.Decision())
	assert.True(t, SubmissionStatusRejected.Decision())
	assert.True(t, SubmissionStatusWaitlisted.Decision())
	assert.False(t, SubmissionStatusPending.Decision())
	assert.True(t, SubmissionStatusPending.Valid())
	assert.False(t, SubmissionStatus("DONE").Valid())
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		attended, approved int
		want               float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{3, 4, 75},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{4, 4, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AttendanceRate(tt.attended, tt.approved))
	}
}
