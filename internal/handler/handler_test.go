package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	hmocks "github.com/stpnv0/EventHub/internal/handler/mocks"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/stpnv0/EventHub/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "handler-test-secret"
	testIssuer = "eventhub"

	eventID   = "3f2b8c1e-4d5a-4b6c-9e7f-8a9b0c1d2e3f"
	formID    = "5c6d7e8f-9a0b-4c1d-8e2f-3a4b5c6d7e8f"
	subID     = "6d7e8f9a-0b1c-4d2e-9f3a-4b5c6d7e8f9a"
	adminID   = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	studentID = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
)

var (
	adminIdentity   = domain.Identity{UserID: adminID, Role: domain.RoleAdmin}
	studentIdentity = domain.Identity{UserID: studentID, Role: domain.RoleStudent}
)

type testEnv struct {
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	forms         *hmocks.MockFormSvc
	submissions   *hmocks.MockSubmissionSvc
	users         *hmocks.MockUserSvc
	reports       *hmocks.MockReportSvc
	router        http.Handler

	adminToken   string
	studentToken string
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		forms:         hmocks.NewMockFormSvc(t),
		submissions:   hmocks.NewMockSubmissionSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		reports:       hmocks.NewMockReportSvc(t),
	}

	h := NewHandler(env.events, env.registrations, env.forms, env.submissions, env.users, env.reports)
	env.router = router.InitRouter("test", h, router.Guards{
		Auth:  middleware.Authenticate(auth.NewVerifier(testSecret, testIssuer)),
		Admin: middleware.RequireRole(domain.RoleAdmin),
	})

	issuer := auth.NewIssuer(testSecret, testIssuer, time.Hour)
	var err error
	env.adminToken, err = issuer.Issue(adminIdentity)
	require.NoError(t, err)
	env.studentToken, err = issuer.Issue(studentIdentity)
	require.NoError(t, err)

	return env
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	resp := decode[dto.ErrorResponse](t, w)
	assert.False(t, resp.Success)
	return resp.Message
}

func testEvent() *domain.Event {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:           eventID,
		Title:        "Go Meetup",
		Slug:         "go-meetup",
		Description:  "Monthly gathering",
		Location:     "Room 101",
		EventType:    domain.EventTypeMeeting,
		StartDate:    start,
		EndDate:      start.Add(2 * time.Hour),
		MaxAttendees: func() *int { n := 30; return &n }(),
		Status:       domain.EventStatusUpcoming,
		CreatedBy:    adminID,
		CreatedAt:    start.Add(-72 * time.Hour),
		UpdatedAt:    start.Add(-72 * time.Hour),
	}
}

type eventEnvelope struct {
	Success bool              `json:"success"`
	Event   dto.EventResponse `json:"event"`
}

// --- Events ---

func TestHandler_ListEvents(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().ListEvents(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.Status == domain.EventStatusUpcoming && f.Search == "go" && f.Page == 2 && f.Limit == 5
	})).Return(&domain.EventPage{
		Events: []*domain.Event{testEvent()}, Total: 6, Page: 2, Limit: 5, TotalPages: 2,
	}, nil)

	w := env.do(http.MethodGet, "/api/events?status=UPCOMING&search=go&page=2&limit=5", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Success    bool                   `json:"success"`
		Events     []dto.EventResponse    `json:"events"`
		Pagination dto.PaginationResponse `json:"pagination"`
	}](t, w)
	assert.True(t, resp.Success)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "go-meetup", resp.Events[0].Slug)
	assert.Equal(t, "2025-06-01T10:00:00Z", resp.Events[0].StartDate)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 6, resp.Pagination.Total)
}

func TestHandler_ListEvents_BadQuery(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events?page=first", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/events?from=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetEvent(mock.Anything, eventID).Return(testEvent(), nil)

	w := env.do(http.MethodGet, "/api/events/"+eventID, "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[eventEnvelope](t, w)
	assert.Equal(t, "Go Meetup", resp.Event.Title)
	assert.Equal(t, "MEETING", resp.Event.EventType)
}

func TestHandler_GetEvent_Errors(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid event id", errorMessage(t, w))

	env.events.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w = env.do(http.MethodGet, "/api/events/"+eventID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEventBySlug(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().GetEventBySlug(mock.Anything, "go-meetup").Return(testEvent(), nil)

	w := env.do(http.MethodGet, "/api/events/slug/go-meetup", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, eventID, decode[eventEnvelope](t, w).Event.ID)
}

func createEventBody() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:       "Go Meetup",
		Description: "Monthly gathering",
		Location:    "Room 101",
		EventType:   "MEETING",
		StartDate:   "2025-06-01T10:00:00Z",
		EndDate:     "2025-06-01T12:00:00Z",
	}
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().CreateEvent(mock.Anything, adminIdentity, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Go Meetup" && in.EventType == domain.EventTypeMeeting &&
			in.StartDate.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	})).Return(testEvent(), nil)

	w := env.do(http.MethodPost, "/api/events", env.adminToken, createEventBody())

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[eventEnvelope](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "go-meetup", resp.Event.Slug)
}

func TestHandler_CreateEvent_Access(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events", "", createEventBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/events", "garbage", createEventBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/events", env.studentToken, createEventBody())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events", env.adminToken, `{"title": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := createEventBody()
	body.StartDate = "01.06.2025"
	w = env.do(http.MethodPost, "/api/events", env.adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "startDate")
}

func TestHandler_CreateEvent_ServiceErrors(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().CreateEvent(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Join(domain.ErrValidation, errors.New("end_date must not precede start_date"))).Once()
	w := env.do(http.MethodPost, "/api/events", env.adminToken, createEventBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.events.EXPECT().CreateEvent(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused")).Once()
	w = env.do(http.MethodPost, "/api/events", env.adminToken, createEventBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", errorMessage(t, w))
}

func TestHandler_UpdateEvent(t *testing.T) {
	env := setupRouter(t)

	updated := testEvent()
	updated.Title = "Go Meetup #2"
	env.events.EXPECT().UpdateEvent(mock.Anything, adminIdentity, eventID, mock.MatchedBy(func(p domain.UpdateEventInput) bool {
		return p.Title != nil && *p.Title == "Go Meetup #2" &&
			p.MaxAttendees != nil && *p.MaxAttendees == 50 &&
			p.StartDate == nil && p.EventType == nil
	})).Return(updated, nil)

	w := env.do(http.MethodPut, "/api/events/"+eventID, env.adminToken, `{"title":"Go Meetup #2","maxAttendees":50}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Go Meetup #2", decode[eventEnvelope](t, w).Event.Title)
}

func TestHandler_UpdateEvent_ClearFields(t *testing.T) {
	env := setupRouter(t)

	env.events.EXPECT().UpdateEvent(mock.Anything, adminIdentity, eventID, mock.MatchedBy(func(p domain.UpdateEventInput) bool {
		return p.ClearRegistrationDeadline && p.ClearMaxAttendees && !p.ClearCategory &&
			p.RegistrationDeadline == nil && p.MaxAttendees == nil
	})).Return(testEvent(), nil)

	w := env.do(http.MethodPut, "/api/events/"+eventID, env.adminToken,
		`{"clear":["registrationDeadline","maxAttendees"]}`)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateEvent_ClearUnknownField(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPut, "/api/events/"+eventID, env.adminToken, `{"clear":["title"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Cancels(t *testing.T) {
	env := setupRouter(t)

	cancelled := testEvent()
	cancelled.Status = domain.EventStatusCancelled
	env.events.EXPECT().CancelEvent(mock.Anything, adminIdentity, eventID).Return(cancelled, nil)

	w := env.do(http.MethodDelete, "/api/events/"+eventID, env.adminToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CANCELLED", decode[eventEnvelope](t, w).Event.Status)
}

// --- Registrations ---

func TestHandler_SimpleRegister(t *testing.T) {
	env := setupRouter(t)

	env.registrations.EXPECT().Register(mock.Anything, studentIdentity, eventID).Return(&domain.Registration{
		ID: "r1", EventID: eventID, UserID: studentID, Status: domain.RegistrationStatusRegistered,
	}, nil)

	w := env.do(http.MethodPost, "/api/events/student/simple-register", env.studentToken,
		dto.SimpleRegisterRequest{EventID: eventID})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[struct {
		Registration dto.RegistrationResponse `json:"registration"`
	}](t, w)
	assert.Equal(t, "REGISTERED", resp.Registration.Status)
}

func TestHandler_SimpleRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"full", domain.ErrEventFull, http.StatusBadRequest},
		{"duplicate", domain.ErrAlreadyRegistered, http.StatusConflict},
		{"deadline", domain.ErrDeadlinePassed, http.StatusBadRequest},
		{"cancelled", domain.ErrEventCancelled, http.StatusBadRequest},
		{"form only", domain.ErrFormRequired, http.StatusBadRequest},
		{"missing event", domain.ErrEventNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			env.registrations.EXPECT().Register(mock.Anything, studentIdentity, eventID).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/events/student/simple-register", env.studentToken,
				dto.SimpleRegisterRequest{EventID: eventID})

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.err.Error(), errorMessage(t, w))
		})
	}
}

func TestHandler_SimpleRegister_InvalidBody(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events/student/simple-register", env.studentToken, `{"eventId":"42"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelSimpleRegistration(t *testing.T) {
	env := setupRouter(t)

	env.registrations.EXPECT().Cancel(mock.Anything, studentIdentity, eventID).Return(nil).Once()
	w := env.do(http.MethodDelete, "/api/events/student/simple-register/"+eventID, env.studentToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	env.registrations.EXPECT().Cancel(mock.Anything, studentIdentity, eventID).Return(domain.ErrRegistrationNotFound).Once()
	w = env.do(http.MethodDelete, "/api/events/student/simple-register/"+eventID, env.studentToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MyRegistrations(t *testing.T) {
	env := setupRouter(t)

	env.registrations.EXPECT().ListMine(mock.Anything, studentIdentity).Return([]*domain.Registration{{ID: "r1"}}, nil)

	w := env.do(http.MethodGet, "/api/events/student/registrations", env.studentToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Registrations []dto.RegistrationResponse `json:"registrations"`
	}](t, w)
	assert.Len(t, resp.Registrations, 1)
}

func TestHandler_MarkRegistrationAttendance(t *testing.T) {
	env := setupRouter(t)
	path := "/api/events/admin/registrations/" + eventID + "/" + studentID + "/attendance"

	w := env.do(http.MethodPatch, path, env.adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.registrations.EXPECT().MarkAttended(mock.Anything, adminIdentity, eventID, studentID, true).
		Return(&domain.Registration{ID: "r1", Status: domain.RegistrationStatusAttended}, nil)

	w = env.do(http.MethodPatch, path, env.adminToken, `{"attended":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Registration dto.RegistrationResponse `json:"registration"`
	}](t, w)
	assert.Equal(t, "ATTENDED", resp.Registration.Status)
}

func TestHandler_EventRegistrations_StudentForbidden(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events/admin/registrations/"+eventID, env.studentToken, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Forms and submissions ---

func TestHandler_UpsertForm(t *testing.T) {
	env := setupRouter(t)

	env.forms.EXPECT().UpsertForm(mock.Anything, adminIdentity, mock.MatchedBy(func(in domain.UpsertFormInput) bool {
		return in.EventID == eventID && in.RequiresApproval && len(in.Fields) == 2 &&
			in.Fields[1].FieldType == domain.FieldTypeSelect && len(in.Fields[1].Options) == 2
	})).Return(&domain.RegistrationForm{
		ID: formID, EventID: eventID, RequiresApproval: true,
		Fields: []domain.RegistrationField{
			{ID: "f1", Label: "Name", FieldType: domain.FieldTypeText, Required: true, Order: 0},
			{ID: "f2", Label: "Track", FieldType: domain.FieldTypeSelect, Options: []string{"a", "b"}, Order: 1},
		},
	}, nil)

	w := env.do(http.MethodPost, "/api/events/admin/form/"+eventID, env.adminToken, `{
		"requiresApproval": true,
		"fields": [
			{"label": "Name", "fieldType": "text", "required": true},
			{"label": "Track", "fieldType": "select", "options": ["a", "b"]}
		]
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[struct {
		Form dto.FormResponse `json:"form"`
	}](t, w)
	assert.Equal(t, formID, resp.Form.ID)
	require.Len(t, resp.Form.Fields, 2)
	assert.Equal(t, 1, resp.Form.Fields[1].Order)
}

func TestHandler_GetForm_Student(t *testing.T) {
	env := setupRouter(t)

	env.forms.EXPECT().GetForm(mock.Anything, eventID).Return(nil, domain.ErrFormNotFound)

	w := env.do(http.MethodGet, "/api/events/student/form/"+eventID, env.studentToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SubmitForm(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().Submit(mock.Anything, studentIdentity, formID, mock.MatchedBy(func(r domain.Responses) bool {
		return r["name"].String == "Alice" && len(r["topics"].List) == 2
	})).Return(&domain.Submission{
		ID: subID, FormID: formID, EventID: eventID, UserID: studentID,
		Responses: domain.Responses{"name": domain.StringValue("Alice")},
		Status:    domain.SubmissionStatusPending,
	}, nil)

	w := env.do(http.MethodPost, "/api/events/student/form/submit", env.studentToken,
		`{"formId":"`+formID+`","responses":{"name":"Alice","topics":["go","sql"]}}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[struct {
		Submission struct {
			Status    string         `json:"status"`
			Responses map[string]any `json:"responses"`
		} `json:"submission"`
	}](t, w)
	assert.Equal(t, "PENDING", resp.Submission.Status)
	assert.Equal(t, "Alice", resp.Submission.Responses["name"])
}

func TestHandler_SubmitForm_BadResponses(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events/student/form/submit", env.studentToken,
		`{"formId":"`+formID+`","responses":{"address":{"city":"Almaty"}}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitForm_AlreadySubmitted(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().Submit(mock.Anything, studentIdentity, formID, mock.Anything).
		Return(nil, domain.ErrAlreadySubmitted)

	w := env.do(http.MethodPost, "/api/events/student/form/submit", env.studentToken,
		`{"formId":"`+formID+`","responses":{}}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateSubmissionStatus(t *testing.T) {
	env := setupRouter(t)

	reason := "no seats left"
	env.submissions.EXPECT().UpdateStatus(mock.Anything, adminIdentity, subID, domain.SubmissionStatusRejected, reason).
		Return(&domain.Submission{ID: subID, Status: domain.SubmissionStatusRejected, RejectionReason: &reason}, nil)

	w := env.do(http.MethodPatch, "/api/events/admin/submissions/"+subID+"/status", env.adminToken,
		dto.UpdateSubmissionStatusRequest{Status: "REJECTED", RejectionReason: reason})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Submission dto.SubmissionResponse `json:"submission"`
	}](t, w)
	assert.Equal(t, "REJECTED", resp.Submission.Status)
	require.NotNil(t, resp.Submission.RejectionReason)
	assert.Equal(t, reason, *resp.Submission.RejectionReason)
}

func TestHandler_BulkApprove(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().BulkApprove(mock.Anything, adminIdentity, []string{subID}).Return(1, nil)

	w := env.do(http.MethodPost, "/api/events/admin/submissions/bulk-approve", env.adminToken,
		dto.BulkApproveRequest{SubmissionIDs: []string{subID}})

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Count int `json:"count"`
	}](t, w)
	assert.Equal(t, 1, resp.Count)
}

func TestHandler_MarkSubmissionAttendance_NotApproved(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().MarkAttendance(mock.Anything, adminIdentity, subID, false).
		Return(nil, domain.ErrSubmissionNotApproved)

	w := env.do(http.MethodPatch, "/api/events/admin/submissions/"+subID+"/attendance", env.adminToken,
		`{"attended":false}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AttendanceStats(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().AttendanceStats(mock.Anything, adminIdentity, eventID).Return(&domain.AttendanceStats{
		EventID: eventID, TotalSubmissions: 5, Approved: 4, Attended: 3, Absent: 1, AttendanceRate: 75,
	}, nil)

	w := env.do(http.MethodGet, "/api/events/admin/attendance/"+eventID, env.adminToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Stats dto.AttendanceStatsResponse `json:"stats"`
	}](t, w)
	assert.Equal(t, 75.0, resp.Stats.AttendanceRate)
	assert.Equal(t, 4, resp.Stats.Approved)
}

func TestHandler_EventSubmissions_StatusFilter(t *testing.T) {
	env := setupRouter(t)

	env.submissions.EXPECT().ListByEvent(mock.Anything, adminIdentity, eventID, domain.SubmissionStatusPending).
		Return([]*domain.Submission{{ID: subID, Status: domain.SubmissionStatusPending}}, nil)

	w := env.do(http.MethodGet, "/api/events/admin/submissions/event/"+eventID+"?status=PENDING", env.adminToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Submissions []dto.SubmissionResponse `json:"submissions"`
	}](t, w)
	assert.Len(t, resp.Submissions, 1)
}

// --- Users and reports ---

func TestHandler_CreateUser(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Create(mock.Anything, adminIdentity, domain.CreateUserInput{Username: "alice", Role: domain.RoleStudent}).
		Return(&domain.User{ID: studentID, Username: "alice", Role: domain.RoleStudent}, nil).Once()

	w := env.do(http.MethodPost, "/api/admin/users", env.adminToken, dto.CreateUserRequest{Username: "alice", Role: "STUDENT"})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[struct {
		User dto.UserResponse `json:"user"`
	}](t, w)
	assert.Equal(t, "alice", resp.User.Username)

	env.users.EXPECT().Create(mock.Anything, adminIdentity, mock.Anything).Return(nil, domain.ErrUsernameTaken).Once()
	w = env.do(http.MethodPost, "/api/admin/users", env.adminToken, dto.CreateUserRequest{Username: "alice"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Me(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().GetByID(mock.Anything, studentID).Return(&domain.User{ID: studentID, Username: "bob"}, nil)

	w := env.do(http.MethodGet, "/api/users/me", env.studentToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		User dto.UserResponse `json:"user"`
	}](t, w)
	assert.Equal(t, "bob", resp.User.Username)
}

func TestHandler_ReportOverview(t *testing.T) {
	env := setupRouter(t)

	env.reports.EXPECT().Overview(mock.Anything, adminIdentity).Return(&domain.Overview{
		TotalEvents:    3,
		EventsByStatus: []domain.StatusCount{{Status: "UPCOMING", Count: 3}},
		PopularEvents:  []domain.PopularEvent{{EventID: eventID, Title: "Go Meetup", Registrations: 10}},
	}, nil)

	w := env.do(http.MethodGet, "/api/admin/reports/overview", env.adminToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Overview dto.OverviewResponse `json:"overview"`
	}](t, w)
	assert.Equal(t, 3, resp.Overview.TotalEvents)
	require.Len(t, resp.Overview.PopularEvents, 1)
	assert.Equal(t, 10, resp.Overview.PopularEvents[0].Registrations)

	w = env.do(http.MethodGet, "/api/admin/reports/overview", env.studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Health(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
