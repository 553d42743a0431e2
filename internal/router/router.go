package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// Events
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	GetEventBySlug(c *ginext.Context)
	ListEvents(c *ginext.Context)

	// Simple registration
	SimpleRegister(c *ginext.Context)
	CancelSimpleRegistration(c *ginext.Context)
	MyRegistrations(c *ginext.Context)
	EventRegistrations(c *ginext.Context)
	MarkRegistrationAttendance(c *ginext.Context)

	// Forms and submissions
	UpsertForm(c *ginext.Context)
	GetForm(c *ginext.Context)
	SubmitForm(c *ginext.Context)
	MySubmissions(c *ginext.Context)
	EventSubmissions(c *ginext.Context)
	UpdateSubmissionStatus(c *ginext.Context)
	BulkApprove(c *ginext.Context)
	MarkSubmissionAttendance(c *ginext.Context)
	AttendanceStats(c *ginext.Context)

	// Users and reports
	Me(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	ReportOverview(c *ginext.Context)
}

// Guards wraps the access middlewares: Auth authenticates the caller,
// Admin additionally requires the ADMIN role.
type Guards struct {
	Auth  ginext.HandlerFunc
	Admin ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, g Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/slug/:slug", h.GetEventBySlug)
	}

	student := api.Group("/events/student", g.Auth)
	{
		student.POST("/simple-register", h.SimpleRegister)
		student.DELETE("/simple-register/:eventId", h.CancelSimpleRegistration)
		student.GET("/registrations", h.MyRegistrations)
		student.GET("/form/:eventId", h.GetForm)
		student.POST("/form/submit", h.SubmitForm)
		student.GET("/submissions", h.MySubmissions)
	}

	api.GET("/users/me", g.Auth, h.Me)

	events := api.Group("/events", g.Auth, g.Admin)
	{
		events.POST("", h.CreateEvent)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}

	eventsAdmin := api.Group("/events/admin", g.Auth, g.Admin)
	{
		eventsAdmin.POST("/form/:eventId", h.UpsertForm)
		eventsAdmin.GET("/form/:eventId", h.GetForm)
		eventsAdmin.GET("/registrations/:eventId", h.EventRegistrations)
		eventsAdmin.PATCH("/registrations/:eventId/:userId/attendance", h.MarkRegistrationAttendance)
		eventsAdmin.GET("/submissions/event/:eventId", h.EventSubmissions)
		eventsAdmin.PATCH("/submissions/:id/status", h.UpdateSubmissionStatus)
		eventsAdmin.POST("/submissions/bulk-approve", h.BulkApprove)
		eventsAdmin.PATCH("/submissions/:id/attendance", h.MarkSubmissionAttendance)
		eventsAdmin.GET("/attendance/:eventId", h.AttendanceStats)
	}

	admin := api.Group("/admin", g.Auth, g.Admin)
	{
		admin.GET("/reports/overview", h.ReportOverview)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
