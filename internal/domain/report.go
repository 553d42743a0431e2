package domain

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PopularEvent struct {
	EventID       string `json:"event_id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Registrations int    `json:"registrations"`
	Submissions   int    `json:"submissions"`
}

type Overview struct {
	TotalEvents           int            `json:"total_events"`
	EventsByStatus        []StatusCount  `json:"events_by_status"`
	TotalRegistrations    int            `json:"total_registrations"`
	RegistrationsByStatus []StatusCount  `json:"registrations_by_status"`
	TotalSubmissions      int            `json:"total_submissions"`
	SubmissionsByStatus   []StatusCount  `json:"submissions_by_status"`
	PopularEvents         []PopularEvent `json:"popular_events"`
	RecentEvents          []*Event       `json:"recent_events"`
}
