package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	input, err := createEventInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "event": dto.ToEventResponse(event)})
}

func createEventInput(req dto.CreateEventRequest) (domain.CreateEventInput, error) {
	start, err := parseTime("startDate", req.StartDate)
	if err != nil {
		return domain.CreateEventInput{}, err
	}
	end, err := parseTime("endDate", req.EndDate)
	if err != nil {
		return domain.CreateEventInput{}, err
	}
	deadline, err := parseTimePtr("registrationDeadline", req.RegistrationDeadline)
	if err != nil {
		return domain.CreateEventInput{}, err
	}

	return domain.CreateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		EventType:            domain.EventType(req.EventType),
		CategoryID:           req.CategoryID,
		StartDate:            start,
		EndDate:              end,
		RegistrationDeadline: deadline,
		MaxAttendees:         req.MaxAttendees,
	}, nil
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "id", "event")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	patch, err := updateEventInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, eventID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": dto.ToEventResponse(event)})
}

func updateEventInput(req dto.UpdateEventRequest) (domain.UpdateEventInput, error) {
	patch := domain.UpdateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		CategoryID:   req.CategoryID,
		MaxAttendees: req.MaxAttendees,
	}
	if req.EventType != nil {
		t := domain.EventType(*req.EventType)
		patch.EventType = &t
	}
	for _, field := range req.Clear {
		switch field {
		case "categoryId":
			patch.ClearCategory = true
		case "registrationDeadline":
			patch.ClearRegistrationDeadline = true
		case "maxAttendees":
			patch.ClearMaxAttendees = true
		default:
			return patch, fmt.Errorf("%w: field %q cannot be cleared", domain.ErrValidation, field)
		}
	}

	var err error
	if patch.StartDate, err = parseTimePtr("startDate", req.StartDate); err != nil {
		return patch, err
	}
	if patch.EndDate, err = parseTimePtr("endDate", req.EndDate); err != nil {
		return patch, err
	}
	if patch.RegistrationDeadline, err = parseTimePtr("registrationDeadline", req.RegistrationDeadline); err != nil {
		return patch, err
	}

	return patch, nil
}

// DeleteEvent cancels the event; registrations and submissions are kept.
func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.eventService.CancelEvent(c.Request.Context(), id, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": dto.ToEventResponse(event)})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	eventID, ok := h.uuidParam(c, "id", "event")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": dto.ToEventResponse(event)})
}

func (h *Handler) GetEventBySlug(c *ginext.Context) {
	event, err := h.eventService.GetEventBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "event": dto.ToEventResponse(event)})
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter, err := eventFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	page, err := h.eventService.ListEvents(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"success":    true,
		"events":     dto.ToEventResponses(page.Events),
		"pagination": dto.ToPaginationResponse(page),
	})
}

func eventFilter(c *ginext.Context) (domain.EventFilter, error) {
	f := domain.EventFilter{
		Status:     domain.EventStatus(c.Query("status")),
		EventType:  domain.EventType(c.Query("eventType")),
		CategoryID: c.Query("categoryId"),
		Search:     c.Query("search"),
	}

	var err error
	if v := c.Query("from"); v != "" {
		if f.From, err = parseTimePtr("from", &v); err != nil {
			return f, err
		}
	}
	if v := c.Query("to"); v != "" {
		if f.To, err = parseTimePtr("to", &v); err != nil {
			return f, err
		}
	}
	if f.Page, err = intQuery(c, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = intQuery(c, "limit"); err != nil {
		return f, err
	}

	return f, nil
}

// intQuery returns 0 for an absent parameter so the service applies its default.
func intQuery(c *ginext.Context, name string) (int, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return n, nil
}
