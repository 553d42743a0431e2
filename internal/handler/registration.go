package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SimpleRegister(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.SimpleRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), id, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "registration": dto.ToRegistrationResponse(reg)})
}

func (h *Handler) CancelSimpleRegistration(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	if err := h.registrationService.Cancel(c.Request.Context(), id, eventID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "message": "registration cancelled"})
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	regs, err := h.registrationService.ListMine(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "registrations": dto.ToRegistrationResponses(regs)})
}

func (h *Handler) EventRegistrations(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	regs, err := h.registrationService.ListByEvent(c.Request.Context(), id, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "registrations": dto.ToRegistrationResponses(regs)})
}

func (h *Handler) MarkRegistrationAttendance(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}
	userID, ok := h.uuidParam(c, "userId", "user")
	if !ok {
		return
	}

	var req dto.RegistrationAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	reg, err := h.registrationService.MarkAttended(c.Request.Context(), id, eventID, userID, *req.Attended)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "registration": dto.ToRegistrationResponse(reg)})
}
