package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitForm(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	sub, err := h.submissionService.Submit(c.Request.Context(), id, req.FormID, req.Responses)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "submission": dto.ToSubmissionResponse(sub)})
}

func (h *Handler) MySubmissions(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	subs, err := h.submissionService.ListMine(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "submissions": dto.ToSubmissionResponses(subs)})
}

func (h *Handler) EventSubmissions(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	status := domain.SubmissionStatus(c.Query("status"))
	subs, err := h.submissionService.ListByEvent(c.Request.Context(), id, eventID, status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "submissions": dto.ToSubmissionResponses(subs)})
}

func (h *Handler) UpdateSubmissionStatus(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	subID, ok := h.uuidParam(c, "id", "submission")
	if !ok {
		return
	}

	var req dto.UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	sub, err := h.submissionService.UpdateStatus(
		c.Request.Context(), id, subID,
		domain.SubmissionStatus(req.Status), req.RejectionReason,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "submission": dto.ToSubmissionResponse(sub)})
}

func (h *Handler) BulkApprove(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.BulkApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	count, err := h.submissionService.BulkApprove(c.Request.Context(), id, req.SubmissionIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "count": count})
}

func (h *Handler) MarkSubmissionAttendance(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	subID, ok := h.uuidParam(c, "id", "submission")
	if !ok {
		return
	}

	var req dto.SubmissionAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	sub, err := h.submissionService.MarkAttendance(c.Request.Context(), id, subID, *req.Attended)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "submission": dto.ToSubmissionResponse(sub)})
}

func (h *Handler) AttendanceStats(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	stats, err := h.submissionService.AttendanceStats(c.Request.Context(), id, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "stats": dto.ToAttendanceStatsResponse(stats)})
}
