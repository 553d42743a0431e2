package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) UpsertForm(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	var req dto.UpsertFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	input := domain.UpsertFormInput{
		EventID:          eventID,
		RequiresApproval: req.RequiresApproval,
		Fields:           make([]domain.FieldInput, 0, len(req.Fields)),
	}
	for _, f := range req.Fields {
		input.Fields = append(input.Fields, domain.FieldInput{
			Label:       f.Label,
			FieldType:   domain.FieldType(f.FieldType),
			Placeholder: f.Placeholder,
			Required:    f.Required,
			Options:     f.Options,
			Validation:  f.Validation,
		})
	}

	form, err := h.formService.UpsertForm(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "form": dto.ToFormResponse(form)})
}

// GetForm serves both the student and the admin view of an event's form.
func (h *Handler) GetForm(c *ginext.Context) {
	eventID, ok := h.uuidParam(c, "eventId", "event")
	if !ok {
		return
	}

	form, err := h.formService.GetForm(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "form": dto.ToFormResponse(form)})
}
