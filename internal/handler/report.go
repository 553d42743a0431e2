package handler

import (
	"net/http"

	"github.com/stpnv0/EventHub/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ReportOverview(c *ginext.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}

	overview, err := h.reportService.Overview(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "overview": dto.ToOverviewResponse(overview)})
}
