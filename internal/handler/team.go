package handler

import (
	"net/http"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListTeam(c *ginext.Context) {
	ledgers, err := h.teamService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TeamLedgerResponse, 0, len(ledgers))
	for _, l := range ledgers {
		resp = append(resp, dto.ToTeamLedgerResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLedger(c *ginext.Context) {
	l, err := h.teamService.Get(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamLedgerResponse(l))
}

func (h *Handler) GetLedgerSummary(c *ginext.Context) {
	summary, err := h.teamService.Summary(c.Request.Context(), c.Param("memberId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) CreateLedger(c *ginext.Context) {
	var l domain.TeamLedger
	if !h.bindJSON(c, &l) {
		return
	}

	created, err := h.teamService.Create(c.Request.Context(), l)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamLedgerResponse(created))
}

func (h *Handler) ReplaceLedger(c *ginext.Context) {
	var l domain.TeamLedger
	if !h.bindJSON(c, &l) {
		return
	}
	l.MemberID = c.Param("memberId")

	updated, err := h.teamService.Replace(c.Request.Context(), l)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamLedgerResponse(updated))
}

func (h *Handler) DeleteLedger(c *ginext.Context) {
	if err := h.teamService.Delete(c.Request.Context(), c.Param("memberId")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RecordPayout(c *ginext.Context) {
	var req dto.PayoutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	memberID := c.Param("memberId")
	l, err := h.teamService.RecordPayout(c.Request.Context(), memberID, req.Input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormPayout, memberID)
	c.JSON(http.StatusCreated, dto.ToTeamLedgerResponse(l))
}

func (h *Handler) DeletePayout(c *ginext.Context) {
	l, err := h.teamService.DeletePayout(c.Request.Context(), c.Param("memberId"), c.Param("paymentId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamLedgerResponse(l))
}
