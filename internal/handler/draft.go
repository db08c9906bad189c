package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const maxDraftSize = 64 << 10

func (h *Handler) draftKey(c *ginext.Context) (domain.DraftKey, bool) {
	session := c.GetHeader(SessionHeader)
	if session == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + SessionHeader + " header"})
		return domain.DraftKey{}, false
	}
	return domain.DraftKey{
		Session:  session,
		Form:     domain.FormKind(c.Param("form")),
		EntityID: c.Param("id"),
	}, true
}

func (h *Handler) GetDraft(c *ginext.Context) {
	key, ok := h.draftKey(c)
	if !ok {
		return
	}

	payload, found, err := h.drafts.Load(c.Request.Context(), key)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "draft not found"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (h *Handler) SaveDraft(c *ginext.Context) {
	key, ok := h.draftKey(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDraftSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if len(body) > maxDraftSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "draft is too large"})
		return
	}

	if err := h.drafts.Save(c.Request.Context(), key, json.RawMessage(body)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearDraft(c *ginext.Context) {
	key, ok := h.draftKey(c)
	if !ok {
		return
	}

	if err := h.drafts.Clear(c.Request.Context(), key); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// EndSession drops every draft of the calling session.
func (h *Handler) EndSession(c *ginext.Context) {
	session := c.GetHeader(SessionHeader)
	if session == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing " + SessionHeader + " header"})
		return
	}

	if err := h.drafts.EndSession(c.Request.Context(), session); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
