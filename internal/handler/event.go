package handler

import (
	"net/http"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if !h.bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), req.Input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormEvent, domain.NewEntity)
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// ReplaceEvent takes the full record, services included.
func (h *Handler) ReplaceEvent(c *ginext.Context) {
	var event domain.Event
	if !h.bindJSON(c, &event) {
		return
	}
	event.ID = c.Param("id")

	updated, err := h.eventService.Replace(c.Request.Context(), event)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormEvent, updated.ID)
	c.JSON(http.StatusOK, dto.ToEventResponse(updated))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	var req dto.UpdateEventRequest
	if !h.bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	event, err := h.eventService.Update(c.Request.Context(), id, domain.UpdateEventInput{
		Name:   req.Name,
		Client: req.Client,
		Team:   req.Team,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormEvent, id)
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AddService(c *ginext.Context) {
	var req dto.ServiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	eventID := c.Param("id")
	event, err := h.eventService.AddService(c.Request.Context(), eventID, req.Input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormService, eventID)
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) SetServiceStatus(c *ginext.Context) {
	var req dto.ServiceStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	event, err := h.eventService.SetServiceStatus(c.Request.Context(), c.Param("id"), c.Param("serviceId"), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}
