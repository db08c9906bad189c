package handler

import (
	"net/http"

	"github.com/stpnv0/StudioDesk/internal/domain"
	"github.com/stpnv0/StudioDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateInvoice(c *ginext.Context) {
	var req dto.CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), domain.CreateInvoiceInput{
		Client:  req.Client,
		EventID: req.EventID,
		Amount:  int64(req.Amount),
		Notes:   req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormInvoice, domain.NewEntity)
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

func (h *Handler) ListInvoices(c *ginext.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, dto.ToInvoiceResponse(inv))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetInvoice(c *ginext.Context) {
	inv, err := h.invoiceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *Handler) ReplaceInvoice(c *ginext.Context) {
	var inv domain.Invoice
	if !h.bindJSON(c, &inv) {
		return
	}
	inv.ID = c.Param("id")

	updated, err := h.invoiceService.Replace(c.Request.Context(), inv)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormInvoice, updated.ID)
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

func (h *Handler) UpdateInvoice(c *ginext.Context) {
	var req dto.UpdateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	inv, err := h.invoiceService.Update(c.Request.Context(), id, domain.UpdateInvoiceInput{
		Client: req.Client,
		Amount: int64(req.Amount),
		Notes:  req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormInvoice, id)
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

func (h *Handler) DeleteInvoice(c *ginext.Context) {
	if err := h.invoiceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RecordPayment(c *ginext.Context) {
	var req dto.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	inv, err := h.invoiceService.RecordPayment(c.Request.Context(), id, req.Input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.clearDraft(c, domain.FormPayment, id)
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}
