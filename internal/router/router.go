package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ReplaceEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AddService(c *ginext.Context)
	SetServiceStatus(c *ginext.Context)

	CreateInvoice(c *ginext.Context)
	ListInvoices(c *ginext.Context)
	GetInvoice(c *ginext.Context)
	ReplaceInvoice(c *ginext.Context)
	UpdateInvoice(c *ginext.Context)
	DeleteInvoice(c *ginext.Context)
	RecordPayment(c *ginext.Context)

	ListTeam(c *ginext.Context)
	CreateLedger(c *ginext.Context)
	GetLedger(c *ginext.Context)
	GetLedgerSummary(c *ginext.Context)
	ReplaceLedger(c *ginext.Context)
	DeleteLedger(c *ginext.Context)
	RecordPayout(c *ginext.Context)
	DeletePayout(c *ginext.Context)

	GetDraft(c *ginext.Context)
	SaveDraft(c *ginext.Context)
	ClearDraft(c *ginext.Context)
	EndSession(c *ginext.Context)

	ListReports(c *ginext.Context)
}

// InitRouter wires the API. mw runs on every route, auth only on /api.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	if auth != nil {
		api.Use(auth)
	}
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.ReplaceEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/services", h.AddService)
		api.PATCH("/events/:id/services/:serviceId/status", h.SetServiceStatus)

		// Invoices
		api.POST("/invoices", h.CreateInvoice)
		api.GET("/invoices", h.ListInvoices)
		api.GET("/invoices/:id", h.GetInvoice)
		api.PUT("/invoices/:id", h.ReplaceInvoice)
		api.PATCH("/invoices/:id", h.UpdateInvoice)
		api.DELETE("/invoices/:id", h.DeleteInvoice)
		api.POST("/invoices/:id/payments", h.RecordPayment)

		// Team payouts
		api.GET("/team", h.ListTeam)
		api.POST("/team", h.CreateLedger)
		api.GET("/team/:memberId", h.GetLedger)
		api.PUT("/team/:memberId", h.ReplaceLedger)
		api.DELETE("/team/:memberId", h.DeleteLedger)
		api.GET("/team/:memberId/summary", h.GetLedgerSummary)
		api.POST("/team/:memberId/payments", h.RecordPayout)
		api.DELETE("/team/:memberId/payments/:paymentId", h.DeletePayout)

		// Drafts
		api.GET("/drafts/:form/:id", h.GetDraft)
		api.PUT("/drafts/:form/:id", h.SaveDraft)
		api.DELETE("/drafts/:form/:id", h.ClearDraft)
		api.DELETE("/drafts", h.EndSession)

		api.GET("/reports", h.ListReports)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
