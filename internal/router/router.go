package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListFrontendEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	RecordView(c *ginext.Context)
	RecordClick(c *ginext.Context)
	InitPayment(c *ginext.Context)
	PaymentWebhook(c *ginext.Context)

	AdminListEvents(c *ginext.Context)
	AdminGetEvent(c *ginext.Context)
	ApproveEvent(c *ginext.Context)
	RejectEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ShareEvent(c *ginext.Context)
	EventAnalytics(c *ginext.Context)
	TopEvents(c *ginext.Context)
	RecentActions(c *ginext.Context)
}

// InitRouter mounts public, payment and admin routes. adminAuth guards
// everything under /api/admin.
func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Trainings
		api.POST("/trainings", h.SubmitEvent)
		api.GET("/trainings", h.ListEvents)
		api.GET("/trainings/frontend", h.ListFrontendEvents)
		api.GET("/trainings/:id", h.GetEvent)

		// Analytics
		api.POST("/trainings/:id/views", h.RecordView)
		api.POST("/trainings/:id/clicks", h.RecordClick)
	}

	admin := router.Group("/api/admin", adminAuth)
	{
		admin.GET("/trainings", h.AdminListEvents)
		admin.GET("/trainings/:id", h.AdminGetEvent)
		admin.POST("/trainings/:id/approve", h.ApproveEvent)
		admin.POST("/trainings/:id/reject", h.RejectEvent)
		admin.POST("/trainings/:id/share", h.ShareEvent)
		admin.DELETE("/trainings/:id", h.DeleteEvent)
		admin.GET("/trainings/:id/analytics", h.EventAnalytics)
		admin.GET("/analytics/top", h.TopEvents)
		admin.GET("/actions", h.RecentActions)
	}

	router.GET("/payment", h.InitPayment)
	router.POST("/webhooks/payment", h.PaymentWebhook)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})
	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
