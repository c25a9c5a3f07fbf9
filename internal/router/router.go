package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	UpdateReservation(c *ginext.Context)
	ExtendReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	AdvanceReservation(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	RecordPayment(c *ginext.Context)
	ListPayments(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	api.Use(auth)
	{
		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.PUT("/reservations/:id", h.UpdateReservation)
		api.POST("/reservations/:id/extend", h.ExtendReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/reservations/:id/advance", h.AdvanceReservation)

		// Rooms
		api.GET("/rooms/:id/availability", h.CheckAvailability)

		// Payments
		api.POST("/reservations/:id/payments", h.RecordPayment)
		api.GET("/reservations/:id/payments", h.ListPayments)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
