package routes

import (
	"github.com/gin-gonic/gin"

	bookinghandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/booking"
)

type BookingRouteConfig struct {
	BookingHandler *bookinghandlers.BookingHandler
	// VisaRateLimit guards the endpoints that call the visa service. Nil
	// leaves them unlimited.
	VisaRateLimit gin.HandlerFunc
}

func SetupBookingRoutes(api *gin.RouterGroup, config *BookingRouteConfig) {
	bookings := api.Group("/bookings")
	{
		bookings.GET("", config.BookingHandler.ListBookings)
		bookings.POST("", config.BookingHandler.CreateBooking)
		bookings.GET("/reference/:ref", config.BookingHandler.GetBookingByReference)

		bookings.PATCH("/:id/status", config.BookingHandler.SetStatus)
		bookings.POST("/:id/modification", config.BookingHandler.RequestModification)
		bookings.GET("/:id/modifications", config.BookingHandler.ListModifications)

		bookings.POST("/:id/check-and-apply-visa",
			withOptional(config.VisaRateLimit, config.BookingHandler.ApplyForVisa)...)
		bookings.GET("/:id/view-visa-applications",
			withOptional(config.VisaRateLimit, config.BookingHandler.ListVisaApplications)...)

		bookings.GET("/:id", config.BookingHandler.GetBooking)
	}
}

func withOptional(mw gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if mw == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{mw, handler}
}
