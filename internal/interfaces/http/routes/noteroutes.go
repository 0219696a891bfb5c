package routes

import (
	"github.com/gin-gonic/gin"

	notehandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/note"
)

type NoteRouteConfig struct {
	NoteHandler *notehandlers.NoteHandler
}

func SetupNoteRoutes(api *gin.RouterGroup, config *NoteRouteConfig) {
	notes := api.Group("/notes")
	{
		notes.POST("", config.NoteHandler.CreateNote)
		notes.GET("/customer/:customerId", config.NoteHandler.ListByCustomer)
		notes.GET("/booking/:bookingId", config.NoteHandler.ListByBooking)
	}
}
