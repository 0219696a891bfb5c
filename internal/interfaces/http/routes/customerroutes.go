package routes

import (
	"github.com/gin-gonic/gin"

	customerhandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/customer"
)

type CustomerRouteConfig struct {
	CustomerHandler *customerhandlers.CustomerHandler
}

func SetupCustomerRoutes(api *gin.RouterGroup, config *CustomerRouteConfig) {
	customers := api.Group("/customers")
	{
		// /search must be registered before /:id
		customers.GET("", config.CustomerHandler.ListCustomers)
		customers.GET("/search", config.CustomerHandler.SearchCustomers)

		customers.GET("/:id/bookings", config.CustomerHandler.ListBookings)
		customers.GET("/:id/workspace", config.CustomerHandler.GetWorkspace)
		customers.GET("/:id", config.CustomerHandler.GetCustomer)
	}
}
