package routes

import (
	"github.com/gin-gonic/gin"

	callhandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/call"
)

type CallRouteConfig struct {
	CallHandler *callhandlers.CallHandler
}

func SetupCallRoutes(api *gin.RouterGroup, config *CallRouteConfig) {
	calls := api.Group("/calls")
	{
		// Specific paths BEFORE parameterized paths
		calls.GET("/queue", config.CallHandler.ListQueue)
		calls.POST("", config.CallHandler.EnqueueCall)

		calls.PATCH("/:id/assign", config.CallHandler.AssignCall)
		calls.PATCH("/:id/status", config.CallHandler.SetStatus)
		calls.POST("/:id/transfer", config.CallHandler.TransferCall)
		calls.POST("/:id/complete", config.CallHandler.CompleteCall)

		calls.GET("/:id", config.CallHandler.GetCall)
	}
}
