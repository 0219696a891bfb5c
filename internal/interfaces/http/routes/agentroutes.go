package routes

import (
	"github.com/gin-gonic/gin"

	agenthandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/agent"
)

type AgentRouteConfig struct {
	AgentHandler *agenthandlers.AgentHandler
}

func SetupAgentRoutes(api *gin.RouterGroup, config *AgentRouteConfig) {
	agents := api.Group("/agents")
	{
		agents.GET("", config.AgentHandler.ListAgents)
		agents.PATCH("/:id/status", config.AgentHandler.SetStatus)
		agents.GET("/:id/stats", config.AgentHandler.GetStats)
		agents.GET("/:id", config.AgentHandler.GetAgent)
	}
}
