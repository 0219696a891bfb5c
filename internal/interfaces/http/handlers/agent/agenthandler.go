package agent

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/application/agent/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/common"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type SetAgentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=online offline busy break"`
}

func (r *SetAgentStatusRequest) ValidationMessage() string {
	return "Invalid status"
}

type AgentHandler struct {
	listAgentsUC     usecases.ListAgentsExecutor
	getAgentUC       usecases.GetAgentExecutor
	setAgentStatusUC usecases.SetAgentStatusExecutor
	getAgentStatsUC  usecases.GetAgentStatsExecutor
	logger           logger.Interface
}

func NewAgentHandler(
	listAgentsUC usecases.ListAgentsExecutor,
	getAgentUC usecases.GetAgentExecutor,
	setAgentStatusUC usecases.SetAgentStatusExecutor,
	getAgentStatsUC usecases.GetAgentStatsExecutor,
	logger logger.Interface,
) *AgentHandler {
	return &AgentHandler{
		listAgentsUC:     listAgentsUC,
		getAgentUC:       getAgentUC,
		setAgentStatusUC: setAgentStatusUC,
		getAgentStatsUC:  getAgentStatsUC,
		logger:           logger,
	}
}

// ListAgents handles GET /agents
func (h *AgentHandler) ListAgents(c *gin.Context) {
	result, err := h.listAgentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetAgent handles GET /agents/:id
func (h *AgentHandler) GetAgent(c *gin.Context) {
	agentID, err := utils.ParseIDParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAgentUC.Execute(c.Request.Context(), usecases.GetAgentQuery{AgentID: agentID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// SetStatus handles PATCH /agents/:id/status
func (h *AgentHandler) SetStatus(c *gin.Context) {
	agentID, err := utils.ParseIDParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetAgentStatusRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setAgentStatusUC.Execute(c.Request.Context(), usecases.SetAgentStatusCommand{
		AgentID: agentID,
		Status:  req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetStats handles GET /agents/:id/stats?period=
func (h *AgentHandler) GetStats(c *gin.Context) {
	agentID, err := utils.ParseIDParam(c, "id", "agent")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAgentStatsUC.Execute(c.Request.Context(), usecases.GetAgentStatsQuery{
		AgentID: agentID,
		Period:  c.Query("period"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
