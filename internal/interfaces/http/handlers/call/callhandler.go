package call

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/application/call/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/common"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type CallHandler struct {
	enqueueCallUC  usecases.EnqueueCallExecutor
	listQueueUC    usecases.ListQueueExecutor
	getCallUC      usecases.GetCallExecutor
	assignCallUC   usecases.AssignCallExecutor
	setStatusUC    usecases.SetCallStatusExecutor
	transferCallUC usecases.TransferCallExecutor
	completeCallUC usecases.CompleteCallExecutor
	logger         logger.Interface
}

func NewCallHandler(
	enqueueCallUC usecases.EnqueueCallExecutor,
	listQueueUC usecases.ListQueueExecutor,
	getCallUC usecases.GetCallExecutor,
	assignCallUC usecases.AssignCallExecutor,
	setStatusUC usecases.SetCallStatusExecutor,
	transferCallUC usecases.TransferCallExecutor,
	completeCallUC usecases.CompleteCallExecutor,
	logger logger.Interface,
) *CallHandler {
	return &CallHandler{
		enqueueCallUC:  enqueueCallUC,
		listQueueUC:    listQueueUC,
		getCallUC:      getCallUC,
		assignCallUC:   assignCallUC,
		setStatusUC:    setStatusUC,
		transferCallUC: transferCallUC,
		completeCallUC: completeCallUC,
		logger:         logger,
	}
}

// ListQueue handles GET /calls/queue
func (h *CallHandler) ListQueue(c *gin.Context) {
	result, err := h.listQueueUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// EnqueueCall handles POST /calls
func (h *CallHandler) EnqueueCall(c *gin.Context) {
	var req EnqueueCallRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.enqueueCallUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// GetCall handles GET /calls/:id
func (h *CallHandler) GetCall(c *gin.Context) {
	callID, err := utils.ParseIDParam(c, "id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCallUC.Execute(c.Request.Context(), usecases.GetCallQuery{CallID: callID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// AssignCall handles PATCH /calls/:id/assign
func (h *CallHandler) AssignCall(c *gin.Context) {
	callID, err := utils.ParseIDParam(c, "id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignCallRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignCallUC.Execute(c.Request.Context(), usecases.AssignCallCommand{
		CallID:  callID,
		AgentID: req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// SetStatus handles PATCH /calls/:id/status
func (h *CallHandler) SetStatus(c *gin.Context) {
	callID, err := utils.ParseIDParam(c, "id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetCallStatusRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), usecases.SetCallStatusCommand{
		CallID: callID,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// TransferCall handles POST /calls/:id/transfer
func (h *CallHandler) TransferCall(c *gin.Context) {
	callID, err := utils.ParseIDParam(c, "id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransferCallRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.transferCallUC.Execute(c.Request.Context(), usecases.TransferCallCommand{
		CallID:     callID,
		NewAgentID: req.NewAgentID,
		Reason:     req.TransferReason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// CompleteCall handles POST /calls/:id/complete
func (h *CallHandler) CompleteCall(c *gin.Context) {
	callID, err := utils.ParseIDParam(c, "id", "call")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteCallRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeCallUC.Execute(c.Request.Context(), usecases.CompleteCallCommand{
		CallID:           callID,
		ResolutionStatus: req.ResolutionStatus,
		ResolutionNote:   req.ResolutionNote,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
