package call

import "github.com/travelease/callcenter/internal/application/call/usecases"

type EnqueueCallRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	IssueType   string `json:"issue_type" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func (r *EnqueueCallRequest) ValidationMessage() string {
	return "Missing required fields"
}

func (r *EnqueueCallRequest) ToCommand() usecases.EnqueueCallCommand {
	return usecases.EnqueueCallCommand{
		CustomerID:  r.CustomerID,
		IssueType:   r.IssueType,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type AssignCallRequest struct {
	AgentID uint `json:"agent_id" binding:"required"`
}

type SetCallStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *SetCallStatusRequest) ValidationMessage() string {
	return "Invalid status"
}

type TransferCallRequest struct {
	NewAgentID     uint   `json:"new_agent_id" binding:"required"`
	TransferReason string `json:"transfer_reason"`
}

type CompleteCallRequest struct {
	ResolutionStatus string `json:"resolution_status" binding:"required,oneof=resolved unresolved escalated callback"`
	ResolutionNote   string `json:"resolution_note"`
}

func (r *CompleteCallRequest) ValidationMessage() string {
	return "Invalid resolution status"
}
