package dto

import (
	"time"

	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/domain/call"
)

type AgentDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AgentStatsDTO struct {
	AgentID            uint     `json:"agent_id"`
	Period             string   `json:"period"`
	TotalCalls         int      `json:"total_calls"`
	AvgDurationMinutes *float64 `json:"avg_duration_minutes"`
	ResolvedCalls      int      `json:"resolved_calls"`
}

func ToAgentDTO(a *agent.Agent) *AgentDTO {
	if a == nil {
		return nil
	}
	return &AgentDTO{
		ID:        a.ID(),
		Name:      a.Name(),
		Email:     a.Email(),
		Status:    string(a.Status()),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func ToAgentDTOs(agents []*agent.Agent) []*AgentDTO {
	out := make([]*AgentDTO, 0, len(agents))
	for _, a := range agents {
		out = append(out, ToAgentDTO(a))
	}
	return out
}

func ToAgentStatsDTO(agentID uint, period string, s call.AgentStats) *AgentStatsDTO {
	return &AgentStatsDTO{
		AgentID:            agentID,
		Period:             period,
		TotalCalls:         s.TotalCalls,
		AvgDurationMinutes: s.AvgDurationMinutes,
		ResolvedCalls:      s.ResolvedCalls,
	}
}
