package mappers

import (
	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
)

// Agents, customers and notes carry no invariants beyond their columns, so
// their conversions are plain functions.

func AgentToDomain(model *models.AgentModel) *agent.Agent {
	return agent.ReconstructAgent(
		model.ID,
		model.Name,
		model.Email,
		agent.Status(model.Status),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func CustomerToDomain(model *models.CustomerModel) *customer.Customer {
	return customer.ReconstructCustomer(
		model.ID,
		model.Name,
		model.Email,
		model.Phone,
		model.MembershipLevel,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func NoteToModel(n *note.Note) *models.NoteModel {
	return &models.NoteModel{
		ID:         n.ID(),
		CustomerID: n.CustomerID(),
		BookingID:  n.BookingID(),
		CallID:     n.CallID(),
		AgentID:    n.AgentID(),
		Content:    n.Content(),
		CreatedAt:  biztime.ToMillis(n.CreatedAt()),
	}
}

func NoteRowToView(row *models.NoteRow) *note.View {
	return &note.View{
		Note: note.ReconstructNote(
			row.ID,
			row.CustomerID,
			row.BookingID,
			row.CallID,
			row.AgentID,
			row.Content,
			biztime.FromMillis(row.CreatedAt),
		),
		AgentName: row.AgentName,
	}
}
