package mappers

import (
	"time"

	"github.com/travelease/callcenter/internal/domain/call"
	vo "github.com/travelease/callcenter/internal/domain/call/valueobjects"
	"github.com/travelease/callcenter/internal/infrastructure/persistence/models"
	"github.com/travelease/callcenter/internal/shared/biztime"
)

// CallMapper converts between call entities and persistence models.
type CallMapper interface {
	ToModel(c *call.Call) *models.CallModel
	ToDomain(model *models.CallModel) (*call.Call, error)
	// RowToView converts a joined row; customer and agent columns are nil
	// when the left join found nothing.
	RowToView(row *models.CallRow) (*call.View, error)
}

type CallMapperImpl struct{}

func NewCallMapper() CallMapper {
	return &CallMapperImpl{}
}

func (m *CallMapperImpl) ToModel(c *call.Call) *models.CallModel {
	model := &models.CallModel{
		ID:             c.ID(),
		CustomerID:     c.CustomerID(),
		IssueType:      c.IssueType(),
		Description:    c.Description(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		AgentID:        c.AgentID(),
		StartTime:      millisPtr(c.StartTime()),
		EndTime:        millisPtr(c.EndTime()),
		TransferReason: c.TransferReason(),
		TransferCount:  c.TransferCount(),
		ResolutionNote: c.ResolutionNote(),
		CreatedAt:      biztime.ToMillis(c.CreatedAt()),
		UpdatedAt:      biztime.ToMillis(c.UpdatedAt()),
	}
	if r := c.ResolutionStatus(); r != nil {
		s := r.String()
		model.ResolutionStatus = &s
	}
	return model
}

func (m *CallMapperImpl) ToDomain(model *models.CallModel) (*call.Call, error) {
	var resolution *vo.Resolution
	if model.ResolutionStatus != nil {
		r := vo.Resolution(*model.ResolutionStatus)
		resolution = &r
	}

	return call.ReconstructCall(
		model.ID,
		model.CustomerID,
		model.IssueType,
		model.Description,
		vo.Priority(model.Priority),
		vo.CallStatus(model.Status),
		model.AgentID,
		timePtr(model.StartTime),
		timePtr(model.EndTime),
		model.TransferReason,
		model.TransferCount,
		resolution,
		model.ResolutionNote,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m *CallMapperImpl) RowToView(row *models.CallRow) (*call.View, error) {
	c, err := m.ToDomain(&row.CallModel)
	if err != nil {
		return nil, err
	}

	view := &call.View{Call: c, AgentName: row.AgentName}
	if row.CustomerName != nil {
		view.Contact = &call.Contact{
			Name:            *row.CustomerName,
			Phone:           deref(row.CustomerPhone),
			Email:           deref(row.CustomerEmail),
			MembershipLevel: deref(row.MembershipLevel),
		}
	}
	return view, nil
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := biztime.ToMillis(*t)
	return &ms
}

func timePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := biztime.FromMillis(*ms)
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
