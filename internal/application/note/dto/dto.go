package dto

import (
	"time"

	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/shared/services/markdown"
)

type NoteDTO struct {
	ID          uint      `json:"id"`
	CustomerID  *uint     `json:"customer_id"`
	BookingID   *uint     `json:"booking_id"`
	CallID      *uint     `json:"call_id"`
	AgentID     *uint     `json:"agent_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	AgentName   *string   `json:"agent_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToNoteDTO renders content through md; agentName may be nil.
func ToNoteDTO(n *note.Note, agentName *string, md markdown.Renderer) *NoteDTO {
	return &NoteDTO{
		ID:          n.ID(),
		CustomerID:  n.CustomerID(),
		BookingID:   n.BookingID(),
		CallID:      n.CallID(),
		AgentID:     n.AgentID(),
		Content:     n.Content(),
		ContentHTML: md.Render(n.Content()),
		AgentName:   agentName,
		CreatedAt:   n.CreatedAt(),
	}
}

func ToNoteDTOs(views []*note.View, md markdown.Renderer) []*NoteDTO {
	out := make([]*NoteDTO, 0, len(views))
	for _, v := range views {
		out = append(out, ToNoteDTO(v.Note, v.AgentName, md))
	}
	return out
}
