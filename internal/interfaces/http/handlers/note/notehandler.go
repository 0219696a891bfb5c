package note

import (
	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/application/note/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/common"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type CreateNoteRequest struct {
	CustomerID *uint  `json:"customer_id"`
	BookingID  *uint  `json:"booking_id"`
	CallID     *uint  `json:"call_id"`
	AgentID    *uint  `json:"agent_id"`
	Content    string `json:"content" binding:"required"`
}

func (r *CreateNoteRequest) ValidationMessage() string {
	return "Note content is required"
}

type NoteHandler struct {
	createNoteUC usecases.CreateNoteExecutor
	listNotesUC  usecases.ListNotesExecutor
	logger       logger.Interface
}

func NewNoteHandler(
	createNoteUC usecases.CreateNoteExecutor,
	listNotesUC usecases.ListNotesExecutor,
	logger logger.Interface,
) *NoteHandler {
	return &NoteHandler{
		createNoteUC: createNoteUC,
		listNotesUC:  listNotesUC,
		logger:       logger,
	}
}

// CreateNote handles POST /notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createNoteUC.Execute(c.Request.Context(), usecases.CreateNoteCommand{
		CustomerID: req.CustomerID,
		BookingID:  req.BookingID,
		CallID:     req.CallID,
		AgentID:    req.AgentID,
		Content:    req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// ListByCustomer handles GET /notes/customer/:customerId
func (h *NoteHandler) ListByCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "customerId", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listNotesUC.Execute(c.Request.Context(), usecases.ListNotesQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListByBooking handles GET /notes/booking/:bookingId
func (h *NoteHandler) ListByBooking(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "bookingId", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listNotesUC.Execute(c.Request.Context(), usecases.ListNotesQuery{BookingID: bookingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
