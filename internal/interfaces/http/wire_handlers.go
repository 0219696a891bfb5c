package http

import (
	"github.com/travelease/callcenter/internal/interfaces/http/handlers"
	agentHandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/agent"
	bookingHandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/booking"
	callHandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/call"
	customerHandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/customer"
	noteHandlers "github.com/travelease/callcenter/internal/interfaces/http/handlers/note"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler   *handlers.HealthHandler
	callHandler     *callHandlers.CallHandler
	bookingHandler  *bookingHandlers.BookingHandler
	agentHandler    *agentHandlers.AgentHandler
	customerHandler *customerHandlers.CustomerHandler
	noteHandler     *noteHandlers.NoteHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db, c.log.Named("health")),
		callHandler: callHandlers.NewCallHandler(
			u.enqueueCallUC,
			u.listQueueUC,
			u.getCallUC,
			u.assignCallUC,
			u.setCallStatusUC,
			u.transferCallUC,
			u.completeCallUC,
			c.log.Named("call-handler"),
		),
		bookingHandler: bookingHandlers.NewBookingHandler(
			u.createBookingUC,
			u.getBookingUC,
			u.listBookingsUC,
			u.setBookingStatusUC,
			u.requestModificationUC,
			u.listModificationsUC,
			u.applyForVisaUC,
			u.listVisaApplicationsUC,
			c.log.Named("booking-handler"),
		),
		agentHandler: agentHandlers.NewAgentHandler(
			u.listAgentsUC,
			u.getAgentUC,
			u.setAgentStatusUC,
			u.getAgentStatsUC,
			c.log.Named("agent-handler"),
		),
		customerHandler: customerHandlers.NewCustomerHandler(
			u.listCustomersUC,
			u.getCustomerUC,
			u.searchCustomersUC,
			u.getWorkspaceUC,
			u.listBookingsUC,
			c.log.Named("customer-handler"),
		),
		noteHandler: noteHandlers.NewNoteHandler(
			u.createNoteUC,
			u.listNotesUC,
			c.log.Named("note-handler"),
		),
	}
}
