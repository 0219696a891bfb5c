package http

import (
	agentUsecases "github.com/travelease/callcenter/internal/application/agent/usecases"
	bookingUsecases "github.com/travelease/callcenter/internal/application/booking/usecases"
	callUsecases "github.com/travelease/callcenter/internal/application/call/usecases"
	customerUsecases "github.com/travelease/callcenter/internal/application/customer/usecases"
	noteUsecases "github.com/travelease/callcenter/internal/application/note/usecases"
	visaUsecases "github.com/travelease/callcenter/internal/application/visa/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Calls
	enqueueCallUC   *callUsecases.EnqueueCallUseCase
	listQueueUC     *callUsecases.ListQueueUseCase
	getCallUC       *callUsecases.GetCallUseCase
	assignCallUC    *callUsecases.AssignCallUseCase
	setCallStatusUC *callUsecases.SetCallStatusUseCase
	transferCallUC  *callUsecases.TransferCallUseCase
	completeCallUC  *callUsecases.CompleteCallUseCase

	// Bookings
	createBookingUC       *bookingUsecases.CreateBookingUseCase
	getBookingUC          *bookingUsecases.GetBookingUseCase
	listBookingsUC        *bookingUsecases.ListBookingsUseCase
	setBookingStatusUC    *bookingUsecases.SetBookingStatusUseCase
	requestModificationUC *bookingUsecases.RequestModificationUseCase
	listModificationsUC   *bookingUsecases.ListModificationsUseCase

	// Visa
	applyForVisaUC         *visaUsecases.ApplyForVisaUseCase
	listVisaApplicationsUC *visaUsecases.ListVisaApplicationsUseCase

	// Agents
	listAgentsUC     *agentUsecases.ListAgentsUseCase
	getAgentUC       *agentUsecases.GetAgentUseCase
	setAgentStatusUC *agentUsecases.SetAgentStatusUseCase
	getAgentStatsUC  *agentUsecases.GetAgentStatsUseCase

	// Customers
	listCustomersUC   *customerUsecases.ListCustomersUseCase
	getCustomerUC     *customerUsecases.GetCustomerUseCase
	searchCustomersUC *customerUsecases.SearchCustomersUseCase
	getWorkspaceUC    *customerUsecases.GetWorkspaceUseCase

	// Notes
	createNoteUC *noteUsecases.CreateNoteUseCase
	listNotesUC  *noteUsecases.ListNotesUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		enqueueCallUC:   callUsecases.NewEnqueueCallUseCase(r.callRepo, c.clock, log),
		listQueueUC:     callUsecases.NewListQueueUseCase(r.callRepo, log),
		getCallUC:       callUsecases.NewGetCallUseCase(r.callRepo, log),
		assignCallUC:    callUsecases.NewAssignCallUseCase(r.callRepo, c.clock, log),
		setCallStatusUC: callUsecases.NewSetCallStatusUseCase(r.callRepo, c.clock, log),
		transferCallUC:  callUsecases.NewTransferCallUseCase(r.callRepo, c.clock, log),
		completeCallUC:  callUsecases.NewCompleteCallUseCase(r.callRepo, c.clock, log),

		createBookingUC:    bookingUsecases.NewCreateBookingUseCase(r.bookingRepo, c.clock, log),
		getBookingUC:       bookingUsecases.NewGetBookingUseCase(r.bookingRepo, log),
		listBookingsUC:     bookingUsecases.NewListBookingsUseCase(r.bookingRepo, log),
		setBookingStatusUC: bookingUsecases.NewSetBookingStatusUseCase(r.bookingRepo, c.clock, log),
		requestModificationUC: bookingUsecases.NewRequestModificationUseCase(
			r.bookingRepo, r.modificationRepo, r.txManager, c.clock, log,
		),
		listModificationsUC: bookingUsecases.NewListModificationsUseCase(r.modificationRepo, log),

		applyForVisaUC: visaUsecases.NewApplyForVisaUseCase(
			r.bookingRepo, r.customerRepo, c.visaGateway, c.visaGateway, log,
		),
		listVisaApplicationsUC: visaUsecases.NewListVisaApplicationsUseCase(
			r.bookingRepo, r.customerRepo, c.visaGateway, log,
		),

		listAgentsUC:     agentUsecases.NewListAgentsUseCase(r.agentRepo, log),
		getAgentUC:       agentUsecases.NewGetAgentUseCase(r.agentRepo, log),
		setAgentStatusUC: agentUsecases.NewSetAgentStatusUseCase(r.agentRepo, c.clock, log),
		getAgentStatsUC:  agentUsecases.NewGetAgentStatsUseCase(r.agentRepo, r.callRepo, c.clock, log),

		listCustomersUC:   customerUsecases.NewListCustomersUseCase(r.customerRepo, log),
		getCustomerUC:     customerUsecases.NewGetCustomerUseCase(r.customerRepo, log),
		searchCustomersUC: customerUsecases.NewSearchCustomersUseCase(r.customerRepo, log),
		getWorkspaceUC: customerUsecases.NewGetWorkspaceUseCase(
			r.customerRepo, r.bookingRepo, r.noteRepo, c.markdown, log,
		),

		createNoteUC: noteUsecases.NewCreateNoteUseCase(r.noteRepo, c.markdown, c.clock, log),
		listNotesUC:  noteUsecases.NewListNotesUseCase(r.noteRepo, c.markdown, log),
	}
}
