package http

import (
	"github.com/travelease/callcenter/internal/domain/agent"
	"github.com/travelease/callcenter/internal/domain/booking"
	"github.com/travelease/callcenter/internal/domain/call"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/domain/note"
	"github.com/travelease/callcenter/internal/infrastructure/repository"
	"github.com/travelease/callcenter/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	agentRepo        agent.Repository
	customerRepo     customer.Repository
	callRepo         call.Repository
	bookingRepo      booking.Repository
	modificationRepo booking.ModificationRepository
	noteRepo         note.Repository
	txManager        *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		agentRepo:        repository.NewAgentRepository(c.db),
		customerRepo:     repository.NewCustomerRepository(c.db),
		callRepo:         repository.NewCallRepository(c.db, c.log.Named("call-repository")),
		bookingRepo:      repository.NewBookingRepository(c.db, c.log.Named("booking-repository")),
		modificationRepo: repository.NewBookingModificationRepository(c.db),
		noteRepo:         repository.NewNoteRepository(c.db),
		txManager:        db.NewTransactionManager(c.db),
	}
}
