package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/travelease/callcenter/internal/application/customer/dto"
	"github.com/travelease/callcenter/internal/domain/customer"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const msgCustomerNotFound = "Customer not found"

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*dto.CustomerDTO, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToCustomerDTOs(customers), nil
}

type GetCustomerQuery struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*dto.CustomerDTO, error) {
	c, err := uc.customerRepo.GetByID(ctx, query.CustomerID)
	if err != nil {
		return nil, translateCustomerError(uc.logger, err, query.CustomerID)
	}
	return dto.ToCustomerDTO(c), nil
}

type SearchCustomersQuery struct {
	Query string
}

type SearchCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewSearchCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *SearchCustomersUseCase {
	return &SearchCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Execute returns at most ten matches. An empty query matches nothing.
func (uc *SearchCustomersUseCase) Execute(ctx context.Context, query SearchCustomersQuery) ([]*dto.CustomerDTO, error) {
	q := strings.TrimSpace(query.Query)
	if q == "" {
		return []*dto.CustomerDTO{}, nil
	}

	customers, err := uc.customerRepo.Search(ctx, q, constants.CustomerSearchLimit)
	if err != nil {
		uc.logger.Errorw("failed to search customers", "query", q, "error", err)
		return nil, errors.NewInternalError(errors.GenericServerMessage)
	}
	return dto.ToCustomerDTOs(customers), nil
}

func translateCustomerError(log logger.Interface, err error, customerID uint) error {
	if stderrors.Is(err, customer.ErrCustomerNotFound) {
		log.Infow("customer not found", "customer_id", customerID)
		return errors.NewNotFoundError(msgCustomerNotFound)
	}
	log.Errorw("customer repository failure", "customer_id", customerID, "error", err)
	return errors.NewInternalError(errors.GenericServerMessage)
}
