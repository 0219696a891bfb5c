package usecases

import (
	"context"

	"github.com/travelease/callcenter/internal/application/customer/dto"
)

type ListCustomersExecutor interface {
	Execute(ctx context.Context) ([]*dto.CustomerDTO, error)
}

type GetCustomerExecutor interface {
	Execute(ctx context.Context, query GetCustomerQuery) (*dto.CustomerDTO, error)
}

type SearchCustomersExecutor interface {
	Execute(ctx context.Context, query SearchCustomersQuery) ([]*dto.CustomerDTO, error)
}

type GetWorkspaceExecutor interface {
	Execute(ctx context.Context, query GetWorkspaceQuery) (*dto.WorkspaceDTO, error)
}
