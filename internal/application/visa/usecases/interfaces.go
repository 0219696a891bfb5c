package usecases

import "context"

type ApplyForVisaExecutor interface {
	Execute(ctx context.Context, cmd ApplyForVisaCommand) (*ApplyForVisaResult, error)
}

type ListVisaApplicationsExecutor interface {
	Execute(ctx context.Context, query ListVisaApplicationsQuery) (*ListVisaApplicationsResult, error)
}
