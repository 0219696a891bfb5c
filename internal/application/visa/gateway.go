// Package visa defines the port to the external visa processing service.
package visa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrGatewayUnavailable wraps every failure to reach the visa service or to
// read its answer.
var ErrGatewayUnavailable = errors.New("visa service unavailable")

// Application is the payload submitted for a traveller. BankBalance and
// CriminalHistory carry whatever JSON value the booking held.
type Application struct {
	UserID          string `json:"userId"`
	Name            string `json:"name"`
	Passport        string `json:"passport"`
	Country         string `json:"country"`
	BankBalance     any    `json:"bankBalance"`
	CriminalHistory any    `json:"criminalHistory"`
}

// Decision is the service's verdict on a submitted application. Both fields
// are passed through to clients untouched.
type Decision struct {
	Status  json.RawMessage `json:"status"`
	Message json.RawMessage `json:"message"`
}

type Gateway interface {
	SubmitApplication(ctx context.Context, app Application) (*Decision, error)
	// ListApplications returns the service's response body verbatim.
	ListApplications(ctx context.Context, userID string) (json.RawMessage, error)
}

// UserIDForCustomer is the identity the visa service knows a customer by.
func UserIDForCustomer(customerID uint) string {
	return fmt.Sprintf("user%d", customerID)
}
