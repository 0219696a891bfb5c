package usecases

import (
	"errors"

	"github.com/travelease/callcenter/internal/domain/call"
	apperrors "github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

const (
	msgCallNotFound      = "Call not found"
	msgCallNotAssigned   = "Call not found or already assigned"
	msgInvalidStatus     = "Invalid status"
	msgInvalidResolution = "Invalid resolution status"
)

// translateRepoError turns repository failures into client facing errors.
// Only unexpected failures are logged at error level.
func translateRepoError(log logger.Interface, err error, op string, callID uint) error {
	switch {
	case errors.Is(err, call.ErrCallNotAssignable):
		log.Infow("call not assignable", "op", op, "call_id", callID)
		return apperrors.NewNotFoundError(msgCallNotAssigned)
	case errors.Is(err, call.ErrCallNotFound):
		log.Infow("call not found", "op", op, "call_id", callID)
		return apperrors.NewNotFoundError(msgCallNotFound)
	default:
		log.Errorw("call repository failure", "op", op, "call_id", callID, "error", err)
		return apperrors.NewInternalError(apperrors.GenericServerMessage)
	}
}
