package booking

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/application/booking/usecases"
	visausecases "github.com/travelease/callcenter/internal/application/visa/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/common"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type BookingHandler struct {
	createBookingUC        usecases.CreateBookingExecutor
	getBookingUC           usecases.GetBookingExecutor
	listBookingsUC         usecases.ListBookingsExecutor
	setStatusUC            usecases.SetBookingStatusExecutor
	requestModificationUC  usecases.RequestModificationExecutor
	listModificationsUC    usecases.ListModificationsExecutor
	applyForVisaUC         visausecases.ApplyForVisaExecutor
	listVisaApplicationsUC visausecases.ListVisaApplicationsExecutor
	logger                 logger.Interface
}

func NewBookingHandler(
	createBookingUC usecases.CreateBookingExecutor,
	getBookingUC usecases.GetBookingExecutor,
	listBookingsUC usecases.ListBookingsExecutor,
	setStatusUC usecases.SetBookingStatusExecutor,
	requestModificationUC usecases.RequestModificationExecutor,
	listModificationsUC usecases.ListModificationsExecutor,
	applyForVisaUC visausecases.ApplyForVisaExecutor,
	listVisaApplicationsUC visausecases.ListVisaApplicationsExecutor,
	logger logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createBookingUC:        createBookingUC,
		getBookingUC:           getBookingUC,
		listBookingsUC:         listBookingsUC,
		setStatusUC:            setStatusUC,
		requestModificationUC:  requestModificationUC,
		listModificationsUC:    listModificationsUC,
		applyForVisaUC:         applyForVisaUC,
		listVisaApplicationsUC: listVisaApplicationsUC,
		logger:                 logger,
	}
}

// ListBookings handles GET /bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	result, err := h.listBookingsUC.Execute(c.Request.Context(), usecases.ListBookingsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createBookingUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getBookingUC.Execute(c.Request.Context(), usecases.GetBookingQuery{BookingID: bookingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetBookingByReference handles GET /bookings/reference/:ref
func (h *BookingHandler) GetBookingByReference(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid reference number"))
		return
	}

	result, err := h.getBookingUC.Execute(c.Request.Context(), usecases.GetBookingQuery{Reference: ref})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// SetStatus handles PATCH /bookings/:id/status
func (h *BookingHandler) SetStatus(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetBookingStatusRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), usecases.SetBookingStatusCommand{
		BookingID: bookingID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// RequestModification handles POST /bookings/:id/modification
func (h *BookingHandler) RequestModification(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequestModificationRequest
	if err := common.BindJSON(c, &req, h.logger); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.requestModificationUC.Execute(c.Request.Context(), usecases.RequestModificationCommand{
		BookingID:        bookingID,
		RequestedChanges: req.RequestedChanges,
		Reason:           req.Reason,
		AgentID:          req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// ListModifications handles GET /bookings/:id/modifications
func (h *BookingHandler) ListModifications(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listModificationsUC.Execute(c.Request.Context(), usecases.ListModificationsQuery{BookingID: bookingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ApplyForVisa handles POST /bookings/:id/check-and-apply-visa
func (h *BookingHandler) ApplyForVisa(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.applyForVisaUC.Execute(c.Request.Context(), visausecases.ApplyForVisaCommand{BookingID: bookingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListVisaApplications handles GET /bookings/:id/view-visa-applications
func (h *BookingHandler) ListVisaApplications(c *gin.Context) {
	bookingID, err := utils.ParseIDParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listVisaApplicationsUC.Execute(c.Request.Context(), visausecases.ListVisaApplicationsQuery{BookingID: bookingID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
