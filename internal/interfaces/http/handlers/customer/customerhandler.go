package customer

import (
	"github.com/gin-gonic/gin"

	bookingusecases "github.com/travelease/callcenter/internal/application/booking/usecases"
	"github.com/travelease/callcenter/internal/application/customer/usecases"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

type CustomerHandler struct {
	listCustomersUC   usecases.ListCustomersExecutor
	getCustomerUC     usecases.GetCustomerExecutor
	searchCustomersUC usecases.SearchCustomersExecutor
	getWorkspaceUC    usecases.GetWorkspaceExecutor
	listBookingsUC    bookingusecases.ListBookingsExecutor
	logger            logger.Interface
}

func NewCustomerHandler(
	listCustomersUC usecases.ListCustomersExecutor,
	getCustomerUC usecases.GetCustomerExecutor,
	searchCustomersUC usecases.SearchCustomersExecutor,
	getWorkspaceUC usecases.GetWorkspaceExecutor,
	listBookingsUC bookingusecases.ListBookingsExecutor,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		listCustomersUC:   listCustomersUC,
		getCustomerUC:     getCustomerUC,
		searchCustomersUC: searchCustomersUC,
		getWorkspaceUC:    getWorkspaceUC,
		listBookingsUC:    listBookingsUC,
		logger:            logger,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	result, err := h.listCustomersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// SearchCustomers handles GET /customers/search?query=
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	result, err := h.searchCustomersUC.Execute(c.Request.Context(), usecases.SearchCustomersQuery{
		Query: c.Query("query"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCustomerUC.Execute(c.Request.Context(), usecases.GetCustomerQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListBookings handles GET /customers/:id/bookings
func (h *CustomerHandler) ListBookings(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listBookingsUC.Execute(c.Request.Context(), bookingusecases.ListBookingsQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetWorkspace handles GET /customers/:id/workspace
func (h *CustomerHandler) GetWorkspace(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getWorkspaceUC.Execute(c.Request.Context(), usecases.GetWorkspaceQuery{CustomerID: customerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
