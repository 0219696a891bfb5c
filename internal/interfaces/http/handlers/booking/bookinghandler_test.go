package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/callcenter/internal/application/booking/dto"
	"github.com/travelease/callcenter/internal/application/booking/usecases"
	visausecases "github.com/travelease/callcenter/internal/application/visa/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/testutil"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type mockCreateBookingUC struct {
	got    usecases.CreateBookingCommand
	result *dto.BookingDTO
	err    error
}

func (m *mockCreateBookingUC) Execute(_ context.Context, cmd usecases.CreateBookingCommand) (*dto.BookingDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetBookingUC struct {
	got    usecases.GetBookingQuery
	result *dto.BookingDTO
	err    error
}

func (m *mockGetBookingUC) Execute(_ context.Context, query usecases.GetBookingQuery) (*dto.BookingDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockListBookingsUC struct {
	got    usecases.ListBookingsQuery
	result []*dto.BookingDTO
	err    error
}

func (m *mockListBookingsUC) Execute(_ context.Context, query usecases.ListBookingsQuery) ([]*dto.BookingDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockSetBookingStatusUC struct {
	got    usecases.SetBookingStatusCommand
	result *dto.BookingDTO
	err    error
}

func (m *mockSetBookingStatusUC) Execute(_ context.Context, cmd usecases.SetBookingStatusCommand) (*dto.BookingDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRequestModificationUC struct {
	got    usecases.RequestModificationCommand
	result *dto.ModificationDTO
	err    error
}

func (m *mockRequestModificationUC) Execute(_ context.Context, cmd usecases.RequestModificationCommand) (*dto.ModificationDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListModificationsUC struct {
	result []*dto.ModificationDTO
	err    error
}

func (m *mockListModificationsUC) Execute(_ context.Context, _ usecases.ListModificationsQuery) ([]*dto.ModificationDTO, error) {
	return m.result, m.err
}

type mockApplyForVisaUC struct {
	got    visausecases.ApplyForVisaCommand
	result *visausecases.ApplyForVisaResult
	err    error
}

func (m *mockApplyForVisaUC) Execute(_ context.Context, cmd visausecases.ApplyForVisaCommand) (*visausecases.ApplyForVisaResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListVisaApplicationsUC struct {
	result *visausecases.ListVisaApplicationsResult
	err    error
}

func (m *mockListVisaApplicationsUC) Execute(_ context.Context, _ visausecases.ListVisaApplicationsQuery) (*visausecases.ListVisaApplicationsResult, error) {
	return m.result, m.err
}

type testDeps struct {
	createBookingUC        *mockCreateBookingUC
	getBookingUC           *mockGetBookingUC
	listBookingsUC         *mockListBookingsUC
	setStatusUC            *mockSetBookingStatusUC
	requestModificationUC  *mockRequestModificationUC
	listModificationsUC    *mockListModificationsUC
	applyForVisaUC         *mockApplyForVisaUC
	listVisaApplicationsUC *mockListVisaApplicationsUC
}

func newTestBookingHandler() (*BookingHandler, *testDeps) {
	deps := &testDeps{
		createBookingUC:        &mockCreateBookingUC{},
		getBookingUC:           &mockGetBookingUC{},
		listBookingsUC:         &mockListBookingsUC{},
		setStatusUC:            &mockSetBookingStatusUC{},
		requestModificationUC:  &mockRequestModificationUC{},
		listModificationsUC:    &mockListModificationsUC{},
		applyForVisaUC:         &mockApplyForVisaUC{},
		listVisaApplicationsUC: &mockListVisaApplicationsUC{},
	}
	h := NewBookingHandler(
		deps.createBookingUC,
		deps.getBookingUC,
		deps.listBookingsUC,
		deps.setStatusUC,
		deps.requestModificationUC,
		deps.listModificationsUC,
		deps.applyForVisaUC,
		deps.listVisaApplicationsUC,
		logger.NewNopLogger(),
	)
	return h, deps
}

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleBooking() *dto.BookingDTO {
	return &dto.BookingDTO{
		ID:              7,
		CustomerID:      1,
		ReferenceNumber: "FL-2001",
		BookingType:     "flight",
		Status:          "confirmed",
		Price:           650,
		Currency:        "USD",
		StartDate:       "2025-06-01",
		Details:         json.RawMessage(`{"origin":"JFK","destination":"CDG"}`),
		CreatedAt:       testNow,
		UpdatedAt:       testNow,
	}
}

func TestBookingHandler_ListBookings(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.listBookingsUC.result = []*dto.BookingDTO{sampleBooking()}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings", nil)
	h.ListBookings(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, deps.listBookingsUC.got.CustomerID)
}

func TestBookingHandler_CreateBooking_Success(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.createBookingUC.result = sampleBooking()

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/bookings", `{
		"customer_id": 1,
		"reference_number": "FL-2001",
		"booking_type": "flight",
		"price": 650,
		"start_date": "2025-06-01",
		"details": {"origin":"JFK","destination":"CDG"}
	}`)
	h.CreateBooking(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	got := deps.createBookingUC.got
	assert.Equal(t, "FL-2001", got.ReferenceNumber)
	assert.Equal(t, 650.0, got.Price)
	assert.Empty(t, got.Currency)
	assert.Nil(t, got.EndDate)
	assert.JSONEq(t, `{"origin":"JFK","destination":"CDG"}`, string(got.Details))

	var body map[string]any
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "JFK", body["details"].(map[string]any)["origin"])
}

func TestBookingHandler_CreateBooking_MissingFields(t *testing.T) {
	bodies := map[string]string{
		"no customer":   `{"reference_number":"A","booking_type":"hotel","price":10,"start_date":"2025-06-01","details":{}}`,
		"zero price":    `{"customer_id":1,"reference_number":"A","booking_type":"hotel","price":0,"start_date":"2025-06-01","details":{}}`,
		"no start date": `{"customer_id":1,"reference_number":"A","booking_type":"hotel","price":10,"details":{}}`,
		"no details":    `{"customer_id":1,"reference_number":"A","booking_type":"hotel","price":10,"start_date":"2025-06-01"}`,
	}

	for name, raw := range bodies {
		t.Run(name, func(t *testing.T) {
			h, deps := newTestBookingHandler()

			c, w := testutil.NewRawTestContext(http.MethodPost, "/api/bookings", raw)
			h.CreateBooking(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Missing required fields", testutil.ErrorMessage(w))
			assert.Empty(t, deps.createBookingUC.got.ReferenceNumber)
		})
	}
}

func TestBookingHandler_CreateBooking_MalformedJSON(t *testing.T) {
	h, _ := newTestBookingHandler()

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/bookings", `not json`)
	h.CreateBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_GetBookingByReference(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.getBookingUC.result = sampleBooking()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings/reference/FL-2001", nil)
	testutil.SetURLParam(c, "ref", "FL-2001")
	h.GetBookingByReference(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.GetBookingQuery{Reference: "FL-2001"}, deps.getBookingUC.got)
}

func TestBookingHandler_GetBooking_InvalidID(t *testing.T) {
	h, _ := newTestBookingHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings/x", nil)
	testutil.SetURLParam(c, "id", "x")
	h.GetBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid booking ID", testutil.ErrorMessage(w))
}

func TestBookingHandler_SetStatus_NotFound(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.setStatusUC.err = errors.NewNotFoundError("Booking not found")

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/bookings/9/status", map[string]any{"status": "cancelled"})
	testutil.SetURLParam(c, "id", "9")
	h.SetStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, usecases.SetBookingStatusCommand{BookingID: 9, Status: "cancelled"}, deps.setStatusUC.got)
}

func TestBookingHandler_RequestModification(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.requestModificationUC.result = &dto.ModificationDTO{ID: 1, BookingID: 7, Status: "pending"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/bookings/7/modification", map[string]any{
		"requested_changes": "Move to June 3",
		"reason":            "Schedule change",
		"agent_id":          2,
	})
	testutil.SetURLParam(c, "id", "7")
	h.RequestModification(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	got := deps.requestModificationUC.got
	assert.Equal(t, uint(7), got.BookingID)
	require.NotNil(t, got.AgentID)
	assert.Equal(t, uint(2), *got.AgentID)

	var body map[string]any
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Contains(t, body, "agent_name")
}

func TestBookingHandler_ListModifications_Empty(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.listModificationsUC.result = []*dto.ModificationDTO{}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings/7/modifications", nil)
	testutil.SetURLParam(c, "id", "7")
	h.ListModifications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBookingHandler_ApplyForVisa(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.applyForVisaUC.result = &visausecases.ApplyForVisaResult{
		Booking:     sampleBooking(),
		VisaStatus:  json.RawMessage(`"submitted"`),
		VisaMessage: json.RawMessage(`"Application received"`),
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/bookings/7/check-and-apply-visa", nil)
	testutil.SetURLParam(c, "id", "7")
	h.ApplyForVisa(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), deps.applyForVisaUC.got.BookingID)

	var body map[string]any
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "submitted", body["visaStatus"])
	assert.Equal(t, "Application received", body["visaMessage"])
}

func TestBookingHandler_ApplyForVisa_NotFlight(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.applyForVisaUC.err = errors.NewValidationError("Visa applications are only available for flight bookings")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/bookings/8/check-and-apply-visa", nil)
	testutil.SetURLParam(c, "id", "8")
	h.ApplyForVisa(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_ListVisaApplications_GatewayFailure(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.listVisaApplicationsUC.err = errors.NewInternalError(errors.GenericServerMessage)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings/7/view-visa-applications", nil)
	testutil.SetURLParam(c, "id", "7")
	h.ListVisaApplications(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", testutil.ErrorMessage(w))
}

func TestBookingHandler_ListVisaApplications(t *testing.T) {
	h, deps := newTestBookingHandler()
	deps.listVisaApplicationsUC.result = &visausecases.ListVisaApplicationsResult{
		Booking:          sampleBooking(),
		VisaApplications: json.RawMessage(`[{"id":"va-1","status":"pending"}]`),
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/bookings/7/view-visa-applications", nil)
	testutil.SetURLParam(c, "id", "7")
	h.ListVisaApplications(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		VisaApplications []map[string]any `json:"visaApplications"`
	}
	require.NoError(t, testutil.ParseResponse(w, &body))
	require.Len(t, body.VisaApplications, 1)
	assert.Equal(t, "va-1", body.VisaApplications[0]["id"])
}
