package note

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelease/callcenter/internal/application/note/dto"
	"github.com/travelease/callcenter/internal/application/note/usecases"
	"github.com/travelease/callcenter/internal/interfaces/http/handlers/testutil"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
)

type mockCreateNoteUC struct {
	got    usecases.CreateNoteCommand
	result *dto.NoteDTO
	err    error
}

func (m *mockCreateNoteUC) Execute(_ context.Context, cmd usecases.CreateNoteCommand) (*dto.NoteDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListNotesUC struct {
	got    usecases.ListNotesQuery
	result []*dto.NoteDTO
	err    error
}

func (m *mockListNotesUC) Execute(_ context.Context, query usecases.ListNotesQuery) ([]*dto.NoteDTO, error) {
	m.got = query
	return m.result, m.err
}

func TestNoteHandler_CreateNote(t *testing.T) {
	createUC := &mockCreateNoteUC{result: &dto.NoteDTO{ID: 4, Content: "hi", ContentHTML: "<p>hi</p>\n"}}
	h := NewNoteHandler(createUC, &mockListNotesUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/notes", map[string]any{
		"booking_id": 7,
		"content":    "hi",
	})
	h.CreateNote(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, createUC.got.CustomerID)
	require.NotNil(t, createUC.got.BookingID)
	assert.Equal(t, uint(7), *createUC.got.BookingID)
}

func TestNoteHandler_CreateNote_MissingAnchor(t *testing.T) {
	createUC := &mockCreateNoteUC{err: errors.NewValidationError("Either customer_id or booking_id is required")}
	h := NewNoteHandler(createUC, &mockListNotesUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/notes", map[string]any{"content": "orphan"})
	h.CreateNote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Either customer_id or booking_id is required", testutil.ErrorMessage(w))
}

func TestNoteHandler_CreateNote_MissingContent(t *testing.T) {
	createUC := &mockCreateNoteUC{}
	h := NewNoteHandler(createUC, &mockListNotesUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/notes", map[string]any{"customer_id": 3})
	h.CreateNote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Note content is required", testutil.ErrorMessage(w))
	assert.Nil(t, createUC.got.CustomerID)
}

func TestNoteHandler_ListByCustomer(t *testing.T) {
	listUC := &mockListNotesUC{result: []*dto.NoteDTO{}}
	h := NewNoteHandler(&mockCreateNoteUC{}, listUC, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notes/customer/3", nil)
	testutil.SetURLParam(c, "customerId", "3")
	h.ListByCustomer(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListNotesQuery{CustomerID: 3}, listUC.got)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNoteHandler_ListByBooking_InvalidID(t *testing.T) {
	h := NewNoteHandler(&mockCreateNoteUC{}, &mockListNotesUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/notes/booking/0", nil)
	testutil.SetURLParam(c, "bookingId", "0")
	h.ListByBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid booking ID", testutil.ErrorMessage(w))
}
