package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("Invalid status"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("Call not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"internal", NewInternalError("Failed to apply for visa", "timeout"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	base := NewNotFoundError("Booking not found")
	wrapped := fmt.Errorf("loading booking: %w", base)

	assert.Same(t, base, GetAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsDuplicateError(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: bookings.reference_number")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsForeignKeyError(&mysql.MySQLError{Number: 1452}))
	assert.True(t, IsForeignKeyError(fmt.Errorf("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyError(fmt.Errorf("boom")))
}
