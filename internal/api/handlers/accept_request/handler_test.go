package accept_request

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	acceptRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/accept_request"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *acceptRequest.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *acceptRequest.Request) (*acceptRequest.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc AcceptRequestUseCase, requestID string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/requests/{requestId}/accept", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests/"+requestID+"/accept", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &acceptRequest.Response{
		ID:        1,
		UserID:    42,
		SpotID:    7,
		SpotLabel: "A-7",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, "10")

	require.Equal(t, http.StatusCreated, rec.Code)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A-7", body.SpotLabel)
	assert.Equal(t, "2025-06-01", body.StartDate)
	assert.Equal(t, "2025-06-03", body.EndDate)
}

func TestHandle_ErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "request not found",
			err:        acceptRequest.ErrRequestNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Reservation not found",
		},
		{
			name:       "no spot available",
			err:        acceptRequest.ErrNoSpotAvailable,
			wantStatus: http.StatusConflict,
			wantMsg:    "no spot available",
		},
		{
			name:       "user not found",
			err:        acceptRequest.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name: "duration exceeded",
			err: fmt.Errorf("%w: user role can reserve a spot for at most 5 days, requested 6",
				acceptRequest.ErrDurationExceeded),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "at most 5 days, requested 6",
		},
		{
			name:       "end before start",
			err:        acceptRequest.ErrEndBeforeStart,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "End date cannot be before start date",
		},
		{
			name:       "internal error hides details",
			err:        acceptRequest.ErrInternal,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "внутренняя ошибка сервиса",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, "10")

			require.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Contains(t, body.Message, tt.wantMsg)
		})
	}
}

func TestHandle_InvalidRequestID(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
