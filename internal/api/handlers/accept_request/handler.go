package accept_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	acceptRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/accept_request"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
)

type Handler struct {
	useCase AcceptRequestUseCase
	logger  Logger
}

func NewHandler(useCase AcceptRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /requests/{id}/accept - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acceptRequest.Request{RequestID: requestID})
	if err != nil {
		switch {
		case errors.Is(err, acceptRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/{id}/accept - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, acceptRequest.ErrNoSpotAvailable):
			// Заявка осталась в ожидании, можно повторить позже
			h.logger.Warn("POST /requests/{id}/accept - No spot available: request_id=%d", requestID)
			handlers.RespondConflict(w, err.Error())

		case errors.Is(err, acceptRequest.ErrUserNotFound):
			h.logger.Warn("POST /requests/{id}/accept - User not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, acceptRequest.ErrUserNotFound.Error())

		case errors.Is(err, acceptRequest.ErrMissingFields),
			errors.Is(err, acceptRequest.ErrInvalidDateFormat),
			errors.Is(err, acceptRequest.ErrEndBeforeStart),
			errors.Is(err, acceptRequest.ErrDurationExceeded):
			h.logger.Warn("POST /requests/{id}/accept - Policy rejected: request_id=%d, error=%v", requestID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /requests/{id}/accept - Failed to accept request: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{id}/accept - Request accepted: request_id=%d, reservation_id=%d, spot=%s",
		requestID, result.ID, result.SpotLabel)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
