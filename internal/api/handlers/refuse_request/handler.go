package refuse_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	refuseRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/refuse_request"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgInvalidUserID    = "некорректный ID пользователя"
)

type Handler struct {
	useCase RefuseRequestUseCase
	logger  Logger
}

func NewHandler(useCase RefuseRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/refuse
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := strconv.ParseInt(vars["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /requests/{id}/refuse - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Вызывающий пользователь приходит из заголовка аутентификации
	callerUserID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil {
		h.logger.Warn("POST /requests/{id}/refuse - Invalid caller user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &refuseRequest.Request{
		RequestID:    requestID,
		CallerUserID: callerUserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, refuseRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/{id}/refuse - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, refuseRequest.ErrAccessDenied):
			h.logger.Warn("POST /requests/{id}/refuse - Access denied: request_id=%d, caller=%d",
				requestID, callerUserID)
			handlers.RespondForbidden(w, err.Error())

		case errors.Is(err, refuseRequest.ErrCallerNotFound):
			h.logger.Warn("POST /requests/{id}/refuse - Caller not found: caller=%d", callerUserID)
			handlers.RespondNotFound(w, err.Error())

		default:
			h.logger.Error("POST /requests/{id}/refuse - Failed to refuse request: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{id}/refuse - Request refused: request_id=%d, caller=%d",
		requestID, callerUserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
