package submit_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	submitRequest "github.com/m04kA/SMC-ParkingService/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, submitRequest.ErrInvalidDateFormat.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitRequest.ErrMissingFields),
			errors.Is(err, submitRequest.ErrInvalidDateFormat):
			h.logger.Warn("POST /requests - Validation failed: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitRequest.ErrUserNotFound):
			h.logger.Warn("POST /requests - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, err.Error())

		default:
			h.logger.Error("POST /requests - Failed to submit request: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Pending request created: request_id=%d, user_id=%d", result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
