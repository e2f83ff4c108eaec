package get_available_spots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	getAvailableSpots "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spots"
)

type Handler struct {
	useCase GetAvailableSpotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSpotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-spots?startDate=2025-06-01&endDate=2025-06-05&needsCharger=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	needsCharger := query.Get("needsCharger") == "true"

	req, err := parseRequest(query.Get("startDate"), query.Get("endDate"), needsCharger)
	if err != nil {
		h.logger.Warn("GET /available-spots - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, getAvailableSpots.ErrInvalidDateFormat.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSpots.ErrInvalidDateFormat),
			errors.Is(err, getAvailableSpots.ErrEndBeforeStart):
			h.logger.Warn("GET /available-spots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-spots - Failed to get available spots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
