package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations"
)

const (
	msgInvalidSpotID = "некорректный ID места"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/spots/{spotId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spotID, err := strconv.ParseInt(vars["spotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /spots/{id}/check-in - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	result, err := h.service.CheckIn(r.Context(), spotID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /spots/{id}/check-in - No reservation today: spot_id=%d", spotID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, reservations.ErrAlreadyCheckedIn):
			h.logger.Warn("PATCH /spots/{id}/check-in - Already checked in: spot_id=%d", spotID)
			handlers.RespondConflict(w, err.Error())

		default:
			h.logger.Error("PATCH /spots/{id}/check-in - Failed to check in: spot_id=%d, error=%v", spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /spots/{id}/check-in - Checked in: spot_id=%d, reservation_id=%d", spotID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
