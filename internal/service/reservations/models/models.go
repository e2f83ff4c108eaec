package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// Response модели

// SpotResponse данные парковочного места
type SpotResponse struct {
	ID         int64  `json:"id"`
	RowLabel   string `json:"rowLabel"`
	Number     int    `json:"number"`
	HasCharger bool   `json:"hasCharger"`
}

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"userId"`
	Spot          SpotResponse `json:"spot"`
	NeedsCharger  bool         `json:"needsCharger"`
	StartDate     string       `json:"startDate"` // "2025-06-01"
	EndDate       string       `json:"endDate"`   // "2025-06-05"
	StatusChecked bool         `json:"statusChecked"`
	CheckInTime   *string      `json:"checkInTime,omitempty"` // ISO 8601 format
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// PendingRequestResponse ответ с данными заявки
type PendingRequestResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	NeedsCharger bool      `json:"needsCharger"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CancelResponse удалённая запись: либо бронь, либо заявка
type CancelResponse struct {
	Reservation    *ReservationResponse    `json:"reservation,omitempty"`
	PendingRequest *PendingRequestResponse `json:"pendingRequest,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:     r.ID,
		UserID: r.UserID,
		Spot: SpotResponse{
			ID:         r.Spot.ID,
			RowLabel:   r.Spot.RowLabel,
			Number:     r.Spot.Number,
			HasCharger: r.Spot.HasCharger,
		},
		NeedsCharger:  r.NeedsCharger,
		StartDate:     r.StartDate.Format(domain.DateFormat),
		EndDate:       r.EndDate.Format(domain.DateFormat),
		StatusChecked: r.StatusChecked,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	// Конвертируем CheckInTime в строку ISO 8601
	if r.CheckInTime != nil {
		resp.CheckInTime = ptr.Ptr(r.CheckInTime.Format(time.RFC3339))
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, r := range reservations {
		if rr := FromDomainReservation(r); rr != nil {
			resp.Reservations[i] = *rr
		}
	}

	return resp
}

// FromDomainPendingRequest конвертирует domain заявку в DTO
func FromDomainPendingRequest(p *domain.PendingRequest) *PendingRequestResponse {
	if p == nil {
		return nil
	}

	return &PendingRequestResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		StartDate:    p.StartDate.Format(domain.DateFormat),
		EndDate:      p.EndDate.Format(domain.DateFormat),
		NeedsCharger: p.NeedsCharger,
		CreatedAt:    p.CreatedAt,
	}
}
