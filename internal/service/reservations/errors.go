package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда ни бронь, ни заявка не найдены
	ErrReservationNotFound = errors.New("Reservation not found")

	// ErrAlreadyCheckedIn возвращается при повторном check-in
	ErrAlreadyCheckedIn = errors.New("Reservation already checked in")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
