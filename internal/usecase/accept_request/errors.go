package accept_request

import "errors"

// Тексты ошибок показываются пользователю как есть, поэтому
// сообщения здесь — готовые человекочитаемые формулировки.
var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("Reservation not found")

	// ErrMissingFields возвращается при отсутствии обязательных полей брони
	ErrMissingFields = errors.New("Missing required reservation fields")

	// ErrInvalidDateFormat возвращается при некорректных датах
	ErrInvalidDateFormat = errors.New("Invalid date format")

	// ErrEndBeforeStart возвращается, когда дата окончания раньше даты начала
	ErrEndBeforeStart = errors.New("End date cannot be before start date")

	// ErrUserNotFound возвращается, когда пользователь заявки не существует
	ErrUserNotFound = errors.New("User not found")

	// ErrDurationExceeded возвращается при превышении лимита длительности роли.
	// Оборачивается сообщением с конкретным лимитом.
	ErrDurationExceeded = errors.New("reservation duration exceeds the role limit")

	// ErrNoSpotAvailable возвращается, когда ни одно место не свободно
	// на весь запрошенный диапазон. Заявка остаётся в ожидании, можно повторить позже.
	ErrNoSpotAvailable = errors.New("no spot available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_request: internal error")
)
