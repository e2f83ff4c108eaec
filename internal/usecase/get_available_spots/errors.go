package get_available_spots

import "errors"

var (
	// ErrInvalidDateFormat возвращается при некорректных датах
	ErrInvalidDateFormat = errors.New("Invalid date format")

	// ErrEndBeforeStart возвращается, когда дата окончания раньше даты начала
	ErrEndBeforeStart = errors.New("End date cannot be before start date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_spots: internal error")
)
