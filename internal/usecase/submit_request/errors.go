package submit_request

import "errors"

var (
	// ErrMissingFields возвращается при отсутствии обязательных полей заявки
	ErrMissingFields = errors.New("Missing required reservation fields")

	// ErrInvalidDateFormat возвращается при некорректных датах
	ErrInvalidDateFormat = errors.New("Invalid date format")

	// ErrUserNotFound возвращается, когда пользователь не существует
	ErrUserNotFound = errors.New("User not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_request: internal error")
)
