package refuse_request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("Reservation not found")

	// ErrAccessDenied возвращается, когда отклонить заявку пытается не секретарь
	ErrAccessDenied = errors.New("Access denied need to be secretary")

	// ErrCallerNotFound возвращается, когда вызывающий пользователь не существует
	ErrCallerNotFound = errors.New("User not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("refuse_request: internal error")
)
