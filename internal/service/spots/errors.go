package spots

import "errors"

var (
	// ErrSpotNotFound возвращается, когда место не найдено
	ErrSpotNotFound = errors.New("spot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
