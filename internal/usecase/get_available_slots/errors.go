package get_available_slots

import "errors"

var (
	// ErrGroundNotFound возвращается, когда площадка не найдена
	ErrGroundNotFound = errors.New("get_available_slots: ground not found")

	// ErrSubVenueNotFound возвращается, когда запрошенная зона не принадлежит площадке
	ErrSubVenueNotFound = errors.New("get_available_slots: sub-venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
