package create_booking

import "errors"

var (
	// ErrGroundNotFound возвращается, когда площадка не найдена
	ErrGroundNotFound = errors.New("create_booking: ground not found")

	// ErrSlotNotFound возвращается, когда часть запрошенных слотов не существует
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят другим
	// активным бронированием (в том числе захвачен конкурентным запросом)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotMismatch возвращается, когда слот принадлежит другой площадке
	// или другой дате, чем указано в запросе
	ErrSlotMismatch = errors.New("create_booking: slot does not belong to requested ground and date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
