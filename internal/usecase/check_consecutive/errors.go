package check_consecutive

import "errors"

var (
	// ErrSlotNotFound возвращается, когда часть запрошенных слотов не существует
	ErrSlotNotFound = errors.New("check_consecutive: slot not found")

	// ErrSlotMismatch возвращается, когда слоты не относятся к запрошенной площадке или дате
	ErrSlotMismatch = errors.New("check_consecutive: slot does not match ground or date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_consecutive: invalid input")

	// ErrInternal возвращается при внутренней ошибке сервиса
	ErrInternal = errors.New("check_consecutive: internal error")
)
