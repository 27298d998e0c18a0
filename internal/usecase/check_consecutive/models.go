package check_consecutive

import (
	"time"

	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Request запрос на проверку непрерывности слотов
type Request struct {
	GroundID int64     // ID площадки
	Date     time.Time // Дата бронирования
	SlotIDs  []int64   // ID проверяемых слотов
}

// Response результат проверки непрерывности
// Проверка консультативная: Consecutive = false не запрещает бронирование,
// а лишь подсказывает клиенту запросить подтверждение у пользователя
type Response struct {
	Consecutive          bool  // true, если слоты образуют непрерывный интервал
	RequiresConfirmation bool  // true, если клиенту стоит переспросить пользователя
	Gaps                 []Gap // Разрывы между слотами (пусто при Consecutive = true)
}

// Gap разрыв между двумя соседними по времени слотами
type Gap struct {
	AfterSlotID  int64            // Слот, после которого начинается разрыв
	BeforeSlotID int64            // Слот, перед которым разрыв заканчивается
	From         types.TimeString // Начало разрыва
	To           types.TimeString // Конец разрыва
}
