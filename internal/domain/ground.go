package domain

import "time"

// Ground represents a bookable sports facility
type Ground struct {
	ID        int64
	Name      string
	BasePrice float64 // Базовая цена часа, к ней применяются ценовые полосы

	SubVenues []SubVenue

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubVenue представляет именованную зону площадки ("Корт 1", "Поле Б")
// Слоты могут быть привязаны к зоне или быть общими (без зоны)
type SubVenue struct {
	ID       int64
	GroundID int64
	Name     string
}

// FirstSubVenueID возвращает ID первой зарегистрированной зоны или nil
// Генерация слотов привязывает все слоты к первой зоне - поведение исходной
// системы сохранено намеренно (см. DESIGN.md, открытые вопросы)
func (g *Ground) FirstSubVenueID() *int64 {
	if len(g.SubVenues) == 0 {
		return nil
	}
	return &g.SubVenues[0].ID
}
