package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPricingPolicy возвращается, когда полосы не покрывают горизонт
// непрерывно и без пересечений
var ErrInvalidPricingPolicy = errors.New("domain: invalid pricing policy")

// PriceBand одна ценовая полоса: часы [FromHour, ToHour) и надбавка к базовой цене
type PriceBand struct {
	FromHour int
	ToHour   int
	Delta    float64
}

// Contains возвращает true, если час попадает в полосу
func (b PriceBand) Contains(hour int) bool {
	return hour >= b.FromHour && hour < b.ToHour
}

// PricingPolicy политика генерации слотов: горизонт дня и ценовые полосы
// Цена слота = базовая цена площадки + надбавка полосы его часа начала
type PricingPolicy struct {
	OpenHour  int
	CloseHour int
	Bands     []PriceBand
}

// DefaultPricingPolicy возвращает политику по умолчанию:
// полные сутки, ночные часы дешевле, вечерний прайм-тайм дороже
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		OpenHour:  DefaultOpenHour,
		CloseHour: DefaultCloseHour,
		Bands: []PriceBand{
			{FromHour: 0, ToHour: 6, Delta: -100},
			{FromHour: 6, ToHour: 12, Delta: 0},
			{FromHour: 12, ToHour: 17, Delta: 100},
			{FromHour: 17, ToHour: 22, Delta: 200},
			{FromHour: 22, ToHour: 24, Delta: -100},
		},
	}
}

// Validate проверяет, что полосы непрерывно покрывают горизонт без пересечений
func (p PricingPolicy) Validate() error {
	if p.OpenHour < 0 || p.CloseHour > 24 || p.OpenHour >= p.CloseHour {
		return fmt.Errorf("%w: horizon [%d, %d)", ErrInvalidPricingPolicy, p.OpenHour, p.CloseHour)
	}

	covered := p.OpenHour
	for _, band := range p.Bands {
		if band.ToHour <= band.FromHour {
			return fmt.Errorf("%w: band [%d, %d)", ErrInvalidPricingPolicy, band.FromHour, band.ToHour)
		}
		// Полосы за пределами горизонта допустимы, но не участвуют в покрытии
		if band.ToHour <= p.OpenHour || band.FromHour >= p.CloseHour {
			continue
		}
		from := band.FromHour
		if from < p.OpenHour {
			from = p.OpenHour
		}
		to := band.ToHour
		if to > p.CloseHour {
			to = p.CloseHour
		}
		// Каждая полоса должна начинаться ровно там, где закончилась предыдущая
		if from < covered {
			return fmt.Errorf("%w: bands overlap at hour %d", ErrInvalidPricingPolicy, from)
		}
		if from > covered {
			return fmt.Errorf("%w: gap at hour %d", ErrInvalidPricingPolicy, covered)
		}
		covered = to
	}

	if covered < p.CloseHour {
		return fmt.Errorf("%w: hours [%d, %d) not covered", ErrInvalidPricingPolicy, covered, p.CloseHour)
	}

	return nil
}

// PriceFor возвращает цену слота с часом начала startHour для базовой цены basePrice
// Цена не может быть отрицательной
func (p PricingPolicy) PriceFor(basePrice float64, startHour int) (float64, error) {
	for _, band := range p.Bands {
		if band.Contains(startHour) {
			price := basePrice + band.Delta
			if price < 0 {
				price = 0
			}
			return price, nil
		}
	}
	return 0, fmt.Errorf("%w: no band for hour %d", ErrInvalidPricingPolicy, startHour)
}

// Hours возвращает количество слотов горизонта
func (p PricingPolicy) Hours() int {
	return p.CloseHour - p.OpenHour
}
