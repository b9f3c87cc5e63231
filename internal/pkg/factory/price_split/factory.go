package price_split

import (
	"autohaul/internal/entities"
)

// Тарифные константы в центах.
const (
	baseFareCents            = 75_000
	inoperableSurchargeCents = 15_000
	enclosedSurchargeCents   = 25_000

	upfrontPercent = 20
)

type PriceSplitFactory struct{}

func New() *PriceSplitFactory {
	return &PriceSplitFactory{}
}

// EstimateTotal считает итоговую цену по черновику: базовый тариф плюс
// надбавки за неисправную машину и закрытый трейлер.
func (f *PriceSplitFactory) EstimateTotal(draft *entities.BookingDraft) int64 {
	total := int64(baseFareCents)

	if draft.Towing.Operable != nil && !*draft.Towing.Operable {
		total += inoperableSurchargeCents
	}
	if draft.Towing.Equipment != nil && *draft.Towing.Equipment == "enclosed" {
		total += enclosedSurchargeCents
	}

	return total
}

// Split делит цену на предоплату и остаток. Предоплата округляется вниз
// до цента, вся погрешность округления уходит в остаток: сумма частей
// всегда равна итогу.
func (f *PriceSplitFactory) Split(totalCents int64) entities.PriceSplit {
	upfront := totalCents * upfrontPercent / 100
	return entities.PriceSplit{
		TotalCents:     totalCents,
		UpfrontCents:   upfront,
		RemainderCents: totalCents - upfront,
	}
}
