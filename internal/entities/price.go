package entities

// PriceSplit — политика предоплаты: upfront списывается при оформлении,
// remainder — при доставке. Инвариант: Upfront + Remainder == Total,
// округление всегда уходит в remainder, чтобы не переплатить вперед.
type PriceSplit struct {
	TotalCents     int64
	UpfrontCents   int64
	RemainderCents int64
}
