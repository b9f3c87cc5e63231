package entities

// UpfrontCharge — команда на списание предоплаты. ShipmentID служит ключом
// идемпотентности: ретрай с тем же ключом не создает второго списания.
type UpfrontCharge struct {
	ShipmentID  string
	AmountCents int64
}

type PaymentReference struct {
	Reference string
}
