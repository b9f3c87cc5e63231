package booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"autohaul/internal/entities"
)

var (
	ErrUnknownStep       = errors.New("unknown booking step")
	ErrStepDataMismatch  = errors.New("step input does not match step")
	ErrAlreadyFirstStep  = errors.New("already on the first step")
	ErrStepNotValid      = errors.New("current step is not valid")
	ErrAlreadyLastStep   = errors.New("already on the last step")
	ErrNotOnFinalStep    = errors.New("submit is available only from the final step")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrInvalidPhotoInput = errors.New("invalid photo input")
)

// ValidationFailure перечисляет все невалидные шаги, а не только первый:
// вызывающий может вернуть пользователя на самый ранний из них.
// Возвращается значением — ожидаемый и частый исход.
type ValidationFailure struct {
	Steps map[entities.BookingStep][]string
}

func (v *ValidationFailure) Error() string {
	names := make([]string, 0, len(v.Steps))
	for step := range v.Steps {
		names = append(names, step.String())
	}
	sort.Strings(names)
	return fmt.Sprintf("booking validation failed: %s", strings.Join(names, ", "))
}

// FirstInvalidStep возвращает самый ранний невалидный шаг в порядке мастера.
func (v *ValidationFailure) FirstInvalidStep() entities.BookingStep {
	for _, step := range entities.BookingSteps {
		if _, ok := v.Steps[step]; ok {
			return step
		}
	}
	return ""
}

// PaymentFailure: перевозка уже создана, но предоплата не подтверждена.
// Никогда не трактуется как успех; черновик сохраняется, ретрай с тем же
// ShipmentID не породит вторую перевозку.
type PaymentFailure struct {
	ShipmentID string
	Err        error
}

func (p *PaymentFailure) Error() string {
	return fmt.Sprintf("upfront payment pending for shipment %s: %v", p.ShipmentID, p.Err)
}

func (p *PaymentFailure) Unwrap() error {
	return p.Err
}
