package booking

import (
	"context"
	"fmt"
	"sync"

	"autohaul/internal/entities"
)

// PhotoCategory — секция фотоосмотра на визуальном шаге.
type PhotoCategory string

const (
	PhotoExterior PhotoCategory = "exterior"
	PhotoInterior PhotoCategory = "interior"
)

// Workflow ведет один черновик оформления перевозки. Все мутации черновика
// идут через методы Workflow под одним мьютексом: у документа ровно один
// писатель, снимки наружу отдаются копиями.
type Workflow struct {
	mu    sync.Mutex
	draft *entities.BookingDraft

	clientID string
	pricing  PricingFactory
	payments PaymentGateway
	shipment ShipmentService
}

func newWorkflow(clientID string, pricing PricingFactory, payments PaymentGateway, shipment ShipmentService) *Workflow {
	return &Workflow{
		draft:    entities.NewBookingDraft(),
		clientID: clientID,
		pricing:  pricing,
		payments: payments,
		shipment: shipment,
	}
}

// UpdateStep накладывает частичное обновление на шаг и сразу перевалидирует
// его. Обновлять можно любой шаг, не только текущий: мастер разрешает
// возвращаться и править пройденное.
func (w *Workflow) UpdateStep(step entities.BookingStep, input entities.StepInput) (StepResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := mergeStep(w.draft, step, input); err != nil {
		return StepResult{}, err
	}
	w.draft.IsDraft = true

	result, err := validateStep(step, w.draft)
	if err != nil {
		return StepResult{}, err
	}
	w.draft.Validity[step] = result.Valid
	return result, nil
}

// AddPhotos дописывает ссылки на загруженные фото к секции визуального шага.
// Append выполняется под мьютексом: две параллельные загрузки не потеряют
// друг друга.
func (w *Workflow) AddPhotos(category PhotoCategory, refs []string) (StepResult, error) {
	if len(refs) == 0 {
		return StepResult{}, ErrInvalidPhotoInput
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	switch category {
	case PhotoExterior:
		w.draft.Visual.ExteriorPhotoRefs = append(w.draft.Visual.ExteriorPhotoRefs, refs...)
	case PhotoInterior:
		w.draft.Visual.InteriorPhotoRefs = append(w.draft.Visual.InteriorPhotoRefs, refs...)
	default:
		return StepResult{}, fmt.Errorf("%w: category %s", ErrInvalidPhotoInput, category)
	}
	w.draft.IsDraft = true

	result, err := validateStep(entities.StepVisual, w.draft)
	if err != nil {
		return StepResult{}, err
	}
	w.draft.Validity[entities.StepVisual] = result.Valid
	return result, nil
}

// Next переводит мастер на следующий шаг. Переход закрыт, пока текущий шаг
// не валиден; валидность проверяется заново, а не по сохраненному флагу.
func (w *Workflow) Next() (entities.BookingStep, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := stepIndex(w.draft.CurrentStep)
	if index == len(entities.BookingSteps)-1 {
		return w.draft.CurrentStep, ErrAlreadyLastStep
	}

	result, err := validateStep(w.draft.CurrentStep, w.draft)
	if err != nil {
		return w.draft.CurrentStep, err
	}
	w.draft.Validity[w.draft.CurrentStep] = result.Valid
	if !result.Valid {
		return w.draft.CurrentStep, fmt.Errorf("%w: %s", ErrStepNotValid, w.draft.CurrentStep)
	}

	w.draft.CurrentStep = entities.BookingSteps[index+1]
	return w.draft.CurrentStep, nil
}

// Previous возвращает мастер на предыдущий шаг. Назад можно всегда,
// введенные данные не теряются.
func (w *Workflow) Previous() (entities.BookingStep, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := stepIndex(w.draft.CurrentStep)
	if index == 0 {
		return w.draft.CurrentStep, ErrAlreadyFirstStep
	}

	w.draft.CurrentStep = entities.BookingSteps[index-1]
	return w.draft.CurrentStep, nil
}

// SetStep переводит мастер на произвольный шаг. Назад можно всегда, даже если
// пройденные шаги успели стать невалидными: пользователь идет их исправлять.
// Вперед можно только через сплошь валидные шаги, пропуск непройденного шага
// запрещен.
func (w *Workflow) SetStep(step entities.BookingStep) error {
	target := stepIndex(step)
	if target < 0 {
		return ErrUnknownStep
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if target <= stepIndex(w.draft.CurrentStep) {
		w.draft.CurrentStep = step
		return nil
	}

	for i := 0; i < target; i++ {
		if !w.draft.Validity[entities.BookingSteps[i]] {
			return fmt.Errorf("%w: %s", ErrStepNotValid, entities.BookingSteps[i])
		}
	}

	w.draft.CurrentStep = step
	return nil
}

func (w *Workflow) CurrentStep() entities.BookingStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.CurrentStep
}

func (w *Workflow) IsStepValid(step entities.BookingStep) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Validity[step]
}

// Snapshot возвращает копию черновика для чтения.
func (w *Workflow) Snapshot() entities.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return snapshotDraft(w.draft)
}

// Reset отбрасывает черновик и возвращает мастер на первый шаг.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = entities.NewBookingDraft()
}

// Submit — терминальное действие мастера, доступное только с последнего шага.
//
// Порядок строгий: полная перевалидация всех шагов, создание перевозки,
// списание предоплаты, финализация. Перевозка создается до списания, и ее
// идентификатор запоминается в черновике: при отказе оплаты повторный Submit
// переиспользует ту же перевозку и тот же ключ идемпотентности вместо
// создания дублей.
func (w *Workflow) Submit(ctx context.Context) (*entities.BookingSubmission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.CurrentStep != entities.StepPayment {
		return nil, fmt.Errorf("%w: current step %s", ErrNotOnFinalStep, w.draft.CurrentStep)
	}

	// Сохраненным флагам валидности на этой границе не доверяем:
	// каждый шаг проверяется заново по фактическому содержимому.
	failed := make(map[entities.BookingStep][]string)
	for _, step := range entities.BookingSteps {
		result, err := validateStep(step, w.draft)
		if err != nil {
			return nil, err
		}
		w.draft.Validity[step] = result.Valid
		if !result.Valid {
			failed[step] = result.Missing
		}
	}
	if len(failed) > 0 {
		return nil, &ValidationFailure{Steps: failed}
	}

	total := w.pricing.EstimateTotal(w.draft)
	split := w.pricing.Split(total)
	w.draft.PriceCents = split.TotalCents

	shipmentID := w.draft.PendingShipmentID
	if shipmentID == "" {
		route := routeFromDraft(w.draft)
		created, err := w.shipment.CreateDraft(ctx, entities.ShipmentModify{
			ClientID:   &w.clientID,
			Route:      &route,
			PriceCents: &split.TotalCents,
		})
		if err != nil {
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		shipmentID = created.ID
		w.draft.PendingShipmentID = shipmentID
	}

	if _, err := w.payments.AuthorizeUpfront(ctx, entities.UpfrontCharge{
		ShipmentID:  shipmentID,
		AmountCents: split.UpfrontCents,
	}); err != nil {
		return nil, &PaymentFailure{ShipmentID: shipmentID, Err: err}
	}

	if _, err := w.shipment.Finalize(ctx, shipmentID); err != nil {
		return nil, fmt.Errorf("finalize shipment: %w", err)
	}

	w.draft = entities.NewBookingDraft()

	return &entities.BookingSubmission{
		ShipmentID:     shipmentID,
		TotalCents:     split.TotalCents,
		UpfrontCents:   split.UpfrontCents,
		RemainderCents: split.RemainderCents,
	}, nil
}

func routeFromDraft(draft *entities.BookingDraft) entities.Route {
	route := entities.Route{
		PickupLat:   draft.Pickup.Lat,
		PickupLon:   draft.Pickup.Lon,
		DeliveryLat: draft.Delivery.Lat,
		DeliveryLon: draft.Delivery.Lon,
	}
	if draft.Pickup.Address != nil {
		route.PickupAddress = *draft.Pickup.Address
	}
	if draft.Delivery.Address != nil {
		route.DeliveryAddress = *draft.Delivery.Address
	}
	return route
}

func stepIndex(step entities.BookingStep) int {
	for i, known := range entities.BookingSteps {
		if known == step {
			return i
		}
	}
	return -1
}
