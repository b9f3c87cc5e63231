package booking

import "sync"

// Sessions хранит активные мастера оформления по идентификатору клиента.
// Черновики живут в памяти процесса: недооформленная заявка не переживает
// рестарт, и это осознанно — персистентна только созданная перевозка.
type Sessions struct {
	mu        sync.Mutex
	workflows map[string]*Workflow

	pricing  PricingFactory
	payments PaymentGateway
	shipment ShipmentService
}

func NewSessions(pricing PricingFactory, payments PaymentGateway, shipment ShipmentService) *Sessions {
	return &Sessions{
		workflows: make(map[string]*Workflow),
		pricing:   pricing,
		payments:  payments,
		shipment:  shipment,
	}
}

// Acquire возвращает мастер клиента, создавая новый при первом обращении.
func (s *Sessions) Acquire(clientID string) (*Workflow, error) {
	if !isValidClientID(clientID) {
		return nil, ErrInvalidClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workflow, ok := s.workflows[clientID]
	if !ok {
		workflow = newWorkflow(clientID, s.pricing, s.payments, s.shipment)
		s.workflows[clientID] = workflow
	}
	return workflow, nil
}

// Discard выбрасывает мастер клиента вместе с черновиком.
func (s *Sessions) Discard(clientID string) error {
	if !isValidClientID(clientID) {
		return ErrInvalidClientID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workflows, clientID)
	return nil
}
