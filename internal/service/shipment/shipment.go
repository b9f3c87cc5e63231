package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autohaul/internal/entities"
)

type Service struct {
	repository      Repository
	deadlineFactory PendingDeadlineFactory
	txManager       TxManager
}

func New(repository Repository, deadlineFactory PendingDeadlineFactory, txManager TxManager) *Service {
	return &Service{
		repository:      repository,
		deadlineFactory: deadlineFactory,
		txManager:       txManager,
	}
}

// CreateDraft создает перевозку в статусе draft. Id генерируется здесь,
// чтобы вызывающий мог привязать к нему идемпотентный платеж до finalize.
func (s *Service) CreateDraft(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.ClientID == nil || !isValidID(*shipmentModify.ClientID) {
		return nil, ErrInvalidClientID
	}
	if shipmentModify.Route == nil {
		return nil, ErrMissingRequiredFields
	}
	if shipmentModify.PriceCents == nil || *shipmentModify.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	id := uuid.NewString()
	status := entities.ShipmentDraft
	shipmentModify.ID = &id
	shipmentModify.Status = &status
	shipmentModify.DriverID = nil

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}
	return created, nil
}

// Finalize переводит draft → pending после успешной предоплаты и
// выставляет дедлайн ожидания водителя.
func (s *Service) Finalize(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	var finalized *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		next, err := NextStatus(current.Status, entities.EventFinalize)
		if err != nil {
			return err
		}

		deadline := s.deadlineFactory.CalculateDeadline(time.Now().UTC())
		finalized, err = s.repository.UpdateStatus(ctx, entities.ShipmentModify{
			ID:        &shipmentID,
			Status:    &next,
			ExpiresAt: &deadline,
		}, current.Status)
		if err != nil {
			return fmt.Errorf("finalize shipment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return finalized, nil
}

// ApplyEvent применяет событие жизненного цикла, пришедшее извне
// (водительское приложение, платежный провайдер, планировщик).
func (s *Service) ApplyEvent(ctx context.Context, shipmentID string, event entities.ShipmentEventType) (*entities.Shipment, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}
	if event == entities.EventAssign {
		return nil, ErrEventRequiresDriver
	}

	var updated *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		next, err := NextStatus(current.Status, event)
		if err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, entities.ShipmentModify{
			ID:     &shipmentID,
			Status: &next,
		}, current.Status)
		if err != nil {
			return fmt.Errorf("update shipment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Cancel — абсорбирующий переход, легален из любого нетерминального статуса.
func (s *Service) Cancel(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	return s.ApplyEvent(ctx, shipmentID, entities.EventCancel)
}

func (s *Service) GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	shipmentEntity, err := s.repository.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipmentEntity, nil
}

// ListPending — витрина доступных заказов для водителей. Читается без
// транзакции: список справочный, устаревание на чтении допустимо.
func (s *Service) ListPending(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.ListByStatus(ctx, entities.ShipmentPending)
	if err != nil {
		return nil, fmt.Errorf("list pending shipments: %w", err)
	}
	return shipments, nil
}

// ExpireStalePending переводит просроченные pending-перевозки в expired.
// Вызывается внешним планировщиком, внутри ядра таймеров нет.
func (s *Service) ExpireStalePending(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.ExpireWherePendingDeadlinePassed(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("expire sweep timed out: %w", err)
		}
		return 0, fmt.Errorf("expire stale pending shipments: %w", err)
	}
	return rowsAffected, nil
}
