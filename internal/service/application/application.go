package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autohaul/internal/entities"
)

// Service разруливает конкурирующие заявки водителей: кто из претендентов
// получает перевозку, решает условный UPDATE в хранилище, а не клиент.
type Service struct {
	repository   Repository
	shipmentRepo ShipmentRepository
	txManager    TxManager
}

func New(repository Repository, shipmentRepo ShipmentRepository, txManager TxManager) *Service {
	return &Service{
		repository:   repository,
		shipmentRepo: shipmentRepo,
		txManager:    txManager,
	}
}

// Apply создает pending-заявку водителя на перевозку.
//
// Повторная заявка того же водителя — идемпотентный no-op: возвращается
// существующая pending-заявка без ошибки. Заявки принимаются только на
// перевозки в статусе pending.
func (s *Service) Apply(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var applied *entities.JobApplication
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.shipmentRepo.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipmentEntity.Status != entities.ShipmentPending {
			return fmt.Errorf("%w: status %s", ErrShipmentNotOpen, shipmentEntity.Status)
		}

		existing, err := s.repository.GetPendingByShipmentAndDriver(ctx, shipmentID, driverID)
		if err != nil && !errors.Is(err, ErrApplicationNotFound) {
			return fmt.Errorf("check existing application: %w", err)
		}
		if existing != nil {
			applied = existing
			return nil
		}

		appliedAt := time.Now().UTC()
		status := entities.ApplicationPending
		applied, err = s.repository.Create(ctx, entities.ApplicationModify{
			ShipmentID: &shipmentID,
			DriverID:   &driverID,
			Status:     &status,
			AppliedAt:  &appliedAt,
		})
		if err != nil {
			// Гонка двух Apply одного водителя: уникальный частичный индекс
			// пропустил только одну вставку, возвращаем выжившую заявку.
			if errors.Is(err, ErrDuplicateApplication) {
				applied, err = s.repository.GetPendingByShipmentAndDriver(ctx, shipmentID, driverID)
				if err != nil {
					return fmt.Errorf("get surviving application: %w", err)
				}
				return nil
			}
			return fmt.Errorf("create application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}

// Assign назначает перевозку водителю. Из конкурирующих вызовов для одной
// перевозки успешен ровно один: победителя выбирает условный UPDATE
// по driver_id IS NULL AND status = 'pending', проигравшие получают
// ErrShipmentAlreadyAssigned и никогда не перезаписывают победителя.
//
// Следствием выигрыша все прочие pending-заявки на перевозку переводятся
// в rejected — висящих заявок после назначения не остается.
func (s *Service) Assign(ctx context.Context, shipmentID, driverID string) (*entities.ShipmentAssignment, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	assignment := entities.ShipmentAssignment{}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		assigned, err := s.shipmentRepo.AssignDriver(ctx, shipmentID, driverID)
		if err != nil {
			if errors.Is(err, ErrShipmentAlreadyAssigned) {
				return s.classifyAssignLoss(ctx, shipmentID)
			}
			return fmt.Errorf("assign driver: %w", err)
		}

		// Административное назначение возможно и без предварительной заявки —
		// тогда AcceptPending создает принятую заявку, чтобы у инварианта
		// "после назначения нет pending-заявок" была одна точка соблюдения.
		winner, err := s.repository.AcceptPending(ctx, shipmentID, driverID)
		if err != nil {
			return fmt.Errorf("accept winning application: %w", err)
		}

		rejected, err := s.repository.RejectPendingExcept(ctx, shipmentID, driverID)
		if err != nil {
			return fmt.Errorf("reject competing applications: %w", err)
		}

		assignment = entities.ShipmentAssignment{
			ShipmentID:    assigned.ID,
			DriverID:      driverID,
			ApplicationID: winner.ID,
			AssignedAt:    assigned.UpdatedAt,
			RejectedCount: rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// classifyAssignLoss отличает проигрыш гонки от несуществующей или уже
// закрытой перевозки.
func (s *Service) classifyAssignLoss(ctx context.Context, shipmentID string) error {
	shipmentEntity, err := s.shipmentRepo.GetByID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("classify lost assignment: %w", err)
	}

	if shipmentEntity.DriverID != nil {
		return fmt.Errorf("%w: driver %s", ErrShipmentAlreadyAssigned, *shipmentEntity.DriverID)
	}
	return fmt.Errorf("%w: status %s", ErrShipmentNotOpen, shipmentEntity.Status)
}

// CancelApplication отзывает pending-заявку. Разрешено только владельцу
// и только до резолюции; отмена accepted/rejected заявки — ошибка,
// а не тихий no-op.
func (s *Service) CancelApplication(ctx context.Context, applicationID int64, driverID string) (*entities.JobApplication, error) {
	if applicationID <= 0 {
		return nil, ErrInvalidApplicationID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var cancelled *entities.JobApplication
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		applicationEntity, err := s.repository.GetByID(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if applicationEntity.DriverID != driverID {
			return ErrNotApplicationOwner
		}
		if applicationEntity.Status != entities.ApplicationPending {
			return fmt.Errorf("%w: status %s", ErrApplicationAlreadyResolved, applicationEntity.Status)
		}

		cancelled, err = s.repository.UpdateStatus(ctx, applicationID, entities.ApplicationPending, entities.ApplicationCancelled)
		if err != nil {
			return fmt.Errorf("cancel application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

func (s *Service) ListApplicationsForDriver(ctx context.Context, driverID string) ([]entities.JobApplication, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	applications, err := s.repository.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}
