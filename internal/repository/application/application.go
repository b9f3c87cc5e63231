package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"autohaul/internal/entities"
	"autohaul/internal/repository"
	"autohaul/internal/service/application"
)

const applicationColumns = `id, shipment_id, driver_id, status, applied_at, responded_at, notes`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет pending-заявку. Частичный уникальный индекс по
// (shipment_id, driver_id) WHERE status = 'pending' пропускает не больше
// одной активной заявки водителя на перевозку; нарушение транслируется
// в доменный конфликт.
func (r *Repository) Create(ctx context.Context, applicationModify entities.ApplicationModify) (*entities.JobApplication, error) {
	applicationModifyDB := FromDomainModify(&applicationModify)

	query := `
		INSERT INTO job_applications (shipment_id, driver_id, status, applied_at, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + applicationColumns

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		applicationModifyDB.ShipmentID,
		applicationModifyDB.DriverID,
		applicationModifyDB.Status,
		applicationModifyDB.AppliedAt,
		applicationModifyDB.Notes,
	).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, application.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("unexpected application repository create error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE id = $1`

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected application repository getbyid error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

func (r *Repository) GetPendingByShipmentAndDriver(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE shipment_id = $1
		  AND driver_id = $2
		  AND status = 'pending'`

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, query, shipmentID, driverID).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("unexpected application repository getpending error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

func (r *Repository) ListByDriver(ctx context.Context, driverID string) ([]entities.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE driver_id = $1
		ORDER BY applied_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository listbydriver error: %w", err)
	}
	defer rows.Close()

	applicationModels := make([]ApplicationDB, 0, 8)
	for rows.Next() {
		var applicationDB ApplicationDB
		err := rows.Scan(
			&applicationDB.ID,
			&applicationDB.ShipmentID,
			&applicationDB.DriverID,
			&applicationDB.Status,
			&applicationDB.AppliedAt,
			&applicationDB.RespondedAt,
			&applicationDB.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected application repository listbydriver error: %w", err)
		}
		applicationModels = append(applicationModels, applicationDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository listbydriver error: %w", err)
	}

	return ToDomainList(applicationModels), nil
}

// UpdateStatus переводит заявку из current в next одним условным UPDATE.
// Ноль строк — заявка уже в другом статусе, конкурентный переход проигран.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, current, next entities.ApplicationStatusType) (*entities.JobApplication, error) {
	query := `
		UPDATE job_applications
		SET status = $3,
			responded_at = NOW()
		WHERE id = $1
		  AND status = $2
		RETURNING ` + applicationColumns

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, query, id, current.String(), next.String()).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: status changed concurrently", application.ErrApplicationAlreadyResolved)
		}
		return nil, fmt.Errorf("unexpected application repository updatestatus error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

// AcceptPending принимает pending-заявку водителя на перевозку. Если заявки
// не было (административное назначение), создается уже принятая: после
// назначения у победителя всегда есть accepted-запись.
func (r *Repository) AcceptPending(ctx context.Context, shipmentID, driverID string) (*entities.JobApplication, error) {
	updateQuery := `
		UPDATE job_applications
		SET status = 'accepted',
			responded_at = NOW()
		WHERE shipment_id = $1
		  AND driver_id = $2
		  AND status = 'pending'
		RETURNING ` + applicationColumns

	var applicationDB ApplicationDB
	err := r.querier.QueryRow(ctx, updateQuery, shipmentID, driverID).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err == nil {
		return ToDomain(&applicationDB), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected application repository acceptpending error: %w", err)
	}

	insertQuery := `
		INSERT INTO job_applications (shipment_id, driver_id, status, applied_at, responded_at)
		VALUES ($1, $2, 'accepted', NOW(), NOW())
		RETURNING ` + applicationColumns

	err = r.querier.QueryRow(ctx, insertQuery, shipmentID, driverID).Scan(
		&applicationDB.ID,
		&applicationDB.ShipmentID,
		&applicationDB.DriverID,
		&applicationDB.Status,
		&applicationDB.AppliedAt,
		&applicationDB.RespondedAt,
		&applicationDB.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected application repository acceptpending error: %w", err)
	}

	return ToDomain(&applicationDB), nil
}

// RejectPendingExcept отклоняет все прочие pending-заявки на перевозку.
func (r *Repository) RejectPendingExcept(ctx context.Context, shipmentID, driverID string) (int64, error) {
	query := `
		UPDATE job_applications
		SET status = 'rejected',
			responded_at = NOW()
		WHERE shipment_id = $1
		  AND driver_id != $2
		  AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, shipmentID, driverID)
	if err != nil {
		return 0, fmt.Errorf("unexpected application repository rejectpending error: %w", err)
	}

	return result.RowsAffected(), nil
}
