package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"autohaul/internal/entities"
	"autohaul/internal/service/application"
	"autohaul/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, client_id, driver_id, status,
		pickup_address, pickup_lat, pickup_lon,
		delivery_address, delivery_lat, delivery_lon,
		price_cents, created_at, updated_at, expires_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModify)

	query := `
		INSERT INTO shipments (id, client_id, status,
			pickup_address, pickup_lat, pickup_lon,
			delivery_address, delivery_lat, delivery_lon,
			price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + shipmentColumns

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyDB.ID,
		shipmentModifyDB.ClientID,
		shipmentModifyDB.Status,
		shipmentModifyDB.PickupAddress,
		shipmentModifyDB.PickupLat,
		shipmentModifyDB.PickupLon,
		shipmentModifyDB.DeliveryAddress,
		shipmentModifyDB.DeliveryLat,
		shipmentModifyDB.DeliveryLon,
		shipmentModifyDB.PriceCents,
	).Scan(
		&shipmentDB.ID,
		&shipmentDB.ClientID,
		&shipmentDB.DriverID,
		&shipmentDB.Status,
		&shipmentDB.PickupAddress,
		&shipmentDB.PickupLat,
		&shipmentDB.PickupLon,
		&shipmentDB.DeliveryAddress,
		&shipmentDB.DeliveryLat,
		&shipmentDB.DeliveryLon,
		&shipmentDB.PriceCents,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
		&shipmentDB.ExpiresAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&shipmentDB.ID,
		&shipmentDB.ClientID,
		&shipmentDB.DriverID,
		&shipmentDB.Status,
		&shipmentDB.PickupAddress,
		&shipmentDB.PickupLat,
		&shipmentDB.PickupLon,
		&shipmentDB.DeliveryAddress,
		&shipmentDB.DeliveryLat,
		&shipmentDB.DeliveryLon,
		&shipmentDB.PriceCents,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
		&shipmentDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository getbyid error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.ShipmentStatusType) ([]entities.Shipment, error) {
	query := `
		SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE status = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbystatus error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		var shipmentDB ShipmentDB
		err := rows.Scan(
			&shipmentDB.ID,
			&shipmentDB.ClientID,
			&shipmentDB.DriverID,
			&shipmentDB.Status,
			&shipmentDB.PickupAddress,
			&shipmentDB.PickupLat,
			&shipmentDB.PickupLon,
			&shipmentDB.DeliveryAddress,
			&shipmentDB.DeliveryLat,
			&shipmentDB.DeliveryLon,
			&shipmentDB.PriceCents,
			&shipmentDB.CreatedAt,
			&shipmentDB.UpdatedAt,
			&shipmentDB.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository listbystatus error: %w", err)
		}
		shipmentModels = append(shipmentModels, shipmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listbystatus error: %w", err)
	}

	return ToDomainList(shipmentModels), nil
}

// UpdateStatus применяет частичное обновление, только если перевозка все еще
// в статусе current. Ноль затронутых строк значит, что статус успел смениться
// конкурентно, — вызывающему возвращается not found, а не чужое состояние.
func (r *Repository) UpdateStatus(ctx context.Context, shipmentModify entities.ShipmentModify, current entities.ShipmentStatusType) (*entities.Shipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModify)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyDB.Status != nil {
		builder = builder.Set("status", shipmentModifyDB.Status)
	}
	if shipmentModifyDB.DriverID != nil {
		builder = builder.Set("driver_id", shipmentModifyDB.DriverID)
	}
	if shipmentModifyDB.ExpiresAt != nil {
		builder = builder.Set("expires_at", shipmentModifyDB.ExpiresAt)
	}
	if shipmentModifyDB.PriceCents != nil {
		builder = builder.Set("price_cents", shipmentModifyDB.PriceCents)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyDB.ID, "status": current.String()}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	var shipmentDB ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&shipmentDB.ID,
		&shipmentDB.ClientID,
		&shipmentDB.DriverID,
		&shipmentDB.Status,
		&shipmentDB.PickupAddress,
		&shipmentDB.PickupLat,
		&shipmentDB.PickupLon,
		&shipmentDB.DeliveryAddress,
		&shipmentDB.DeliveryLat,
		&shipmentDB.DeliveryLon,
		&shipmentDB.PriceCents,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
		&shipmentDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

// AssignDriver — атомарное назначение водителя. Победителя гонки выбирает
// сама СУБД: строка обновляется только пока водитель не назначен и перевозка
// открыта. Ноль строк — назначение проиграно или перевозка уже закрыта,
// различает вызывающий.
func (r *Repository) AssignDriver(ctx context.Context, shipmentID, driverID string) (*entities.Shipment, error) {
	query := `
		UPDATE shipments
		SET driver_id = $2,
			status = 'assigned',
			updated_at = NOW()
		WHERE id = $1
		  AND driver_id IS NULL
		  AND status = 'pending'
		RETURNING ` + shipmentColumns

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, shipmentID, driverID).Scan(
		&shipmentDB.ID,
		&shipmentDB.ClientID,
		&shipmentDB.DriverID,
		&shipmentDB.Status,
		&shipmentDB.PickupAddress,
		&shipmentDB.PickupLat,
		&shipmentDB.PickupLon,
		&shipmentDB.DeliveryAddress,
		&shipmentDB.DeliveryLat,
		&shipmentDB.DeliveryLon,
		&shipmentDB.PriceCents,
		&shipmentDB.CreatedAt,
		&shipmentDB.UpdatedAt,
		&shipmentDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrShipmentAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected shipment repository assigndriver error: %w", err)
	}

	return ToDomain(&shipmentDB), nil
}

func (r *Repository) ExpireWherePendingDeadlinePassed(ctx context.Context) (int64, error) {
	query := `
		UPDATE shipments
		SET status = 'expired',
			updated_at = NOW()
		WHERE status = 'pending'
		  AND expires_at IS NOT NULL
		  AND expires_at < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}
