package shipment_expire

import (
	"context"
	"time"

	"autohaul/pkg/logger"
)

type Service interface {
	ExpireStalePending(ctx context.Context) (int64, error)
}

// ShipmentExpire — фоновая задача протухания перевозок, не нашедших водителя
// к дедлайну. Просроченность определяется по expires_at в хранилище, а не
// таймерами в памяти: рестарт процесса ничего не теряет.
type ShipmentExpire struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewShipmentExpire(log logger.Logger, service Service, interval time.Duration) *ShipmentExpire {
	return &ShipmentExpire{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *ShipmentExpire) TTL() time.Duration {
	return s.interval
}

func (s *ShipmentExpire) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.ExpireStalePending(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("expired_shipments", rowsAffected),
		).Info("shipment expire sweep")
	}

	return err
}

func (s *ShipmentExpire) Info() string {
	return "shipment expire sweep"
}
