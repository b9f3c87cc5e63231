package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"autohaul/internal/entities"
	shipmentservice "autohaul/internal/service/shipment"
	"autohaul/pkg/logger"
)

type statusChangedEvent struct {
	ShipmentID string `json:"shipment_id"`
	Event      string `json:"event"`
}

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("event", event.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	executeFn, err := h.factory.GetHandler(entities.ShipmentEventType(event.Event))
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("shipment.status.changed handler unknown event")
		sess.MarkMessage(message, "")
		return false
	}

	err = executeFn(ctx, event.ShipmentID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrIllegalTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler illegal transition for shipment")

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler shipment not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to process shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
