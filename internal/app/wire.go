//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	mediastoreGateway "autohaul/internal/gateway/mediastore"
	paymentGateway "autohaul/internal/gateway/payment"
	"autohaul/internal/handlers/rest/application_cancel_post"
	"autohaul/internal/handlers/rest/application_post"
	"autohaul/internal/handlers/rest/applications_get"
	"autohaul/internal/handlers/rest/booking_photo_post"
	"autohaul/internal/handlers/rest/shipment_assign_post"
	"autohaul/internal/handlers/rest/shipment_cancel_post"
	"autohaul/internal/handlers/rest/shipment_get"
	"autohaul/internal/handlers/rest/shipments_get"
	"autohaul/internal/handlers/tasks/shipment_expire"
	"autohaul/internal/pkg/config"
	"autohaul/internal/pkg/factory/pending_deadline"
	"autohaul/internal/pkg/factory/price_split"
	"autohaul/internal/pkg/factory/shipment_handle"

	applicationRepo "autohaul/internal/repository/application"
	shipmentRepo "autohaul/internal/repository/shipment"
	applicationService "autohaul/internal/service/application"
	bookingService "autohaul/internal/service/booking"
	shipmentService "autohaul/internal/service/shipment"

	"autohaul/pkg/background"
	"autohaul/pkg/logger"
	"autohaul/pkg/querier"
	"autohaul/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ExpireInterval time.Duration
)

type Application struct {
	ServiceShipment    ServiceShipment
	ServiceApplication ServiceApplication
	BookingSessions    *bookingService.Sessions
	MediaStore         MediaStore
	BackgroundWorkers  *background.Worker
}

type ServiceShipment interface {
	shipments_get.Service
	shipment_get.Service
	shipment_cancel_post.Service
}

type ServiceApplication interface {
	application_post.Service
	application_cancel_post.Service
	applications_get.Service
	shipment_assign_post.Service
}

type MediaStore interface {
	booking_photo_post.MediaStore
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpireInterval,

		provideShipmentRepository,
		provideApplicationRepository,

		provideServiceShipment,
		provideServiceApplication,
		pending_deadline.New,
		price_split.New,

		providePaymentGateway,
		provideMediaStore,
		provideBookingSessions,

		provideShipmentExpireTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Service)),
		wire.Bind(new(ServiceApplication), new(*applicationService.Service)),
		wire.Bind(new(MediaStore), new(*mediastoreGateway.MediaStore)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PendingDeadlineFactory), new(*pending_deadline.PendingDeadlineFactory)),
		wire.Bind(new(applicationService.Repository), new(*applicationRepo.Repository)),
		wire.Bind(new(applicationService.ShipmentRepository), new(*shipmentRepo.Repository)),

		wire.Bind(new(bookingService.PricingFactory), new(*price_split.PriceSplitFactory)),
		wire.Bind(new(bookingService.PaymentGateway), new(*paymentGateway.PaymentGateway)),
		wire.Bind(new(bookingService.ShipmentService), new(*shipmentService.Service)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(applicationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shipment_expire.Service), new(*shipmentService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	HandlerFactory *shipment_handle.EventHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShipmentRepository,
		provideServiceShipment,
		pending_deadline.New,

		provideEventHandlerFactory,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.PendingDeadlineFactory), new(*pending_deadline.PendingDeadlineFactory)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipment_handle.ShipmentService), new(*shipmentService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideApplicationRepository(querier *querier.Querier) *applicationRepo.Repository {
	return applicationRepo.New(querier)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	deadlineFactory shipmentService.PendingDeadlineFactory,
	txManager shipmentService.TxManager,
) *shipmentService.Service {
	return shipmentService.New(repository, deadlineFactory, txManager)
}

func provideServiceApplication(
	repository applicationService.Repository,
	shipmentRepository applicationService.ShipmentRepository,
	txManager applicationService.TxManager,
) *applicationService.Service {
	return applicationService.New(repository, shipmentRepository, txManager)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.PaymentGateway {
	return paymentGateway.New(
		&http.Client{Timeout: 10 * time.Second},
		cfg.PaymentService.Endpoint,
		cfg.PaymentService.APIKey,
	)
}

func provideMediaStore(ctx context.Context, cfg *config.Config) (*mediastoreGateway.MediaStore, error) {
	storeCfg := mediastoreGateway.Config{
		Endpoint:        cfg.MediaStore.Endpoint,
		Region:          cfg.MediaStore.Region,
		AccessKeyID:     cfg.MediaStore.AccessKeyID,
		SecretAccessKey: cfg.MediaStore.SecretAccessKey,
		Bucket:          cfg.MediaStore.Bucket,
		PublicBaseURL:   cfg.MediaStore.PublicBaseURL,
	}

	client, err := mediastoreGateway.NewClient(ctx, storeCfg)
	if err != nil {
		return nil, err
	}
	return mediastoreGateway.New(client, storeCfg.Bucket, storeCfg.PublicBaseURL), nil
}

func provideBookingSessions(
	pricing bookingService.PricingFactory,
	payments bookingService.PaymentGateway,
	shipments bookingService.ShipmentService,
) *bookingService.Sessions {
	return bookingService.NewSessions(pricing, payments, shipments)
}

func provideExpireInterval(cfg *config.Config) ExpireInterval {
	return ExpireInterval(cfg.Tasks.ShipmentsExpireInterval)
}

func provideShipmentExpireTask(
	log logger.Logger,
	shipmentSvc shipment_expire.Service,
	interval ExpireInterval,
) *shipment_expire.ShipmentExpire {
	return shipment_expire.NewShipmentExpire(log, shipmentSvc, time.Duration(interval))
}

func provideTaskList(
	shipmentExpireTask *shipment_expire.ShipmentExpire,
) []background.Task {
	return []background.Task{
		shipmentExpireTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideEventHandlerFactory(shipmentSvc shipment_handle.ShipmentService) *shipment_handle.EventHandlerFactory {
	return shipment_handle.NewEventHandlerFactory(shipmentSvc)
}
