package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"autohaul/internal/entities"
	retrierconfig "autohaul/pkg/retrier"
	"autohaul/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-service"

	chargesPath = "/v1/charges"
	currency    = "USD"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type chargeRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Reference   string `json:"reference"`
}

type chargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// PaymentGateway списывает предоплату через внешнего платежного провайдера.
// Ключ идемпотентности — идентификатор перевозки: провайдер схлопывает
// повторные списания по одной перевозке, сколько бы раз мы ни ретраили.
type PaymentGateway struct {
	client   httpClient
	retrier  retrier
	endpoint string
	apiKey   string
}

func New(client httpClient, endpoint, apiKey string) *PaymentGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &PaymentGateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

func (g *PaymentGateway) AuthorizeUpfront(ctx context.Context, charge entities.UpfrontCharge) (*entities.PaymentReference, error) {
	body, err := json.Marshal(chargeRequest{
		AmountCents: charge.AmountCents,
		Currency:    currency,
		Reference:   charge.ShipmentID,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, marshal charge: %w", err)
	}

	var resp chargeResponse

	err = g.executeWithMetrics(ctx, "AuthorizeUpfront", func(ctx context.Context) error {
		return g.postCharge(ctx, charge.ShipmentID, body, &resp)
	})
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusPaymentRequired {
			return nil, fmt.Errorf("%w: shipment %s", ErrPaymentDeclined, charge.ShipmentID)
		}
		return nil, fmt.Errorf("gateway payment, authorize upfront: %s: %w", charge.ShipmentID, err)
	}

	return &entities.PaymentReference{Reference: resp.ID}, nil
}

func (g *PaymentGateway) postCharge(ctx context.Context, idempotencyKey string, body []byte, out *chargeResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+chargesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// Тело дочитывается для переиспользования соединения.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Ретраим только то, что могло пройти со второго раза: сетевые сбои,
// перегрузку (429) и 5xx. Остальные 4xx детерминированы.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// Ошибка транспорта без ответа.
		return true
	}

	switch {
	case statusErr.code == http.StatusTooManyRequests:
		return true
	case statusErr.code >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "transport_error"
}
