package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrGatewayUnavailable marks a failed intent creation; the caller may
// retry, no local state has been written.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// Intent is the gateway's record of an in-progress payment, created
// before the customer completes the client-side flow.
type Intent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Intent, error)
}

// HTTPGateway talks to a Razorpay-style REST gateway. All calls go
// through a circuit breaker so a struggling gateway sheds load fast
// instead of tying up checkout requests.
type HTTPGateway struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker[*Intent]
}

func NewHTTPGateway(baseURL, keyID, keySecret string) *HTTPGateway {
	settings := gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &HTTPGateway{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 10 * time.Second},
		breaker:   gobreaker.NewCircuitBreaker[*Intent](settings),
	}
}

type intentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

func (g *HTTPGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Intent, error) {
	intent, err := g.breaker.Execute(func() (*Intent, error) {
		return g.createIntent(ctx, amountMinorUnits, currency, receipt)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return intent, nil
}

func (g *HTTPGateway) createIntent(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Intent, error) {
	body, err := json.Marshal(intentRequest{
		Amount:   amountMinorUnits,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent: %w", err)
	}
	if intent.ID == "" {
		return nil, errors.New("gateway returned intent without id")
	}

	return &intent, nil
}
