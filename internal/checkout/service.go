package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/payment"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
	PaymentOnline         PaymentMethod = "online"
)

type Line struct {
	ProductID string
	Quantity  int
}

// Request is the full set of fields trusted from the client. Prices,
// names and totals are deliberately absent: everything financial is
// recomputed from the catalog.
type Request struct {
	Items           []Line
	ShippingAddress domain.ShippingAddress
	PaymentMethod   PaymentMethod
}

// Result carries either a persisted order (cash on delivery) or a
// gateway intent the client completes payment against (online).
type Result struct {
	Order  *domain.Order   `json:"order,omitempty"`
	Intent *payment.Intent `json:"intent,omitempty"`
}

type VerifyRequest struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// Consumer-side collaborator interfaces.

type Catalog interface {
	Get(ctx context.Context, productID string) (*domain.Product, error)
}

type Carts interface {
	Clear(ctx context.Context, userID string) error
}

type Orders interface {
	Insert(ctx context.Context, order *domain.Order) error
}

type Outbox interface {
	Append(ctx context.Context, event *repository.OutboxEvent) error
}

// Service coordinates cart -> order -> payment gateway -> order
// finalization -> cart clearing. Nothing is persisted before an order
// is ready to be the durable record of the purchase.
type Service struct {
	catalog  Catalog
	carts    Carts
	orders   Orders
	outbox   Outbox
	gateway  payment.Gateway
	pending  PendingStore
	rules    PricingRules
	secret   string
	currency string
}

func NewService(
	catalog Catalog,
	carts Carts,
	orders Orders,
	outbox Outbox,
	gateway payment.Gateway,
	pending PendingStore,
	rules PricingRules,
	secret string,
	currency string,
) *Service {
	return &Service{
		catalog:  catalog,
		carts:    carts,
		orders:   orders,
		outbox:   outbox,
		gateway:  gateway,
		pending:  pending,
		rules:    rules,
		secret:   secret,
		currency: currency,
	}
}

// PlaceOrder runs Collecting -> Pricing and then either persists a
// pending cash-on-delivery order or suspends at AwaitingPayment with a
// gateway intent. Any failure before order persistence leaves no local
// state behind.
func (s *Service) PlaceOrder(ctx context.Context, userID string, req Request) (*Result, error) {
	items, totals, err := s.price(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	switch req.PaymentMethod {
	case PaymentCashOnDelivery:
		order := s.buildOrder(userID, items, totals, req.ShippingAddress)
		order.Status = domain.OrderStatusPending

		if err := s.orders.Insert(ctx, order); err != nil {
			return nil, fmt.Errorf("failed to persist order: %w", err)
		}
		s.finalize(ctx, order)

		return &Result{Order: order}, nil

	case PaymentOnline:
		receipt := "receipt_" + uuid.NewString()
		intent, err := s.gateway.CreateIntent(ctx, MinorUnits(totals.TotalAmount), s.currency, receipt)
		if err != nil {
			return nil, err
		}

		snapshot := &domain.CheckoutSnapshot{
			UserID:          userID,
			Items:           items,
			ItemsPrice:      totals.ItemsPrice,
			ShippingPrice:   totals.ShippingPrice,
			TaxPrice:        totals.TaxPrice,
			TotalAmount:     totals.TotalAmount,
			ShippingAddress: req.ShippingAddress,
			CapturedAt:      time.Now(),
		}
		if err := s.pending.Put(ctx, intent.ID, snapshot); err != nil {
			// without the snapshot the callback could never be
			// finalized, so fail now while nothing is persisted
			return nil, fmt.Errorf("failed to store pending checkout: %w", err)
		}

		return &Result{Intent: intent}, nil

	default:
		return nil, ErrUnknownPaymentMethod
	}
}

// VerifyPayment resumes a suspended online checkout. The order is
// built from the snapshot stored at pricing time; items and totals in
// the callback body are never trusted.
func (s *Service) VerifyPayment(ctx context.Context, userID string, req VerifyRequest) (*domain.Order, error) {
	if !payment.VerifySignature(s.secret, req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		return nil, ErrPaymentVerificationFailed
	}

	snapshot, err := s.pending.Get(ctx, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, ErrPendingNotFound) {
			return nil, ErrCheckoutExpired
		}
		return nil, err
	}
	if snapshot.UserID != userID {
		return nil, ErrNotAuthorized
	}

	order := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          snapshot.UserID,
		Items:           snapshot.Items,
		ItemsPrice:      snapshot.ItemsPrice,
		ShippingPrice:   snapshot.ShippingPrice,
		TaxPrice:        snapshot.TaxPrice,
		TotalAmount:     snapshot.TotalAmount,
		PaymentID:       req.GatewayPaymentID,
		GatewayOrderID:  req.GatewayOrderID,
		Status:          domain.OrderStatusPaid,
		ShippingAddress: snapshot.ShippingAddress,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.pending.Delete(ctx, req.GatewayOrderID); err != nil {
		log.Printf("failed to delete pending checkout %s: %v", req.GatewayOrderID, err)
	}
	s.finalize(ctx, order)

	return order, nil
}

// price re-prices every requested line from the catalog. A missing
// product aborts the whole checkout; no partial orders.
func (s *Service) price(ctx context.Context, lines []Line) ([]domain.OrderItem, Totals, error) {
	if len(lines) == 0 {
		return nil, Totals{}, ErrEmptyCart
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, Totals{}, ErrInvalidQuantity
		}

		product, err := s.catalog.Get(ctx, line.ProductID)
		if err != nil {
			return nil, Totals{}, err
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.ImageURL,
			Quantity:  line.Quantity,
		})
	}

	return items, s.rules.Price(items), nil
}

func (s *Service) buildOrder(userID string, items []domain.OrderItem, totals Totals, addr domain.ShippingAddress) *domain.Order {
	return &domain.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ItemsPrice:      totals.ItemsPrice,
		ShippingPrice:   totals.ShippingPrice,
		TaxPrice:        totals.TaxPrice,
		TotalAmount:     totals.TotalAmount,
		ShippingAddress: addr,
	}
}

// finalize runs the best-effort steps after an order is durable. The
// order is the source of truth for "money changed hands"; failures
// here are reported, never surfaced as checkout failures.
func (s *Service) finalize(ctx context.Context, order *domain.Order) {
	if err := s.appendOrderEvent(ctx, order); err != nil {
		log.Printf("failed to append outbox event for order %s: %v", order.ID, err)
	}
	if err := s.carts.Clear(ctx, order.UserID); err != nil {
		log.Printf("failed to clear cart for user %s after order %s: %v", order.UserID, order.ID, err)
	}
}

func (s *Service) appendOrderEvent(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return s.outbox.Append(ctx, &repository.OutboxEvent{
		ID:          uuid.NewString(),
		AggregateID: order.ID,
		EventType:   "order.created",
		Payload:     payload,
	})
}
