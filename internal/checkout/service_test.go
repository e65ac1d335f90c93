package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/payment"
	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/repository"
)

const testSecret = "test-secret"

type fixture struct {
	catalog *MockCatalog
	carts   *MockCarts
	orders  *MockOrders
	outbox  *MockOutbox
	gateway *MockGateway
	pending *MockPendingStore
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		catalog: &MockCatalog{Products: map[string]*domain.Product{
			"p1": {ID: "p1", Name: "Laptop", Price: 25.00, ImageURL: "laptop.jpg"},
			"p2": {ID: "p2", Name: "Mouse", Price: 60.00, ImageURL: "mouse.jpg"},
		}},
		carts:   &MockCarts{},
		orders:  &MockOrders{},
		outbox:  &MockOutbox{},
		gateway: &MockGateway{Intent: &payment.Intent{ID: "gw_order_1", Currency: "INR"}},
		pending: NewMockPendingStore(),
	}
	f.svc = NewService(f.catalog, f.carts, f.orders, f.outbox, f.gateway, f.pending, noTaxRules(), testSecret, "INR")
	return f
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func codRequest(lines ...Line) Request {
	return Request{
		Items:           lines,
		ShippingAddress: domain.ShippingAddress{Address: "1 Main St", City: "Pune", PostalCode: "411001", Country: "IN"},
		PaymentMethod:   PaymentCashOnDelivery,
	}
}

func TestPlaceOrder_CashOnDelivery(t *testing.T) {
	f := newFixture()

	result, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(Line{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Nil(t, result.Intent)

	order := result.Order
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 50.0, order.ItemsPrice)
	assert.Equal(t, 10.0, order.ShippingPrice)
	assert.Equal(t, 60.0, order.TotalAmount)
	assert.Empty(t, order.PaymentID)
	assert.Empty(t, order.GatewayOrderID)

	require.Len(t, f.orders.Inserted, 1)
	assert.Equal(t, []string{"u1"}, f.carts.ClearedFor)
	require.Len(t, f.outbox.Events, 1)
	assert.Equal(t, "order.created", f.outbox.Events[0].EventType)
	assert.Equal(t, order.ID, f.outbox.Events[0].AggregateID)
}

func TestPlaceOrder_PriceIntegrity(t *testing.T) {
	// the request carries only product ids and quantities; whatever
	// price the client believed in, the catalog's price wins
	f := newFixture()

	result, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(Line{ProductID: "p1", Quantity: 2}))
	require.NoError(t, err)

	require.Len(t, result.Order.Items, 1)
	assert.Equal(t, 25.00, result.Order.Items[0].Price)
	assert.Equal(t, "Laptop", result.Order.Items[0].Name)
	assert.Equal(t, 50.0, result.Order.ItemsPrice)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest())

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.orders.Inserted)
	assert.Empty(t, f.carts.ClearedFor)
}

func TestPlaceOrder_ProductNotFound_AbortsWholeCheckout(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(
		Line{ProductID: "p1", Quantity: 1},
		Line{ProductID: "ghost", Quantity: 1},
	))

	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.Empty(t, f.orders.Inserted) // no partial orders
}

func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	f := newFixture()

	_, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(Line{ProductID: "p1", Quantity: 0}))

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, f.orders.Inserted)
}

func TestPlaceOrder_UnknownPaymentMethod(t *testing.T) {
	f := newFixture()

	req := codRequest(Line{ProductID: "p1", Quantity: 1})
	req.PaymentMethod = "pigeon"

	_, err := f.svc.PlaceOrder(context.Background(), "u1", req)
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}

func TestPlaceOrder_OrderPersistFailure_LeavesCartAlone(t *testing.T) {
	f := newFixture()
	f.orders.InsertErr = errors.New("mongo down")

	_, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(Line{ProductID: "p1", Quantity: 1}))

	require.Error(t, err)
	assert.Empty(t, f.carts.ClearedFor)
	assert.Empty(t, f.outbox.Events)
}

func TestPlaceOrder_CartClearFailure_DoesNotFailCheckout(t *testing.T) {
	f := newFixture()
	f.carts.ClearErr = errors.New("redis down")

	result, err := f.svc.PlaceOrder(context.Background(), "u1", codRequest(Line{ProductID: "p1", Quantity: 1}))

	// the order is durable; a failed clear is only reported
	require.NoError(t, err)
	assert.NotNil(t, result.Order)
	require.Len(t, f.orders.Inserted, 1)
}

func TestPlaceOrder_Online_CreatesIntentAndPersistsNothing(t *testing.T) {
	f := newFixture()

	req := codRequest(Line{ProductID: "p2", Quantity: 2}) // 120, free shipping
	req.PaymentMethod = PaymentOnline

	result, err := f.svc.PlaceOrder(context.Background(), "u1", req)
	require.NoError(t, err)
	require.NotNil(t, result.Intent)
	assert.Nil(t, result.Order)

	assert.Equal(t, int64(12000), f.gateway.LastAmount) // minor units
	assert.Equal(t, "INR", f.gateway.LastCurrency)
	assert.NotEmpty(t, f.gateway.LastReceipt)

	// no order during AwaitingPayment, only the snapshot
	assert.Empty(t, f.orders.Inserted)
	assert.Empty(t, f.carts.ClearedFor)

	snap, ok := f.pending.Snapshots["gw_order_1"]
	require.True(t, ok)
	assert.Equal(t, "u1", snap.UserID)
	assert.Equal(t, 120.0, snap.TotalAmount)
}

func TestPlaceOrder_Online_GatewayFailure_NoLocalState(t *testing.T) {
	f := newFixture()
	f.gateway.Intent = nil
	f.gateway.Err = payment.ErrGatewayUnavailable

	req := codRequest(Line{ProductID: "p1", Quantity: 1})
	req.PaymentMethod = PaymentOnline

	_, err := f.svc.PlaceOrder(context.Background(), "u1", req)

	assert.ErrorIs(t, err, payment.ErrGatewayUnavailable)
	assert.Empty(t, f.orders.Inserted)
	assert.Empty(t, f.pending.Snapshots)
}

func placeOnline(t *testing.T, f *fixture) {
	t.Helper()
	req := codRequest(Line{ProductID: "p2", Quantity: 2})
	req.PaymentMethod = PaymentOnline
	_, err := f.svc.PlaceOrder(context.Background(), "u1", req)
	require.NoError(t, err)
}

func TestVerifyPayment_Success_BuildsOrderFromSnapshot(t *testing.T) {
	f := newFixture()
	placeOnline(t, f)

	// the catalog price changing after pricing must not affect the
	// suspended checkout
	f.catalog.Products["p2"].Price = 999

	order, err := f.svc.VerifyPayment(context.Background(), "u1", VerifyRequest{
		GatewayOrderID:   "gw_order_1",
		GatewayPaymentID: "pay_1",
		Signature:        sign(testSecret, "gw_order_1", "pay_1"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.Equal(t, "gw_order_1", order.GatewayOrderID)
	assert.Equal(t, 120.0, order.TotalAmount)
	assert.Equal(t, 60.0, order.Items[0].Price) // frozen price, not 999

	require.Len(t, f.orders.Inserted, 1)
	assert.Equal(t, []string{"u1"}, f.carts.ClearedFor)
	assert.Empty(t, f.pending.Snapshots) // consumed
	require.Len(t, f.outbox.Events, 1)
}

func TestVerifyPayment_BadSignature_NoOrderWritten(t *testing.T) {
	f := newFixture()
	placeOnline(t, f)

	valid := sign(testSecret, "gw_order_1", "pay_1")
	// flip the first hex character
	tampered := "0" + valid[1:]
	if valid[0] == '0' {
		tampered = "1" + valid[1:]
	}

	_, err := f.svc.VerifyPayment(context.Background(), "u1", VerifyRequest{
		GatewayOrderID:   "gw_order_1",
		GatewayPaymentID: "pay_1",
		Signature:        tampered,
	})

	assert.ErrorIs(t, err, ErrPaymentVerificationFailed)
	assert.Empty(t, f.orders.Inserted)
	assert.Len(t, f.pending.Snapshots, 1) // snapshot untouched
}

func TestVerifyPayment_ExpiredCheckout(t *testing.T) {
	f := newFixture()

	_, err := f.svc.VerifyPayment(context.Background(), "u1", VerifyRequest{
		GatewayOrderID:   "gw_gone",
		GatewayPaymentID: "pay_1",
		Signature:        sign(testSecret, "gw_gone", "pay_1"),
	})

	assert.ErrorIs(t, err, ErrCheckoutExpired)
	assert.Empty(t, f.orders.Inserted)
}

func TestVerifyPayment_WrongUser(t *testing.T) {
	f := newFixture()
	placeOnline(t, f)

	_, err := f.svc.VerifyPayment(context.Background(), "someone-else", VerifyRequest{
		GatewayOrderID:   "gw_order_1",
		GatewayPaymentID: "pay_1",
		Signature:        sign(testSecret, "gw_order_1", "pay_1"),
	})

	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Empty(t, f.orders.Inserted)
}
