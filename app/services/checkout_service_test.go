package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/storage"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingGateway rejects order placement so submission failure paths can
// be exercised.
type failingGateway struct {
	*SimulatedGateway
}

func (failingGateway) PlaceOrder(ctx context.Context, orderCode string) error {
	return errors.New("gateway down")
}

func newTestSet(t *testing.T) *stores.Set {
	t.Helper()
	r := stores.NewRegistry(storage.NewMemoryStore(), zap.NewNop().Sugar())
	return r.ForVisitor(context.Background(), "v1")
}

func newTestCheckout(t *testing.T, gateway Gateway) *CheckoutService {
	t.Helper()
	if gateway == nil {
		gateway = NewSimulatedGateway(0, zap.NewNop().Sugar())
	}
	return NewCheckoutService(gateway, validator.New(), zap.NewNop().Sugar())
}

func testCartProduct(id string, price int64) models.Product {
	return models.Product{
		ID:      id,
		Name:    "Cake " + id,
		Price:   decimal.NewFromInt(price),
		Weights: []string{"1kg"},
		Flavors: []string{"chocolate"},
	}
}

func validDelivery() DeliveryForm {
	return DeliveryForm{
		Name:         "Priya",
		Phone:        "9876543210",
		Email:        "priya@example.com",
		Address:      "12 MG Road",
		City:         "Mumbai",
		Pincode:      "400001",
		DeliveryDate: "2026-09-01",
		DeliverySlot: "Morning (9 AM - 12 PM)",
	}
}

// walkToReview drives a fresh wizard through both form steps.
func walkToReview(t *testing.T, w *CheckoutWizard) {
	t.Helper()
	w.UpdateDelivery(validDelivery())
	require.NoError(t, w.Next())
	require.NoError(t, w.SetPaymentMethod("upi"))
	require.NoError(t, w.Next())
	require.Equal(t, models.StepReview, w.Draft().Step)
}

func TestCheckoutStartPrefillsCity(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)

	w := svc.Start("v1", set)
	assert.Equal(t, "Mumbai", w.Draft().City, "defaults to the first serviceable city")

	set.Preferences.SetCity(context.Background(), "Pune")
	w = svc.Start("v1", set)
	assert.Equal(t, "Pune", w.Draft().City)
}

func TestCheckoutWizardLookup(t *testing.T) {
	svc := newTestCheckout(t, nil)

	_, err := svc.Wizard("v1")
	assert.ErrorIs(t, err, ErrNoActiveCheckout)

	started := svc.Start("v1", newTestSet(t))
	found, err := svc.Wizard("v1")
	require.NoError(t, err)
	assert.Same(t, started, found)

	svc.Cancel("v1")
	_, err = svc.Wizard("v1")
	assert.ErrorIs(t, err, ErrNoActiveCheckout)
}

func TestCheckoutNextGatesOnDeliveryFields(t *testing.T) {
	svc := newTestCheckout(t, nil)
	w := svc.Start("v1", newTestSet(t))

	err := w.Next()
	assert.ErrorIs(t, err, ErrFieldsIncomplete)
	assert.Equal(t, models.StepDeliveryDetails, w.Draft().Step)

	form := validDelivery()
	form.Pincode = "40001" // five digits
	w.UpdateDelivery(form)
	assert.ErrorIs(t, w.Next(), ErrFieldsIncomplete)

	w.UpdateDelivery(validDelivery())
	require.NoError(t, w.Next())
	assert.Equal(t, models.StepPaymentMethod, w.Draft().Step)
}

func TestCheckoutNextGatesOnPaymentMethod(t *testing.T) {
	svc := newTestCheckout(t, nil)
	w := svc.Start("v1", newTestSet(t))
	w.UpdateDelivery(validDelivery())
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), ErrFieldsIncomplete)

	assert.ErrorIs(t, w.SetPaymentMethod("bitcoin"), ErrUnknownPayment)
	require.NoError(t, w.SetPaymentMethod("cod"))
	require.NoError(t, w.Next())
	assert.Equal(t, models.StepReview, w.Draft().Step)

	assert.ErrorIs(t, w.Next(), ErrNoFurtherStep)
}

func TestCheckoutBackKeepsEveryField(t *testing.T) {
	svc := newTestCheckout(t, nil)
	w := svc.Start("v1", newTestSet(t))
	walkToReview(t, w)

	w.Back()
	assert.Equal(t, models.StepPaymentMethod, w.Draft().Step)
	w.Back()
	assert.Equal(t, models.StepDeliveryDetails, w.Draft().Step)
	w.Back()
	assert.Equal(t, models.StepDeliveryDetails, w.Draft().Step)

	draft := w.Draft()
	assert.Equal(t, "Priya", draft.Name)
	assert.Equal(t, "upi", draft.PaymentMethod)
}

func TestCheckoutSummary(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 1)

	w := svc.Start("v1", set)
	subtotal, charge, total := w.Summary()
	assert.True(t, subtotal.Equal(decimal.NewFromInt(250)))
	assert.True(t, charge.Equal(decimal.NewFromInt(50)))
	assert.True(t, total.Equal(decimal.NewFromInt(300)))

	// A second line pushes the order over the free delivery threshold.
	set.Cart.AddLine(testCartProduct("2", 400), "1kg", "chocolate", 1)
	_, charge, total = w.Summary()
	assert.True(t, charge.IsZero())
	assert.True(t, total.Equal(decimal.NewFromInt(650)))
}

func TestCheckoutSubmitRequiresReviewStep(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 1)

	w := svc.Start("v1", set)
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	svc := newTestCheckout(t, nil)
	w := svc.Start("v1", newTestSet(t))
	walkToReview(t, w)

	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckoutSubmitPlacesOrder(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 2)

	w := svc.Start("v1", set)
	walkToReview(t, w)

	order, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.Code, "#BKS"))
	assert.Len(t, order.Code, len("#BKS")+8)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, order.DeliveryCharge.IsZero())
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Mumbai", order.DeliverTo.City)
	assert.Equal(t, "upi", order.PaymentMethod)

	assert.Equal(t, 0, set.Cart.TotalItems(), "cart clears on placement")
	assert.Equal(t, models.StepPlaced, w.Draft().Step)

	placed, ok := w.PlacedOrder()
	require.True(t, ok)
	assert.Equal(t, order.ID, placed.ID)

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyPlaced)
}

func TestCheckoutSubmitAccruesLoyaltyPoints(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)
	set.Session.Login(models.User{ID: "u1", Name: "Priya"})
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 1)

	w := svc.Start("v1", set)
	walkToReview(t, w)

	order, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, order.GrandTotal.Equal(decimal.NewFromInt(300)))

	u := set.Session.User()
	require.NotNil(t, u)
	require.Len(t, u.Orders, 1)
	assert.Equal(t, 3, u.LoyaltyPoints, "one point per hundred rupees")
}

func TestCheckoutSubmitGatewayFailureKeepsCart(t *testing.T) {
	svc := newTestCheckout(t, failingGateway{NewSimulatedGateway(0, zap.NewNop().Sugar())})
	set := newTestSet(t)
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 1)

	w := svc.Start("v1", set)
	walkToReview(t, w)

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, set.Cart.TotalItems(), "failed placement must not clear the cart")
	assert.Equal(t, models.StepReview, w.Draft().Step)
}

func TestCheckoutPlacedIsTerminal(t *testing.T) {
	svc := newTestCheckout(t, nil)
	set := newTestSet(t)
	set.Cart.AddLine(testCartProduct("1", 250), "1kg", "chocolate", 1)

	w := svc.Start("v1", set)
	walkToReview(t, w)
	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	w.Back()
	assert.Equal(t, models.StepPlaced, w.Draft().Step)

	w.UpdateDelivery(DeliveryForm{Name: "Someone Else"})
	assert.Equal(t, "Priya", w.Draft().Name)

	assert.ErrorIs(t, w.SetPaymentMethod("cod"), ErrAlreadyPlaced)
	assert.ErrorIs(t, w.Next(), ErrAlreadyPlaced)
}

func TestDisplayOrderCode(t *testing.T) {
	code := displayOrderCode(time.UnixMilli(1756400000123))
	assert.Equal(t, "#BKS00000123", code)
}
