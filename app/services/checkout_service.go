package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/crumbandco/bakeshop/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoActiveCheckout = errors.New("no active checkout")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrNotAtReview      = errors.New("checkout is not at the review step")
	ErrAlreadyPlaced    = errors.New("order already placed")
	ErrUnknownPayment   = errors.New("unknown payment method")
	ErrNoFurtherStep    = errors.New("no further step")
	ErrFieldsIncomplete = errors.New("required fields incomplete")
)

// One loyalty point is earned per this many rupees of the grand total.
var loyaltyPointDivisor = decimal.NewFromInt(100)

// CheckoutService owns the per-visitor checkout wizards. A wizard exists
// from Start until Submit or Cancel; nothing about it is persisted.
type CheckoutService struct {
	gateway  Gateway
	validate *validator.Validate
	log      *zap.SugaredLogger

	mu      sync.Mutex
	wizards map[string]*CheckoutWizard
}

func NewCheckoutService(gateway Gateway, validate *validator.Validate, log *zap.SugaredLogger) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		validate: validate,
		log:      log,
		wizards:  make(map[string]*CheckoutWizard),
	}
}

// Start opens a fresh wizard for the visitor, discarding any previous
// draft. The preference city pre-fills the delivery form.
func (s *CheckoutService) Start(visitorID string, set *stores.Set) *CheckoutWizard {
	city := set.Preferences.City()
	if city == "" {
		city = catalog.Cities[0]
	}
	w := &CheckoutWizard{
		svc:     s,
		cart:    set.Cart,
		session: set.Session,
		draft:   models.CheckoutDraft{Step: models.StepDeliveryDetails, City: city},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[visitorID] = w
	return w
}

// Wizard returns the visitor's active wizard, if any.
func (s *CheckoutService) Wizard(visitorID string) (*CheckoutWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[visitorID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	return w, nil
}

// Cancel discards the visitor's draft; navigating away loses everything.
func (s *CheckoutService) Cancel(visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, visitorID)
}

// DeliveryForm carries the step-one fields from the view layer.
type DeliveryForm struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	DeliveryDate string `json:"delivery_date"`
	DeliverySlot string `json:"delivery_slot"`
	GiftMessage  string `json:"gift_message"`
}

// CheckoutWizard walks the three-step checkout flow over one draft.
// Backward navigation is unrestricted and loses nothing; forward steps are
// gated on minimal validity of the fields the step owns.
type CheckoutWizard struct {
	svc     *CheckoutService
	cart    *stores.CartStore
	session *stores.SessionStore

	mu     sync.Mutex
	draft  models.CheckoutDraft
	placed *models.Order
}

func (w *CheckoutWizard) Draft() models.CheckoutDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// UpdateDelivery writes the delivery fields into the draft. Allowed at any
// step so going back and editing never drops data.
func (w *CheckoutWizard) UpdateDelivery(form DeliveryForm) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step == models.StepPlaced {
		return
	}
	w.draft.Name = form.Name
	w.draft.Phone = form.Phone
	w.draft.Email = form.Email
	w.draft.Address = form.Address
	w.draft.City = form.City
	w.draft.Pincode = form.Pincode
	w.draft.DeliveryDate = form.DeliveryDate
	w.draft.DeliverySlot = form.DeliverySlot
	w.draft.GiftMessage = form.GiftMessage
}

// SetPaymentMethod records the chosen method.
func (w *CheckoutWizard) SetPaymentMethod(id string) error {
	if !catalog.IsPaymentMethod(id) {
		return fmt.Errorf("%w: %s", ErrUnknownPayment, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step == models.StepPlaced {
		return ErrAlreadyPlaced
	}
	w.draft.PaymentMethod = id
	return nil
}

// Next advances one step after validating the fields the current step
// owns. Review has no Next; submission is its own operation.
func (w *CheckoutWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.draft.Step {
	case models.StepDeliveryDetails:
		if err := w.svc.validate.StructPartial(w.draft,
			"Name", "Phone", "Email", "Address", "City", "Pincode",
			"DeliveryDate", "DeliverySlot"); err != nil {
			return fmt.Errorf("%w: %v", ErrFieldsIncomplete, err)
		}
		w.draft.Step = models.StepPaymentMethod
		return nil
	case models.StepPaymentMethod:
		if err := w.svc.validate.StructPartial(w.draft, "PaymentMethod"); err != nil {
			return fmt.Errorf("%w: %v", ErrFieldsIncomplete, err)
		}
		w.draft.Step = models.StepReview
		return nil
	case models.StepReview:
		return ErrNoFurtherStep
	default:
		return ErrAlreadyPlaced
	}
}

// Back steps backward without validation. Placed is terminal.
func (w *CheckoutWizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.draft.Step {
	case models.StepPaymentMethod:
		w.draft.Step = models.StepDeliveryDetails
	case models.StepReview:
		w.draft.Step = models.StepPaymentMethod
	}
}

// Summary recomputes the money lines from the live cart.
func (w *CheckoutWizard) Summary() (subtotal, charge, total decimal.Decimal) {
	subtotal = w.cart.TotalPrice()
	charge = calc.DeliveryCharge(subtotal)
	total = subtotal.Add(charge)
	return subtotal, charge, total
}

// Submit places the order from the review step: the simulated gateway
// confirms it, the cart is cleared, the wizard lands on the terminal
// Placed step, and a display-only order id is synthesized from the current
// timestamp. When a user is logged in the order joins their history and
// earns loyalty points. There is no undo.
func (w *CheckoutWizard) Submit(ctx context.Context) (models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step == models.StepPlaced {
		return models.Order{}, ErrAlreadyPlaced
	}
	if w.draft.Step != models.StepReview {
		return models.Order{}, ErrNotAtReview
	}

	state := w.cart.State()
	if len(state.Lines) == 0 {
		return models.Order{}, ErrCartEmpty
	}

	order := w.buildOrder(state)
	if err := w.svc.gateway.PlaceOrder(ctx, order.Code); err != nil {
		return models.Order{}, fmt.Errorf("failed to place order: %w", err)
	}

	w.cart.Clear()
	w.draft.Step = models.StepPlaced
	w.placed = &order

	points := int(order.GrandTotal.Div(loyaltyPointDivisor).IntPart())
	w.session.AppendOrder(order, points)

	if w.draft.Email != "" {
		if err := w.svc.gateway.SendOrderConfirmation(ctx, w.draft.Email, order.Code); err != nil {
			w.svc.log.Warnf("order %s placed but confirmation send failed: %v", order.Code, err)
		}
	}

	w.svc.log.Infof("order %s placed, %d items, total %s", order.Code, state.TotalItems, order.GrandTotal)
	return order, nil
}

// PlacedOrder returns the confirmation record once Submit has succeeded.
func (w *CheckoutWizard) PlacedOrder() (models.Order, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.placed == nil {
		return models.Order{}, false
	}
	return *w.placed, true
}

func (w *CheckoutWizard) buildOrder(state models.CartState) models.Order {
	items := make([]models.OrderItem, 0, len(state.Lines))
	for _, l := range state.Lines {
		items = append(items, models.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			Weight:    l.Weight,
			Flavor:    l.Flavor,
			Quantity:  l.Quantity,
			Price:     l.Product.Price,
			Subtotal:  l.Subtotal(),
		})
	}

	subtotal := state.TotalPrice
	charge := calc.DeliveryCharge(subtotal)

	return models.Order{
		ID:             uuid.New().String(),
		Code:           displayOrderCode(time.Now()),
		Date:           time.Now(),
		Status:         models.OrderStatusConfirmed,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCharge: charge,
		GrandTotal:     subtotal.Add(charge),
		DeliverTo: models.Address{
			ID:      uuid.New().String(),
			Type:    models.AddressTypeHome,
			Name:    w.draft.Name,
			Phone:   w.draft.Phone,
			Address: w.draft.Address,
			City:    w.draft.City,
			Pincode: w.draft.Pincode,
		},
		DeliveryDate:  w.draft.DeliveryDate,
		DeliverySlot:  w.draft.DeliverySlot,
		GiftMessage:   w.draft.GiftMessage,
		PaymentMethod: w.draft.PaymentMethod,
	}
}

// displayOrderCode derives the customer-facing order id from the
// timestamp, keeping its last eight digits.
func displayOrderCode(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "#BKS" + ms
}
