package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/crumbandco/bakeshop/app/catalog"
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoActiveCustomization = errors.New("no active customization")
	ErrUnknownOption         = errors.New("unknown option")
)

const (
	defaultMessageColor    = "#C41679"
	defaultCustomCakeImage = "/images/products/custom-cake.jpg"
)

// CustomizeService owns the per-visitor cake configurator wizards.
type CustomizeService struct {
	log *zap.SugaredLogger

	mu      sync.Mutex
	wizards map[string]*CustomizeWizard
}

func NewCustomizeService(log *zap.SugaredLogger) *CustomizeService {
	return &CustomizeService{
		log:     log,
		wizards: make(map[string]*CustomizeWizard),
	}
}

// Start opens a fresh configurator with the storefront defaults selected.
func (s *CustomizeService) Start(visitorID string, cart *stores.CartStore) *CustomizeWizard {
	w := &CustomizeWizard{
		svc:  s,
		cart: cart,
		draft: models.CustomizationDraft{
			Step:         models.StepShapeSize,
			Shape:        "round",
			Size:         "1kg",
			Flavor:       "chocolate",
			Frosting:     "buttercream",
			MessageColor: defaultMessageColor,
		},
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wizards[visitorID] = w
	return w
}

func (s *CustomizeService) Wizard(visitorID string) (*CustomizeWizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[visitorID]
	if !ok {
		return nil, ErrNoActiveCustomization
	}
	return w, nil
}

func (s *CustomizeService) Cancel(visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, visitorID)
}

// CustomizeWizard walks the five-step cake configurator over one draft.
// Shape, size, flavor, frosting and theme are single-select; decorations
// toggle in and out of a set. The running price is derived from the draft
// on every read.
type CustomizeWizard struct {
	svc  *CustomizeService
	cart *stores.CartStore

	mu    sync.Mutex
	draft models.CustomizationDraft
}

func (w *CustomizeWizard) Draft() models.CustomizationDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	d.Decorations = append([]string(nil), w.draft.Decorations...)
	return d
}

func (w *CustomizeWizard) SetShape(id string) error {
	if _, ok := catalog.FindOption(catalog.CakeShapes, id); !ok {
		return fmt.Errorf("%w: shape %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Shape = id
	return nil
}

func (w *CustomizeWizard) SetSize(id string) error {
	if _, ok := catalog.FindSize(id); !ok {
		return fmt.Errorf("%w: size %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Size = id
	return nil
}

func (w *CustomizeWizard) SetFlavor(id string) error {
	if _, ok := catalog.FindOption(catalog.CakeFlavors, id); !ok {
		return fmt.Errorf("%w: flavor %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Flavor = id
	return nil
}

func (w *CustomizeWizard) SetFrosting(id string) error {
	if _, ok := catalog.FindOption(catalog.FrostingTypes, id); !ok {
		return fmt.Errorf("%w: frosting %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Frosting = id
	return nil
}

// ToggleDecoration adds the decoration to the set, or removes it when
// already selected.
func (w *CustomizeWizard) ToggleDecoration(id string) error {
	if _, ok := catalog.FindOption(catalog.Decorations, id); !ok {
		return fmt.Errorf("%w: decoration %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, dec := range w.draft.Decorations {
		if dec == id {
			w.draft.Decorations = append(w.draft.Decorations[:i], w.draft.Decorations[i+1:]...)
			return nil
		}
	}
	w.draft.Decorations = append(w.draft.Decorations, id)
	return nil
}

func (w *CustomizeWizard) SetTheme(id string) error {
	if _, ok := catalog.FindOption(catalog.CakeThemes, id); !ok {
		return fmt.Errorf("%w: theme %s", ErrUnknownOption, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Theme = id
	return nil
}

func (w *CustomizeWizard) SetMessage(message, color string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Message = message
	if color != "" {
		w.draft.MessageColor = color
	}
}

// AttachImage stores the uploaded photo reference; an empty ref detaches
// it and drops the photo surcharge.
func (w *CustomizeWizard) AttachImage(ref string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.UploadedImage = ref
}

func (w *CustomizeWizard) SetSpecialInstructions(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.SpecialInstructions = text
}

func (w *CustomizeWizard) SetEggless(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.IsEggless = on
}

func (w *CustomizeWizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step >= models.StepCustomizeReview {
		return ErrNoFurtherStep
	}
	w.draft.Step++
	return nil
}

func (w *CustomizeWizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.Step > models.StepShapeSize {
		w.draft.Step--
	}
}

// Price computes the running total: size base price plus every selected
// delta, plus the eggless and photo surcharges. Unselected groups
// contribute zero.
func (w *CustomizeWizard) Price() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return priceOf(w.draft)
}

func priceOf(d models.CustomizationDraft) decimal.Decimal {
	total := decimal.Zero
	if size, ok := catalog.FindSize(d.Size); ok {
		total = total.Add(size.Price)
	}
	if shape, ok := catalog.FindOption(catalog.CakeShapes, d.Shape); ok {
		total = total.Add(shape.Price)
	}
	if flavor, ok := catalog.FindOption(catalog.CakeFlavors, d.Flavor); ok {
		total = total.Add(flavor.Price)
	}
	if frosting, ok := catalog.FindOption(catalog.FrostingTypes, d.Frosting); ok {
		total = total.Add(frosting.Price)
	}
	for _, id := range d.Decorations {
		if dec, ok := catalog.FindOption(catalog.Decorations, id); ok {
			total = total.Add(dec.Price)
		}
	}
	if d.IsEggless {
		total = total.Add(catalog.EgglessSurcharge)
	}
	if d.UploadedImage != "" {
		total = total.Add(catalog.PhotoUploadSurcharge)
	}
	return total
}

// Finish synthesizes a one-off product from the draft and pushes it into
// the cart through the normal add contract, with the chosen size as weight
// and flavor as flavor. The wizard is done afterwards; callers discard it
// via Cancel or by starting a new one.
func (w *CustomizeWizard) Finish() models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	flavorName := w.draft.Flavor
	if flavor, ok := catalog.FindOption(catalog.CakeFlavors, w.draft.Flavor); ok {
		flavorName = flavor.Name
	}
	image := w.draft.UploadedImage
	if image == "" {
		image = defaultCustomCakeImage
	}

	name := fmt.Sprintf("Custom %s Cake", flavorName)
	product := models.Product{
		ID:          "custom-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:        name,
		Slug:        slug.Make(name),
		Price:       priceOf(w.draft),
		Image:       image,
		Category:    "cakes",
		IsEggless:   w.draft.IsEggless,
		Weights:     []string{w.draft.Size},
		Flavors:     []string{w.draft.Flavor},
		Description: "Made-to-order custom cake.",
	}

	w.cart.AddLine(product, w.draft.Size, w.draft.Flavor, 1)
	w.svc.log.Infof("custom cake %s added to cart at %s", product.ID, product.Price)
	return product
}
