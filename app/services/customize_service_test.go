package services

import (
	"strings"
	"testing"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/crumbandco/bakeshop/app/stores"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCustomize(t *testing.T) (*CustomizeService, *stores.CartStore) {
	t.Helper()
	return NewCustomizeService(zap.NewNop().Sugar()), stores.NewCartStore()
}

func TestCustomizeStartDefaults(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	d := w.Draft()
	assert.Equal(t, models.StepShapeSize, d.Step)
	assert.Equal(t, "round", d.Shape)
	assert.Equal(t, "1kg", d.Size)
	assert.Equal(t, "chocolate", d.Flavor)
	assert.Equal(t, "buttercream", d.Frosting)
	assert.Equal(t, "#C41679", d.MessageColor)
	assert.Empty(t, d.Decorations)

	// Defaults price at the 1kg base with no deltas.
	assert.True(t, w.Price().Equal(decimal.NewFromInt(900)), "got %s", w.Price())
}

func TestCustomizeWizardLookup(t *testing.T) {
	svc, cart := newTestCustomize(t)

	_, err := svc.Wizard("v1")
	assert.ErrorIs(t, err, ErrNoActiveCustomization)

	started := svc.Start("v1", cart)
	found, err := svc.Wizard("v1")
	require.NoError(t, err)
	assert.Same(t, started, found)

	svc.Cancel("v1")
	_, err = svc.Wizard("v1")
	assert.ErrorIs(t, err, ErrNoActiveCustomization)
}

func TestCustomizeRejectsUnknownOptions(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	assert.ErrorIs(t, w.SetShape("triangle"), ErrUnknownOption)
	assert.ErrorIs(t, w.SetSize("10kg"), ErrUnknownOption)
	assert.ErrorIs(t, w.SetFlavor("durian"), ErrUnknownOption)
	assert.ErrorIs(t, w.SetFrosting("marzipan"), ErrUnknownOption)
	assert.ErrorIs(t, w.ToggleDecoration("fireworks"), ErrUnknownOption)
	assert.ErrorIs(t, w.SetTheme("space-opera"), ErrUnknownOption)

	// Rejected selections leave the draft untouched.
	d := w.Draft()
	assert.Equal(t, "round", d.Shape)
	assert.Equal(t, "1kg", d.Size)
}

func TestCustomizePriceAddsEveryDelta(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	require.NoError(t, w.SetSize("1kg"))
	require.NoError(t, w.SetShape("heart"))
	require.NoError(t, w.SetFlavor("strawberry"))
	require.NoError(t, w.SetFrosting("buttercream"))
	require.NoError(t, w.ToggleDecoration("sprinkles"))
	require.NoError(t, w.ToggleDecoration("flowers"))
	w.SetEggless(true)

	// 900 base + 100 heart + 50 strawberry + 0 buttercream
	// + 50 sprinkles + 150 flowers + 100 eggless
	assert.True(t, w.Price().Equal(decimal.NewFromInt(1350)), "got %s", w.Price())
}

func TestCustomizeToggleDecorationRemovesOnSecondToggle(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	require.NoError(t, w.ToggleDecoration("macarons"))
	assert.True(t, w.Draft().HasDecoration("macarons"))
	assert.True(t, w.Price().Equal(decimal.NewFromInt(1150)))

	require.NoError(t, w.ToggleDecoration("macarons"))
	assert.False(t, w.Draft().HasDecoration("macarons"))
	assert.True(t, w.Price().Equal(decimal.NewFromInt(900)))
}

func TestCustomizePhotoSurchargeFollowsAttachment(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	w.AttachImage("uploads/cake-photo.png")
	assert.True(t, w.Price().Equal(decimal.NewFromInt(1050)))

	w.AttachImage("")
	assert.True(t, w.Price().Equal(decimal.NewFromInt(900)))
}

func TestCustomizeStepNavigation(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	w.Back()
	assert.Equal(t, models.StepShapeSize, w.Draft().Step)

	for i := 0; i < 4; i++ {
		require.NoError(t, w.Next())
	}
	assert.Equal(t, models.StepCustomizeReview, w.Draft().Step)
	assert.ErrorIs(t, w.Next(), ErrNoFurtherStep)

	w.Back()
	assert.Equal(t, models.StepMessagePhoto, w.Draft().Step)
}

func TestCustomizeMessage(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	w.SetMessage("Happy Birthday!", "")
	d := w.Draft()
	assert.Equal(t, "Happy Birthday!", d.Message)
	assert.Equal(t, "#C41679", d.MessageColor, "empty color keeps the default")

	w.SetMessage("Happy Birthday!", "#000000")
	assert.Equal(t, "#000000", w.Draft().MessageColor)
}

func TestCustomizeFinishAddsToCart(t *testing.T) {
	svc, cart := newTestCustomize(t)
	w := svc.Start("v1", cart)

	require.NoError(t, w.SetFlavor("strawberry"))
	require.NoError(t, w.SetSize("2kg"))
	w.SetEggless(true)

	product := w.Finish()

	assert.True(t, strings.HasPrefix(product.ID, "custom-"))
	assert.Equal(t, "Custom Strawberry Cake", product.Name)
	assert.True(t, product.IsEggless)
	assert.Equal(t, []string{"2kg"}, product.Weights)
	assert.Equal(t, []string{"strawberry"}, product.Flavors)

	want := decimal.NewFromInt(1700 + 50 + 100) // 2kg base, strawberry, eggless
	assert.True(t, product.Price.Equal(want), "got %s", product.Price)

	state := cart.State()
	require.Len(t, state.Lines, 1)
	assert.Equal(t, product.ID, state.Lines[0].Product.ID)
	assert.Equal(t, "2kg", state.Lines[0].Weight)
	assert.Equal(t, "strawberry", state.Lines[0].Flavor)
	assert.Equal(t, 1, state.Lines[0].Quantity)
	assert.True(t, state.TotalPrice.Equal(want))
}
