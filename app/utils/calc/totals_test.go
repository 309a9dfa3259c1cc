package calc

import (
	"testing"

	"github.com/crumbandco/bakeshop/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(price int64, qty int) models.CartLine {
	return models.CartLine{
		Product:  models.Product{ID: "p", Price: decimal.NewFromInt(price)},
		Quantity: qty,
	}
}

func TestTotalItems(t *testing.T) {
	assert.Equal(t, 0, TotalItems(nil))
	assert.Equal(t, 5, TotalItems([]models.CartLine{line(100, 2), line(200, 3)}))
}

func TestTotalPrice(t *testing.T) {
	assert.True(t, TotalPrice(nil).IsZero())

	got := TotalPrice([]models.CartLine{line(100, 2), line(200, 3)})
	assert.True(t, got.Equal(decimal.NewFromInt(800)), "got %s", got)
}

func TestDeliveryChargeThreshold(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		charge   int64
	}{
		{"below threshold pays surcharge", 499, 50},
		{"at threshold ships free", 500, 0},
		{"above threshold ships free", 1200, 0},
		{"empty order still pays", 0, 50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeliveryCharge(decimal.NewFromInt(tc.subtotal))
			assert.True(t, got.Equal(decimal.NewFromInt(tc.charge)), "got %s", got)
		})
	}
}

func TestFinalTotal(t *testing.T) {
	got := FinalTotal(decimal.NewFromInt(499))
	assert.True(t, got.Equal(decimal.NewFromInt(549)), "got %s", got)

	got = FinalTotal(decimal.NewFromInt(500))
	assert.True(t, got.Equal(decimal.NewFromInt(500)), "got %s", got)
}
