package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRupee(t *testing.T) {
	assert.Equal(t, "₹0", Rupee(decimal.Zero))
	assert.Equal(t, "₹549", Rupee(decimal.NewFromInt(549)))
	assert.Equal(t, "₹1,299", Rupee(decimal.NewFromInt(1299)))
}
