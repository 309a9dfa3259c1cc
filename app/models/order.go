package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Order is a placed-order record kept on the session user. Orders are
// display-only: reloading a session loses them, matching the simulated
// backend.
type Order struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Date           time.Time       `json:"date"`
	Status         string          `json:"status"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	DeliverTo      Address         `json:"deliver_to"`
	DeliveryDate   string          `json:"delivery_date"`
	DeliverySlot   string          `json:"delivery_slot"`
	GiftMessage    string          `json:"gift_message"`
	PaymentMethod  string          `json:"payment_method"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Weight    string          `json:"weight"`
	Flavor    string          `json:"flavor"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
