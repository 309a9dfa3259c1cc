package models

// CheckoutStep is the closed set of checkout wizard states. The zero value
// is not a valid step; drafts are always created at StepDeliveryDetails.
type CheckoutStep int

const (
	StepDeliveryDetails CheckoutStep = iota + 1
	StepPaymentMethod
	StepReview
	StepPlaced
)

func (s CheckoutStep) String() string {
	switch s {
	case StepDeliveryDetails:
		return "delivery_details"
	case StepPaymentMethod:
		return "payment_method"
	case StepReview:
		return "review"
	case StepPlaced:
		return "placed"
	}
	return "unknown"
}

// CheckoutDraft is the transient checkout form record. It is never
// persisted; navigating back keeps every field intact, and the draft is
// discarded after submission or cancel.
type CheckoutDraft struct {
	Step CheckoutStep `json:"step"`

	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required,len=6,numeric"`

	DeliveryDate string `json:"delivery_date" validate:"required"`
	DeliverySlot string `json:"delivery_slot" validate:"required"`
	GiftMessage  string `json:"gift_message"`

	PaymentMethod string `json:"payment_method" validate:"required"`
}
