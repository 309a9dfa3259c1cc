package catalog

import "github.com/shopspring/decimal"

// Option is a selectable customization choice carrying a price delta.
// For sizes the price is the base price rather than a delta.
type Option struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Surcharges applied by the cake configurator.
var (
	EgglessSurcharge     = rupees(100)
	PhotoUploadSurcharge = rupees(150)
)

var CakeShapes = []Option{
	{ID: "round", Name: "Round", Price: rupees(0)},
	{ID: "square", Name: "Square", Price: rupees(50)},
	{ID: "heart", Name: "Heart", Price: rupees(100)},
	{ID: "rectangle", Name: "Rectangle", Price: rupees(75)},
	{ID: "number", Name: "Number Shape", Price: rupees(150)},
	{ID: "letter", Name: "Letter Shape", Price: rupees(150)},
}

// CakeSizes carry the base price; Serves is display metadata.
var CakeSizes = []SizeOption{
	{Option: Option{ID: "0.5kg", Name: "0.5 Kg", Price: rupees(500)}, Serves: "4-6"},
	{Option: Option{ID: "1kg", Name: "1 Kg", Price: rupees(900)}, Serves: "8-10"},
	{Option: Option{ID: "1.5kg", Name: "1.5 Kg", Price: rupees(1300)}, Serves: "12-15"},
	{Option: Option{ID: "2kg", Name: "2 Kg", Price: rupees(1700)}, Serves: "18-20"},
	{Option: Option{ID: "3kg", Name: "3 Kg", Price: rupees(2500)}, Serves: "25-30"},
	{Option: Option{ID: "5kg", Name: "5 Kg", Price: rupees(4000)}, Serves: "40-50"},
}

type SizeOption struct {
	Option
	Serves string `json:"serves"`
}

var CakeFlavors = []Option{
	{ID: "chocolate", Name: "Chocolate", Price: rupees(0)},
	{ID: "vanilla", Name: "Vanilla", Price: rupees(0)},
	{ID: "strawberry", Name: "Strawberry", Price: rupees(50)},
	{ID: "butterscotch", Name: "Butterscotch", Price: rupees(50)},
	{ID: "red-velvet", Name: "Red Velvet", Price: rupees(100)},
	{ID: "black-forest", Name: "Black Forest", Price: rupees(100)},
	{ID: "pineapple", Name: "Pineapple", Price: rupees(50)},
	{ID: "mango", Name: "Mango", Price: rupees(75)},
	{ID: "blueberry", Name: "Blueberry", Price: rupees(100)},
	{ID: "coffee", Name: "Coffee", Price: rupees(75)},
}

var FrostingTypes = []Option{
	{ID: "buttercream", Name: "Buttercream", Price: rupees(0)},
	{ID: "fondant", Name: "Fondant", Price: rupees(200)},
	{ID: "whipped-cream", Name: "Whipped Cream", Price: rupees(50)},
	{ID: "cream-cheese", Name: "Cream Cheese", Price: rupees(100)},
	{ID: "ganache", Name: "Chocolate Ganache", Price: rupees(150)},
}

var Decorations = []Option{
	{ID: "sprinkles", Name: "Sprinkles", Price: rupees(50)},
	{ID: "flowers", Name: "Edible Flowers", Price: rupees(150)},
	{ID: "fruits", Name: "Fresh Fruits", Price: rupees(200)},
	{ID: "chocolate-drip", Name: "Chocolate Drip", Price: rupees(100)},
	{ID: "macarons", Name: "Macarons", Price: rupees(250)},
	{ID: "gold-leaf", Name: "Gold Leaf", Price: rupees(300)},
	{ID: "candles", Name: "Candles", Price: rupees(50)},
	{ID: "toppers", Name: "Cake Topper", Price: rupees(150)},
}

var CakeThemes = []Option{
	{ID: "birthday", Name: "Birthday"},
	{ID: "wedding", Name: "Wedding"},
	{ID: "anniversary", Name: "Anniversary"},
	{ID: "baby-shower", Name: "Baby Shower"},
	{ID: "graduation", Name: "Graduation"},
	{ID: "valentines", Name: "Valentine's"},
	{ID: "christmas", Name: "Christmas"},
	{ID: "custom", Name: "Custom Theme"},
}

// FindOption looks an option up by id within a group.
func FindOption(group []Option, id string) (Option, bool) {
	for _, o := range group {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// FindSize looks a size up by id.
func FindSize(id string) (SizeOption, bool) {
	for _, s := range CakeSizes {
		if s.ID == id {
			return s, true
		}
	}
	return SizeOption{}, false
}

var DeliverySlots = []string{
	"9:00 AM - 12:00 PM",
	"12:00 PM - 3:00 PM",
	"3:00 PM - 6:00 PM",
	"6:00 PM - 9:00 PM",
	"Midnight (11:45 PM - 12:15 AM)",
}

type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var PaymentMethods = []PaymentMethod{
	{ID: "upi", Name: "UPI", Description: "Google Pay, PhonePe, Paytm"},
	{ID: "card", Name: "Credit/Debit Card", Description: "Visa, Mastercard, Rupay"},
	{ID: "wallet", Name: "Wallet", Description: "Paytm, Amazon Pay, MobiKwik"},
	{ID: "cod", Name: "Cash on Delivery", Description: "Pay when you receive"},
	{ID: "emi", Name: "EMI", Description: "Easy monthly installments"},
	{ID: "paylater", Name: "Pay Later", Description: "Simpl, LazyPay, ZestMoney"},
}

// IsPaymentMethod reports whether id names a supported payment method.
func IsPaymentMethod(id string) bool {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return true
		}
	}
	return false
}

var Cities = []string{
	"Mumbai", "Pune", "Delhi", "Bengaluru", "Hyderabad", "Chennai", "Kolkata",
}

var Languages = []string{"en", "hi", "mr"}
