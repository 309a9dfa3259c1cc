package models

// User is the simulated session profile. It exists only for the lifetime of
// a login; nothing about it is verified and nothing survives a logout.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Avatar        string    `json:"avatar"`
	PasswordHash  string    `json:"-"`
	Addresses     []Address `json:"addresses"`
	Orders        []Order   `json:"orders"`
	LoyaltyPoints int       `json:"loyalty_points"`
}

const (
	AddressTypeHome  = "home"
	AddressTypeWork  = "work"
	AddressTypeOther = "other"
)

type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"is_default"`
}
