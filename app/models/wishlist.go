package models

// WishlistState is the wishlist snapshot: product snapshots unique by id,
// in insertion order, plus the sidebar visibility flag.
type WishlistState struct {
	Items  []Product `json:"items"`
	IsOpen bool      `json:"is_open"`
	Count  int       `json:"count"`
}
