package models

import "time"

// Favorite is one (user, product) bookmark. At most one exists per pair.
type Favorite struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Product   string    `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteEntry is a favorite joined with its product for listing.
type FavoriteEntry struct {
	Favorite
	Item *Product `json:"productDetails,omitempty"`
}
