package entity

// Product is a single catalog item belonging to one shop (via the owner id).
// Available is the only gate customer-facing listings apply.
type Product struct {
	ID          string `json:"id"`          // Opaque short identifier.
	ShopOwnerID string `json:"shopOwnerId"` // The owner whose shop sells this product.
	Name        string `json:"name"`        // Display name, e.g. "Toor Dal (1kg)".
	Price       int    `json:"price"`       // Price in whole currency units (₹).
	Available   bool   `json:"available"`   // Visibility gate for customer listings.
	Category    string `json:"category"`    // Free-form category label.
}

// CartItem pairs a product snapshot with a quantity. The cart stores the full
// product record, not just the id, so later catalog edits do not rewrite carts.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // Always >= 1; mutations below 1 remove the line.
}
