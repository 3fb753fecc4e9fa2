package entity

// OwnerProfile is the store owner's account record. The demo keeps a single
// owner per store, so the collection holds at most one profile.
type OwnerProfile struct {
	ID       string `json:"id"`       // Opaque short identifier.
	FullName string `json:"fullName"` // The owner's display name.
	Mobile   string `json:"mobile"`   // Mobile number, used as the login identifier.
	Email    string `json:"email"`    // Contact email.
	Password string `json:"password"` // Bcrypt hash of the registration password.
}

// ShopStatus is the ad hoc flag the admin surface toggles on a shop.
type ShopStatus string

const (
	ShopStatusActive    ShopStatus = "active"
	ShopStatusSuspended ShopStatus = "suspended"
)

// ShopAddress is the structured postal address of a shop.
type ShopAddress struct {
	HouseNumber string `json:"houseNumber"`
	Area        string `json:"area"`
	Landmark    string `json:"landmark"`
	PinCode     string `json:"pinCode"`
}

// Shop holds the storefront details an owner sets up once.
type Shop struct {
	OwnerID     string      `json:"ownerId"`          // The owner this shop belongs to.
	ShopName    string      `json:"shopName"`         // Display name of the shop.
	ShopType    string      `json:"shopType"`         // Free-form category, e.g. "General Store".
	ShopPhoto   string      `json:"shopPhoto"`        // Embedded photo data (data URL), may be empty.
	Address     ShopAddress `json:"address"`          // Structured postal address.
	GPSLocation string      `json:"gpsLocation"`      // "lat, lng" string as entered by the owner.
	OpeningTime string      `json:"openingTime"`      // HH:MM.
	ClosingTime string      `json:"closingTime"`      // HH:MM.
	WeeklyOff   string      `json:"weeklyOff"`        // Day name the shop is closed.
	Status      ShopStatus  `json:"status,omitempty"` // Set by the admin surface only; empty means active.
}
