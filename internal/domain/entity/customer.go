package entity

import "time"

// CustomerProfile is the customer's account record. As with the owner, the
// demo keeps a single profile per store.
type CustomerProfile struct {
	ID     string `json:"id"`
	Mobile string `json:"mobile"` // Login identifier for the OTP flow.
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
}

// AddressLabel categorizes a saved delivery address.
type AddressLabel string

const (
	AddressLabelHome   AddressLabel = "Home"
	AddressLabelOffice AddressLabel = "Office"
	AddressLabelOther  AddressLabel = "Other"
)

// CustomerAddress is a saved delivery address.
type CustomerAddress struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"customerId"`
	HouseNumber string       `json:"houseNumber"`
	Street      string       `json:"street"`
	Landmark    string       `json:"landmark"`
	PinCode     string       `json:"pinCode"`
	GPSLocation string       `json:"gpsLocation"` // "lat, lng" string, may be empty.
	Label       AddressLabel `json:"label"`
}

// Rating is the customer's feedback for one delivered order. At most one
// rating exists per order id.
type Rating struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	CustomerID     string    `json:"customerId"`
	StoreRating    int       `json:"storeRating"`    // 1-5.
	DeliveryRating int       `json:"deliveryRating"` // 1-5.
	Feedback       string    `json:"feedback"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SavedList is a named set of product ids the customer can re-cart in one tap.
type SavedList struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Name       string    `json:"name"`
	ProductIDs []string  `json:"productIds"`
	CreatedAt  time.Time `json:"createdAt"`
}
