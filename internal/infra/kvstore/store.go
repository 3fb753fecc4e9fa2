// Package kvstore provides the embedded key-value blob store every
// collection is persisted in. Values are serialized as JSON wholesale under a
// fixed key; there are no partial updates and no indexing. Callers
// read-modify-write the whole collection on every mutation, which is safe
// only under the single-writer assumption of one interactive process.
package kvstore

// Store is the persistence contract. Read never fails outward: on a missing
// key, a parse failure, or any I/O error it leaves out untouched, so the
// caller's pre-populated fallback value survives. Write serializes the full
// value and overwrites the key, last-write-wins.
type Store interface {
	Read(key string, out any)
	Write(key string, value any) error
	Remove(key string) error
}

// Fixed storage keys. The names match the original browser store so a data
// directory imported from an exported browser session stays readable.
const (
	KeyOwnerProfile    = "kc_owner"
	KeyShop            = "kc_shop"
	KeyProducts        = "kc_products"
	KeyOrders          = "kc_orders"
	KeyCart            = "kc_cart"
	KeyOwnerNotifs     = "kc_owner_notifs"
	KeyCustomerNotifs  = "kc_customer_notifs"
	KeyCustomerProfile = "kc_customer"
	KeyAddresses       = "kc_addresses"
	KeyRatings         = "kc_ratings"
	KeySavedLists      = "kc_saved_lists"
	KeyCustomerBlocked = "kc_customer_blocked"
	KeyOwnerSuspended  = "kc_owner_suspended"
)
