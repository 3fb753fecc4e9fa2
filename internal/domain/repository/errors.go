// Package repository defines the interfaces for the persistence layer.
package repository

import "errors"

// Domain-specific errors for persistence lookups. Deletes and partial
// updates on absent records are silent no-ops; only point lookups report
// a miss.
var (
	// ErrOwnerNotFound is returned when no owner profile has been registered.
	ErrOwnerNotFound = errors.New("owner profile not found")
	// ErrShopNotFound is returned when the shop has not been set up.
	ErrShopNotFound = errors.New("shop not found")
	// ErrProductNotFound is returned when a product lookup misses.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound is returned when an order lookup misses.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound is returned when no customer profile exists.
	ErrCustomerNotFound = errors.New("customer profile not found")
	// ErrRatingNotFound is returned when an order has no rating yet.
	ErrRatingNotFound = errors.New("rating not found")
)
