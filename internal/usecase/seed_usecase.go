package usecase

import "context"

// SeedUsecase populates the store with demo data (one owner, one shop, ten
// products) so a fresh install has something to browse. Seeding is skipped
// when any products already exist.
type SeedUsecase interface {
	Run(ctx context.Context) error
}
