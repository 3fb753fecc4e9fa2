package impl

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/errors"
	"kirana/internal/usecase"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(productRepo repository.ProductRepository) usecase.CatalogUsecase {
	return &catalogService{productRepo: productRepo}
}

// AddProduct appends a product to the owner's catalog.
func (s *catalogService) AddProduct(ctx context.Context, ownerID string, input *usecase.AddProductInput) (*entity.Product, error) {
	product := entity.Product{
		ID:          entity.NewID(),
		ShopOwnerID: ownerID,
		Name:        input.Name,
		Price:       input.Price,
		Available:   input.Available,
		Category:    input.Category,
	}

	if err := s.productRepo.Add(ctx, product); err != nil {
		return nil, errors.Wrap(err, "add product")
	}

	return &product, nil
}

// UpdateProduct merges the supplied fields onto the product. Unknown ids are
// a silent no-op.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, input *usecase.UpdateProductInput) error {
	updates := repository.ProductUpdate{
		Name:      input.Name,
		Price:     input.Price,
		Available: input.Available,
		Category:  input.Category,
	}

	return s.productRepo.Update(ctx, id, updates)
}

// DeleteProduct removes the product. Placed orders keep their snapshots.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// SetAvailability toggles the customer-visibility gate.
func (s *catalogService) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.productRepo.Update(ctx, id, repository.ProductUpdate{Available: &available})
}

// ListAll returns the whole catalog for the owner surface.
func (s *catalogService) ListAll(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// ListAvailable returns exactly the subset with Available=true. Availability
// is the only gate applied; category narrows the result when non-empty.
func (s *catalogService) ListAvailable(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if !product.Available {
			continue
		}
		if category != "" && product.Category != category {
			continue
		}
		visible = append(visible, product)
	}

	return visible, nil
}
