package localstore

import (
	"context"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/repository"
	"kirana/internal/infra/kvstore"
)

// productRepository implements repository.ProductRepository over the blob store.
type productRepository struct {
	store kvstore.Store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store kvstore.Store) repository.ProductRepository {
	return &productRepository{store: store}
}

// GetAll retrieves every product in insertion order.
func (repo *productRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	repo.store.Read(kvstore.KeyProducts, &products)

	return products, nil
}

// SaveAll overwrites the whole catalog.
func (repo *productRepository) SaveAll(ctx context.Context, products []entity.Product) error {
	return repo.store.Write(kvstore.KeyProducts, products)
}

// Add appends a product to the catalog.
func (repo *productRepository) Add(ctx context.Context, product entity.Product) error {
	products, _ := repo.GetAll(ctx)
	products = append(products, product)

	return repo.SaveAll(ctx, products)
}

// Update merges the supplied fields onto the matching record. A miss is a
// silent no-op, matching the accessor contract.
func (repo *productRepository) Update(ctx context.Context, id string, updates repository.ProductUpdate) error {
	products, _ := repo.GetAll(ctx)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		if updates.Name != nil {
			products[i].Name = *updates.Name
		}
		if updates.Price != nil {
			products[i].Price = *updates.Price
		}
		if updates.Available != nil {
			products[i].Available = *updates.Available
		}
		if updates.Category != nil {
			products[i].Category = *updates.Category
		}
	}

	return repo.SaveAll(ctx, products)
}

// Delete filters the product out of the catalog. A miss is a silent no-op.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	products, _ := repo.GetAll(ctx)
	kept := products[:0]
	for _, product := range products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}

	return repo.SaveAll(ctx, kept)
}

// FindByID retrieves one product, or ErrProductNotFound.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	products, _ := repo.GetAll(ctx)
	for i := range products {
		if products[i].ID == id {
			product := products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// cartRepository implements repository.CartRepository over the blob store.
type cartRepository struct {
	store kvstore.Store
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(store kvstore.Store) repository.CartRepository {
	return &cartRepository{store: store}
}

// Get retrieves the cart lines; an absent cart reads as empty.
func (repo *cartRepository) Get(ctx context.Context) ([]entity.CartItem, error) {
	items := []entity.CartItem{}
	repo.store.Read(kvstore.KeyCart, &items)

	return items, nil
}

// Save overwrites the cart wholesale.
func (repo *cartRepository) Save(ctx context.Context, items []entity.CartItem) error {
	return repo.store.Write(kvstore.KeyCart, items)
}

// Clear removes the cart blob entirely, as the original store did.
func (repo *cartRepository) Clear(ctx context.Context) error {
	return repo.store.Remove(kvstore.KeyCart)
}
