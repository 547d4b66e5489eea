package services

import (
	"errors"
	"fmt"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// CartService maintains per-user line items.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem adds quantity of a product to the user's cart. A repeated add of
// the same product merges by summing quantity instead of creating a second
// row. The returned item carries a snapshot of the current product state.
//
// Quantity is passed through unchecked: zero and negative amounts are
// accepted, matching the behavior this API has always had.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "product_not_found", "Product not found")
		}
		return nil, err
	}

	item, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.cartRepo.Update(item); err != nil {
			return nil, err
		}
	case errors.Is(err, repositories.ErrNotFound):
		item = &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	item.Product = product
	return item, nil
}

// ListItems returns all of the user's cart items joined with current product
// snapshots. Price and availability reflect the catalog now, not the time of
// add; a dangling product reference yields a nil snapshot.
func (s *CartService) ListItems(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		product, err := s.productRepo.GetByID(items[i].ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load product %d: %w", items[i].ProductID, err)
		}
		items[i].Product = product
	}
	return items, nil
}

// RemoveItem deletes the cart row for the given product.
func (s *CartService) RemoveItem(userID, productID uint) error {
	if err := s.cartRepo.Delete(userID, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, "item_not_in_cart", "Item not in cart")
		}
		return err
	}
	return nil
}
