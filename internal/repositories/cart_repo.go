package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart item data access.
type CartRepository interface {
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	GetByUser(userID uint) ([]models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(userID, productID uint) error
}
