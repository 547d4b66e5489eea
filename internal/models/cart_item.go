package models

// CartItem associates a user with a product and a quantity. Exactly one row
// exists per (user, product) pair; repeated adds merge by summing quantity.
//
// The product reference is weak: deleting the product leaves the row behind,
// and Product is nil when the snapshot cannot be resolved.
type CartItem struct {
	ID        uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint     `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	ProductID uint     `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;not null"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty" gorm:"-"`
}
