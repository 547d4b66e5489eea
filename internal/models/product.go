package models

// Product represents a catalog item. Quantity is the sole stock signal;
// there is no reservation or hold concept.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Description string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
}
