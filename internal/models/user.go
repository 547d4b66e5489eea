package models

// User represents a registered account. The password hash is never
// serialized; IsAdmin gates the administrative surface.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password string `json:"-" gorm:"type:varchar(255)"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`
}
