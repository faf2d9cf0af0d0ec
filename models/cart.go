package models

import (
	"gorm.io/gorm"
)

// Cart represents a guest shopping cart keyed by the visitor's session id.
// There is no buyer account system; the cart survives as long as the cookie.
type Cart struct {
	gorm.Model
	SessionID string     `json:"session_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
}

// CartItem represents one product line in a cart
type CartItem struct {
	gorm.Model
	CartID    uint    `json:"cart_id" gorm:"index:idx_cart_product,unique"`
	ProductID string  `json:"product_id" gorm:"size:36;index:idx_cart_product,unique"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
}
