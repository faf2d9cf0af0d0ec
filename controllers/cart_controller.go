package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionKey = "cart_session"

// cartForSession finds or creates the cart bound to the visitor's session
// cookie. Buyers are anonymous, so the session id is the only cart owner.
func cartForSession(c *gin.Context, create bool) (*models.Cart, error) {
	session := sessions.Default(c)

	sessionID, _ := session.Get(cartSessionKey).(string)
	if sessionID == "" {
		if !create {
			return nil, nil
		}
		sessionID = uuid.New().String()
		session.Set(cartSessionKey, sessionID)
		if err := session.Save(); err != nil {
			return nil, utils.WrapError(err, "failed to save cart session")
		}
	}

	var cart models.Cart
	err := config.DB.Preload("Items.Product").Where("session_id = ?", sessionID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !create {
		return nil, nil
	}

	cart = models.Cart{SessionID: sessionID}
	if err := config.DB.Create(&cart).Error; err != nil {
		return nil, utils.WrapError(err, "failed to create cart")
	}
	return &cart, nil
}

// GET /v1/cart
func GetCart(c *gin.Context) {
	utils.LogInfo("GetCart called")

	cart, err := cartForSession(c, false)
	if err != nil {
		utils.LogError("Failed to load cart: %v", err)
		utils.InternalServerError(c, "Failed to fetch cart", err.Error())
		return
	}

	items := []gin.H{}
	total := 0
	if cart != nil {
		for _, item := range cart.Items {
			items = append(items, gin.H{
				"id":       item.ID,
				"product":  publicProduct(&item.Product),
				"quantity": item.Quantity,
				"subtotal": item.Product.Price * item.Quantity,
			})
			total += item.Product.Price * item.Quantity
		}
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{
		"items":         items,
		"total":         total,
		"total_display": utils.FormatRupiah(total),
	})
}

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /v1/cart
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid add-to-cart request: %v", err)
		utils.BadRequest(c, "Invalid request. product_id is required", err.Error())
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND is_active = ?", req.ProductID, true).First(&product).Error; err != nil {
		utils.LogError("Product not found for cart: %s", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	cart, err := cartForSession(c, true)
	if err != nil {
		utils.LogError("Failed to load cart: %v", err)
		utils.InternalServerError(c, "Failed to fetch cart", err.Error())
		return
	}

	var item models.CartItem
	if err := config.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error; err == nil {
		if err := config.DB.Model(&item).Update("quantity", item.Quantity+req.Quantity).Error; err != nil {
			utils.LogError("Failed to update cart item %d: %v", item.ID, err)
			utils.InternalServerError(c, "Failed to update cart", err.Error())
			return
		}
	} else {
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: req.Quantity}
		if err := config.DB.Create(&item).Error; err != nil {
			utils.LogError("Failed to add cart item: %v", err)
			utils.InternalServerError(c, "Failed to add to cart", err.Error())
			return
		}
	}

	utils.Success(c, "Added to cart", gin.H{"item_id": item.ID})
}

// UpdateCartItemRequest represents the quantity-change payload
type UpdateCartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// PUT /v1/cart
func UpdateCartItem(c *gin.Context) {
	utils.LogInfo("UpdateCartItem called")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid cart update request: %v", err)
		utils.BadRequest(c, "Invalid request. item_id is required", err.Error())
		return
	}
	if req.Quantity < 0 {
		utils.BadRequest(c, "Quantity cannot be negative", nil)
		return
	}

	cart, err := cartForSession(c, false)
	if err != nil || cart == nil {
		utils.NotFound(c, "Cart not found")
		return
	}

	var item models.CartItem
	if err := config.DB.Where("id = ? AND cart_id = ?", req.ItemID, cart.ID).First(&item).Error; err != nil {
		utils.LogError("Cart item not found: %d", req.ItemID)
		utils.NotFound(c, "Cart item not found")
		return
	}

	if req.Quantity == 0 {
		if err := config.DB.Delete(&item).Error; err != nil {
			utils.LogError("Failed to remove cart item %d: %v", item.ID, err)
			utils.InternalServerError(c, "Failed to update cart", err.Error())
			return
		}
		utils.Success(c, "Item removed from cart", nil)
		return
	}

	if err := config.DB.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		utils.LogError("Failed to update cart item %d: %v", item.ID, err)
		utils.InternalServerError(c, "Failed to update cart", err.Error())
		return
	}

	utils.Success(c, "Cart updated", nil)
}

// DELETE /v1/cart/items/:id
func RemoveCartItem(c *gin.Context) {
	utils.LogInfo("RemoveCartItem called")

	cart, err := cartForSession(c, false)
	if err != nil || cart == nil {
		utils.NotFound(c, "Cart not found")
		return
	}

	result := config.DB.Where("id = ? AND cart_id = ?", c.Param("id"), cart.ID).Delete(&models.CartItem{})
	if result.Error != nil {
		utils.LogError("Failed to remove cart item: %v", result.Error)
		utils.InternalServerError(c, "Failed to update cart", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Cart item not found")
		return
	}

	utils.Success(c, "Item removed from cart", nil)
}

// DELETE /v1/cart
func ClearCart(c *gin.Context) {
	utils.LogInfo("ClearCart called")

	cart, err := cartForSession(c, false)
	if err != nil || cart == nil {
		utils.Success(c, "Cart cleared", nil)
		return
	}

	if err := config.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart %d: %v", cart.ID, err)
		utils.InternalServerError(c, "Failed to clear cart", err.Error())
		return
	}

	utils.Success(c, "Cart cleared", nil)
}
