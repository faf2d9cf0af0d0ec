package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/products
//
// Lists active products, newest first. The storefront never sees inactive
// products or internal file URLs.
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		items = append(items, publicProduct(&p))
	}

	utils.Success(c, "Products retrieved successfully", gin.H{"products": items})
}

// GET /v1/products/:id
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	var product models.Product
	if err := config.DB.Where("id = ? AND is_active = ?", c.Param("id"), true).First(&product).Error; err != nil {
		utils.LogError("Product not found: %s", c.Param("id"))
		utils.NotFound(c, "Product not found")
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": publicProduct(&product)})
}

// publicProduct strips fields buyers must not see before paying
func publicProduct(p *models.Product) gin.H {
	return gin.H{
		"id":            p.ID,
		"title":         p.Title,
		"description":   p.Description,
		"price":         p.Price,
		"price_display": utils.FormatRupiah(p.Price),
		"thumbnail_url": p.ThumbnailURL,
		"created_at":    p.CreatedAt,
	}
}
