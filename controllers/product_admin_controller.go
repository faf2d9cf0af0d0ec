package controllers

import (
	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// ProductRequest represents the admin create/update payload for a product
type ProductRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Price        int    `json:"price" binding:"required"`
	FileURL      string `json:"file_url" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsActive     *bool  `json:"is_active"`
}

// GET /v1/admin/products
func AdminListProducts(c *gin.Context) {
	utils.LogInfo("AdminListProducts called")

	pagination := utils.NewPagination(c)
	var total int64
	config.DB.Model(&models.Product{}).Count(&total)
	pagination.SetTotal(total)

	var products []models.Product
	if err := config.DB.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved successfully", gin.H{
		"products":   products,
		"pagination": pagination.Meta(),
	})
}

// POST /v1/admin/products
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product request: %v", err)
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}
	if req.Price <= 0 {
		utils.ValidationError(c, "Price must be a positive amount", nil)
		return
	}
	if valid, msg := utils.ValidateURL(req.FileURL); !valid {
		utils.ValidationError(c, msg, nil)
		return
	}

	product := models.Product{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		FileURL:      req.FileURL,
		ThumbnailURL: req.ThumbnailURL,
		IsActive:     true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Created product %s (%s)", product.ID, product.Title)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// PUT /v1/admin/products/:id
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		utils.LogError("Product not found for update: %s", c.Param("id"))
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product update request: %v", err)
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}
	if req.Price <= 0 {
		utils.ValidationError(c, "Price must be a positive amount", nil)
		return
	}

	updates := map[string]interface{}{
		"title":         req.Title,
		"description":   req.Description,
		"price":         req.Price,
		"file_url":      req.FileURL,
		"thumbnail_url": req.ThumbnailURL,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product %s: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DELETE /v1/admin/products/:id
//
// Products referenced by transactions are deactivated instead of deleted so
// the ledger keeps resolving.
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

	var product models.Product
	if err := config.DB.Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		utils.LogError("Product not found for delete: %s", c.Param("id"))
		utils.NotFound(c, "Product not found")
		return
	}

	var transactionCount int64
	config.DB.Model(&models.Transaction{}).Where("product_id = ?", product.ID).Count(&transactionCount)
	if transactionCount > 0 {
		if err := config.DB.Model(&product).Update("is_active", false).Error; err != nil {
			utils.LogError("Failed to deactivate product %s: %v", product.ID, err)
			utils.InternalServerError(c, "Failed to deactivate product", err.Error())
			return
		}
		utils.Success(c, "Product has sales and was deactivated instead of deleted", gin.H{"product": product})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %s: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.Success(c, "Product deleted successfully", nil)
}
