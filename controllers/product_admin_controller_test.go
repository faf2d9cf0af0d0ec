package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminProductRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/admin/products", AdminListProducts)
	router.POST("/v1/admin/products", CreateProduct)
	router.PUT("/v1/admin/products/:id", UpdateProduct)
	router.DELETE("/v1/admin/products/:id", DeleteProduct)
	return router
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)

	w := performRequest(newAdminProductRouter(), http.MethodPost, "/v1/admin/products", gin.H{
		"title":       "Go Course",
		"description": "A complete course",
		"price":       50000,
		"file_url":    "https://cdn.example.com/go-course.zip",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, db.First(&product, "title = ?", "Go Course").Error)
	assert.True(t, product.IsActive)
	assert.NotEmpty(t, product.ID)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newAdminProductRouter(), http.MethodPost, "/v1/admin/products", gin.H{
		"title":       "Free Thing",
		"description": "x",
		"price":       -5,
		"file_url":    "https://cdn.example.com/x.zip",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateProductRejectsBadFileURL(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newAdminProductRouter(), http.MethodPost, "/v1/admin/products", gin.H{
		"title":       "Go Course",
		"description": "x",
		"price":       50000,
		"file_url":    "not-a-url",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminListProductsIncludesInactive(t *testing.T) {
	db := setupTestDB(t)
	createTestProduct(t, db, 50000, true)
	createTestProduct(t, db, 75000, false)

	w := performRequest(newAdminProductRouter(), http.MethodGet, "/v1/admin/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	products := resp["data"].(map[string]interface{})["products"].([]interface{})
	assert.Len(t, products, 2)
}

func TestDeleteProductWithoutSalesRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)

	w := performRequest(newAdminProductRouter(), http.MethodDelete, "/v1/admin/products/"+product.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteProductWithSalesDeactivates(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	createTestTransaction(t, db, product, models.TransactionStatusPaid)

	w := performRequest(newAdminProductRouter(), http.MethodDelete, "/v1/admin/products/"+product.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The row survives so old transactions keep resolving
	var got models.Product
	require.NoError(t, db.First(&got, "id = ?", product.ID).Error)
	assert.False(t, got.IsActive)
}
