package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminTransactionRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/admin/transactions", AdminListTransactions)
	router.GET("/v1/admin/transactions/:id", AdminGetTransaction)
	return router
}

func TestAdminListTransactions(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	createTestTransaction(t, db, product, models.TransactionStatusPaid)
	createTestTransaction(t, db, product, models.TransactionStatusPending)
	createTestTransaction(t, db, product, models.TransactionStatusFailed)

	w := performRequest(newAdminTransactionRouter(), http.MethodGet, "/v1/admin/transactions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	transactions := data["transactions"].([]interface{})
	assert.Len(t, transactions, 3)

	first := transactions[0].(map[string]interface{})
	assert.Equal(t, "Go Course", first["product_title"])
	assert.Equal(t, "Rp 50.000", first["price_display"])
}

func TestAdminListTransactionsStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	createTestTransaction(t, db, product, models.TransactionStatusPaid)
	pending := createTestTransaction(t, db, product, models.TransactionStatusPending)

	// Orphaned PENDING rows are found through the filter
	w := performRequest(newAdminTransactionRouter(), http.MethodGet, "/v1/admin/transactions?status=pending", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	transactions := resp["data"].(map[string]interface{})["transactions"].([]interface{})
	require.Len(t, transactions, 1)
	assert.Equal(t, pending.ID, transactions[0].(map[string]interface{})["id"])
}

func TestAdminListTransactionsRejectsUnknownStatus(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newAdminTransactionRouter(), http.MethodGet, "/v1/admin/transactions?status=REFUNDED", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminGetTransaction(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	transaction := createTestTransaction(t, db, product, models.TransactionStatusPaid)

	w := performRequest(newAdminTransactionRouter(), http.MethodGet, "/v1/admin/transactions/"+transaction.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	got := resp["data"].(map[string]interface{})["transaction"].(map[string]interface{})
	assert.Equal(t, transaction.ID, got["id"])
	assert.Equal(t, "buyer@example.com", got["buyer_email"])

	w = performRequest(newAdminTransactionRouter(), http.MethodGet, "/v1/admin/transactions/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
