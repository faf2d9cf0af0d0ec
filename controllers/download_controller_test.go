package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDownloadRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/downloads/:token", DownloadProduct)
	return router
}

func TestDownloadRedirectsForPaidTransaction(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	product := createTestProduct(t, db, 50000, true)
	transaction := createTestTransaction(t, db, product, models.TransactionStatusPaid)

	token, err := utils.GenerateDownloadToken(transaction.ID)
	require.NoError(t, err)

	w := performRequest(newDownloadRouter(), http.MethodGet, "/v1/downloads/"+token, nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, product.FileURL, w.Header().Get("Location"))
}

func TestDownloadRejectsUnpaidTransaction(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	product := createTestProduct(t, db, 50000, true)
	transaction := createTestTransaction(t, db, product, models.TransactionStatusPending)

	token, err := utils.GenerateDownloadToken(transaction.ID)
	require.NoError(t, err)

	w := performRequest(newDownloadRouter(), http.MethodGet, "/v1/downloads/"+token, nil, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDownloadRejectsInvalidToken(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	w := performRequest(newDownloadRouter(), http.MethodGet, "/v1/downloads/garbage", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDownloadRejectsUnknownTransaction(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateDownloadToken("no-such-transaction")
	require.NoError(t, err)

	w := performRequest(newDownloadRouter(), http.MethodGet, "/v1/downloads/"+token, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
