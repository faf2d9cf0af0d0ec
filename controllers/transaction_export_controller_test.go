package controllers

import (
	"net/http"
	"testing"

	"github.com/aditya-714/DevPorto/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportRouter() *gin.Engine {
	router := gin.New()
	router.GET("/v1/admin/reports/sales/excel", DownloadSalesReportExcel)
	router.GET("/v1/admin/reports/sales/pdf", DownloadSalesReportPDF)
	router.GET("/v1/admin/transactions/:id/invoice", DownloadTransactionInvoice)
	return router
}

func TestDownloadSalesReportExcel(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	createTestTransaction(t, db, product, models.TransactionStatusPaid)
	createTestTransaction(t, db, product, models.TransactionStatusFailed)

	w := performRequest(newExportRouter(), http.MethodGet, "/v1/admin/reports/sales/excel?period=day", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_report_day.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestDownloadSalesReportPDF(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	createTestTransaction(t, db, product, models.TransactionStatusPaid)

	w := performRequest(newExportRouter(), http.MethodGet, "/v1/admin/reports/sales/pdf?period=week", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_report_week.pdf")
	// PDF files start with the %PDF magic
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestDownloadSalesReportRejectsBadPeriod(t *testing.T) {
	setupTestDB(t)

	w := performRequest(newExportRouter(), http.MethodGet, "/v1/admin/reports/sales/excel?period=year", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadTransactionInvoice(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, 50000, true)
	transaction := createTestTransaction(t, db, product, models.TransactionStatusPaid)

	w := performRequest(newExportRouter(), http.MethodGet, "/v1/admin/transactions/"+transaction.ID+"/invoice", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), transaction.ID)
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	w = performRequest(newExportRouter(), http.MethodGet, "/v1/admin/transactions/nope/invoice", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
