package controllers

import (
	"strings"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/admin/transactions
//
// Lists purchase attempts newest first. The status filter makes orphaned
// PENDING transactions (gateway-creation failures) easy to find, since there
// is no automatic reconciliation sweep.
func AdminListTransactions(c *gin.Context) {
	utils.LogInfo("AdminListTransactions called")

	pagination := utils.NewPagination(c)
	query := config.DB.Model(&models.Transaction{})

	if status := strings.ToUpper(c.Query("status")); status != "" {
		switch status {
		case models.TransactionStatusPending, models.TransactionStatusPaid, models.TransactionStatusFailed:
			query = query.Where("status = ?", status)
		default:
			utils.BadRequest(c, "Invalid status filter. Use PENDING, PAID or FAILED", nil)
			return
		}
	}

	var total int64
	query.Count(&total)
	pagination.SetTotal(total)

	var transactions []models.Transaction
	if err := query.Preload("Product").Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions: %v", err)
		utils.InternalServerError(c, "Failed to fetch transactions", err.Error())
		return
	}

	items := make([]gin.H, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, gin.H{
			"id":            t.ID,
			"product_title": t.Product.Title,
			"buyer_email":   t.BuyerEmail,
			"buyer_name":    t.BuyerName,
			"price":         t.Price,
			"price_display": utils.FormatRupiah(t.Price),
			"status":        t.Status,
			"oy_invoice_id": t.OYInvoiceID,
			"created_at":    t.CreatedAt,
		})
	}

	utils.Success(c, "Transactions retrieved successfully", gin.H{
		"transactions": items,
		"pagination":   pagination.Meta(),
	})
}

// GET /v1/admin/transactions/:id
func AdminGetTransaction(c *gin.Context) {
	utils.LogInfo("AdminGetTransaction called")

	var transaction models.Transaction
	if err := config.DB.Preload("Product").Where("id = ?", c.Param("id")).First(&transaction).Error; err != nil {
		utils.LogError("Transaction not found: %s", c.Param("id"))
		utils.NotFound(c, "Transaction not found")
		return
	}

	utils.Success(c, "Transaction retrieved successfully", gin.H{"transaction": transaction})
}
