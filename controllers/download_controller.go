package controllers

import (
	"net/http"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// GET /v1/downloads/:token
//
// Redeems a signed download token from an invoice email. The token expires
// after seven days and only resolves while the transaction is PAID.
func DownloadProduct(c *gin.Context) {
	utils.LogInfo("DownloadProduct called")

	transactionID, err := utils.ValidateDownloadToken(c.Param("token"))
	if err != nil {
		utils.LogError("Invalid download token: %v", err)
		utils.Unauthorized(c, "Download link is invalid or has expired")
		return
	}

	var transaction models.Transaction
	if err := config.DB.Preload("Product").Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		utils.LogError("Transaction not found for download: %s", transactionID)
		utils.NotFound(c, "Purchase not found")
		return
	}

	if transaction.Status != models.TransactionStatusPaid {
		utils.LogError("Download attempted for unpaid transaction %s (status %s)", transaction.ID, transaction.Status)
		utils.Forbidden(c, "Purchase has not been paid")
		return
	}

	utils.LogInfo("Serving download for transaction %s", transaction.ID)
	c.Redirect(http.StatusFound, transaction.Product.FileURL)
}
