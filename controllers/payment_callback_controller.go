package controllers

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// POST /v1/payments/oy/callback
//
// Reconciles an asynchronous payment notification from the gateway. The raw
// payload is persisted to the audit log before anything else, so even
// rejected or malformed deliveries leave a trace. Errors after the audit
// write still return non-2xx so the gateway's own retry policy redelivers.
func HandleOYCallback(c *gin.Context) {
	utils.LogInfo("HandleOYCallback called")

	rawBody, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read callback body: %v", err)
		utils.BadRequest(c, "Failed to read request body", err.Error())
		return
	}

	db := config.DB

	// Audit trail first, unconditionally.
	if err := db.Create(&models.CallbackLog{Payload: string(rawBody)}).Error; err != nil {
		utils.LogError("Failed to persist callback log: %v", err)
		utils.InternalServerError(c, "Failed to record callback", err.Error())
		return
	}

	if !utils.VerifyOYCallback(rawBody, c.GetHeader("X-Oy-Signature")) {
		utils.LogError("Callback signature verification failed")
		utils.Unauthorized(c, "Invalid signature")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		utils.LogError("Malformed callback payload: %v", err)
		utils.BadRequest(c, "Malformed callback payload", err.Error())
		return
	}

	reference := utils.ExtractOYReference(payload)
	if reference == "" {
		utils.LogError("No transaction reference in callback")
		utils.BadRequest(c, "Missing transaction reference", nil)
		return
	}
	utils.LogDebug("Callback references transaction %s", reference)

	// The reference may be our own transaction id (partner reference) or the
	// gateway's payment link id stored at checkout. First match wins.
	var transaction models.Transaction
	if err := db.Preload("Product").
		Where("id = ? OR oy_invoice_id = ?", reference, reference).
		First(&transaction).Error; err != nil {
		utils.LogError("Transaction not found for callback reference %s", reference)
		utils.NotFound(c, "Transaction not found")
		return
	}

	// Fast idempotency path for duplicate deliveries of a settled payment.
	if transaction.Status == models.TransactionStatusPaid {
		utils.LogInfo("Transaction %s already PAID, skipping", transaction.ID)
		utils.Success(c, "Already processed", gin.H{"status": transaction.Status})
		return
	}

	statusToken := utils.ExtractOYStatus(payload)
	newStatus := models.TransactionStatusFailed
	if utils.IsOYSuccessStatus(statusToken) {
		newStatus = models.TransactionStatusPaid
	}
	utils.LogInfo("Classified callback status %q as %s for transaction %s", statusToken, newStatus, transaction.ID)

	paymentMethod, _ := payload["payment_method"].(string)

	// The PENDING -> terminal transition is a single conditional write, so two
	// concurrent deliveries for the same transaction cannot both win: the
	// loser sees zero rows affected and sends nothing.
	result := db.Model(&models.Transaction{}).
		Where("id = ? AND status = ?", transaction.ID, models.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":           newStatus,
			"payment_method":   paymentMethod,
			"callback_payload": string(rawBody),
		})
	if result.Error != nil {
		utils.LogError("Failed to update transaction %s: %v", transaction.ID, result.Error)
		utils.InternalServerError(c, "Failed to update transaction", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		// Lost the race or the transaction was already terminal.
		if err := db.First(&transaction, "id = ?", transaction.ID).Error; err == nil {
			utils.LogInfo("Transaction %s already settled as %s, skipping", transaction.ID, transaction.Status)
			utils.Success(c, "Already processed", gin.H{"status": transaction.Status})
			return
		}
		utils.Success(c, "Already processed", gin.H{"status": models.TransactionStatusPaid})
		return
	}
	utils.LogInfo("Transaction %s moved to %s", transaction.ID, newStatus)

	if newStatus == models.TransactionStatusPaid {
		sendPaymentEmails(&transaction)
	}

	utils.Success(c, "Callback processed successfully", gin.H{"status": newStatus})
}

// sendPaymentEmails dispatches the buyer invoice and the admin sale alert.
// Email delivery is best effort: failures are logged and never unwind the
// status change.
func sendPaymentEmails(transaction *models.Transaction) {
	downloadURL := fmt.Sprintf("%s/v1/downloads/%s", os.Getenv("APP_BASE_URL"), transaction.ID)
	token, err := utils.GenerateDownloadToken(transaction.ID)
	if err != nil {
		utils.LogError("Failed to mint download token for transaction %s: %v", transaction.ID, err)
	} else {
		downloadURL = fmt.Sprintf("%s/v1/downloads/%s", os.Getenv("APP_BASE_URL"), token)
	}

	if utils.SendEmail(
		transaction.BuyerEmail,
		fmt.Sprintf("Your Purchase: %s", transaction.Product.Title),
		utils.GenerateInvoiceEmail(transaction.BuyerEmail, transaction.BuyerName, transaction.Product.Title, transaction.Price, downloadURL),
	) {
		utils.LogInfo("Invoice email sent to %s for transaction %s", transaction.BuyerEmail, transaction.ID)
	} else {
		utils.LogError("Failed to send invoice email for transaction %s", transaction.ID)
	}

	if utils.SendAdminSaleAlert(transaction.Product.Title, transaction.BuyerEmail, transaction.Price) {
		utils.LogInfo("Admin sale alert sent for transaction %s", transaction.ID)
	} else {
		utils.LogError("Failed to send admin sale alert for transaction %s", transaction.ID)
	}
}

// GET /v1/payments/oy/callback
//
// Liveness probe kept for gateway dashboard configuration checks.
func OYCallbackPing(c *gin.Context) {
	utils.Success(c, "OY! callback endpoint is active", gin.H{
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}
