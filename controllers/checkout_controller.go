package controllers

import (
	"fmt"
	"os"

	"github.com/aditya-714/DevPorto/config"
	"github.com/aditya-714/DevPorto/models"
	"github.com/aditya-714/DevPorto/utils"
	"github.com/gin-gonic/gin"
)

// CheckoutRequest represents a purchase request for a single product
type CheckoutRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	BuyerEmail string `json:"buyer_email" binding:"required"`
	BuyerName  string `json:"buyer_name"`
}

// POST /v1/checkout
//
// Creates a PENDING transaction for the product, asks the gateway for a
// payment link and hands the link back to the buyer. The transaction write
// and the gateway call are deliberately not one atomic unit: a gateway
// failure leaves a PENDING row with no gateway id, visible to the admin for
// out-of-band cleanup.
func Checkout(c *gin.Context) {
	utils.LogInfo("Checkout called")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout request: %v", err)
		utils.BadRequest(c, "Invalid request. product_id and buyer_email are required", err.Error())
		return
	}

	if valid, msg := utils.ValidateEmail(req.BuyerEmail); !valid {
		utils.LogError("Invalid buyer email in checkout: %s", req.BuyerEmail)
		utils.BadRequest(c, msg, nil)
		return
	}

	db := config.DB
	var product models.Product
	if err := db.Where("id = ?", req.ProductID).First(&product).Error; err != nil {
		utils.LogError("Product not found for checkout: %s", req.ProductID)
		utils.NotFound(c, "Product not found or inactive")
		return
	}
	if !product.IsActive {
		utils.LogError("Checkout attempted against inactive product: %s", product.ID)
		utils.NotFound(c, "Product not found or inactive")
		return
	}
	utils.LogInfo("Processing checkout for product %s (%s)", product.ID, product.Title)

	// Price is captured now so later catalog edits cannot change what the
	// buyer owes.
	transaction := models.Transaction{
		ProductID:  product.ID,
		BuyerEmail: req.BuyerEmail,
		BuyerName:  req.BuyerName,
		Price:      product.Price,
		Status:     models.TransactionStatusPending,
	}
	if err := db.Create(&transaction).Error; err != nil {
		utils.LogError("Failed to create transaction for product %s: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to create transaction", err.Error())
		return
	}
	utils.LogInfo("Created PENDING transaction %s, amount %d", transaction.ID, transaction.Price)

	callbackURL := fmt.Sprintf("%s/v1/payments/oy/callback", os.Getenv("APP_BASE_URL"))
	payment, err := utils.CreateOYPayment(utils.OYCreatePaymentParams{
		Amount:      transaction.Price,
		BuyerEmail:  req.BuyerEmail,
		CallbackURL: callbackURL,
		Description: fmt.Sprintf("Purchase: %s", product.Title),
		PartnerTxID: transaction.ID,
	})
	if err != nil {
		utils.LogError("Gateway payment creation failed for transaction %s: %v", transaction.ID, err)
		utils.BadGateway(c, "Failed to create payment", err.Error())
		return
	}
	utils.LogInfo("Created payment link for transaction %s: %s", transaction.ID, payment.ReferenceID())

	if err := db.Model(&transaction).Update("oy_invoice_id", payment.ReferenceID()).Error; err != nil {
		utils.LogError("Failed to store gateway reference for transaction %s: %v", transaction.ID, err)
		utils.InternalServerError(c, "Failed to update transaction", err.Error())
		return
	}

	utils.Success(c, "Checkout created successfully", gin.H{
		"transaction_id": transaction.ID,
		"payment_url":    payment.PaymentLinkURL,
		"invoice_id":     payment.ReferenceID(),
		"amount":         utils.FormatRupiah(transaction.Price),
	})
}
