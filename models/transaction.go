package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction status constants
const (
	TransactionStatusPending = "PENDING"
	TransactionStatusPaid    = "PAID"
	TransactionStatusFailed  = "FAILED"
)

// Transaction represents one purchase attempt. It is created PENDING by the
// checkout flow and moved to exactly one terminal status (PAID or FAILED) by
// the payment callback. The transaction id doubles as the partner reference
// sent to the payment gateway.
type Transaction struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID       string    `json:"product_id" gorm:"size:36;not null;index"`
	Product         Product   `json:"product" gorm:"foreignKey:ProductID"`
	BuyerEmail      string    `json:"buyer_email" gorm:"not null"`
	BuyerName       string    `json:"buyer_name"`
	Price           int       `json:"price" gorm:"not null"` // captured at checkout, whole rupiah
	Status          string    `json:"status" gorm:"default:'PENDING';index"`
	PaymentMethod   string    `json:"payment_method"`
	OYInvoiceID     string    `json:"oy_invoice_id" gorm:"column:oy_invoice_id;index"`
	CallbackPayload string    `json:"callback_payload" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate assigns the UUID used as the gateway partner_tx_id.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// CallbackLog is the append-only audit trail of every raw webhook payload the
// gateway delivered, stored before any verification or processing. Rows are
// never updated or deleted.
type CallbackLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Payload   string    `json:"payload" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
