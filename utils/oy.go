package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// oyHTTPClient is shared by all gateway calls. The gateway is the only
// external HTTP dependency on the checkout path, so the timeout here bounds
// how long a buyer can be kept waiting.
var oyHTTPClient = &http.Client{Timeout: 15 * time.Second}

// OYCreatePaymentParams are the inputs for creating a payment link
type OYCreatePaymentParams struct {
	Amount      int
	BuyerEmail  string
	CallbackURL string
	Description string
	PartnerTxID string
}

// OYCreatePaymentResponse mirrors the payment-checkout/create-v2 response
type OYCreatePaymentResponse struct {
	Status struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	PaymentLinkID  string `json:"payment_link_id"`
	PaymentLinkURL string `json:"payment_link_url"`
	InvoiceID      string `json:"invoice_id"`
}

// ReferenceID returns the gateway identifier stored on the transaction,
// preferring the payment link id over the invoice id.
func (r *OYCreatePaymentResponse) ReferenceID() string {
	if r.PaymentLinkID != "" {
		return r.PaymentLinkID
	}
	return r.InvoiceID
}

func oyBaseURL() string {
	if base := os.Getenv("OY_BASE_URL"); base != "" {
		return base
	}
	return "https://api-stg.oyindonesia.com"
}

// CreateOYPayment creates a payment link with OY! Indonesia
func CreateOYPayment(params OYCreatePaymentParams) (*OYCreatePaymentResponse, error) {
	body := map[string]interface{}{
		"partner_tx_id":                 params.PartnerTxID,
		"description":                   params.Description,
		"notes":                         params.Description,
		"sender_name":                   params.BuyerEmail,
		"amount":                        params.Amount,
		"email":                         params.BuyerEmail,
		"phone_number":                  "",
		"is_open":                       false,
		"step":                          "input-amount",
		"include_admin_fee":             false,
		"list_disabled_payment_methods": "",
		"list_enabled_banks":            "",
		"expiration":                    PaymentLinkExpirationMinutes,
	}
	if params.PartnerTxID == "" {
		body["partner_tx_id"] = fmt.Sprintf("TX-%d", time.Now().UnixMilli())
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, WrapError(err, "failed to encode payment request")
	}

	req, err := http.NewRequest(http.MethodPost, oyBaseURL()+"/api/payment-checkout/create-v2", bytes.NewReader(payload))
	if err != nil {
		return nil, WrapError(err, "failed to build payment request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Oy-Username", os.Getenv("OY_API_KEY"))
	req.Header.Set("X-Api-Key", os.Getenv("OY_API_KEY"))

	resp, err := oyHTTPClient.Do(req)
	if err != nil {
		return nil, WrapError(err, "payment gateway unreachable")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WrapError(err, "failed to read gateway response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment gateway returned status %d: %s", resp.StatusCode, data)
	}

	var out OYCreatePaymentResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, WrapError(err, "failed to decode gateway response")
	}
	if out.ReferenceID() == "" || out.PaymentLinkURL == "" {
		return nil, fmt.Errorf("payment gateway response missing payment link: %s", data)
	}

	return &out, nil
}

// CheckOYPaymentStatus queries the gateway for the current status of a
// payment by its partner reference.
func CheckOYPaymentStatus(partnerTxID string) (map[string]interface{}, error) {
	req, err := http.NewRequest(http.MethodGet, oyBaseURL()+"/api/payment-checkout/status", nil)
	if err != nil {
		return nil, WrapError(err, "failed to build status request")
	}
	q := url.Values{}
	q.Set("partner_tx_id", partnerTxID)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("X-Oy-Username", os.Getenv("OY_API_KEY"))
	req.Header.Set("X-Api-Key", os.Getenv("OY_API_KEY"))

	resp, err := oyHTTPClient.Do(req)
	if err != nil {
		return nil, WrapError(err, "payment gateway unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, WrapError(err, "failed to decode status response")
	}
	return out, nil
}

// SignOYCallback computes the hex HMAC-SHA256 of a raw callback body
func SignOYCallback(rawBody []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyOYCallback checks callback authenticity. When OY_CALLBACK_SECRET is
// configured the X-Oy-Signature header must carry the HMAC-SHA256 of the raw
// body. Without a secret, callbacks are only trusted outside production:
// the sandbox gateway does not sign, but a production deployment missing the
// secret must reject everything rather than trust everything.
func VerifyOYCallback(rawBody []byte, signature string) bool {
	secret := os.Getenv("OY_CALLBACK_SECRET")
	if secret == "" {
		if os.Getenv("ENV") == "production" {
			LogError("OY_CALLBACK_SECRET not configured in production, rejecting callback")
			return false
		}
		return true
	}

	expected := SignOYCallback(rawBody, secret)
	provided, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	expectedRaw, _ := hex.DecodeString(expected)
	return hmac.Equal(expectedRaw, provided)
}

// Recognized success vocabulary for callback status fields. Anything else is
// treated as a failure.
var oySuccessStatuses = map[string]bool{
	"success":  true,
	"complete": true,
}

// IsOYSuccessStatus reports whether a callback status token means the payment
// settled. Matching is case-insensitive against a fixed vocabulary.
func IsOYSuccessStatus(status string) bool {
	return oySuccessStatuses[strings.ToLower(strings.TrimSpace(status))]
}

// ExtractOYStatus pulls the payment status from a callback payload, falling
// back from status to settlement_status.
func ExtractOYStatus(payload map[string]interface{}) string {
	if s, ok := payload["status"].(string); ok && s != "" {
		return s
	}
	if s, ok := payload["settlement_status"].(string); ok {
		return s
	}
	return ""
}

// ExtractOYReference pulls the transaction-identifying token from a callback
// payload: the partner reference we supplied at creation, or the gateway's
// own reference number.
func ExtractOYReference(payload map[string]interface{}) string {
	if s, ok := payload["partner_tx_id"].(string); ok && s != "" {
		return s
	}
	if s, ok := payload["tx_ref_number"].(string); ok {
		return s
	}
	return ""
}
