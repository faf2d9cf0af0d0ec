package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "DevPorto"

	// API version
	APIVersion = "v1"

	// JWT token expiration for admin sessions
	JWTExpiration = 24 * time.Hour

	// Lifetime of a product download link sent after a successful payment
	DownloadLinkTTL = 7 * 24 * time.Hour

	// Payment link expiration requested from the gateway, in minutes
	PaymentLinkExpirationMinutes = 24 * 60
)
