package payments

import "errors"

// Settlement error taxonomy. Adapter-level errors are wrapped with the
// gateway identity before they bubble up; raw provider responses never reach
// callers.
var (
	// ErrGatewayUnavailable means the gateway is not configured or its
	// credentials are missing. Surfaced as 503.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRequestFailed is a transient provider failure, safe for the
	// caller to retry. Surfaced as 502.
	ErrGatewayRequestFailed = errors.New("payment gateway request failed")

	// ErrTransactionNotFound means the gateway has no record of the
	// transaction id.
	ErrTransactionNotFound = errors.New("transaction not found at gateway")

	// ErrRequestNotFound means no payment request matches the correlation
	// id. No state change.
	ErrRequestNotFound = errors.New("payment request not found")

	// ErrVerificationFailed means the claim could not be authenticated; the
	// payment request is marked failed and ledgers are untouched.
	ErrVerificationFailed = errors.New("payment verification failed")

	// ErrInvalidWebhookSignature means the webhook payload failed the
	// transport-level signature check. No state change.
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

	// ErrUnauthorized means the caller is not a counterparty of the payment.
	ErrUnauthorized = errors.New("not authorized for this payment")

	// ErrInvalidAmount means the requested amount is outside policy bounds.
	ErrInvalidAmount = errors.New("invalid payment amount")
)
