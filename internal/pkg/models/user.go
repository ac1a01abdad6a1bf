package models

import (
	"time"

	"github.com/google/uuid"
)

// User holds the marketplace user fields the payments service touches.
// The aggregate totals are monotonically non-decreasing and always equal the
// sum of the matching ledger entries.
type User struct {
	ID                  uuid.UUID    `json:"id" db:"id"`
	FullName            string       `json:"full_name" db:"full_name"`
	Email               string       `json:"email" db:"email"`
	Phone               string       `json:"phone" db:"phone"`
	UPIID               string       `json:"upi_id,omitempty" db:"upi_id"`
	BankDetails         *BankDetails `json:"bank_details,omitempty"`
	TotalAmountSent     float64      `json:"total_amount_sent" db:"total_amount_sent"`
	TotalAmountReceived float64      `json:"total_amount_received" db:"total_amount_received"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
}

// BankDetails holds a user's payout account information
type BankDetails struct {
	AccountHolderName string `json:"account_holder_name" db:"account_holder_name"`
	AccountNumber     string `json:"account_number" db:"account_number"`
	IFSCCode          string `json:"ifsc_code" db:"ifsc_code"`
	BankName          string `json:"bank_name" db:"bank_name"`
}

// RecipientDetails is what a sponsor sees before paying a seeker directly
type RecipientDetails struct {
	RecipientName   string       `json:"recipient_name"`
	Amount          float64      `json:"amount"`
	UPIID           string       `json:"upi_id,omitempty"`
	BankDetails     *BankDetails `json:"bank_details,omitempty"`
	PreferredMethod string       `json:"preferred_method,omitempty"`
}
