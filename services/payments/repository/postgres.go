package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

// PostgresPaymentRepo implements the payments.PaymentRepo interface
type PostgresPaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) payments.PaymentRepo {
	return &PostgresPaymentRepo{
		db: db,
	}
}

// paymentRow maps the payment columns embedded on a notification
type paymentRow struct {
	NotificationID uuid.UUID       `db:"id"`
	FromUserID     uuid.UUID       `db:"from_user_id"`
	ToUserID       uuid.UUID       `db:"to_user_id"`
	OrderID        sql.NullString  `db:"payment_order_id"`
	Gateway        sql.NullString  `db:"payment_gateway"`
	SessionID      sql.NullString  `db:"payment_session_id"`
	Amount         sql.NullFloat64 `db:"payment_amount"`
	Status         sql.NullString  `db:"payment_status"`
	CreatedAt      sql.NullTime    `db:"payment_created_at"`
	CompletedAt    sql.NullTime    `db:"payment_completed_at"`
	TransactionID  sql.NullString  `db:"payment_transaction_id"`
	Method         sql.NullString  `db:"payment_method"`
}

func (r paymentRow) toPaymentRequest() *models.PaymentRequest {
	pr := &models.PaymentRequest{
		NotificationID: r.NotificationID,
		OrderID:        r.OrderID.String,
		Gateway:        models.GatewayKind(r.Gateway.String),
		SessionID:      r.SessionID.String,
		Amount:         r.Amount.Float64,
		Status:         models.PaymentStatus(r.Status.String),
		CreatedAt:      r.CreatedAt.Time,
		TransactionID:  r.TransactionID.String,
		PayerID:        r.ToUserID,
		PayeeID:        r.FromUserID,
	}
	if r.CompletedAt.Valid {
		completedAt := r.CompletedAt.Time
		pr.CompletedAt = &completedAt
	}
	return pr
}

const paymentColumns = `
	id, from_user_id, to_user_id, payment_order_id, payment_gateway,
	payment_session_id, payment_amount, payment_status, payment_created_at,
	payment_completed_at, payment_transaction_id, payment_method
`

// GetNotification loads a notification and its embedded payment request
func (r *PostgresPaymentRepo) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	var row struct {
		Type      string    `db:"type"`
		ListingID uuid.UUID `db:"listing_id"`
		Content   string    `db:"content"`
		NStatus   string    `db:"status"`
		NCreated  time.Time `db:"notification_created_at"`
		paymentRow
	}

	query := `
		SELECT type, listing_id, content, status,
		       created_at AS notification_created_at, ` + paymentColumns + `
		FROM notifications
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	notification := &models.Notification{
		ID:         row.NotificationID,
		Type:       models.NotificationType(row.Type),
		FromUserID: row.FromUserID,
		ToUserID:   row.ToUserID,
		ListingID:  row.ListingID,
		Content:    row.Content,
		Status:     row.NStatus,
		CreatedAt:  row.NCreated,
	}
	if row.OrderID.Valid {
		notification.Payment = row.toPaymentRequest()
	}

	return notification, nil
}

// CreatePaymentRequest attaches a pending payment request to the notification
func (r *PostgresPaymentRepo) CreatePaymentRequest(ctx context.Context, pr *models.PaymentRequest) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET payment_order_id = $1, payment_gateway = $2, payment_session_id = $3,
		    payment_amount = $4, payment_status = $5, payment_created_at = $6,
		    payment_completed_at = NULL, payment_transaction_id = NULL
		WHERE id = $7 AND (payment_status IS NULL OR payment_status <> $8)
	`, pr.OrderID, pr.Gateway, pr.SessionID, pr.Amount, pr.Status, pr.CreatedAt,
		pr.NotificationID, models.PaymentCompleted)
	if err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return payments.ErrRequestNotFound
	}

	return nil
}

// GetPaymentRequestByOrderID resolves a payment request by its order id.
// There is deliberately no fallback lookup: a missed order id fails.
func (r *PostgresPaymentRepo) GetPaymentRequestByOrderID(ctx context.Context, orderID string) (*models.PaymentRequest, error) {
	var row paymentRow

	query := `SELECT ` + paymentColumns + ` FROM notifications WHERE payment_order_id = $1`
	if err := r.db.GetContext(ctx, &row, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payments.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get payment request: %w", err)
	}

	return row.toPaymentRequest(), nil
}

// CompleteSettlement applies the settlement atomically. The notification row
// is locked for the duration, the completed-check re-evaluated under that
// lock, and the status transition, both ledger entries, both aggregate
// increments and the confirmation notifications commit or roll back as one
// unit.
func (r *PostgresPaymentRepo) CompleteSettlement(ctx context.Context, settlement *models.Settlement) (*models.SettlementResult, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock the payment request row; concurrent settlements for the same
	// order serialize here.
	var row paymentRow
	query := `SELECT ` + paymentColumns + ` FROM notifications WHERE payment_order_id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &row, query, settlement.OrderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, payments.ErrRequestNotFound
		}
		return nil, false, fmt.Errorf("failed to lock payment request: %w", err)
	}

	// Idempotency guard, evaluated after the lock: a duplicate delivery
	// observes completed and returns the prior result without writing.
	if models.PaymentStatus(row.Status.String) == models.PaymentCompleted {
		prior := row.toPaymentRequest()
		result := &models.SettlementResult{
			OrderID:        prior.OrderID,
			TransactionID:  prior.TransactionID,
			Amount:         prior.Amount,
			Method:         row.Method.String,
			Status:         models.PaymentCompleted,
			AlreadySettled: true,
		}
		if prior.CompletedAt != nil {
			result.CompletedAt = *prior.CompletedAt
		}
		return result, true, nil
	}

	payerID := row.ToUserID
	payeeID := row.FromUserID

	// Status transition
	_, err = tx.ExecContext(ctx, `
		UPDATE notifications
		SET payment_status = $1, payment_transaction_id = $2,
		    payment_completed_at = $3, payment_method = $4
		WHERE payment_order_id = $5
	`, models.PaymentCompleted, settlement.TransactionID, settlement.CompletedAt,
		settlement.Method, settlement.OrderID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update payment status: %w", err)
	}

	// Ledger entries for both counterparties, same transaction id and
	// gateway-verified amount
	entries := []models.Transaction{
		{
			ID:                 uuid.New(),
			UserID:             payeeID,
			Type:               models.TransactionReceived,
			Amount:             settlement.Amount,
			Status:             "completed",
			CounterpartyID:     payerID,
			TransactionID:      settlement.TransactionID,
			PaymentMethod:      settlement.Method,
			VerificationStatus: "verified",
			CreatedAt:          settlement.CompletedAt,
		},
		{
			ID:                 uuid.New(),
			UserID:             payerID,
			Type:               models.TransactionSent,
			Amount:             settlement.Amount,
			Status:             "completed",
			CounterpartyID:     payeeID,
			TransactionID:      settlement.TransactionID,
			PaymentMethod:      settlement.Method,
			VerificationStatus: "verified",
			CreatedAt:          settlement.CompletedAt,
		},
	}

	for _, entry := range entries {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO transactions (
				id, user_id, type, amount, status, counterparty_id,
				transaction_id, payment_method, verification_status, created_at
			) VALUES (
				:id, :user_id, :type, :amount, :status, :counterparty_id,
				:transaction_id, :payment_method, :verification_status, :created_at
			)
		`, entry)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert ledger entry: %w", err)
		}
	}

	// Aggregate totals stay derivable from the ledger
	_, err = tx.ExecContext(ctx, `
		UPDATE users SET total_amount_received = total_amount_received + $1 WHERE id = $2
	`, settlement.Amount, payeeID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update payee aggregate: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE users SET total_amount_sent = total_amount_sent + $1 WHERE id = $2
	`, settlement.Amount, payerID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update payer aggregate: %w", err)
	}

	// Confirmation notifications for both counterparties
	confirmations := []map[string]interface{}{
		{
			"id":           uuid.New(),
			"type":         models.NotificationPaymentConfirmation,
			"from_user_id": payerID,
			"to_user_id":   payeeID,
			"content": fmt.Sprintf("Payment of %.2f received. Transaction ID: %s",
				settlement.Amount, settlement.TransactionID),
			"status":     "completed",
			"created_at": settlement.CompletedAt,
		},
		{
			"id":           uuid.New(),
			"type":         models.NotificationPaymentConfirmation,
			"from_user_id": payeeID,
			"to_user_id":   payerID,
			"content": fmt.Sprintf("Your payment of %.2f was successful. Transaction ID: %s",
				settlement.Amount, settlement.TransactionID),
			"status":     "completed",
			"created_at": settlement.CompletedAt,
		},
	}

	for _, confirmation := range confirmations {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO notifications (id, type, from_user_id, to_user_id, content, status, created_at)
			VALUES (:id, :type, :from_user_id, :to_user_id, :content, :status, :created_at)
		`, confirmation)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert confirmation notification: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return &models.SettlementResult{
		OrderID:       settlement.OrderID,
		TransactionID: settlement.TransactionID,
		Amount:        settlement.Amount,
		Method:        settlement.Method,
		Status:        models.PaymentCompleted,
		CompletedAt:   settlement.CompletedAt,
	}, false, nil
}

// MarkPaymentFailed transitions a still-pending payment request to failed.
// A completed request is never downgraded.
func (r *PostgresPaymentRepo) MarkPaymentFailed(ctx context.Context, orderID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET payment_status = $1
		WHERE payment_order_id = $2 AND payment_status = $3
	`, models.PaymentFailed, orderID, models.PaymentPending)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}

	// Zero rows means the request either completed concurrently or was
	// already failed; both are acceptable here.
	if _, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	return nil
}

// GetUserPayoutDetails loads a user's payout information
func (r *PostgresPaymentRepo) GetUserPayoutDetails(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var row struct {
		ID                  uuid.UUID      `db:"id"`
		FullName            string         `db:"full_name"`
		Email               string         `db:"email"`
		Phone               sql.NullString `db:"phone"`
		UPIID               sql.NullString `db:"upi_id"`
		AccountHolderName   sql.NullString `db:"account_holder_name"`
		AccountNumber       sql.NullString `db:"account_number"`
		IFSCCode            sql.NullString `db:"ifsc_code"`
		BankName            sql.NullString `db:"bank_name"`
		TotalAmountSent     float64        `db:"total_amount_sent"`
		TotalAmountReceived float64        `db:"total_amount_received"`
	}

	err := r.db.GetContext(ctx, &row, `
		SELECT id, full_name, email, phone, upi_id, account_holder_name,
		       account_number, ifsc_code, bank_name,
		       total_amount_sent, total_amount_received
		FROM users
		WHERE id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := &models.User{
		ID:                  row.ID,
		FullName:            row.FullName,
		Email:               row.Email,
		Phone:               row.Phone.String,
		UPIID:               row.UPIID.String,
		TotalAmountSent:     row.TotalAmountSent,
		TotalAmountReceived: row.TotalAmountReceived,
	}
	if row.AccountNumber.Valid && row.AccountNumber.String != "" {
		user.BankDetails = &models.BankDetails{
			AccountHolderName: row.AccountHolderName.String,
			AccountNumber:     row.AccountNumber.String,
			IFSCCode:          row.IFSCCode.String,
			BankName:          row.BankName.String,
		}
	}

	return user, nil
}
