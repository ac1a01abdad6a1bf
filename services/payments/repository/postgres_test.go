package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sponsorlink/payments/internal/pkg/models"
	"github.com/sponsorlink/payments/services/payments"
)

func setupPaymentRepoTest(t *testing.T) (*PostgresPaymentRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresPaymentRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var paymentColumnNames = []string{
	"id", "from_user_id", "to_user_id", "payment_order_id", "payment_gateway",
	"payment_session_id", "payment_amount", "payment_status", "payment_created_at",
	"payment_completed_at", "payment_transaction_id", "payment_method",
}

func pendingPaymentRows(notificationID, payeeID, payerID uuid.UUID, orderID string) *sqlmock.Rows {
	return sqlmock.NewRows(paymentColumnNames).
		AddRow(notificationID, payeeID, payerID, orderID, "razorpay",
			"session_1", 500.0, "pending", time.Now(), nil, nil, nil)
}

func TestGetPaymentRequestByOrderID(t *testing.T) {
	testCases := []struct {
		name       string
		orderID    string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, pr *models.PaymentRequest, err error)
	}{
		{
			name:    "Success",
			orderID: "order_123",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := pendingPaymentRows(uuid.New(), uuid.New(), uuid.New(), "order_123")
				mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id").
					WithArgs("order_123").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, pr *models.PaymentRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "order_123", pr.OrderID)
				assert.Equal(t, models.GatewayRazorpay, pr.Gateway)
				assert.Equal(t, models.PaymentPending, pr.Status)
				assert.Equal(t, 500.0, pr.Amount)
			},
		},
		{
			name:    "Not found - no fallback lookup",
			orderID: "order_missing",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id").
					WithArgs("order_missing").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, pr *models.PaymentRequest, err error) {
				assert.Nil(t, pr)
				assert.ErrorIs(t, err, payments.ErrRequestNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			pr, err := repo.GetPaymentRequestByOrderID(context.Background(), tc.orderID)

			tc.assertFunc(t, pr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreatePaymentRequest(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE notifications").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Completed payment is never overwritten",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE notifications").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, payments.ErrRequestNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupPaymentRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreatePaymentRequest(context.Background(), &models.PaymentRequest{
				NotificationID: uuid.New(),
				OrderID:        "order_123",
				Gateway:        models.GatewayRazorpay,
				Amount:         500,
				Status:         models.PaymentPending,
				CreatedAt:      time.Now(),
			})

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompleteSettlement_Success(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	notificationID := uuid.New()
	payeeID := uuid.New()
	payerID := uuid.New()
	completedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id = (.+) FOR UPDATE").
		WithArgs("order_123").
		WillReturnRows(pendingPaymentRows(notificationID, payeeID, payerID, "order_123"))
	mock.ExpectExec("^UPDATE notifications").
		WithArgs("completed", "pay_456", completedAt, "upi", "order_123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE users SET total_amount_received").
		WithArgs(500.0, payeeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^UPDATE users SET total_amount_sent").
		WithArgs(500.0, payerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, alreadySettled, err := repo.CompleteSettlement(context.Background(), &models.Settlement{
		OrderID:       "order_123",
		TransactionID: "pay_456",
		Amount:        500,
		Method:        "upi",
		CompletedAt:   completedAt,
	})

	assert.NoError(t, err)
	assert.False(t, alreadySettled)
	assert.Equal(t, models.PaymentCompleted, result.Status)
	assert.Equal(t, "pay_456", result.TransactionID)
	assert.Equal(t, 500.0, result.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSettlement_AlreadyCompleted_NoWrites(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	completedAt := time.Now()
	rows := sqlmock.NewRows(paymentColumnNames).
		AddRow(uuid.New(), uuid.New(), uuid.New(), "order_123", "razorpay",
			"session_1", 500.0, "completed", time.Now(), completedAt, "pay_456", "upi")

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id = (.+) FOR UPDATE").
		WithArgs("order_123").
		WillReturnRows(rows)
	mock.ExpectRollback()

	result, alreadySettled, err := repo.CompleteSettlement(context.Background(), &models.Settlement{
		OrderID:       "order_123",
		TransactionID: "pay_dup",
		Amount:        500,
		Method:        "upi",
		CompletedAt:   time.Now(),
	})

	assert.NoError(t, err)
	assert.True(t, alreadySettled)
	// The prior result is returned, not the duplicate claim's values
	assert.Equal(t, "pay_456", result.TransactionID)
	assert.Equal(t, models.PaymentCompleted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSettlement_UnknownOrder(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id = (.+) FOR UPDATE").
		WithArgs("order_missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	result, alreadySettled, err := repo.CompleteSettlement(context.Background(), &models.Settlement{
		OrderID: "order_missing",
	})

	assert.Nil(t, result)
	assert.False(t, alreadySettled)
	assert.ErrorIs(t, err, payments.ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteSettlement_LedgerFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE payment_order_id = (.+) FOR UPDATE").
		WithArgs("order_123").
		WillReturnRows(pendingPaymentRows(uuid.New(), uuid.New(), uuid.New(), "order_123"))
	mock.ExpectExec("^UPDATE notifications").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("^INSERT INTO transactions").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	result, _, err := repo.CompleteSettlement(context.Background(), &models.Settlement{
		OrderID:       "order_123",
		TransactionID: "pay_456",
		Amount:        500,
		Method:        "upi",
		CompletedAt:   time.Now(),
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentFailed(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^UPDATE notifications").
		WithArgs("failed", "order_123", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkPaymentFailed(context.Background(), "order_123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentFailed_CompletedIsNotDowngraded(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	// The guarded update matches no rows; that is not an error
	mock.ExpectExec("^UPDATE notifications").
		WithArgs("failed", "order_123", "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkPaymentFailed(context.Background(), "order_123")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotification(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	notificationID := uuid.New()
	payeeID := uuid.New()
	payerID := uuid.New()

	columns := append([]string{"type", "listing_id", "content", "status", "notification_created_at"}, paymentColumnNames...)
	rows := sqlmock.NewRows(columns).
		AddRow("connection_accepted", uuid.New(), "hello", "accepted", time.Now(),
			notificationID, payeeID, payerID, "order_123", "stripe",
			"session_1", 250.0, "pending", time.Now(), nil, nil, nil)

	mock.ExpectQuery("^SELECT (.+) FROM notifications WHERE id").
		WithArgs(notificationID).
		WillReturnRows(rows)

	notification, err := repo.GetNotification(context.Background(), notificationID)

	assert.NoError(t, err)
	assert.Equal(t, models.NotificationConnectionAccepted, notification.Type)
	assert.Equal(t, payerID, notification.ToUserID)
	require.NotNil(t, notification.Payment)
	assert.Equal(t, "order_123", notification.Payment.OrderID)
	assert.Equal(t, models.GatewayStripe, notification.Payment.Gateway)
	assert.Equal(t, payerID, notification.Payment.PayerID)
	assert.Equal(t, payeeID, notification.Payment.PayeeID)
}

func TestGetUserPayoutDetails_BankDetails(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "phone", "upi_id", "account_holder_name",
		"account_number", "ifsc_code", "bank_name", "total_amount_sent", "total_amount_received",
	}).AddRow(userID, "Asha Seeker", "asha@example.com", "+919999999999", "asha@upi",
		"Asha Seeker", "1234567890", "HDFC0001234", "HDFC", 0.0, 1500.0)

	mock.ExpectQuery("^SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(rows)

	user, err := repo.GetUserPayoutDetails(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, "Asha Seeker", user.FullName)
	assert.Equal(t, "asha@upi", user.UPIID)
	require.NotNil(t, user.BankDetails)
	assert.Equal(t, "1234567890", user.BankDetails.AccountNumber)
	assert.Equal(t, 1500.0, user.TotalAmountReceived)
}
