package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/creditco/cupa/internal/pkg/models"
)

const transactionColumns = `
	id, merchant_id, client_id, order_id, gateway_transaction_id,
	status, status_description, amount, balance, currency, payment_brand,
	request_data, initial_response_data, callback_data,
	requested_at, callback_at, created_at, updated_at`

// TransactionRepo is the Postgres payment transaction repository.
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository instance
func NewTransactionRepository(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new transaction. The transactions table carries a unique
// constraint on (merchant_id, order_id) as the final duplicate guard.
func (r *TransactionRepo) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO payment_transactions (` + transactionColumns + `)
		VALUES (:id, :merchant_id, :client_id, :order_id, :gateway_transaction_id,
			:status, :status_description, :amount, :balance, :currency, :payment_brand,
			:request_data, :initial_response_data, :callback_data,
			:requested_at, :callback_at, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// Update persists the mutable fields of an existing transaction.
func (r *TransactionRepo) Update(ctx context.Context, txn *models.PaymentTransaction) error {
	txn.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE payment_transactions SET
			gateway_transaction_id = :gateway_transaction_id,
			status = :status,
			status_description = :status_description,
			balance = :balance,
			initial_response_data = :initial_response_data,
			callback_data = :callback_data,
			callback_at = :callback_at,
			updated_at = :updated_at
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check transaction update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s not found", txn.ID)
	}
	return nil
}

// GetByID retrieves a transaction by its id.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	query := `SELECT` + transactionColumns + ` FROM payment_transactions WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByMerchantAndOrder retrieves the transaction for a merchant's order id.
// The order id match is case insensitive; the stored casing wins.
func (r *TransactionRepo) GetByMerchantAndOrder(ctx context.Context, merchantID, orderID string) (*models.PaymentTransaction, error) {
	query := `SELECT` + transactionColumns + ` FROM payment_transactions
		WHERE merchant_id = $1 AND LOWER(order_id) = LOWER($2)`
	return r.getOne(ctx, query, merchantID, orderID)
}

// ExistsByMerchantAndOrder reports whether the merchant already used the order id.
func (r *TransactionRepo) ExistsByMerchantAndOrder(ctx context.Context, merchantID, orderID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM payment_transactions
		WHERE merchant_id = $1 AND LOWER(order_id) = LOWER($2))`
	if err := r.db.GetContext(ctx, &exists, query, merchantID, orderID); err != nil {
		return false, fmt.Errorf("failed to check order id: %w", err)
	}
	return exists, nil
}

// SumAmountForDay totals the merchant's non-failed transaction amounts
// requested on the given calendar day.
func (r *TransactionRepo) SumAmountForDay(ctx context.Context, merchantID string, day time.Time) (decimal.Decimal, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var total decimal.NullDecimal
	query := `SELECT SUM(amount) FROM payment_transactions
		WHERE merchant_id = $1 AND requested_at >= $2 AND requested_at < $3
		AND status != $4`
	err := r.db.GetContext(ctx, &total, query, merchantID, dayStart, dayEnd, models.StatusFailed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum day amounts: %w", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *TransactionRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	err := r.db.GetContext(ctx, &txn, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}
