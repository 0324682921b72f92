package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/creditco/cupa/internal/pkg/models"
)

// ClientRepo is the Postgres client repository.
type ClientRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(cfg *models.Config, db *sqlx.DB) *ClientRepo {
	return &ClientRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetByMerchantClientID retrieves a client by its merchant-scoped id.
func (r *ClientRepo) GetByMerchantClientID(ctx context.Context, merchantID, merchantClientID string) (*models.Client, error) {
	var client models.Client
	query := `
		SELECT id, merchant_id, merchant_client_id, name, email_address,
			mobile_number, valid, created_at, updated_at
		FROM clients
		WHERE merchant_id = $1 AND merchant_client_id = $2`
	err := r.db.GetContext(ctx, &client, query, merchantID, merchantClientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// Upsert creates the client or refreshes its contact details in place.
func (r *ClientRepo) Upsert(ctx context.Context, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	query := `
		INSERT INTO clients (
			id, merchant_id, merchant_client_id, name, email_address,
			mobile_number, valid, created_at, updated_at
		) VALUES (:id, :merchant_id, :merchant_client_id, :name, :email_address,
			:mobile_number, :valid, :created_at, :updated_at)
		ON CONFLICT (merchant_id, merchant_client_id) DO UPDATE SET
			name = EXCLUDED.name,
			email_address = EXCLUDED.email_address,
			mobile_number = EXCLUDED.mobile_number,
			valid = EXCLUDED.valid,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return fmt.Errorf("failed to upsert client: %w", err)
	}
	return nil
}
