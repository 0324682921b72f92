package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/creditco/cupa/internal/pkg/errs"
	"github.com/creditco/cupa/internal/pkg/models"
)

const (
	apiKeyCachePrefix = "cupa:apikey:"
	apiKeyCacheTTL    = 5 * time.Minute
)

const merchantColumns = `
	id, name, mode, status, balance,
	cupa_test_api_key, cupa_live_api_key,
	remote_test_url, remote_test_merchant_id, remote_test_merchant_key, remote_test_api_key,
	remote_live_url, remote_live_merchant_id, remote_live_merchant_key, remote_live_api_key,
	test_order_id_prefix, test_client_id_prefix, live_order_id_prefix, live_client_id_prefix,
	test_limit_start_date, test_limit_start_amount, test_limit_after_date, test_limit_after_amount,
	live_limit_start_date, live_limit_start_amount, live_limit_after_date, live_limit_after_amount,
	version, created_at, updated_at`

// KeyValueCache is the cache surface used for API key lookups. It is
// satisfied by database.RedisClient.
type KeyValueCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// MerchantRepo is the Postgres merchant repository with a Redis cache for
// API key lookups.
type MerchantRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache KeyValueCache
}

// NewMerchantRepository creates a new merchant repository instance
func NewMerchantRepository(cfg *models.Config, db *sqlx.DB, cache KeyValueCache) *MerchantRepo {
	return &MerchantRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}

// GetByID retrieves a merchant by its id.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	query := `SELECT` + merchantColumns + ` FROM merchants WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByLiveAPIKey retrieves a merchant by its live API key.
func (r *MerchantRepo) GetByLiveAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error) {
	return r.getByAPIKey(ctx, "live", "cupa_live_api_key", apiKey, func(m *models.Merchant) string {
		return m.CupaLiveAPIKey
	})
}

// GetByTestAPIKey retrieves a merchant by its test API key.
func (r *MerchantRepo) GetByTestAPIKey(ctx context.Context, apiKey string) (*models.Merchant, error) {
	return r.getByAPIKey(ctx, "test", "cupa_test_api_key", apiKey, func(m *models.Merchant) string {
		return m.CupaTestAPIKey
	})
}

func (r *MerchantRepo) getByAPIKey(ctx context.Context, kind, column, apiKey string, keyOf func(*models.Merchant) string) (*models.Merchant, error) {
	cacheKey := apiKeyCachePrefix + kind + ":" + apiKey

	if r.cache != nil {
		if id, err := r.cache.Get(ctx, cacheKey); err == nil && id != "" {
			merchant, getErr := r.GetByID(ctx, id)
			if getErr == nil {
				// The cached entry only authenticates while the merchant
				// still holds the presented key. After a rotation the old
				// entry is dropped and the table is consulted.
				if merchant != nil && keyOf(merchant) == apiKey {
					return merchant, nil
				}
				_ = r.cache.Delete(ctx, cacheKey)
			}
		}
	}

	query := `SELECT` + merchantColumns + ` FROM merchants WHERE ` + column + ` = $1`
	merchant, err := r.getOne(ctx, query, apiKey)
	if err != nil || merchant == nil {
		return merchant, err
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, cacheKey, merchant.ID, apiKeyCacheTTL)
	}
	return merchant, nil
}

// GetByGatewayMerchantID retrieves the merchant owning the given upstream
// merchant id. Test credentials are consulted before live ones.
func (r *MerchantRepo) GetByGatewayMerchantID(ctx context.Context, gatewayMerchantID string) (*models.Merchant, error) {
	query := `SELECT` + merchantColumns + ` FROM merchants WHERE remote_test_merchant_id = $1`
	merchant, err := r.getOne(ctx, query, gatewayMerchantID)
	if err != nil || merchant != nil {
		return merchant, err
	}

	query = `SELECT` + merchantColumns + ` FROM merchants WHERE remote_live_merchant_id = $1`
	return r.getOne(ctx, query, gatewayMerchantID)
}

// List retrieves all merchants.
func (r *MerchantRepo) List(ctx context.Context) ([]*models.Merchant, error) {
	query := `SELECT` + merchantColumns + ` FROM merchants ORDER BY created_at`

	var merchants []*models.Merchant
	if err := r.db.SelectContext(ctx, &merchants, query); err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	return merchants, nil
}

// Save inserts a new merchant or updates an existing one. Updates are
// guarded by the version column; a stale version is rejected.
func (r *MerchantRepo) Save(ctx context.Context, merchant *models.Merchant) error {
	now := time.Now().UTC()
	merchant.UpdatedAt = now

	if merchant.Version == 0 {
		if merchant.ID == "" {
			merchant.ID = uuid.New().String()
		}
		merchant.Version = 1
		merchant.CreatedAt = now

		query := `
			INSERT INTO merchants (` + merchantColumns + `)
			VALUES (:id, :name, :mode, :status, :balance,
				:cupa_test_api_key, :cupa_live_api_key,
				:remote_test_url, :remote_test_merchant_id, :remote_test_merchant_key, :remote_test_api_key,
				:remote_live_url, :remote_live_merchant_id, :remote_live_merchant_key, :remote_live_api_key,
				:test_order_id_prefix, :test_client_id_prefix, :live_order_id_prefix, :live_client_id_prefix,
				:test_limit_start_date, :test_limit_start_amount, :test_limit_after_date, :test_limit_after_amount,
				:live_limit_start_date, :live_limit_start_amount, :live_limit_after_date, :live_limit_after_amount,
				:version, :created_at, :updated_at)`
		if _, err := r.db.NamedExecContext(ctx, query, merchant); err != nil {
			return fmt.Errorf("failed to insert merchant: %w", err)
		}
	} else {
		previousVersion := merchant.Version
		merchant.Version = previousVersion + 1

		query := `
			UPDATE merchants SET
				name = :name, mode = :mode, status = :status, balance = :balance,
				cupa_test_api_key = :cupa_test_api_key, cupa_live_api_key = :cupa_live_api_key,
				remote_test_url = :remote_test_url, remote_test_merchant_id = :remote_test_merchant_id,
				remote_test_merchant_key = :remote_test_merchant_key, remote_test_api_key = :remote_test_api_key,
				remote_live_url = :remote_live_url, remote_live_merchant_id = :remote_live_merchant_id,
				remote_live_merchant_key = :remote_live_merchant_key, remote_live_api_key = :remote_live_api_key,
				test_order_id_prefix = :test_order_id_prefix, test_client_id_prefix = :test_client_id_prefix,
				live_order_id_prefix = :live_order_id_prefix, live_client_id_prefix = :live_client_id_prefix,
				test_limit_start_date = :test_limit_start_date, test_limit_start_amount = :test_limit_start_amount,
				test_limit_after_date = :test_limit_after_date, test_limit_after_amount = :test_limit_after_amount,
				live_limit_start_date = :live_limit_start_date, live_limit_start_amount = :live_limit_start_amount,
				live_limit_after_date = :live_limit_after_date, live_limit_after_amount = :live_limit_after_amount,
				version = :version, updated_at = :updated_at
			WHERE id = :id AND version = ` + fmt.Sprintf("%d", previousVersion)
		result, err := r.db.NamedExecContext(ctx, query, merchant)
		if err != nil {
			merchant.Version = previousVersion
			return fmt.Errorf("failed to update merchant: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check merchant update: %w", err)
		}
		if rows == 0 {
			merchant.Version = previousVersion
			return errs.Validation("merchant %s was modified concurrently", merchant.ID)
		}
	}

	r.invalidateAPIKeyCache(ctx, merchant)
	return nil
}

func (r *MerchantRepo) invalidateAPIKeyCache(ctx context.Context, merchant *models.Merchant) {
	if r.cache == nil {
		return
	}
	var keys []string
	if merchant.CupaTestAPIKey != "" {
		keys = append(keys, apiKeyCachePrefix+"test:"+merchant.CupaTestAPIKey)
	}
	if merchant.CupaLiveAPIKey != "" {
		keys = append(keys, apiKeyCachePrefix+"live:"+merchant.CupaLiveAPIKey)
	}
	if len(keys) > 0 {
		_ = r.cache.Delete(ctx, keys...)
	}
}

func (r *MerchantRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.GetContext(ctx, &merchant, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &merchant, nil
}
