package usecase

import (
	"context"

	"github.com/creditco/cupa/internal/pkg/errs"
	"github.com/creditco/cupa/internal/pkg/models"
)

// ResolveAPIKey resolves an API key to an eligible merchant. A live key is
// only honoured for an active merchant tagged LIVE, a test key only for an
// active merchant tagged TEST. Anything else resolves to nothing; the caller
// decides whether that is fatal.
func (uc *MerchantUC) ResolveAPIKey(ctx context.Context, apiKey string) (*models.Merchant, models.MerchantMode, bool) {
	if apiKey == "" {
		return nil, "", false
	}

	if m, err := uc.merchantRepo.GetByLiveAPIKey(ctx, apiKey); err != nil {
		uc.log.WithError(err).Warn("live API key lookup failed")
	} else if m != nil {
		if m.Status == models.MerchantStatusActive && m.Mode == models.MerchantModeLive {
			return m, models.MerchantModeLive, true
		}
	}

	if m, err := uc.merchantRepo.GetByTestAPIKey(ctx, apiKey); err != nil {
		uc.log.WithError(err).Warn("test API key lookup failed")
	} else if m != nil {
		if m.Status == models.MerchantStatusActive && m.Mode == models.MerchantModeTest {
			return m, models.MerchantModeTest, true
		}
	}

	return nil, "", false
}

// GetMerchant retrieves a merchant by id.
func (uc *MerchantUC) GetMerchant(ctx context.Context, merchantID string) (*models.Merchant, error) {
	merchant, err := uc.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, errs.NotFound("merchant %s not found", merchantID)
	}
	return merchant, nil
}

// ListMerchants retrieves all merchants.
func (uc *MerchantUC) ListMerchants(ctx context.Context) ([]*models.Merchant, error) {
	return uc.merchantRepo.List(ctx)
}

// SaveMerchant validates and persists a merchant. Limit configurations must
// be internally consistent and no id prefix may equal a prefix already held
// by another merchant.
func (uc *MerchantUC) SaveMerchant(ctx context.Context, m *models.Merchant) error {
	if m.Name == "" {
		return errs.Validation("merchant name is required")
	}
	if m.Mode != models.MerchantModeTest && m.Mode != models.MerchantModeLive {
		return errs.Validation("merchant mode must be TEST or LIVE")
	}
	if m.Status == "" {
		m.Status = models.MerchantStatusActive
	}

	testLimit := m.DailyLimitForMode(models.MerchantModeTest)
	if err := testLimit.Validate("TEST"); err != nil {
		return errs.Validation("%s", err.Error())
	}
	liveLimit := m.DailyLimitForMode(models.MerchantModeLive)
	if err := liveLimit.Validate("LIVE"); err != nil {
		return errs.Validation("%s", err.Error())
	}

	if err := uc.checkPrefixConflicts(ctx, m); err != nil {
		return err
	}

	if err := uc.merchantRepo.Save(ctx, m); err != nil {
		return err
	}

	uc.log.WithField("merchant_id", m.ID).Info("merchant saved")
	return nil
}

// checkPrefixConflicts rejects a merchant holding a prefix another merchant
// already holds. The comparison is exact and case sensitive; distinct values
// never conflict even when one starts the other.
func (uc *MerchantUC) checkPrefixConflicts(ctx context.Context, candidate *models.Merchant) error {
	prefixes := candidate.Prefixes()
	if len(prefixes) == 0 {
		return nil
	}

	others, err := uc.merchantRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, other := range others {
		if other.ID == candidate.ID {
			continue
		}
		for _, p := range prefixes {
			for _, q := range other.Prefixes() {
				if p == q {
					return errs.Validation("prefix %q conflicts with prefix %q of merchant %s", p, q, other.ID)
				}
			}
		}
	}
	return nil
}
