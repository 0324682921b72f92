package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/errs"
	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/services/merchant/mocks"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func newMerchantUC(ctrl *gomock.Controller) (*MerchantUC, *mocks.MockMerchantRepo) {
	repo := mocks.NewMockMerchantRepo(ctrl)
	return NewMerchantUC(&models.Config{}, repo, testLogger()), repo
}

func activeMerchant(id string, mode models.MerchantMode) *models.Merchant {
	return &models.Merchant{
		ID:     id,
		Name:   "Merchant " + id,
		Mode:   mode,
		Status: models.MerchantStatusActive,
	}
}

func TestResolveAPIKey_LiveKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeLive)
	repo.EXPECT().GetByLiveAPIKey(gomock.Any(), "live-key").Return(m, nil)

	resolved, mode, ok := uc.ResolveAPIKey(context.Background(), "live-key")

	assert.True(t, ok)
	assert.Equal(t, m, resolved)
	assert.Equal(t, models.MerchantModeLive, mode)
}

func TestResolveAPIKey_TestKeyFallsBackAfterLiveMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	repo.EXPECT().GetByLiveAPIKey(gomock.Any(), "test-key").Return(nil, nil)
	repo.EXPECT().GetByTestAPIKey(gomock.Any(), "test-key").Return(m, nil)

	resolved, mode, ok := uc.ResolveAPIKey(context.Background(), "test-key")

	assert.True(t, ok)
	assert.Equal(t, m, resolved)
	assert.Equal(t, models.MerchantModeTest, mode)
}

func TestResolveAPIKey_TestKeyOfLiveMerchantIsIneligible(t *testing.T) {
	// A merchant tagged LIVE must not transact through its test key.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeLive)
	repo.EXPECT().GetByLiveAPIKey(gomock.Any(), "test-key").Return(nil, nil)
	repo.EXPECT().GetByTestAPIKey(gomock.Any(), "test-key").Return(m, nil)

	_, _, ok := uc.ResolveAPIKey(context.Background(), "test-key")

	assert.False(t, ok)
}

func TestResolveAPIKey_InactiveMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeLive)
	m.Status = models.MerchantStatusSuspended
	repo.EXPECT().GetByLiveAPIKey(gomock.Any(), "live-key").Return(m, nil)
	repo.EXPECT().GetByTestAPIKey(gomock.Any(), "live-key").Return(nil, nil)

	_, _, ok := uc.ResolveAPIKey(context.Background(), "live-key")

	assert.False(t, ok)
}

func TestResolveAPIKey_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newMerchantUC(ctrl)

	_, _, ok := uc.ResolveAPIKey(context.Background(), "")

	assert.False(t, ok)
}

func TestResolveAPIKey_LookupErrorFallsThrough(t *testing.T) {
	// A failing live lookup must not mask a valid test key.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	repo.EXPECT().GetByLiveAPIKey(gomock.Any(), "test-key").Return(nil, errors.New("connection reset"))
	repo.EXPECT().GetByTestAPIKey(gomock.Any(), "test-key").Return(m, nil)

	resolved, mode, ok := uc.ResolveAPIKey(context.Background(), "test-key")

	assert.True(t, ok)
	assert.Equal(t, m, resolved)
	assert.Equal(t, models.MerchantModeTest, mode)
}

func TestGetMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	repo.EXPECT().GetByID(gomock.Any(), "M1").Return(m, nil)

	got, err := uc.GetMerchant(context.Background(), "M1")
	assert.NoError(t, err)
	assert.Equal(t, m, got)

	repo.EXPECT().GetByID(gomock.Any(), "M404").Return(nil, nil)

	got, err = uc.GetMerchant(context.Background(), "M404")
	assert.Nil(t, got)
	assert.EqualError(t, err, "merchant M404 not found")
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestSaveMerchant_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	m.Status = ""
	m.TestOrderIDPrefix = "ACME-"

	repo.EXPECT().List(gomock.Any()).Return([]*models.Merchant{
		func() *models.Merchant {
			other := activeMerchant("M2", models.MerchantModeLive)
			other.LiveOrderIDPrefix = "OTHER-"
			return other
		}(),
	}, nil)
	repo.EXPECT().Save(gomock.Any(), m).Return(nil)

	err := uc.SaveMerchant(context.Background(), m)

	assert.NoError(t, err)
	assert.Equal(t, models.MerchantStatusActive, m.Status)
}

func TestSaveMerchant_ValidationFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newMerchantUC(ctrl)

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	startAmount := decimal.NewFromInt(100)

	testCases := []struct {
		name     string
		merchant *models.Merchant
		message  string
	}{
		{
			name:     "missing name",
			merchant: &models.Merchant{Mode: models.MerchantModeTest},
			message:  "merchant name is required",
		},
		{
			name:     "bad mode",
			merchant: &models.Merchant{Name: "A", Mode: "STAGING"},
			message:  "merchant mode must be TEST or LIVE",
		},
		{
			name: "test limit start without after",
			merchant: func() *models.Merchant {
				m := activeMerchant("M1", models.MerchantModeTest)
				m.TestLimitStartDate = &startDate
				m.TestLimitStartAmount = &startAmount
				return m
			}(),
			message: "TEST daily amount limit: if start date/amount is set, after date/amount must also be set",
		},
		{
			name: "live limit date without amount",
			merchant: func() *models.Merchant {
				m := activeMerchant("M1", models.MerchantModeLive)
				m.LiveLimitAfterDate = &startDate
				return m
			}(),
			message: "LIVE daily amount limit: after date is set but after amount is missing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := uc.SaveMerchant(context.Background(), tc.merchant)
			assert.EqualError(t, err, tc.message)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}
}

func TestSaveMerchant_PrefixConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	m.TestOrderIDPrefix = "ACME-"

	other := activeMerchant("M2", models.MerchantModeLive)
	other.LiveOrderIDPrefix = "ACME-"

	repo.EXPECT().List(gomock.Any()).Return([]*models.Merchant{other}, nil)

	err := uc.SaveMerchant(context.Background(), m)

	assert.EqualError(t, err, `prefix "ACME-" conflicts with prefix "ACME-" of merchant M2`)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestSaveMerchant_DistinctPrefixesMayShareAStem(t *testing.T) {
	// Prefix uniqueness is exact-match: "AB" held by one merchant does not
	// block "ABC" for another, and vice versa.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	m.TestOrderIDPrefix = "AB"

	other := activeMerchant("M2", models.MerchantModeTest)
	other.TestOrderIDPrefix = "ABC"

	repo.EXPECT().List(gomock.Any()).Return([]*models.Merchant{other}, nil)
	repo.EXPECT().Save(gomock.Any(), m).Return(nil)

	assert.NoError(t, uc.SaveMerchant(context.Background(), m))
}

func TestSaveMerchant_PrefixComparisonIsCaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	m.TestOrderIDPrefix = "acme-"

	other := activeMerchant("M2", models.MerchantModeTest)
	other.TestOrderIDPrefix = "ACME-"

	repo.EXPECT().List(gomock.Any()).Return([]*models.Merchant{other}, nil)
	repo.EXPECT().Save(gomock.Any(), m).Return(nil)

	assert.NoError(t, uc.SaveMerchant(context.Background(), m))
}

func TestSaveMerchant_OwnPrefixesDoNotConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo := newMerchantUC(ctrl)

	m := activeMerchant("M1", models.MerchantModeTest)
	m.TestOrderIDPrefix = "ACME-"

	// The stored copy of the same merchant is skipped during the scan.
	stored := activeMerchant("M1", models.MerchantModeTest)
	stored.TestOrderIDPrefix = "ACME-"

	repo.EXPECT().List(gomock.Any()).Return([]*models.Merchant{stored}, nil)
	repo.EXPECT().Save(gomock.Any(), m).Return(nil)

	assert.NoError(t, uc.SaveMerchant(context.Background(), m))
}
