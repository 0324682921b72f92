package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/creditco/cupa/internal/pkg/models"
	"github.com/creditco/cupa/internal/utils"
)

// merchantRequest is the admin-facing merchant payload. The model itself
// never serializes credentials, so the write path carries them explicitly.
type merchantRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Mode   string `json:"mode"`
	Status string `json:"status"`

	CupaTestAPIKey string `json:"cupaTestApiKey"`
	CupaLiveAPIKey string `json:"cupaLiveApiKey"`

	RemoteTestURL         string `json:"remoteTestUrl"`
	RemoteTestMerchantID  string `json:"remoteTestMerchantId"`
	RemoteTestMerchantKey string `json:"remoteTestMerchantKey"`
	RemoteTestAPIKey      string `json:"remoteTestApiKey"`

	RemoteLiveURL         string `json:"remoteLiveUrl"`
	RemoteLiveMerchantID  string `json:"remoteLiveMerchantId"`
	RemoteLiveMerchantKey string `json:"remoteLiveMerchantKey"`
	RemoteLiveAPIKey      string `json:"remoteLiveApiKey"`

	TestOrderIDPrefix  string `json:"testOrderIdPrefix"`
	TestClientIDPrefix string `json:"testClientIdPrefix"`
	LiveOrderIDPrefix  string `json:"liveOrderIdPrefix"`
	LiveClientIDPrefix string `json:"liveClientIdPrefix"`

	TestLimitStartDate   *time.Time       `json:"testLimitStartDate"`
	TestLimitStartAmount *decimal.Decimal `json:"testLimitStartAmount"`
	TestLimitAfterDate   *time.Time       `json:"testLimitAfterDate"`
	TestLimitAfterAmount *decimal.Decimal `json:"testLimitAfterAmount"`

	LiveLimitStartDate   *time.Time       `json:"liveLimitStartDate"`
	LiveLimitStartAmount *decimal.Decimal `json:"liveLimitStartAmount"`
	LiveLimitAfterDate   *time.Time       `json:"liveLimitAfterDate"`
	LiveLimitAfterAmount *decimal.Decimal `json:"liveLimitAfterAmount"`

	Version int64 `json:"version"`
}

func (req *merchantRequest) toModel() *models.Merchant {
	return &models.Merchant{
		ID:     req.ID,
		Name:   req.Name,
		Mode:   models.MerchantMode(req.Mode),
		Status: models.MerchantStatus(req.Status),

		CupaTestAPIKey: req.CupaTestAPIKey,
		CupaLiveAPIKey: req.CupaLiveAPIKey,

		RemoteTestURL:         req.RemoteTestURL,
		RemoteTestMerchantID:  req.RemoteTestMerchantID,
		RemoteTestMerchantKey: req.RemoteTestMerchantKey,
		RemoteTestAPIKey:      req.RemoteTestAPIKey,

		RemoteLiveURL:         req.RemoteLiveURL,
		RemoteLiveMerchantID:  req.RemoteLiveMerchantID,
		RemoteLiveMerchantKey: req.RemoteLiveMerchantKey,
		RemoteLiveAPIKey:      req.RemoteLiveAPIKey,

		TestOrderIDPrefix:  req.TestOrderIDPrefix,
		TestClientIDPrefix: req.TestClientIDPrefix,
		LiveOrderIDPrefix:  req.LiveOrderIDPrefix,
		LiveClientIDPrefix: req.LiveClientIDPrefix,

		TestLimitStartDate:   req.TestLimitStartDate,
		TestLimitStartAmount: req.TestLimitStartAmount,
		TestLimitAfterDate:   req.TestLimitAfterDate,
		TestLimitAfterAmount: req.TestLimitAfterAmount,

		LiveLimitStartDate:   req.LiveLimitStartDate,
		LiveLimitStartAmount: req.LiveLimitStartAmount,
		LiveLimitAfterDate:   req.LiveLimitAfterDate,
		LiveLimitAfterAmount: req.LiveLimitAfterAmount,

		Version: req.Version,
	}
}

// ListMerchants returns all configured merchants.
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	merchants, err := h.merchantUC.ListMerchants(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchants retrieved successfully", merchants)
}

// GetMerchant returns a single merchant by id.
func (h *MerchantHandler) GetMerchant(c echo.Context) error {
	merchant, err := h.merchantUC.GetMerchant(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant retrieved successfully", merchant)
}

// SaveMerchant creates or updates a merchant configuration.
func (h *MerchantHandler) SaveMerchant(c echo.Context) error {
	var req merchantRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	merchant := req.toModel()
	if err := h.merchantUC.SaveMerchant(c.Request().Context(), merchant); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Merchant saved successfully", merchant)
}
