package apicontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/creditco/cupa/internal/pkg/models"
)

func TestRequestContext_Authenticated(t *testing.T) {
	var nilCtx *RequestContext
	assert.False(t, nilCtx.Authenticated())
	assert.False(t, (&RequestContext{}).Authenticated())

	assert.True(t, (&RequestContext{User: &models.User{Login: "ops"}}).Authenticated())
	assert.True(t, (&RequestContext{
		Merchant: &MerchantContext{MerchantID: "M1", Status: models.MerchantStatusActive},
	}).Authenticated())

	// A resolved but inactive merchant is not a usable principal.
	assert.False(t, (&RequestContext{
		Merchant: &MerchantContext{MerchantID: "M1", Status: models.MerchantStatusSuspended},
	}).Authenticated())
}

func TestRequestContext_CanAccessMerchant(t *testing.T) {
	apiKeyCaller := &RequestContext{
		Merchant: &MerchantContext{MerchantID: "M1", Status: models.MerchantStatusActive},
	}
	assert.True(t, apiKeyCaller.CanAccessMerchant("M1"))
	assert.False(t, apiKeyCaller.CanAccessMerchant("M2"))
	assert.False(t, apiKeyCaller.CanAccessMerchant(""))

	scopedUser := &RequestContext{User: &models.User{Login: "ops", MerchantIDs: []string{"M1", "M2"}}}
	assert.True(t, scopedUser.CanAccessMerchant("M2"))
	assert.False(t, scopedUser.CanAccessMerchant("M3"))

	admin := &RequestContext{User: &models.User{Login: "root", Admin: true}}
	assert.True(t, admin.CanAccessMerchant("M3"))
}

func TestMerchantContext_PrefixChecks(t *testing.T) {
	mc := &MerchantContext{OrderIDPrefix: "ACME-", ClientIDPrefix: "AC"}

	assert.True(t, mc.SatisfiesOrderIDPrefix("ACME-001"))
	assert.False(t, mc.SatisfiesOrderIDPrefix("OTHER-001"))
	assert.False(t, mc.SatisfiesOrderIDPrefix("ACM"))
	assert.True(t, mc.SatisfiesClientIDPrefix("AC-77"))

	unset := &MerchantContext{}
	assert.True(t, unset.SatisfiesOrderIDPrefix("anything"))
	assert.True(t, unset.SatisfiesClientIDPrefix(""))
}

func TestWithRequestContext_RoundTrip(t *testing.T) {
	rc := &RequestContext{OrderID: "ORD-1"}
	ctx := WithRequestContext(context.Background(), rc)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, rc, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
