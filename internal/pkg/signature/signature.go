// Package signature implements the gateway's webhook signature contract.
//
// The signature is calculated as
//
//	MD5(success + clientID + lower(orderID) + MD5(merchantKey) + amount + currency + merchantID)
//
// where absent fields contribute nothing to the clear text and amount is the
// exact wire text. Verification must happen before any transaction lookup so
// that an unsigned caller learns nothing about existing order ids.
package signature

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/creditco/cupa/internal/pkg/models"
)

// Compute calculates the expected signature for a payment reply.
func Compute(reply *models.PaymentReply, merchantKey string) string {
	var clearText strings.Builder

	clearText.WriteString(reply.Success)
	clearText.WriteString(reply.ClientID)
	clearText.WriteString(strings.ToLower(reply.OrderID))
	clearText.WriteString(md5Hex(merchantKey))
	clearText.WriteString(reply.SignatureAmount())
	clearText.WriteString(reply.Currency)
	clearText.WriteString(reply.MerchantID)

	return md5Hex(clearText.String())
}

// Verify recomputes the signature and compares it to the declared one in
// constant time. A nil reply, an empty merchant key or a missing declared
// signature always fails.
func Verify(reply *models.PaymentReply, merchantKey string) bool {
	if reply == nil || merchantKey == "" || reply.Signature == "" {
		return false
	}
	expected := Compute(reply, merchantKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(reply.Signature)) == 1
}

func md5Hex(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
