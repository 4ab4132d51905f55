package payment

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func notificationSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestVerifyNotificationSignature(t *testing.T) {
	client := newTestClient("http://unused")

	orderID := "ORD-1700000000000-ABCDEF123"
	sig := notificationSignature(orderID, "200", "250000.00", "SB-Mid-server-test")

	assert.True(t, client.VerifyNotificationSignature(orderID, "200", "250000.00", sig))
	assert.True(t, client.VerifyNotificationSignature(orderID, "200", "250000.00", strings.ToUpper(sig)),
		"hex case must not matter")
}

func TestVerifyNotificationSignatureRejectsForgeries(t *testing.T) {
	client := newTestClient("http://unused")

	orderID := "ORD-1700000000000-ABCDEF123"
	goodSig := notificationSignature(orderID, "200", "250000.00", "SB-Mid-server-test")

	assert.False(t, client.VerifyNotificationSignature(orderID, "200", "250000.00", ""),
		"empty signature")
	assert.False(t, client.VerifyNotificationSignature(orderID, "200", "250000.00", "deadbeef"),
		"bogus signature")
	assert.False(t, client.VerifyNotificationSignature("ORD-other", "200", "250000.00", goodSig),
		"signature for a different order")
	assert.False(t, client.VerifyNotificationSignature(orderID, "200", "999999.00", goodSig),
		"signature for a different amount")

	wrongKey := notificationSignature(orderID, "200", "250000.00", "some-other-key")
	assert.False(t, client.VerifyNotificationSignature(orderID, "200", "250000.00", wrongKey),
		"signature computed with the wrong server key")
}
