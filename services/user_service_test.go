package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserRoleIsCustomer(t *testing.T) {
	user := NewUser("Budi", "budi@example.com", "$2a$10$hash", "081234567890")

	assert.Equal(t, "customer", user.Role)
	assert.Equal(t, "budi@example.com", user.Email)
	assert.NotNil(t, user.PurchasedProducts)
	assert.Empty(t, user.PurchasedProducts)
	assert.False(t, user.ID.IsZero())
	assert.False(t, user.CreatedAt.IsZero())
}
