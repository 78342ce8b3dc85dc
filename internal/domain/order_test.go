package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus_Members(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusQuoted,
		OrderStatusCompleted,
		OrderStatusCancelled,
	} {
		assert.True(t, IsValidOrderStatus(status), "status %q should be valid", status)
	}
}

func TestIsValidOrderStatus_Rejections(t *testing.T) {
	for _, status := range []string{"", "bogus", "PENDING", "quote_pending", "approved", "shipped"} {
		assert.False(t, IsValidOrderStatus(status), "status %q should be invalid", status)
	}
}
