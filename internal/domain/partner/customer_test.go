package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid inputs", func(t *testing.T) {
		customer, err := NewCustomer("Jordan Reyes", "jordan@example.com")
		require.NoError(t, err)
		require.NotNil(t, customer)

		assert.Equal(t, "Jordan Reyes", customer.Name)
		assert.Equal(t, "jordan@example.com", customer.Email)
		assert.NotEmpty(t, customer.ID)
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		customer, err := NewCustomer("Jordan Reyes", "Jordan@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "jordan@example.com", customer.Email)
	})

	t.Run("publishes CustomerCreated event", func(t *testing.T) {
		customer, err := NewCustomer("Jordan Reyes", "jordan@example.com")
		require.NoError(t, err)

		events := customer.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCustomerCreated, events[0].EventType())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("  ", "jordan@example.com")
		require.Error(t, err)
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewCustomer("Jordan Reyes", "not-an-email")
		require.Error(t, err)
	})
}
