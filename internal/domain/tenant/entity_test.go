//go:build unit

package tenant_test

import (
	"testing"
	"time"

	"rental-marketplace/internal/domain/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Muscat Car Rentals":         "muscat-car-rentals",
		"Al-Noor  Heavy & Equipment": "al-noor-heavy-equipment",
		"Sohar__Trucks!!":            "sohar-trucks-",
	}
	for in, want := range tests {
		assert.Equal(t, want, tenant.Slugify(in), in)
	}
}

func TestApply(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	app := tenant.Application{
		Name:     " Dhofar Rentals ",
		Phone:    "+96823000000",
		CRNumber: "1234567",
		Address:  "Salalah",
	}

	t.Run("new vendors start pending", func(t *testing.T) {
		tn, err := tenant.Apply(app, now)
		require.NoError(t, err)
		assert.Equal(t, "dhofar-rentals", tn.Slug())
		assert.Equal(t, tenant.StatusPending, tn.Status())
		assert.False(t, tn.IsActive())

		require.NoError(t, tn.Approve(now))
		assert.True(t, tn.IsActive())
		assert.ErrorIs(t, tn.Approve(now), tenant.ErrAlreadyActive)
	})

	for _, field := range []string{"name", "phone", "cr", "address"} {
		t.Run("missing "+field, func(t *testing.T) {
			a := app
			switch field {
			case "name":
				a.Name = " "
			case "phone":
				a.Phone = ""
			case "cr":
				a.CRNumber = ""
			case "address":
				a.Address = ""
			}
			_, err := tenant.Apply(a, now)
			require.ErrorIs(t, err, tenant.ErrMissingFields)
		})
	}
}
