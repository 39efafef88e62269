//go:build unit

package mail_test

import (
	"context"
	"testing"

	"rental-marketplace/internal/infra/mail"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notification() shared.EmailNotification {
	return shared.EmailNotification{
		To:           "maryam@example.com",
		CustomerName: "Maryam <script>",
		BookingRef:   "1A2B3C4D",
		ListingName:  "Toyota Land Cruiser",
		TenantName:   "Al Noor",
		StartDate:    "2024-01-10",
		EndDate:      "2024-01-13",
		TotalPrice:   "75.000 OMR",
		Status:       "confirmed",
	}
}

func TestRender(t *testing.T) {
	t.Run("success: confirmation carries reference and escapes input", func(t *testing.T) {
		subject, body, err := mail.Render(shared.TopicBookingConfirmation, notification())

		require.NoError(t, err)
		assert.Equal(t, "Booking Confirmed! (Ref: 1A2B3C4D)", subject)
		assert.Contains(t, body, "Toyota Land Cruiser")
		assert.Contains(t, body, "#1A2B3C4D")
		assert.NotContains(t, body, "<script>")
		assert.NotContains(t, body, "final quote")
	})

	t.Run("success: delivery requests mention the quote", func(t *testing.T) {
		n := notification()
		n.DeliveryPending = true

		_, body, err := mail.Render(shared.TopicBookingConfirmation, n)

		require.NoError(t, err)
		assert.Contains(t, body, "final quote")
	})

	t.Run("success: quote and status templates", func(t *testing.T) {
		_, quote, err := mail.Render(shared.TopicQuoteIssued, notification())
		require.NoError(t, err)
		assert.Contains(t, quote, "75.000 OMR")

		_, status, err := mail.Render(shared.TopicStatusChanged, notification())
		require.NoError(t, err)
		assert.Contains(t, status, "<strong>confirmed</strong>")
	})

	t.Run("error: unknown topic", func(t *testing.T) {
		_, _, err := mail.Render("booking.unknown", notification())

		assert.True(t, errs.Is(err, mail.ErrUnknownTopic))
	})
}

func TestSMTPMailer_WithoutHost(t *testing.T) {
	m := mail.NewSMTPMailer(config.NewTestConfig().Mail)

	assert.NoError(t, m.Send(context.Background(), shared.TopicBookingConfirmation, notification()))
}
