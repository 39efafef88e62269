package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"
)

var ErrUnknownTopic = errs.New("no email template for topic")

type message struct {
	subject string
	body    *template.Template
}

const layoutStart = `<div style="font-family: sans-serif; padding: 20px; color: #333;">`
const layoutEnd = `<hr style="border: 1px solid #eee; margin: 20px 0;" />
<p style="font-size: 12px; color: #888;">Thank you for choosing Oman Rentals.</p>
</div>`

var messages = map[string]message{
	shared.TopicBookingConfirmation: {
		subject: "Booking Confirmed! (Ref: %s)",
		body: template.Must(template.New("confirmation").Parse(layoutStart + `
<h1 style="color: #000;">Booking Received</h1>
<p>Hi {{.CustomerName}},</p>
<p>We have received your request for the <strong>{{.ListingName}}</strong> from {{.StartDate}} to {{.EndDate}}.</p>
<p><strong>Booking Reference:</strong> #{{.BookingRef}}</p>
<p><strong>Total:</strong> {{.TotalPrice}}</p>
{{if .DeliveryPending}}<p>You asked for delivery. The vendor will send you a final quote before payment.</p>{{end}}
<p>The vendor has been notified and will contact you shortly via WhatsApp to confirm details.</p>
` + layoutEnd)),
	},
	shared.TopicQuoteIssued: {
		subject: "Your quote is ready (Ref: %s)",
		body: template.Must(template.New("quote").Parse(layoutStart + `
<h1 style="color: #000;">Your Quote</h1>
<p>Hi {{.CustomerName}},</p>
<p>{{if .TenantName}}{{.TenantName}}{{else}}The vendor{{end}} has quoted <strong>{{.TotalPrice}}</strong> for the {{.ListingName}}, {{.StartDate}} to {{.EndDate}}, delivery included.</p>
<p>Open My Bookings to pay and secure the vehicle. Reference #{{.BookingRef}}.</p>
` + layoutEnd)),
	},
	shared.TopicStatusChanged: {
		subject: "Booking update (Ref: %s)",
		body: template.Must(template.New("status").Parse(layoutStart + `
<h1 style="color: #000;">Booking {{.Status}}</h1>
<p>Hi {{.CustomerName}},</p>
<p>Your booking #{{.BookingRef}} for the {{.ListingName}} ({{.StartDate}} to {{.EndDate}}) is now <strong>{{.Status}}</strong>.</p>
` + layoutEnd)),
	},
}

// Render returns the subject and HTML body for a notification topic
func Render(topic string, n shared.EmailNotification) (string, string, error) {
	m, ok := messages[topic]
	if !ok {
		return "", "", errs.Wrapf(ErrUnknownTopic, "topic %q", topic)
	}
	var buf bytes.Buffer
	if err := m.body.Execute(&buf, n); err != nil {
		return "", "", errs.Wrap(err, "render email")
	}
	return fmt.Sprintf(m.subject, n.BookingRef), buf.String(), nil
}
