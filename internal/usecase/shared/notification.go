package shared

import "github.com/google/uuid"

const (
	JobKindEmail = "email"

	TopicBookingConfirmation = "booking.confirmation"
	TopicQuoteIssued         = "booking.quote_issued"
	TopicStatusChanged       = "booking.status_changed"
)

// Job lifecycle in notification_jobs
const (
	JobStatusQueued  = "queued"
	JobStatusRunning = "running"
	JobStatusSent    = "sent"
	JobStatusFailed  = "failed"
)

// EmailNotification is the outbox payload of an email job
type EmailNotification struct {
	To              string `json:"to"`
	CustomerName    string `json:"customer_name"`
	BookingRef      string `json:"booking_ref"`
	ListingName     string `json:"listing_name"`
	TenantName      string `json:"tenant_name,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalPrice      string `json:"total_price"`
	Status          string `json:"status,omitempty"`
	DeliveryPending bool   `json:"delivery_pending,omitempty"`
}

// NotificationJob is a claimed outbox row
type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}
