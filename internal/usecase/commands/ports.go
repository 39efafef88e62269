package commands

import (
	"context"
	"io"
)

// PaymentGateway issues hosted-checkout payment keys
type PaymentGateway interface {
	RequestPaymentKey(ctx context.Context, req PaymentRequest) (*PaymentKey, error)
}

type PaymentRequest struct {
	AmountBaisa     int64
	Currency        string
	MerchantOrderID string
	Billing         BillingData
}

type BillingData struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type PaymentKey struct {
	Token     string
	IframeURL string
	OrderID   string
}

// BlobStore holds listing images
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, keys []string) error
}

// JobSignal wakes the outbox dispatcher once a transaction enqueuing jobs has committed
type JobSignal interface {
	Kick()
}
