package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/commands"

	"github.com/guonaihong/gout"
)

var (
	ErrNotConfigured = errs.New("payment provider not configured")
	ErrUpstream      = errs.New("payment provider rejected the request")
)

// billing fields Paymob requires but the marketplace does not collect
const notApplicable = "NA"

// PaymobClient runs the three-step hosted checkout handshake:
// authenticate, register the order, then request a payment key for it.
type PaymobClient struct {
	cfg config.PaymentConfig
}

func NewPaymobClient(cfg config.PaymentConfig) *PaymobClient {
	return &PaymobClient{cfg: cfg}
}

type authResponse struct {
	Token string `json:"token"`
}

type orderResponse struct {
	ID int64 `json:"id"`
}

type paymentKeyResponse struct {
	Token string `json:"token"`
}

func (c *PaymobClient) RequestPaymentKey(ctx context.Context, req commands.PaymentRequest) (*commands.PaymentKey, error) {
	if c.cfg.APIKey == "" || c.cfg.IntegrationID == "" {
		return nil, ErrNotConfigured
	}

	started := time.Now()
	authToken, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	orderID, err := c.registerOrder(ctx, authToken, req)
	if err != nil {
		return nil, err
	}

	token, err := c.paymentKey(ctx, authToken, orderID, req)
	if err != nil {
		return nil, err
	}

	slog.Info("payment key issued",
		"merchant_order_id", req.MerchantOrderID,
		"paymob_order_id", orderID,
		"amount_baisa", req.AmountBaisa,
		"elapsed_ms", time.Since(started).Milliseconds())

	return &commands.PaymentKey{
		Token:     token,
		IframeURL: c.iframeURL(token),
		OrderID:   strconv.FormatInt(orderID, 10),
	}, nil
}

func (c *PaymobClient) authenticate(ctx context.Context) (string, error) {
	var resp authResponse
	if err := c.post(ctx, "/api/auth/tokens", gout.H{"api_key": c.cfg.APIKey}, &resp); err != nil {
		return "", errs.Wrap(err, "paymob authentication")
	}
	if resp.Token == "" {
		return "", errs.Wrap(ErrUpstream, "paymob authentication returned no token")
	}
	return resp.Token, nil
}

func (c *PaymobClient) registerOrder(ctx context.Context, authToken string, req commands.PaymentRequest) (int64, error) {
	var resp orderResponse
	body := gout.H{
		"auth_token":        authToken,
		"delivery_needed":   "false",
		"amount_cents":      req.AmountBaisa,
		"currency":          req.Currency,
		"items":             []any{},
		"merchant_order_id": req.MerchantOrderID,
	}
	if err := c.post(ctx, "/api/ecommerce/orders", body, &resp); err != nil {
		return 0, errs.Wrap(err, "paymob order registration")
	}
	if resp.ID == 0 {
		return 0, errs.Wrap(ErrUpstream, "paymob order registration returned no id")
	}
	return resp.ID, nil
}

func (c *PaymobClient) paymentKey(ctx context.Context, authToken string, orderID int64, req commands.PaymentRequest) (string, error) {
	var resp paymentKeyResponse
	body := gout.H{
		"auth_token":     authToken,
		"amount_cents":   req.AmountBaisa,
		"expiration":     c.cfg.KeyExpiry,
		"order_id":       orderID,
		"currency":       req.Currency,
		"integration_id": c.cfg.IntegrationID,
		"billing_data": gout.H{
			"apartment":       notApplicable,
			"floor":           notApplicable,
			"street":          notApplicable,
			"building":        notApplicable,
			"shipping_method": notApplicable,
			"postal_code":     notApplicable,
			"email":           req.Billing.Email,
			"first_name":      req.Billing.FirstName,
			"last_name":       req.Billing.LastName,
			"phone_number":    req.Billing.Phone,
			"city":            c.cfg.BillingCity,
			"state":           c.cfg.BillingState,
			"country":         c.cfg.BillingCountry,
		},
	}
	if err := c.post(ctx, "/api/acceptance/payment_keys", body, &resp); err != nil {
		return "", errs.Wrap(err, "paymob payment key")
	}
	if resp.Token == "" {
		return "", errs.Wrap(ErrUpstream, "paymob payment key missing")
	}
	return resp.Token, nil
}

func (c *PaymobClient) post(ctx context.Context, path string, body gout.H, out any) error {
	var code int
	err := gout.POST(c.url(path)).
		WithContext(ctx).
		SetTimeout(c.cfg.Timeout).
		SetJSON(body).
		BindJSON(out).
		Code(&code).
		Do()
	if err != nil {
		return err
	}
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		return errs.Wrapf(ErrUpstream, "%s answered %d", path, code)
	}
	return nil
}

func (c *PaymobClient) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *PaymobClient) iframeURL(token string) string {
	if c.cfg.IframeID == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/acceptance/iframes/%s?payment_token=%s", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.IframeID, token)
}
