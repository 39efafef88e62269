package tenant

import (
	"time"

	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errs.New("all fields are required: company name, phone, CR number and address")
	ErrNotActive     = errs.New("company is not active")
	ErrAlreadyActive = errs.New("company is already active")
	ErrInvalidSlug   = errs.New("company name must contain letters or digits")
)

// Tenant is a vendor organisation. Listings of pending tenants are never shown.
type Tenant struct {
	id             uuid.UUID
	name           string
	slug           string
	status         Status
	phone          string
	whatsappNumber string
	crNumber       string
	address        string
	email          string
	logoURL        string
	city           string
	isFeatured     bool
	createdAt      time.Time
	updatedAt      time.Time
}

func Apply(app Application, now time.Time) (*Tenant, error) {
	if err := app.Validate(); err != nil {
		return nil, err
	}
	n := app.normalized()
	slug := Slugify(n.Name)
	if slug == "" || slug == "-" {
		return nil, ErrInvalidSlug
	}
	return &Tenant{
		id:             uuid.New(),
		name:           n.Name,
		slug:           slug,
		status:         StatusPending,
		phone:          n.Phone,
		whatsappNumber: n.Phone,
		crNumber:       n.CRNumber,
		address:        n.Address,
		email:          n.Email,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func (t *Tenant) Approve(now time.Time) error {
	if t.status == StatusActive {
		return ErrAlreadyActive
	}
	t.status = StatusActive
	t.updatedAt = now
	return nil
}

func (t *Tenant) ApplySettings(s Settings, now time.Time) {
	patch.Apply(&t.whatsappNumber, s.WhatsappNumber)
	patch.Apply(&t.address, s.Address)
	patch.Apply(&t.email, s.Email)
	patch.Apply(&t.logoURL, s.LogoURL)
	patch.Apply(&t.city, s.City)
	t.updatedAt = now
}

func (t *Tenant) IsActive() bool {
	return t.status == StatusActive
}

func Reconstruct(
	id uuid.UUID,
	name, slug string,
	status Status,
	phone, whatsappNumber, crNumber, address, email, logoURL, city string,
	isFeatured bool,
	createdAt, updatedAt time.Time,
) *Tenant {
	return &Tenant{
		id:             id,
		name:           name,
		slug:           slug,
		status:         status,
		phone:          phone,
		whatsappNumber: whatsappNumber,
		crNumber:       crNumber,
		address:        address,
		email:          email,
		logoURL:        logoURL,
		city:           city,
		isFeatured:     isFeatured,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (t *Tenant) ID() uuid.UUID          { return t.id }
func (t *Tenant) Name() string           { return t.name }
func (t *Tenant) Slug() string           { return t.slug }
func (t *Tenant) Status() Status         { return t.status }
func (t *Tenant) Phone() string          { return t.phone }
func (t *Tenant) WhatsappNumber() string { return t.whatsappNumber }
func (t *Tenant) CRNumber() string       { return t.crNumber }
func (t *Tenant) Address() string        { return t.address }
func (t *Tenant) Email() string          { return t.email }
func (t *Tenant) LogoURL() string        { return t.logoURL }
func (t *Tenant) City() string           { return t.city }
func (t *Tenant) IsFeatured() bool       { return t.isFeatured }
func (t *Tenant) CreatedAt() time.Time   { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time   { return t.updatedAt }
