package listing

import (
	"strings"
	"time"

	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

const MinYear = 1900

var (
	ErrInvalidCategory      = errs.New("invalid listing category")
	ErrInvalidSpecs         = errs.New("invalid listing specs")
	ErrTransmissionRequired = errs.New("transmission must be automatic or manual")
	ErrTonnageRequired      = errs.New("tonnage is required for heavy equipment")
	ErrInvalidSeats         = errs.New("seats must be between 1 and 60")
	ErrInvalidYear          = errs.New("invalid model year")
	ErrInvalidPrice         = errs.New("price must be between 0 and 1000000 OMR")
	ErrInvalidCommission    = errs.New("commission must be between 0 and 100 percent")
	ErrMakeRequired         = errs.New("make is required")
	ErrModelRequired        = errs.New("model is required")
	ErrSpecsMismatch        = errs.New("specs do not match listing category")
)

// Draft is the vendor-supplied part of a listing
type Draft struct {
	Category    Category
	Make        string
	Model       string
	Year        int
	VendorRate  money.Money
	Description string
	LocationID  *uuid.UUID
	Features    []string
	Specs       Specs
	IsFeatured  bool
}

// Listing is a rentable vehicle or machine owned by one tenant.
// dailyRate is the public market rate; baseRate is what the vendor nets.
type Listing struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	category    Category
	make        string
	model       string
	year        int
	dailyRate   money.Money
	baseRate    money.Money
	isAvailable bool
	isFeatured  bool
	features    []string
	images      []string
	description string
	locationID  *uuid.UUID
	specs       Specs
	createdAt   time.Time
	updatedAt   time.Time
}

func NewListing(tenantID uuid.UUID, d Draft, commission Commission, now time.Time) (*Listing, error) {
	if err := validateDraft(d, now); err != nil {
		return nil, err
	}
	return &Listing{
		id:          uuid.New(),
		tenantID:    tenantID,
		category:    d.Category,
		make:        strings.TrimSpace(d.Make),
		model:       strings.TrimSpace(d.Model),
		year:        d.Year,
		dailyRate:   commission.MarketRate(d.VendorRate),
		baseRate:    d.VendorRate,
		isAvailable: true,
		isFeatured:  d.IsFeatured,
		features:    NormalizeFeatures(d.Features),
		images:      []string{},
		description: strings.TrimSpace(d.Description),
		locationID:  d.LocationID,
		specs:       d.Specs,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func validateDraft(d Draft, now time.Time) error {
	if !d.Category.IsValid() {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(d.Make) == "" {
		return ErrMakeRequired
	}
	if strings.TrimSpace(d.Model) == "" {
		return ErrModelRequired
	}
	if err := ValidateYear(d.Year, now); err != nil {
		return err
	}
	if err := ValidateVendorRate(d.VendorRate); err != nil {
		return err
	}
	if d.Specs != nil {
		if d.Specs.Category() != d.Category {
			return ErrSpecsMismatch
		}
		if err := d.Specs.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func ValidateYear(year int, now time.Time) error {
	if year < MinYear || year > now.Year()+1 {
		return ErrInvalidYear
	}
	return nil
}

// NormalizeFeatures trims entries and drops empty ones
func NormalizeFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		for _, part := range strings.Split(f, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Changes is a partial vendor edit; nil fields are left untouched
type Changes struct {
	Make        *string
	Model       *string
	Year        *int
	VendorRate  *money.Money
	Description *string
	LocationID  *uuid.UUID
	Features    []string
	Specs       Specs
	IsFeatured  *bool
}

func (l *Listing) Update(c Changes, commission Commission, now time.Time) error {
	if c.Make != nil {
		if strings.TrimSpace(*c.Make) == "" {
			return ErrMakeRequired
		}
		l.make = strings.TrimSpace(*c.Make)
	}
	if c.Model != nil {
		if strings.TrimSpace(*c.Model) == "" {
			return ErrModelRequired
		}
		l.model = strings.TrimSpace(*c.Model)
	}
	if c.Year != nil {
		if err := ValidateYear(*c.Year, now); err != nil {
			return err
		}
		l.year = *c.Year
	}
	if c.VendorRate != nil {
		if err := ValidateVendorRate(*c.VendorRate); err != nil {
			return err
		}
		l.baseRate = *c.VendorRate
		l.dailyRate = commission.MarketRate(*c.VendorRate)
	}
	l.description = strings.TrimSpace(patch.Coalesce(c.Description, l.description))
	if c.LocationID != nil {
		id := *c.LocationID
		l.locationID = &id
	}
	if c.Features != nil {
		l.features = NormalizeFeatures(c.Features)
	}
	if c.Specs != nil {
		if c.Specs.Category() != l.category {
			return ErrSpecsMismatch
		}
		if err := c.Specs.Validate(); err != nil {
			return err
		}
		l.specs = c.Specs
	}
	patch.Apply(&l.isFeatured, c.IsFeatured)
	l.updatedAt = now
	return nil
}

func (l *Listing) ToggleAvailability(now time.Time) bool {
	l.isAvailable = !l.isAvailable
	l.updatedAt = now
	return l.isAvailable
}

func (l *Listing) AddImage(url string, now time.Time) {
	l.images = append(l.images, url)
	l.updatedAt = now
}

// Bookable reports whether customers may reserve the listing
func (l *Listing) Bookable() bool {
	return l.isAvailable
}

func (l *Listing) BelongsTo(tenantID uuid.UUID) bool {
	return l.tenantID == tenantID
}

func Reconstruct(
	id, tenantID uuid.UUID,
	category Category,
	makeName, model string,
	year int,
	dailyRate, baseRate money.Money,
	isAvailable, isFeatured bool,
	features, images []string,
	description string,
	locationID *uuid.UUID,
	specs Specs,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		tenantID:    tenantID,
		category:    category,
		make:        makeName,
		model:       model,
		year:        year,
		dailyRate:   dailyRate,
		baseRate:    baseRate,
		isAvailable: isAvailable,
		isFeatured:  isFeatured,
		features:    features,
		images:      images,
		description: description,
		locationID:  locationID,
		specs:       specs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) TenantID() uuid.UUID    { return l.tenantID }
func (l *Listing) Category() Category     { return l.category }
func (l *Listing) Make() string           { return l.make }
func (l *Listing) Model() string          { return l.model }
func (l *Listing) Year() int              { return l.year }
func (l *Listing) DailyRate() money.Money { return l.dailyRate }
func (l *Listing) BaseRate() money.Money  { return l.baseRate }
func (l *Listing) IsAvailable() bool      { return l.isAvailable }
func (l *Listing) IsFeatured() bool       { return l.isFeatured }
func (l *Listing) Features() []string     { return l.features }
func (l *Listing) Images() []string       { return l.images }
func (l *Listing) Description() string    { return l.description }
func (l *Listing) LocationID() *uuid.UUID { return l.locationID }
func (l *Listing) Specs() Specs           { return l.specs }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
