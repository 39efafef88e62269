package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	TenantID *uuid.UUID `json:"tenant_id,omitempty"`
	FullName string     `json:"full_name"`
	Phone    string     `json:"phone,omitempty"`
	IsActive bool       `json:"is_active"`

	// Set only by lookups that join the user's company
	TenantName   *string `json:"tenant_name,omitempty"`
	TenantStatus *string `json:"tenant_status,omitempty"`
	VendorAccess string  `json:"vendor_access,omitempty"`
}

type AvailabilityView struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// TenantSummary is the vendor card shown next to a listing
type TenantSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	WhatsappNumber string    `json:"whatsapp_number"`
	Address        string    `json:"address"`
	LogoURL        string    `json:"logo_url"`
}

type FleetItemView struct {
	ID             uuid.UUID       `json:"id"`
	TenantID       uuid.UUID       `json:"tenant_id"`
	Category       string          `json:"category"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Year           int             `json:"year"`
	DailyRate      float64         `json:"daily_rate"`
	DailyRateBaisa int64           `json:"daily_rate_baisa"`
	IsAvailable    bool            `json:"is_available"`
	IsFeatured     bool            `json:"is_featured"`
	Features       []string        `json:"features"`
	Images         []string        `json:"images"`
	Description    string          `json:"description"`
	LocationID     *uuid.UUID      `json:"location_id,omitempty"`
	Specs          json.RawMessage `json:"specs"`
	Tenant         *TenantSummary  `json:"tenant,omitempty"`
}

// VendorListingView adds the vendor-net rate only the owning tenant sees
type VendorListingView struct {
	FleetItemView
	BaseRate      float64 `json:"base_rate"`
	BaseRateBaisa int64   `json:"base_rate_baisa"`
}

type LocationView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type CompanyView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	WhatsappNumber string    `json:"whatsapp_number"`
	LogoURL        string    `json:"logo_url"`
	City           string    `json:"city"`
}

type CompanyDetailView struct {
	Company CompanyProfileView `json:"company"`
	Fleet   []FleetItemView    `json:"fleet"`
}

type CompanyProfileView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Phone          string    `json:"phone"`
	WhatsappNumber string    `json:"whatsapp_number"`
	Address        string    `json:"address"`
	Email          string    `json:"email"`
	LogoURL        string    `json:"logo_url"`
	City           string    `json:"city"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	Reference       string    `json:"reference"`
	ListingID       uuid.UUID `json:"listing_id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	ListingName     string    `json:"listing_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	DeliveryNeeded  bool      `json:"delivery_needed"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Days            int       `json:"days"`
	TotalPrice      float64   `json:"total_price"`
	TotalPriceBaisa int64     `json:"total_price_baisa"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type VendorDashboardView struct {
	PendingCount        int64   `json:"pending_count"`
	ActiveCount         int64   `json:"active_count"`
	Revenue             float64 `json:"revenue"`
	RevenueBaisa        int64   `json:"revenue_baisa"`
	FleetSize           int64   `json:"fleet_size"`
	AverageBookingValue float64 `json:"average_booking_value"`
}

type PendingTenantView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Phone     string    `json:"phone"`
	CRNumber  string    `json:"cr_number"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminDashboardView struct {
	TotalTenants        int64               `json:"total_tenants"`
	PendingTenants      int64               `json:"pending_tenants"`
	ActiveBookings      int64               `json:"active_bookings"`
	Revenue             float64             `json:"revenue"`
	Profit              float64             `json:"profit"`
	MedianBookingValue  float64             `json:"median_booking_value"`
	PendingApplications []PendingTenantView `json:"pending_applications"`
}

// AuditEntryView doubles as the CSV export row
type AuditEntryView struct {
	ID            uuid.UUID `json:"id" csv:"-"`
	Reference     string    `json:"reference" csv:"reference"`
	CustomerName  string    `json:"customer_name" csv:"customer"`
	CustomerPhone string    `json:"customer_phone" csv:"phone"`
	ListingName   string    `json:"listing_name" csv:"listing"`
	TenantName    string    `json:"tenant_name" csv:"company"`
	StartDate     string    `json:"start_date" csv:"start_date"`
	EndDate       string    `json:"end_date" csv:"end_date"`
	TotalPrice    float64   `json:"total_price" csv:"total_omr"`
	Status        string    `json:"status" csv:"status"`
	CreatedAt     string    `json:"created_at" csv:"created_at"`
}
