package commands

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/listing"
	"rental-marketplace/internal/domain/money"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingValidation = errs.New("listing validation failed")
	ErrImageTooLarge     = errs.New("image exceeds the upload size limit")
	ErrImageType         = errs.New("only image uploads are accepted")
	ErrUploadFailed      = errs.New("image upload failed")
)

type ListingInput struct {
	Category    string
	Make        string
	Model       string
	Year        int
	VendorPrice float64
	Description string
	LocationID  *uuid.UUID
	Features    []string
	Specs       map[string]any
	IsFeatured  bool
}

// ListingChanges is a partial edit; nil fields are left untouched
type ListingChanges struct {
	Make        *string
	Model       *string
	Year        *int
	VendorPrice *float64
	Description *string
	LocationID  *uuid.UUID
	Features    []string
	Specs       map[string]any
	IsFeatured  *bool
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ListingResult struct {
	ID          uuid.UUID
	DailyRate   money.Money
	BaseRate    money.Money
	IsAvailable bool
	Images      []string
}

type ListingCommands interface {
	CreateListing(ctx context.Context, actor *auth.Actor, in ListingInput) (*ListingResult, error)
	UpdateListing(ctx context.Context, actor *auth.Actor, id uuid.UUID, in ListingChanges) (*ListingResult, error)
	DeleteListing(ctx context.Context, actor *auth.Actor, id uuid.UUID) error
	ToggleAvailability(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*ListingResult, error)
	UploadImage(ctx context.Context, actor *auth.Actor, id uuid.UUID, img ImageUpload) (*ListingResult, error)
}

type listingCommandsImpl struct {
	uow            shared.UnitOfWork
	blobs          BlobStore
	commission     listing.Commission
	clock          clock.Clock
	maxUploadBytes int64
}

func NewListingCommands(uow shared.UnitOfWork, blobs BlobStore, commission listing.Commission, clk clock.Clock, maxUploadBytes int64) ListingCommands {
	return &listingCommandsImpl{
		uow:            uow,
		blobs:          blobs,
		commission:     commission,
		clock:          clk,
		maxUploadBytes: maxUploadBytes,
	}
}

func (c *listingCommandsImpl) CreateListing(ctx context.Context, actor *auth.Actor, in ListingInput) (*ListingResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}

	category, err := listing.NewCategory(in.Category)
	if err != nil {
		return nil, errs.Mark(err, ErrListingValidation)
	}
	specs, err := listing.DecodeSpecs(category, in.Specs)
	if err != nil {
		return nil, errs.Mark(err, ErrListingValidation)
	}
	if err := listing.ValidateVendorRate(money.FromRials(in.VendorPrice)); err != nil {
		return nil, errs.Mark(err, ErrListingValidation)
	}

	l, err := listing.NewListing(tenantID, listing.Draft{
		Category:    category,
		Make:        in.Make,
		Model:       in.Model,
		Year:        in.Year,
		VendorRate:  money.FromRials(in.VendorPrice),
		Description: in.Description,
		LocationID:  in.LocationID,
		Features:    in.Features,
		Specs:       specs,
		IsFeatured:  in.IsFeatured,
	}, c.commission, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrListingValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Listings().Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("listing created", "listing_id", l.ID(), "tenant_id", tenantID, "daily_rate", l.DailyRate().String())
	return toListingResult(l), nil
}

func (c *listingCommandsImpl) UpdateListing(ctx context.Context, actor *auth.Actor, id uuid.UUID, in ListingChanges) (*ListingResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if in.VendorPrice != nil {
		if err := listing.ValidateVendorRate(money.FromRials(*in.VendorPrice)); err != nil {
			return nil, errs.Mark(err, ErrListingValidation)
		}
	}

	var l *listing.Listing
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		l, err = c.tenantListing(ctx, tx, id, tenantID)
		if err != nil {
			return err
		}

		changes := listing.Changes{
			Make:        in.Make,
			Model:       in.Model,
			Year:        in.Year,
			Description: in.Description,
			LocationID:  in.LocationID,
			Features:    in.Features,
			IsFeatured:  in.IsFeatured,
		}
		if in.VendorPrice != nil {
			rate := money.FromRials(*in.VendorPrice)
			changes.VendorRate = &rate
		}
		if in.Specs != nil {
			specs, err := listing.DecodeSpecs(l.Category(), in.Specs)
			if err != nil {
				return errs.Mark(err, ErrListingValidation)
			}
			changes.Specs = specs
		}

		if err := l.Update(changes, c.commission, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrListingValidation)
		}
		return tx.Listings().Update(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	return toListingResult(l), nil
}

func (c *listingCommandsImpl) DeleteListing(ctx context.Context, actor *auth.Actor, id uuid.UUID) error {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return err
	}

	var images []string
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		images, err = tx.Listings().Delete(ctx, id, tenantID)
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrListingNotFound
		}
		return err
	})
	if err != nil {
		return err
	}

	keys := listing.BlobKeysFromURLs(images)
	if len(keys) == 0 {
		return nil
	}
	if err := c.blobs.Delete(ctx, keys); err != nil {
		slog.Warn("failed to delete listing images", "listing_id", id, "keys", keys, "error", err.Error())
	}
	return nil
}

func (c *listingCommandsImpl) ToggleAvailability(ctx context.Context, actor *auth.Actor, id uuid.UUID) (*ListingResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}

	var l *listing.Listing
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		l, err = c.tenantListing(ctx, tx, id, tenantID)
		if err != nil {
			return err
		}
		l.ToggleAvailability(c.clock.Now())
		return tx.Listings().Update(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	return toListingResult(l), nil
}

// UploadImage stores the blob first; a failed row update leaves an orphaned object behind
func (c *listingCommandsImpl) UploadImage(ctx context.Context, actor *auth.Actor, id uuid.UUID, img ImageUpload) (*ListingResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	if c.maxUploadBytes > 0 && img.Size > c.maxUploadBytes {
		return nil, ErrImageTooLarge
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, ErrImageType
	}

	existing, err := c.uow.CommandReads().ListingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !existing.BelongsTo(tenantID) {
		return nil, ErrListingNotFound
	}

	now := c.clock.Now()
	key := listing.BlobKeyFor(tenantID, now, img.FileName)
	url, err := c.blobs.Put(ctx, key, img.ContentType, img.Body, img.Size)
	if err != nil {
		return nil, errs.Mark(err, ErrUploadFailed)
	}

	var l *listing.Listing
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		l, err = c.tenantListing(ctx, tx, id, tenantID)
		if err != nil {
			return err
		}
		l.AddImage(url, now)
		return tx.Listings().Update(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	return toListingResult(l), nil
}

func (c *listingCommandsImpl) tenantListing(ctx context.Context, tx shared.Tx, id, tenantID uuid.UUID) (*listing.Listing, error) {
	l, err := tx.Reads().ListingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !l.BelongsTo(tenantID) {
		return nil, ErrListingNotFound
	}
	return l, nil
}

func toListingResult(l *listing.Listing) *ListingResult {
	return &ListingResult{
		ID:          l.ID(),
		DailyRate:   l.DailyRate(),
		BaseRate:    l.BaseRate(),
		IsAvailable: l.IsAvailable(),
		Images:      l.Images(),
	}
}
