package commands

import (
	"context"
	"log/slog"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/tenant"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTenantValidation = errs.New("vendor application invalid")
	ErrTenantTaken      = errs.New("Company name or slug already taken")
	ErrTenantNotFound   = errs.New("company not found")
	ErrAlreadyVendor    = errs.New("account already manages a company")
)

type VendorApplication struct {
	Name     string
	Phone    string
	CRNumber string
	Address  string
	Email    string
}

type TenantSettingsInput struct {
	WhatsappNumber *string
	Address        *string
	Email          *string
	LogoURL        *string
	City           *string
}

type TenantResult struct {
	ID     uuid.UUID
	Name   string
	Slug   string
	Status string
}

type TenantCommands interface {
	ApplyVendor(ctx context.Context, actor *auth.Actor, in VendorApplication) (*TenantResult, error)
	UpdateSettings(ctx context.Context, actor *auth.Actor, in TenantSettingsInput) (*TenantResult, error)
	ApproveVendor(ctx context.Context, actor *auth.Actor, tenantID uuid.UUID) (*TenantResult, error)
}

type tenantCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTenantCommands(uow shared.UnitOfWork, clk clock.Clock) TenantCommands {
	return &tenantCommandsImpl{uow: uow, clock: clk}
}

// ApplyVendor creates a pending tenant and makes the caller its owner
func (c *tenantCommandsImpl) ApplyVendor(ctx context.Context, actor *auth.Actor, in VendorApplication) (*TenantResult, error) {
	if !actor.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	if _, ok := actor.Tenant(); ok {
		return nil, ErrAlreadyVendor
	}

	t, err := tenant.Apply(tenant.Application{
		Name:     in.Name,
		Phone:    in.Phone,
		CRNumber: in.CRNumber,
		Address:  in.Address,
		Email:    in.Email,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrTenantValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Tenants().Create(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrTenantTaken)
			}
			return err
		}
		return tx.Users().AssignTenant(ctx, actor.UserID, user.RoleOwner, t.ID())
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vendor application received", "tenant_id", t.ID(), "slug", t.Slug(), "user_id", actor.UserID)
	return toTenantResult(t), nil
}

func (c *tenantCommandsImpl) UpdateSettings(ctx context.Context, actor *auth.Actor, in TenantSettingsInput) (*TenantResult, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}

	var t *tenant.Tenant
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		t, err = c.loadTenant(ctx, tx, tenantID)
		if err != nil {
			return err
		}
		t.ApplySettings(tenant.Settings{
			WhatsappNumber: in.WhatsappNumber,
			Address:        in.Address,
			Email:          in.Email,
			LogoURL:        in.LogoURL,
			City:           in.City,
		}, c.clock.Now())
		return tx.Tenants().Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	return toTenantResult(t), nil
}

func (c *tenantCommandsImpl) ApproveVendor(ctx context.Context, actor *auth.Actor, tenantID uuid.UUID) (*TenantResult, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}

	var t *tenant.Tenant
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		t, err = c.loadTenant(ctx, tx, tenantID)
		if err != nil {
			return err
		}
		if err := t.Approve(c.clock.Now()); err != nil {
			return errs.Mark(err, ErrTenantValidation)
		}
		return tx.Tenants().Update(ctx, t)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vendor approved", "tenant_id", t.ID(), "admin_id", actor.UserID)
	return toTenantResult(t), nil
}

func (c *tenantCommandsImpl) loadTenant(ctx context.Context, tx shared.Tx, id uuid.UUID) (*tenant.Tenant, error) {
	t, err := tx.Reads().TenantByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return t, nil
}

func toTenantResult(t *tenant.Tenant) *TenantResult {
	return &TenantResult{
		ID:     t.ID(),
		Name:   t.Name(),
		Slug:   t.Slug(),
		Status: t.Status().String(),
	}
}
