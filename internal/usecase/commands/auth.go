package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"rental-marketplace/internal/domain/auth"
	"rental-marketplace/internal/domain/user"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/errs"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/pkg/password"
	"rental-marketplace/internal/usecase/queries"
	"rental-marketplace/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrSignupValidation     = errs.New("signup validation failed")
	ErrEmailTaken           = errs.New("email already registered")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type SignupInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type LoginResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// CredentialStore resolves accounts for authentication
type CredentialStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role, tenantID *uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role, tenantID *uuid.UUID) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (*LoginResult, error)
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore CredentialStore
	tokens    TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, readStore CredentialStore, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrSignupValidation)
	}
	phone := strings.TrimSpace(in.Phone)
	if phone != "" {
		if _, err := user.NewPhone(phone); err != nil {
			return nil, errs.Mark(err, ErrSignupValidation)
		}
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u := user.NewCustomer(credentials.Email(), hash, user.NewFullName(in.FullName), phone)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailTaken)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := &queries.AuthorizedUserView{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Role:     u.Role().String(),
		FullName: u.FullName().Value(),
		Phone:    u.Phone(),
		IsActive: u.IsActive(),
	}
	pair, err := a.issue(view)
	if err != nil {
		return nil, err
	}

	slog.Info("customer signed up", "user_id", u.ID())
	return &LoginResult{User: view, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(view)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, view.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", view.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{User: view, TokenPair: pair}, nil
}

// RefreshToken re-reads the account so role and tenant changes land in the new pair
func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issue(view)
}

func (a *authCommandsImpl) issue(view *queries.AuthorizedUserView) (*TokenPair, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.tokens.GenerateAccessToken(view.ID, role, view.TenantID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.tokens.GenerateRefreshToken(view.ID, role, view.TenantID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// same answer as a wrong password so emails cannot be probed
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrUserNotFound
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		if !errs.Is(err, password.ErrMismatch) {
			slog.Error("stored password hash is unusable", "user_id", view.ID, "error", err.Error())
		}
		return nil, ErrInvalidCredentials
	}

	return view, nil
}
