package bootstrap

import (
	"fmt"
	"time"

	"rental-marketplace/internal/handler/api"
	"rental-marketplace/internal/handler/middleware"
	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/jwt"
	"rental-marketplace/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(commands.TokenIssuer)),
			fx.As(new(middleware.TokenValidator)),
			fx.As(new(api.TokenLifetimes)),
		),
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
	}

	refreshTokenDuration, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_DURATION: %w", err)
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration), nil
}
