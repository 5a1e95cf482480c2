package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/logger"
)

// LoginUseCase authenticates the single admin account configured through the
// environment. There is no user table; the portfolio has one owner.
type LoginUseCase struct {
	adminEmail        string
	adminPasswordHash string
	jwtSvc            *auth.JWTService
	logger            logger.Logger
}

func NewLoginUseCase(adminEmail, adminPasswordHash string, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		jwtSvc:            jwtSvc,
		logger:            log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	if input.Email != uc.adminEmail || !auth.CheckPasswordHash(input.Password, uc.adminPasswordHash) {
		err := apperror.NewUnauthorized("email or password is incorrect", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(input.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("email", input.Email))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("admin_email", input.Email))
	return &LoginOutput{AccessToken: token}, nil
}
