package http

import (
	"github.com/uni-match-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/uni-match-api/internal/infrastructure/jwt"
	s3infra "github.com/uni-match-api/internal/infrastructure/s3"
	"github.com/uni-match-api/internal/infrastructure/smtp"

	"github.com/uni-match-api/internal/application/auth"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProfileRepo       *dynamo.ProfileRepo
	UniversityRepo    *dynamo.UniversityRepo
	ConfigurationRepo *dynamo.ConfigurationRepo
	DocumentRepo      *dynamo.DocumentRepo
	OTPStore          auth.OTPStore
	S3Store           *s3infra.Store
	Mailer            smtp.Mailer
	JWTProvider       *jwtinfra.Provider
}
