package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"outside/config"
	"outside/internal/domain/service"
	"outside/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte        // HMAC key for signing access tokens.
	issuer   string        // Expected "iss" claim.
	audience string        // Expected "aud" claim.
	ttl      time.Duration // Time-to-live for access tokens.
	clock    service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, errors.New("jwt token ttl must be positive")
	}

	return &jwtService{
		secret:   []byte(cfg.Auth.Secret),
		issuer:   cfg.Auth.Issuer,
		audience: cfg.Auth.Audience,
		ttl:      cfg.Auth.TokenTTL,
		clock:    clock,
	}, nil
}

// Issue signs an HS256 access token whose subject is the profile ID.
func (s *jwtService) Issue(userID uuid.UUID, email string) (*service.IssuedToken, error) {
	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	tokenID := uuid.NewString()

	claims := service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	return &service.IssuedToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify parses the token and validates signature, expiry, issuer and audience.
func (s *jwtService) Verify(tokenString string) (*service.VerifiedToken, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.clock.Now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user id")
	}

	return &service.VerifiedToken{
		UserID:    userID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
