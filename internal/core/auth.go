package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/edvin/customerservice/internal/model"
)

const defaultTokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

type AuthService struct {
	jwtSecret []byte
	jwtIssuer string
	parser    *jwt.Parser
}

func NewAuthService(jwtSecret, jwtIssuer string) *AuthService {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if jwtIssuer != "" {
		opts = append(opts, jwt.WithIssuer(jwtIssuer))
	}

	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		jwtIssuer: jwtIssuer,
		parser:    jwt.NewParser(opts...),
	}
}

// IssueToken creates a signed bearer token for the subject carrying the
// given authorities. A zero ttl falls back to one hour.
func (s *AuthService) IssueToken(subject string, authorities []string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("issue token: missing subject")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := time.Now()
	claims := model.JWTClaims{
		PreferredUsername: subject,
		Authorities:       authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies the signature, issuer and expiry of a bearer token
// and returns its claims.
func (s *AuthService) ValidateToken(tokenStr string) (*model.JWTClaims, error) {
	claims, _, err := s.parse(tokenStr)
	return claims, err
}

// Authenticate validates the token and builds the session it represents.
func (s *AuthService) Authenticate(tokenStr string) (*model.Session, error) {
	claims, attrs, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	return newSession(claims, attrs), nil
}

// parse verifies the token once into its raw claim set and decodes the typed
// claims from that set.
func (s *AuthService) parse(tokenStr string) (*model.JWTClaims, jwt.MapClaims, error) {
	attrs := jwt.MapClaims{}
	token, err := s.parser.ParseWithClaims(tokenStr, attrs, func(*jwt.Token) (any, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, nil, ErrInvalidToken
	}

	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	var claims model.JWTClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, nil, fmt.Errorf("%w: decode claims: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return &claims, attrs, nil
}

func newSession(claims *model.JWTClaims, attrs map[string]any) *model.Session {
	authorities := []model.Authority{}
	for _, name := range claims.GrantedAuthorities() {
		authorities = append(authorities, model.Authority{Authority: name})
	}

	creds := model.Credentials{
		TokenID:  claims.ID,
		Issuer:   claims.Issuer,
		Audience: claims.Audience,
	}
	if claims.IssuedAt != nil {
		t := claims.IssuedAt.Time
		creds.IssuedAt = &t
	}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		creds.ExpiresAt = &t
	}

	return &model.Session{
		Name: claims.Subject,
		Principal: model.Principal{
			Subject:           claims.Subject,
			PreferredUsername: claims.PreferredUsername,
			Email:             claims.Email,
		},
		Authorities:     authorities,
		Authenticated:   true,
		Credentials:     creds,
		TokenAttributes: attrs,
	}
}
