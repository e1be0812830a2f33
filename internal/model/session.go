package model

import "time"

// AuthorityUser is required to list customers.
const AuthorityUser = "USER"

// Authority is a single permission grant held by the caller.
type Authority struct {
	Authority string `json:"authority"`
}

type Principal struct {
	Subject           string `json:"subject"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	Email             string `json:"email,omitempty"`
}

// Credentials describes the bearer token that authenticated the request.
// The raw token value is never exposed.
type Credentials struct {
	TokenID   string     `json:"token_id,omitempty"`
	Issuer    string     `json:"issuer,omitempty"`
	Audience  []string   `json:"audience,omitempty"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Session is the authentication context of a request.
type Session struct {
	Name            string         `json:"name"`
	Principal       Principal      `json:"principal"`
	Authorities     []Authority    `json:"authorities"`
	Authenticated   bool           `json:"authenticated"`
	Credentials     Credentials    `json:"credentials"`
	TokenAttributes map[string]any `json:"token_attributes"`
}

// HasAuthority reports whether the session holds the named authority.
func (s *Session) HasAuthority(name string) bool {
	if s == nil || !s.Authenticated {
		return false
	}
	for _, a := range s.Authorities {
		if a.Authority == name {
			return true
		}
	}
	return false
}
