package model

import "github.com/golang-jwt/jwt/v5"

// RealmAccess carries identity-provider realm roles.
type RealmAccess struct {
	Roles []string `json:"roles"`
}

type JWTClaims struct {
	PreferredUsername string       `json:"preferred_username,omitempty"`
	Email             string       `json:"email,omitempty"`
	Authorities       []string     `json:"authorities,omitempty"`
	RealmAccess       *RealmAccess `json:"realm_access,omitempty"`
	jwt.RegisteredClaims
}

// GrantedAuthorities merges the authorities claim with realm roles,
// dropping duplicates and keeping first-seen order.
func (c *JWTClaims) GrantedAuthorities() []string {
	seen := map[string]bool{}
	var out []string
	add := func(names []string) {
		for _, n := range names {
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	add(c.Authorities)
	if c.RealmAccess != nil {
		add(c.RealmAccess.Roles)
	}
	return out
}
