package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_String(t *testing.T) {
	c := Customer{ID: 1, Name: "Mohamed", Email: "mohamed@gmail.com"}
	assert.Equal(t, "Customer(id=1, name=Mohamed, email=mohamed@gmail.com)", c.String())
}

func TestCustomer_JSONShape(t *testing.T) {
	data, err := json.Marshal(Customer{ID: 7, Name: "Ali", Email: "ali@gmail.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Ali","email":"ali@gmail.com"}`, string(data))
}

func TestSession_HasAuthority(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"nil session", nil, false},
		{"anonymous", &Session{Authorities: []Authority{{"USER"}}}, false},
		{"granted", &Session{Authenticated: true, Authorities: []Authority{{"ADMIN"}, {"USER"}}}, true},
		{"not granted", &Session{Authenticated: true, Authorities: []Authority{{"ADMIN"}}}, false},
		{"case sensitive", &Session{Authenticated: true, Authorities: []Authority{{"user"}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.HasAuthority("USER"))
		})
	}
}

func TestJWTClaims_GrantedAuthorities(t *testing.T) {
	c := JWTClaims{
		Authorities: []string{"USER", "", "ADMIN"},
		RealmAccess: &RealmAccess{Roles: []string{"ADMIN", "offline_access"}},
	}
	assert.Equal(t, []string{"USER", "ADMIN", "offline_access"}, c.GrantedAuthorities())

	assert.Empty(t, (&JWTClaims{}).GrantedAuthorities())
}
